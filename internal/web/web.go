package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/neonprofile/internal/config"
	"github.com/sidereusnuntius/neonprofile/internal/service"
)

const (
	HomeRoute    = "/"
	EditRoute    = "/edit"
	ProfileRoute = "/profile"
	CancelRoute  = "/cancel"
	StatsRoute   = "/stats/{counter}"
	AvatarRoute  = "/avatar.svg"
	ApiPath      = "/api"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

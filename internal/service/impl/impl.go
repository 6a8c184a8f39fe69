package core

import (
	"context"

	"github.com/sidereusnuntius/neonprofile/internal/config"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/editor"
	"github.com/sidereusnuntius/neonprofile/internal/service"
	"github.com/sidereusnuntius/neonprofile/internal/state"
	"github.com/sidereusnuntius/neonprofile/internal/store"
)

type AppService struct {
	Config       config.Configuration
	ProfileStore *store.ProfileStore
	StatsStore   *store.StatsStore
}

func New(state *state.State) service.Service {
	return &AppService{
		Config:       state.Config,
		ProfileStore: state.Profiles,
		StatsStore:   state.Stats,
	}
}

func (s *AppService) Profile(ctx context.Context) domain.Profile {
	return s.ProfileStore.Current()
}

func (s *AppService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error) {
	return s.ProfileStore.Save(ctx, patch)
}

func (s *AppService) Editor() *editor.Editor {
	return editor.New(s.ProfileStore)
}

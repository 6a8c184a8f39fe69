package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	if h.Config.Debug {
		r.Use(RequestLogger)
	}

	r.Get(HomeRoute, Dashboard(h))
	r.Get(EditRoute, EditProfile(h))
	r.Post(ProfileRoute, SaveProfile(h))
	r.Post(CancelRoute, CancelEdit(h))
	r.Post(StatsRoute, IncrementStat(h))
	r.Get(AvatarRoute, Avatar(h))

	r.Route(ApiPath, func(r chi.Router) {
		r.Get("/profile", GetProfileJSON(h))
		r.Patch("/profile", PatchProfileJSON(h))
		r.Get("/stats", GetStatsJSON(h))
		r.Post("/stats/{counter}", IncrementStatJSON(h))
	})

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	dir := h.Config.StaticDir
	if !filepath.IsAbs(dir) {
		wd, _ := os.Getwd()
		dir = filepath.Join(wd, dir)
	}
	f := os.DirFS(dir)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}

package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/service"
	"github.com/sidereusnuntius/neonprofile/templates"
)

const PageTitle = "Personal Dashboard"

// render writes the dashboard with the current profile and stats. data only needs the page specific fields.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, code int, data templates.PageData) {
	ctx := r.Context()
	data.PageTitle = PageTitle
	data.Profile = h.service.Profile(ctx)
	data.Stats = h.service.Stats(ctx)
	data.Flash = h.popFlash(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := templates.Layout(data).Render(ctx, w); err != nil {
		log.Error().Err(err).Msg("error rendering dashboard")
	}
}

func Dashboard(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, templates.PageData{})
	}
}

// EditProfile renders the dashboard with the edit form populated from the current profile. The draft lives in
// the form only; reloading the dashboard abandons it.
func EditProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ed := h.service.Editor()
		h.render(w, r, http.StatusOK, templates.PageData{
			Editing: true,
			Draft:   ed.Edit(),
		})
	}
}

// applyForm overwrites the draft fields present in the form. Absent fields keep the draft's value.
func applyForm(d *domain.Draft, form url.Values) {
	fields := map[string]*string{
		"name":     &d.Name,
		"title":    &d.Title,
		"bio":      &d.Bio,
		"email":    &d.Email,
		"location": &d.Location,
	}
	for name, dst := range fields {
		if v, ok := form[name]; ok && len(v) > 0 {
			*dst = v[0]
		}
	}
}

func SaveProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ed := h.service.Editor()
		draft := ed.Edit()

		if err := r.ParseForm(); err != nil {
			h.render(w, r, http.StatusBadRequest, templates.PageData{
				Editing: true,
				Draft:   draft,
				Err:     errors.New("failed to parse form body"),
			})
			return
		}

		applyForm(&draft, r.PostForm)
		if err := ed.Update(draft); err != nil {
			log.Error().Err(err).Msg("failed to update draft")
		}

		if _, err := ed.Save(r.Context()); err != nil {
			log.Error().Err(err).Msg("failed to save profile")
			h.putFlash(w, r, "Profile updated, but it could not be stored.")
		} else {
			h.putFlash(w, r, "Profile saved.")
		}
		http.Redirect(w, r, HomeRoute, http.StatusSeeOther)
	}
}

func CancelEdit(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ed := h.service.Editor()
		ed.Edit()
		ed.Cancel()
		http.Redirect(w, r, HomeRoute, http.StatusSeeOther)
	}
}

func IncrementStat(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counter := chi.URLParam(r, "counter")
		_, err := h.service.Increment(r.Context(), counter)
		if errors.Is(err, service.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error().Err(err).Str("counter", counter).Msg("failed to persist stats")
		}
		http.Redirect(w, r, HomeRoute, http.StatusSeeOther)
	}
}

// Avatar serves the placeholder avatar with the initials of the current profile name.
func Avatar(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initials := domain.Initials(h.service.Profile(r.Context()).Name)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte(domain.AvatarSVG(initials)))
	}
}

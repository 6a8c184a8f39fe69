package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/service"
)

// MaxBodySize bounds the JSON bodies accepted by the API.
const MaxBodySize = 64 * 1024

func GetProfileJSON(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.service.Profile(r.Context()))
	}
}

// PatchProfileJSON merges a partial profile into the current one. Fields absent from the body are kept.
func PatchProfileJSON(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.ProfilePatch
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&patch); err != nil {
			writeError(w, fmt.Errorf("%w: %s", service.ErrInvalidInput, err))
			return
		}

		p, err := h.service.UpdateProfile(r.Context(), patch)
		if err != nil {
			log.Error().Err(err).Msg("failed to save profile")
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func GetStatsJSON(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.service.Stats(r.Context()))
	}
}

func IncrementStatJSON(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counter := chi.URLParam(r, "counter")
		stats, err := h.service.Increment(r.Context(), counter)
		if err != nil {
			log.Error().Err(err).Str("counter", counter).Msg("increment failed")
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

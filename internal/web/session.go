package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// FlashKey is the session key of the one-shot message shown on the next rendered page.
const FlashKey = "flash"

func (h *Handler) putFlash(w http.ResponseWriter, r *http.Request, msg string) {
	if err := h.SessionManager.Load(r).PutString(w, FlashKey, msg); err != nil {
		log.Error().Err(err).Msg("failed to store flash message")
	}
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	msg, err := h.SessionManager.Load(r).PopString(w, FlashKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash message")
	}
	return msg
}

// RequestLogger logs one event per request with its status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

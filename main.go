package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/config"
	"github.com/sidereusnuntius/neonprofile/internal/initialization"
	service "github.com/sidereusnuntius/neonprofile/internal/service/impl"
	"github.com/sidereusnuntius/neonprofile/internal/state"
	"github.com/sidereusnuntius/neonprofile/internal/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		zero.Warn().Str("level", config.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	if config.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStorage, err := initialization.OpenStorage(&config)
	if err != nil {
		zero.Fatal().Err(err).Str("driver", config.StorageDriver).Msg("failed to open storage")
	}
	defer func() {
		if err := closeStorage(); err != nil {
			zero.Error().Err(err).Msg("failed to close storage")
		}
	}()

	state := state.New(ctx, config, kv)
	service := service.New(state)
	manager := scs.NewCookieManager(config.SessionKey)

	handler := web.New(&config, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			zero.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	zero.Info().Uint16("port", config.Port).Str("storage", config.StorageDriver).Msg("started server")
	if err = s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zero.Error().Err(err).Msg("server stopped")
	}
}

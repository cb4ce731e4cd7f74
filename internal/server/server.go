package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/reelcarbon/reelcarbon/internal/config"
	"github.com/reelcarbon/reelcarbon/internal/engine"
)

const shutdownTimeout = 10 * time.Second

// Run starts the HTTP API and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func Run(cfg *config.Config, logger zerolog.Logger) error {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler := NewHandler(logger, engine.New(logger))
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
		close(shutdownDone)
	}()

	logger.Info().Str("addr", srv.Addr).Msg("starting calculation API")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownDone
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/backend/internal/config"
	"github.com/iamasit07/connect-four/backend/internal/service/cleanup"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	transportHttp "github.com/iamasit07/connect-four/backend/internal/transport/http"
	"github.com/iamasit07/connect-four/backend/internal/transport/websocket"
	"github.com/iamasit07/connect-four/backend/pkg/auth"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Configuration
	config.LoadEnvFile()
	cfg := config.LoadConfig()
	config.SetupLogging(cfg.LogLevel)

	if config.GetEnv("ENVIRONMENT", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Services
	connManager := websocket.NewConnectionManager()
	sessionManager := game.NewSessionManager(cfg.BoardColumns, cfg.BoardRows, connManager)
	sessionManager.SetDefaultColors(cfg.Player1Color, cfg.Player2Color)
	gameService := game.NewService(sessionManager, auth.NewIssuer(cfg.JWTSecret, cfg.SessionTokenTTL))

	// 3. Background workers
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.SessionIdleTimeout, cfg.CleanupInterval)
	go cleanupWorker.Start(ctx)

	// 4. HTTP
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: transportHttp.NewRouter(cfg, gameService, connManager),
	}

	go func() {
		log.Info().Str("port", cfg.Port).
			Int("columns", cfg.BoardColumns).Int("rows", cfg.BoardRows).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}

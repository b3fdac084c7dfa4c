package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rmss-studio/tutorbot/internal/api"
	"github.com/rmss-studio/tutorbot/internal/config"
	"github.com/rmss-studio/tutorbot/internal/history"
	"github.com/rmss-studio/tutorbot/internal/llm"
	"github.com/rmss-studio/tutorbot/internal/logger"
	"github.com/rmss-studio/tutorbot/internal/prompt"
	"github.com/rmss-studio/tutorbot/internal/relay"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)

	// Initialize transcript store
	store := history.NewStore(cfg.History.DBPath)
	defer store.Close()

	// Initialize completion client and relay
	llmClient := llm.NewClient(cfg.LLM)
	chatRelay := relay.New(llmClient, store, prompt.System(), cfg.LLM.Model)

	// Initialize router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api.NewHandler(chatRelay, store).RegisterRoutes(e)

	// Start server
	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.L.Info("starting server", "address", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.L.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.L.Error("shutdown error", "error", err)
	}
}

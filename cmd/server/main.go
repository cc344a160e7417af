package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/speakuppartners/site/internal/app"
	"github.com/speakuppartners/site/internal/config"
	"github.com/speakuppartners/site/internal/logging"
	"github.com/speakuppartners/site/internal/pubsub"
	"github.com/speakuppartners/site/internal/registry"
	"github.com/speakuppartners/site/internal/rendering"
	"github.com/speakuppartners/site/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()))

	bridge := pubsub.NewWatermillBridge()
	defer func() {
		if err := bridge.Close(); err != nil {
			slog.Error("Failed to close pubsub bridge", "error", err)
		}
	}()

	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Renderer: rendering.NewUniversalRenderer(),
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	modules := app.NewModules(app.Dependencies{
		Publisher:  bridge,
		Subscriber: bridge,
	})
	if err := s.InitModules(context.Background(), modules, registry.New(cfg)); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	s.RegisterRoutes()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nhl-results-service/internal/config"
	"github.com/preston-bernstein/nhl-results-service/internal/logging"
	"github.com/preston-bernstein/nhl-results-service/internal/server"
)

const (
	appName    = "nhl-results-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}

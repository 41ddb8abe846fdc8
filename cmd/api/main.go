package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hiring-orchestrator/config"
	_ "hiring-orchestrator/docs" // Swagger docs
	"hiring-orchestrator/internal/app"
	"hiring-orchestrator/internal/httpserver"
	"hiring-orchestrator/pkg/log"
)

// @title       Hiring Orchestrator API
// @description Multi-agent HR hiring assistant that plans recruiting requests into tasks and runs them.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Hiring Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Hiring domain
	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build application: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Orchestrator: application.Orchestrator,
		Middleware:   application.Middleware,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

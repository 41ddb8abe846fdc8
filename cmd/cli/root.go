package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hiring-orchestrator/config"
	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/internal/app"
	"hiring-orchestrator/pkg/log"
)

// runtime is what the session commands need from the wired application.
type runtime struct {
	uc orchestrator.UseCase
	l  log.Logger
}

type builder func(ctx context.Context) (*runtime, error)

func buildRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &runtime{uc: a.Orchestrator, l: logger}, nil
}

func newRootCmd(build builder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hiring",
		Short:         "Hiring assistant: plan and run recruiting tasks from plain requests",
		Long:          "hiring turns recruiting requests into job descriptions, screenings, interviews, emails, offers and pipeline reports.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newChatCmd(build),
		newAskCmd(build),
		newCalendarAuthCmd(),
	)

	return rootCmd
}

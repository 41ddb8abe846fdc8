package app

import (
	"context"
	"fmt"
	"time"

	"hiring-orchestrator/config"
	"hiring-orchestrator/internal/agent"
	"hiring-orchestrator/internal/agent/capability"
	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/internal/conversation"
	"hiring-orchestrator/internal/memory"
	"hiring-orchestrator/internal/middleware"
	"hiring-orchestrator/internal/planner"
	"hiring-orchestrator/internal/reasoning"
	"hiring-orchestrator/internal/repository"
	memoryRepo "hiring-orchestrator/internal/repository/memory"
	tomlRepo "hiring-orchestrator/internal/repository/toml"
	"hiring-orchestrator/pkg/gcalendar"
	"hiring-orchestrator/pkg/llmprovider"
	"hiring-orchestrator/pkg/log"
	"hiring-orchestrator/pkg/smtpmail"
)

const (
	LogPrefixBuild = "app.Build"

	maxRetryAfter = time.Minute
)

// App is the wired object graph shared by the API server and the CLI.
type App struct {
	Orchestrator *orchestrator.Orchestrator
	Repository   repository.Repository
	Middleware   middleware.Middleware
}

// Build initializes the LLM providers from cfg and assembles the App on top of them.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("%s: init providers: %w", LogPrefixBuild, err)
	}
	for _, p := range providers {
		l.Infof(ctx, "%s: LLM provider %s (%s) ready", LogPrefixBuild, p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 2*time.Minute),
		MaxRetryAfter:   maxRetryAfter,
	}, l)

	return Assemble(ctx, cfg, l, manager)
}

// Assemble wires everything below the text generator. The calendar is optional:
// a missing or broken credentials file only disables event creation.
func Assemble(ctx context.Context, cfg *config.Config, l log.Logger, gen reasoning.Generator) (*App, error) {
	repo, err := newRepository(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixBuild, err)
	}
	l.Infof(ctx, "%s: storage driver %s", LogPrefixBuild, cfg.Storage.Driver)

	reasoningSvc := reasoning.New(l, gen, reasoning.Config{
		MinRequestInterval: parseDuration(cfg.LLM.MinRequestInterval, 0),
		Temperature:        cfg.LLM.Temperature,
		MaxTokens:          cfg.LLM.MaxTokens,
	})

	mem := memory.New(memory.Options{
		DefaultTTL:   cfg.Memory.ShortTermTTL,
		RecentWindow: cfg.Memory.RecentWindow,
	})
	ledger := conversation.New(conversation.Options{MaxHistory: cfg.Conversation.MaxHistory})

	loc, err := time.LoadLocation(cfg.GoogleCalendar.Timezone)
	if err != nil {
		l.Warnf(ctx, "%s: invalid timezone %q, falling back to UTC: %v", LogPrefixBuild, cfg.GoogleCalendar.Timezone, err)
		loc = time.UTC
	}

	deps := capability.Deps{
		Logger:    l,
		Reasoning: reasoningSvc,
		Repo:      repo,
		Memory:    mem,
		Mailer:    newMailer(ctx, cfg.SMTP, l),
	}
	if cal := newCalendar(ctx, cfg.GoogleCalendar, l); cal != nil {
		deps.Calendar = cal
	}

	handlers := capability.New(deps, capability.Options{
		CompanyName: cfg.Company.Name,
		Location:    loc,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	})

	orch := orchestrator.New(
		l,
		reasoningSvc,
		planner.New(l, reasoningSvc),
		agent.NewDispatcher(l, handlers),
		mem,
		ledger,
		orchestrator.Options{Timezone: loc.String()},
	)

	return &App{
		Orchestrator: orch,
		Repository:   repo,
		Middleware:   middleware.New(l, middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin}),
	}, nil
}

func newRepository(cfg config.StorageConfig) (repository.Repository, error) {
	switch cfg.Driver {
	case "", "memory":
		return memoryRepo.New(time.Now), nil
	case "toml":
		return tomlRepo.New(cfg.Path, time.Now)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// newMailer returns the SMTP mailer when smtp.host is set and the log mailer
// otherwise, including when the SMTP config is invalid.
func newMailer(ctx context.Context, cfg config.SMTPConfig, l log.Logger) capability.Mailer {
	if cfg.Host == "" {
		l.Info(ctx, "SMTP not configured, emails are logged only")
		return capability.NewLogMailer(l)
	}
	client, err := smtpmail.New(smtpmail.Config{
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
		Password:  cfg.Password,
		From:      cfg.From,
		TLSPolicy: cfg.TLSPolicy,
	})
	if err != nil {
		l.Warnf(ctx, "SMTP not available, emails are logged only: %v", err)
		return capability.NewLogMailer(l)
	}
	l.Infof(ctx, "%s: sending email through %s:%d as %s", LogPrefixBuild, cfg.Host, cfg.Port, client.From())
	return capability.NewSMTPMailer(l, client)
}

func newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig, l log.Logger) *gcalendar.Client {
	if cfg.CredentialsPath == "" {
		l.Info(ctx, "Google Calendar not configured, interviews will not create events")
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "→ Run `cli calendar-auth` to generate token.json")
		return nil
	}
	l.Info(ctx, "Google Calendar initialized")
	return client
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

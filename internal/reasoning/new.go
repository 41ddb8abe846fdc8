package reasoning

import (
	"time"

	"golang.org/x/time/rate"

	"hiring-orchestrator/pkg/log"
)

// Config tunes request pacing and generation defaults.
type Config struct {
	// MinRequestInterval is the minimum spacing between upstream calls.
	MinRequestInterval time.Duration
	Temperature        float64
	MaxTokens          int
	HistoryWindow      int
}

type implService struct {
	l       log.Logger
	gen     Generator
	limiter *rate.Limiter
	cfg     Config
}

var _ Service = (*implService)(nil)

// New creates the reasoning service on top of gen.
func New(l log.Logger, gen Generator, cfg Config) Service {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}

	limit := rate.Inf
	if cfg.MinRequestInterval > 0 {
		limit = rate.Every(cfg.MinRequestInterval)
	}

	return &implService{
		l:       l,
		gen:     gen,
		limiter: rate.NewLimiter(limit, 1),
		cfg:     cfg,
	}
}

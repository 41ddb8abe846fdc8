package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"hiring-orchestrator/pkg/log"
)

const (
	defaultRequestsPerMin = 60
	maxClients            = 1000
	clientTTL             = 5 * time.Minute
)

// Middleware holds the gin middlewares shared by the HTTP delivery layers.
type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// Config configures the middleware set.
type Config struct {
	RequestsPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = defaultRequestsPerMin
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, clientTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

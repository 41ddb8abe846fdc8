package http

import (
	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc orchestrator.UseCase
}

// New creates the HTTP handler for the hiring sessions.
func New(l log.Logger, uc orchestrator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

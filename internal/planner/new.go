package planner

import (
	"hiring-orchestrator/internal/reasoning"
	"hiring-orchestrator/pkg/log"
)

type implPlanner struct {
	l         log.Logger
	reasoning reasoning.Service
}

var _ Planner = (*implPlanner)(nil)

// New creates a Planner backed by the reasoning service.
func New(l log.Logger, r reasoning.Service) Planner {
	return &implPlanner{l: l, reasoning: r}
}

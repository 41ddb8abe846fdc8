package http

import (
	"errors"

	"hiring-orchestrator/internal/agent/orchestrator"
)

var (
	errMissingSessionID = errors.New("session id is required")
	errInvalidLimit     = errors.New("limit must be a non-negative integer")
	errSessionNotFound  = errors.New("session not found")
)

// mapError translates use-case errors into client errors. It returns nil for
// errors that must surface as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyMessage):
		return err
	default:
		return nil
	}
}

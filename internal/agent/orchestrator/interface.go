package orchestrator

import (
	"context"

	"hiring-orchestrator/internal/conversation"
)

// UseCase is the orchestrator as seen by the delivery layers.
type UseCase interface {
	// Process runs one user turn to completion. The error return is reserved
	// for invalid input; every other outcome is carried by ProcessOutput.
	Process(ctx context.Context, in ProcessInput) (ProcessOutput, error)

	StartSession() string
	Status(sessionID string) SessionStatus
	History(sessionID string, limit int) []conversation.Message
	Export(sessionID string) (conversation.Export, bool)
	ClearSession(sessionID string)
}

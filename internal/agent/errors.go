package agent

import (
	"errors"
	"fmt"
)

// ErrUnknownTaskType is returned when no handler is registered for a type.
var ErrUnknownTaskType = errors.New("no handler for task type")

// HandlerError wraps a handler failure or a recovered panic.
type HandlerError struct {
	TaskID string
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("task %s failed: %v", e.TaskID, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

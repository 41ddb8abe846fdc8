package orchestrator

import "errors"

var ErrEmptyMessage = errors.New("message is empty")

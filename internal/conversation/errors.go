package conversation

import "errors"

var (
	ErrInvalidRole  = errors.New("invalid message role")
	ErrEmptySession = errors.New("empty session id")
)

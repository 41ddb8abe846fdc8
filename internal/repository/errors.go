package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrUnknownKind    = errors.New("unknown record kind")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpdate = errors.New("failed to update record")
)

package datemath

import "errors"

var (
	ErrUnrecognizedDate  = errors.New("unrecognized date")
	ErrUnrecognizedClock = errors.New("unrecognized time of day")
)

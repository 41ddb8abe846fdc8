package reasoning

import "errors"

var (
	// ErrUpstream marks a failure of the text-generation endpoint after retries.
	ErrUpstream = errors.New("reasoning service unavailable")
	// ErrUnparseable is returned when a structured answer is not valid JSON.
	ErrUnparseable = errors.New("unparseable structured response")
	// ErrEmptyPrompt rejects blank prompts before any call is made.
	ErrEmptyPrompt = errors.New("empty prompt")
)

package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoChoices is returned when a selection has nothing to choose from.
	ErrNoChoices = errors.New("prompt: no choices available")
)

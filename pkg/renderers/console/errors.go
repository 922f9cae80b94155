package console

import "errors"

var (
	// ErrAborted signals the user aborted an interactive session (e.g., Ctrl+C).
	ErrAborted = errors.New("console: aborted")
)

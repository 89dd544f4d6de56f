package sync

import (
	"errors"

	"github.com/mschirtzinger/jce/internal/jsonc"
)

var (
	// ErrInvalidJSON is returned when the text is not valid JSON once
	// comments are removed. Nothing is written in that case.
	ErrInvalidJSON = jsonc.ErrInvalidJSON

	// ErrIO is returned for read, write and metadata failures, including a
	// read that kept failing for the whole retry budget.
	ErrIO = errors.New("I/O failure")
)

// IsRetryable returns true if running the same sync again may succeed.
// Invalid JSON needs the user to fix the text first, so it is not retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrIO) && !errors.Is(err, ErrInvalidJSON)
}

package session

import "errors"

// Errors returned by Classify and Session.Run.
//
// These can be checked with errors.Is:
//
//	if errors.Is(err, session.ErrAmbiguousCollision) {
//	    // a .jsonc file exists without its .json partner
//	}
var (
	// ErrNotFound is returned when the target cannot be created by
	// convention: its directory does not exist, or the canonical path is
	// not a regular file.
	ErrNotFound = errors.New("target not found")

	// ErrAmbiguousCollision is returned when the commented file exists but
	// the canonical file does not. The session refuses to guess which one
	// the user meant.
	ErrAmbiguousCollision = errors.New("commented file exists without canonical file")
)

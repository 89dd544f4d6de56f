package sync

import (
	"context"

	"github.com/mschirtzinger/jce/internal/paths"
)

// Syncer keeps a commented file and its canonical JSON file in step.
type Syncer interface {
	// Sync validates raw and writes both files of pair.
	//
	// raw is written verbatim to pair.Commented and its comment-free,
	// pretty-printed form to pair.Canonical. If raw is not valid JSON after
	// comment removal the error wraps ErrInvalidJSON and neither file is
	// touched.
	Sync(raw string, pair paths.FilePair) error

	// SyncFile reads path, tolerating transient read failures while an
	// editor is writing it, and then behaves like Sync.
	//
	// Example:
	//   err := syncer.SyncFile(ctx, "/tmp/jce-123/settings.jsonc", pair)
	SyncFile(ctx context.Context, path string, pair paths.FilePair) error
}

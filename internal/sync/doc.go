// Package sync writes a document's commented and canonical files.
//
// Overview
//
// Every sync takes the raw commented text as the single input:
//
//	raw text (scratch file)
//	     │
//	     ├── jsonc.Decode   → parse error? stop, touch nothing
//	     │
//	     ├── raw text       → settings.jsonc (verbatim)
//	     └── jsonc.Format   → settings.json  (two-space pretty JSON)
//
// Validation happens before either file is written, so invalid input never
// reaches disk and both files keep their last good content.
//
// Write ordering
//
// The commented file is written first, then the canonical file. Each write
// goes to a temporary file in the target directory and is renamed into
// place, so readers never see a partial file. The pair as a whole is not
// transactional: if the canonical write fails the commented file is already
// updated. That error wraps ErrIO and IsRetryable reports true for it; the
// commented file remains the source of truth for the next attempt.
//
// Usage
//
//	syncer := sync.New(nil)
//	pair := paths.Resolve("settings.json")
//	if err := syncer.Sync(raw, pair); err != nil {
//	    if errors.Is(err, sync.ErrInvalidJSON) {
//	        // user error, nothing written
//	    }
//	    return err
//	}
//
// SyncFile does the same starting from a file that an editor may still be
// writing: reads are retried for Config.ReadTimeout before giving up.
package sync

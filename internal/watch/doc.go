// Package watch turns filesystem notifications on a single file into
// debounced change signals.
//
// Components
//
// Watcher wraps fsnotify. It watches the directory that contains the file,
// not the file itself: many editors save by writing a new file and renaming
// it over the old one, which silently ends a watch placed on the original
// inode. Events for other names in the directory are dropped.
//
// Debouncer holds the only state shared with the rest of a session: the
// time of the last handled change, behind a mutex. A change arriving within
// the quantum of the previous handled one is dropped.
//
// Listener connects the two. It reads ChangeEvents from a channel, asks the
// Debouncer, and calls its Handle func for the survivors. Handle errors are
// logged and never stop the loop. Because Listener only sees channels it can
// be driven by tests without fsnotify.
//
// Event mapping
//
//   - fsnotify.Create → OpCreate (new file renamed into place)
//   - fsnotify.Write  → OpModify
//   - fsnotify.Remove → OpDelete
//   - fsnotify.Rename → OpDelete (the replacement arrives as a Create)
//   - fsnotify.Chmod  → ignored
//
// Only OpCreate and OpModify reach Handle. A missed event is harmless for
// callers that do a final sync after the editor exits; an extra event only
// costs a re-validation.
package watch

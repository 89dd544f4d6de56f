package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventOp represents the type of file system operation.
type EventOp int

const (
	// OpCreate indicates the file was created or renamed into place.
	OpCreate EventOp = iota
	// OpModify indicates the file's content was written.
	OpModify
	// OpDelete indicates the file was removed or renamed away.
	OpDelete
)

// String returns a human-readable representation of the operation.
func (op EventOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ChangeEvent is a filesystem event for the watched file.
type ChangeEvent struct {
	// Path is the watched file's path.
	Path string
	// Op is the operation that occurred.
	Op EventOp
}

// Changed reports whether the event may carry new content.
func (e ChangeEvent) Changed() bool {
	return e.Op == OpCreate || e.Op == OpModify
}

// Watcher watches a single file for changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan ChangeEvent
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	stopped bool
	path    string
}

// NewWatcher creates a new Watcher instance.
// The watcher must be started with Start() before it will emit events.
func NewWatcher() (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: watcher,
		events:  make(chan ChangeEvent, 100),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching path.
func (w *Watcher) Start(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}
	if w.running {
		return fmt.Errorf("watcher already running")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	dir := filepath.Dir(absPath)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.path = absPath
	w.running = true
	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop stops watching and releases the fsnotify watcher. It blocks until the
// event goroutine has exited, then closes the Events and Errors channels.
// Calling Stop more than once is safe.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	w.running = false
	w.mu.Unlock()

	// Signal shutdown
	close(w.done)

	// Close the underlying watcher (this will unblock the event loop)
	closeErr := w.watcher.Close()

	// Wait for event processing to finish
	w.wg.Wait()

	close(w.events)
	close(w.errors)

	if closeErr != nil {
		return fmt.Errorf("failed to close watcher: %w", closeErr)
	}
	return nil
}

// Events returns the channel that emits ChangeEvent notifications.
// This channel is closed when the watcher is stopped.
func (w *Watcher) Events() <-chan ChangeEvent {
	return w.events
}

// Errors returns the channel that emits watcher errors.
// This channel is closed when the watcher is stopped.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// IsRunning returns true if the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// processEvents forwards fsnotify events for the watched file.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if changeEvent, ok := w.convertEvent(event); ok {
				select {
				case w.events <- changeEvent:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// convertEvent maps an fsnotify event to a ChangeEvent. Events for other
// files in the directory and chmod-only events are dropped.
func (w *Watcher) convertEvent(event fsnotify.Event) (ChangeEvent, bool) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.path {
		return ChangeEvent{}, false
	}

	var op EventOp
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = OpDelete
	default:
		return ChangeEvent{}, false
	}

	return ChangeEvent{Path: w.path, Op: op}, true
}

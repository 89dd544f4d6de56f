package watch

import (
	"context"
	"io"
	"log"
)

// Listener handles debounced change events until its context ends.
type Listener struct {
	// Debouncer filters bursts. Nil means a Debouncer with DefaultQuantum.
	Debouncer *Debouncer

	// Handle is called for each accepted change, one call at a time.
	Handle func(ChangeEvent) error

	// Logger receives handle and watcher errors. Nil discards them.
	Logger *log.Logger
}

// Run consumes events and errs until ctx is done or events is closed.
// Errors from Handle and from errs are logged and otherwise ignored.
func (l *Listener) Run(ctx context.Context, events <-chan ChangeEvent, errs <-chan error) {
	debouncer := l.Debouncer
	if debouncer == nil {
		debouncer = NewDebouncer(DefaultQuantum)
	}
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !event.Changed() {
				continue
			}
			if !debouncer.Allow() {
				continue
			}
			if l.Handle == nil {
				continue
			}
			if err := l.Handle(event); err != nil {
				logger.Printf("Error syncing %s: %v", event.Path, err)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Printf("Watch error: %v", err)
		}
	}
}

// Package session runs one edit of a commented/canonical JSON file pair.
//
// A session decides which file is authoritative (Classify), copies that
// content into a private scratch file, hands the scratch file to the editor
// and, once the editor exits, syncs the result into both files. While the
// editor is open a watcher can sync every save as it happens.
//
// The scratch file is the only source of truth during a session. The two
// real files are written solely through the Syncer, which validates first,
// so an invalid edit never replaces the last good state.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mschirtzinger/jce/internal/paths"
	"github.com/mschirtzinger/jce/internal/sync"
	"github.com/mschirtzinger/jce/internal/watch"
	"golang.org/x/sync/errgroup"
)

// Editor opens a file for the user and blocks until they are done.
// *editor.Editor implements it.
type Editor interface {
	Edit(ctx context.Context, path string) error
}

// Options configures a Session.
type Options struct {
	// Editor is required.
	Editor Editor

	// Syncer writes the file pair. Nil means sync.New(Logger).
	Syncer sync.Syncer

	// Watch enables live sync while the editor is open.
	Watch bool

	// Debounce is the minimum spacing between live syncs.
	Debounce time.Duration

	// TemplatePath seeds new documents; empty means DefaultTemplate.
	TemplatePath string

	// ScratchDir is where the scratch directory is created; empty means
	// the system temp directory.
	ScratchDir string

	// Logger receives progress lines. Nil discards them.
	Logger *log.Logger

	// WarnLogger receives live-sync failures. Nil means Logger.
	WarnLogger *log.Logger
}

// Result describes a session that ended without error.
type Result struct {
	Pair    paths.FilePair
	Origin  Origin
	Outcome Outcome
}

// Session is a single edit of one file pair. It is not reusable.
type Session struct {
	pair paths.FilePair
	opts Options

	state       State
	scratchDir  string
	scratchPath string
	staged      string
	stagedMod   time.Time
}

// New creates a session for pair.
func New(pair paths.FilePair, opts Options) (*Session, error) {
	if opts.Editor == nil {
		return nil, fmt.Errorf("editor cannot be nil")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.WarnLogger == nil {
		opts.WarnLogger = opts.Logger
	}
	if opts.Syncer == nil {
		opts.Syncer = sync.New(opts.Logger)
	}

	return &Session{
		pair:  pair,
		opts:  opts,
		state: StateResolvingInitialState,
	}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Run executes the session and blocks until the editor has exited and the
// final sync is done.
func (s *Session) Run(ctx context.Context) (Result, error) {
	result := Result{Pair: s.pair}

	// Resolve
	origin, err := Classify(s.pair)
	if err != nil {
		if errors.Is(err, ErrAmbiguousCollision) {
			return result, s.abort(StateAbortedCollision, err)
		}
		return result, s.abort(StateFailed, err)
	}
	result.Origin = origin

	// Stage
	s.transition(StateStaging)
	content, err := s.initialContent(origin)
	if err != nil {
		return result, s.abort(StateFailed, err)
	}
	if err := s.stage(content, origin == OriginTemplate); err != nil {
		return result, s.abort(StateFailed, err)
	}
	defer s.cleanup()

	// Edit
	s.transition(StateEditing)
	if err := s.edit(ctx); err != nil {
		return result, s.abort(StateFailed, err)
	}

	// Finalize
	s.transition(StateFinalizing)
	if origin == OriginTemplate {
		unchanged, err := s.scratchUnchanged()
		if err != nil {
			return result, s.abort(StateFailed, err)
		}
		if unchanged {
			s.opts.Logger.Printf("%s was not saved, nothing created", s.pair.Commented)
			s.transition(StateAbortedUnsaved)
			result.Outcome = OutcomeAbandoned
			return result, nil
		}
	}

	if err := s.opts.Syncer.SyncFile(ctx, s.scratchPath, s.pair); err != nil {
		return result, s.abort(StateFailed, err)
	}

	s.transition(StateDone)
	if origin == OriginTemplate {
		result.Outcome = OutcomeCreated
	} else {
		result.Outcome = OutcomeSaved
	}
	return result, nil
}

// initialContent loads the authoritative text for origin.
func (s *Session) initialContent(origin Origin) (string, error) {
	switch origin {
	case OriginCommented:
		return readFile(s.pair.Commented)
	case OriginCanonical:
		s.opts.Logger.Printf("Creating %s from %s", s.pair.Commented, s.pair.Canonical)
		return readFile(s.pair.Canonical)
	default:
		return LoadTemplate(s.opts.TemplatePath)
	}
}

// stage writes content to a fresh scratch file. For new documents the
// scratch file's modification time is recorded to detect an unsaved exit.
func (s *Session) stage(content string, recordMod bool) error {
	dir, err := os.MkdirTemp(s.opts.ScratchDir, "jce-")
	if err != nil {
		return fmt.Errorf("%w: failed to create scratch directory: %w", sync.ErrIO, err)
	}
	s.scratchDir = dir
	s.scratchPath = filepath.Join(dir, filepath.Base(s.pair.Commented))
	s.staged = content

	if err := os.WriteFile(s.scratchPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("%w: failed to write scratch file: %w", sync.ErrIO, err)
	}

	if recordMod {
		info, err := os.Stat(s.scratchPath)
		if err != nil {
			return fmt.Errorf("%w: %w", sync.ErrIO, err)
		}
		s.stagedMod = info.ModTime()
	}

	s.opts.Logger.Printf("Staged %s", s.scratchPath)
	return nil
}

// edit runs the editor, with a live-sync listener alongside when enabled.
// The listener is fully stopped before edit returns.
func (s *Session) edit(ctx context.Context) error {
	if !s.opts.Watch {
		return s.opts.Editor.Edit(ctx, s.scratchPath)
	}

	watcher, err := watch.NewWatcher()
	if err == nil {
		if err = watcher.Start(s.scratchPath); err != nil {
			watcher.Stop()
		}
	}
	if err != nil {
		// Live sync is optional; the final sync still happens.
		s.opts.WarnLogger.Printf("Live sync disabled: %v", err)
		return s.opts.Editor.Edit(ctx, s.scratchPath)
	}
	defer watcher.Stop()

	listenCtx, stopListening := context.WithCancel(ctx)
	defer stopListening()

	listener := &watch.Listener{
		Debouncer: watch.NewDebouncer(s.opts.Debounce),
		Handle: func(watch.ChangeEvent) error {
			return s.opts.Syncer.SyncFile(listenCtx, s.scratchPath, s.pair)
		},
		Logger: s.opts.WarnLogger,
	}

	var g errgroup.Group
	g.Go(func() error {
		listener.Run(listenCtx, watcher.Events(), watcher.Errors())
		return nil
	})
	g.Go(func() error {
		defer stopListening()
		return s.opts.Editor.Edit(ctx, s.scratchPath)
	})

	// Wait covers an in-flight live sync, so the final sync never overlaps it.
	return g.Wait()
}

// scratchUnchanged reports whether the scratch file still has its staged
// modification time and content.
func (s *Session) scratchUnchanged() (bool, error) {
	info, err := os.Stat(s.scratchPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", sync.ErrIO, err)
	}
	if !info.ModTime().Equal(s.stagedMod) {
		return false, nil
	}

	// Same timestamp; make sure a fast write did not land inside the
	// filesystem's timestamp granularity.
	content, err := readFile(s.scratchPath)
	if err != nil {
		return false, err
	}
	return content == s.staged, nil
}

func (s *Session) cleanup() {
	if s.scratchDir == "" {
		return
	}
	if err := os.RemoveAll(s.scratchDir); err != nil {
		s.opts.WarnLogger.Printf("Failed to remove scratch directory %s: %v", s.scratchDir, err)
	}
}

func (s *Session) transition(next State) {
	s.opts.Logger.Printf("State: %s -> %s", s.state, next)
	s.state = next
}

func (s *Session) abort(terminal State, err error) error {
	s.transition(terminal)
	return err
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sync.ErrIO, err)
	}
	return string(data), nil
}

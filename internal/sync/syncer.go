package sync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mschirtzinger/jce/internal/jsonc"
	"github.com/mschirtzinger/jce/internal/paths"
)

// Config holds configuration for a Syncer.
type Config struct {
	// ReadTimeout bounds how long SyncFile keeps retrying a failing read.
	ReadTimeout time.Duration

	// ReadInterval is the pause between read attempts.
	ReadInterval time.Duration

	// Logger receives one line per successful sync.
	Logger *log.Logger
}

// DefaultConfig returns the defaults used by New.
func DefaultConfig() *Config {
	return &Config{
		ReadTimeout:  500 * time.Millisecond,
		ReadInterval: 50 * time.Millisecond,
		Logger:       log.New(os.Stderr, "[sync] ", log.LstdFlags),
	}
}

// syncer implements the Syncer interface.
type syncer struct {
	config *Config
}

// New creates a Syncer with default timing.
//
// If logger is nil, a default logger writing to stderr is used.
func New(logger *log.Logger) Syncer {
	config := DefaultConfig()
	if logger != nil {
		config.Logger = logger
	}
	return NewWithConfig(config)
}

// NewWithConfig creates a Syncer with custom configuration. Zero fields fall
// back to DefaultConfig values.
func NewWithConfig(config *Config) Syncer {
	defaults := DefaultConfig()
	if config == nil {
		config = defaults
	}
	c := *config
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.ReadInterval <= 0 {
		c.ReadInterval = defaults.ReadInterval
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	return &syncer{config: &c}
}

// Sync implements Syncer.Sync.
func (s *syncer) Sync(raw string, pair paths.FilePair) error {
	value, err := jsonc.Decode(raw)
	if err != nil {
		return err
	}

	pretty, err := jsonc.Format(value)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(pair.Commented, []byte(raw), newFileMode(pair.Canonical)); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, pair.Commented, err)
	}

	if err := writeFileAtomic(pair.Canonical, pretty, newFileMode(pair.Commented)); err != nil {
		return fmt.Errorf("%w: failed to write %s (commented file already updated): %w", ErrIO, pair.Canonical, err)
	}

	s.config.Logger.Printf("Synced %s (%s) and %s", pair.Canonical, humanize.Bytes(uint64(len(pretty))), pair.Commented)
	return nil
}

// SyncFile implements Syncer.SyncFile.
func (s *syncer) SyncFile(ctx context.Context, path string, pair paths.FilePair) error {
	raw, err := ReadWithRetry(ctx, path, s.config.ReadTimeout, s.config.ReadInterval)
	if err != nil {
		return err
	}
	return s.Sync(raw, pair)
}

// writeFileAtomic writes data next to path and renames it into place.
// Symlinks are followed, so the link stays and its target is replaced.
// An existing file keeps its permission bits; a new one gets perm.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	target, err := resolveLink(path)
	if err != nil {
		return err
	}
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// resolveLink returns the file a write to path should replace. For a
// dangling symlink that is the link's destination.
func resolveLink(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err == nil {
		return target, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	dest, err := os.Readlink(path)
	if err != nil {
		// Not a symlink; the file does not exist yet.
		return path, nil
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return dest, nil
}

// newFileMode is the mode for a file of the pair that does not exist yet:
// its partner's mode if the partner exists, otherwise 0666 less the umask.
func newFileMode(partner string) os.FileMode {
	if info, err := os.Stat(partner); err == nil {
		return info.Mode().Perm()
	}
	return 0666 &^ processUmask
}

package sync

import (
	"context"
	"fmt"
	"os"
	"time"
)

// ReadWithRetry reads path, retrying every interval until it succeeds or
// timeout has elapsed since the first attempt. Editors that save by
// truncating or renaming can make the file briefly unreadable.
//
// The returned error wraps ErrIO and the last read error.
func ReadWithRetry(ctx context.Context, path string, timeout, interval time.Duration) (string, error) {
	start := time.Now()

	for {
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}

		if time.Since(start) >= timeout {
			return "", fmt.Errorf("%w: failed to read %s after %v: %w", ErrIO, path, timeout, err)
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: read of %s cancelled: %w", ErrIO, path, ctx.Err())
		case <-time.After(interval):
		}
	}
}

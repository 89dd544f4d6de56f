package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mschirtzinger/jce/internal/paths"
	"github.com/mschirtzinger/jce/internal/sync"
)

// Classify decides which file is authoritative for pair.
//
//	canonical  commented  result
//	yes        yes        OriginCommented
//	yes        no         OriginCanonical
//	no         yes        ErrAmbiguousCollision
//	no         no         OriginTemplate
//
// It returns ErrNotFound when a new document could not be created where
// pair.Canonical points.
func Classify(pair paths.FilePair) (Origin, error) {
	canonical, err := regularFileExists(pair.Canonical)
	if err != nil {
		return 0, err
	}
	commented, err := regularFileExists(pair.Commented)
	if err != nil {
		return 0, err
	}

	switch {
	case canonical && commented:
		return OriginCommented, nil
	case canonical:
		return OriginCanonical, nil
	case commented:
		return 0, fmt.Errorf("%w: %s exists but %s does not; refusing to guess which is intended",
			ErrAmbiguousCollision, pair.Commented, pair.Canonical)
	}

	dir := filepath.Dir(pair.Canonical)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("%w: directory %s does not exist", ErrNotFound, dir)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", sync.ErrIO, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	return OriginTemplate, nil
}

func regularFileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", sync.ErrIO, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	return true, nil
}

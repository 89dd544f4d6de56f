//go:build unix

package sync

import (
	"os"

	"golang.org/x/sys/unix"
)

// processUmask is read once at startup. unix.Umask can only read the mask by
// setting it, so it is not called again while other goroutines create files.
var processUmask = readUmask()

func readUmask() os.FileMode {
	old := unix.Umask(0)
	unix.Umask(old)
	return os.FileMode(old) & os.ModePerm
}

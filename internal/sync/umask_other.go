//go:build !unix

package sync

import "os"

var processUmask os.FileMode = 0022

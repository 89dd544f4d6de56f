// Package logging builds the component loggers for a jce run.
//
// Informational lines ("Synced ...") go to the log file when one is
// configured and to stderr only in verbose mode, so they do not scribble over
// a terminal editor. Warnings and errors always reach stderr as well.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes.
type Options struct {
	// File, when set, receives every log line. It is rotated at 10 MB.
	File string

	// Verbose copies informational lines to Stderr.
	Verbose bool

	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Sink hands out loggers that share the configured outputs.
type Sink struct {
	info  io.Writer
	warn  io.Writer
	file  *lumberjack.Logger
	flags int
}

// New creates a Sink for opts.
func New(opts Options) *Sink {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	s := &Sink{flags: log.LstdFlags}

	var info, warn []io.Writer
	if opts.File != "" {
		s.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		info = append(info, s.file)
		warn = append(warn, s.file)
	}
	if opts.Verbose {
		info = append(info, stderr)
	}
	warn = append(warn, stderr)

	s.info = combine(info)
	s.warn = combine(warn)
	return s
}

// Logger returns an informational logger with a "[component] " prefix.
func (s *Sink) Logger(component string) *log.Logger {
	return log.New(s.info, "["+component+"] ", s.flags)
}

// WarnLogger returns a logger for problems the user should see, such as a
// failed live sync.
func (s *Sink) WarnLogger(component string) *log.Logger {
	return log.New(s.warn, "["+component+"] ", s.flags)
}

// Close flushes and closes the log file, if any.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

func combine(writers []io.Writer) io.Writer {
	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

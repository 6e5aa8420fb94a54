// Package logging builds the structured loggers used by the snake commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger.
type Options struct {
	// Prefix is prepended to every line, e.g. "snake-ssh".
	Prefix string

	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// File is a log file path. Empty disables file logging.
	// The file is rotated at 10MB keeping 3 backups for 7 days.
	File string

	// Console writes to stderr in addition to the file.
	// play runs in the alternate screen and leaves this off.
	Console bool
}

// Logger is a charmbracelet logger that owns its file sink.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New creates a logger. With neither a file nor the console enabled,
// everything is discarded.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		writers []io.Writer
		file    *lumberjack.Logger
	)
	if opts.Console {
		writers = append(writers, os.Stderr)
	}
	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		writers = append(writers, file)
	}

	var w io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return &Logger{Logger: l, file: file}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Package logging builds the application's zerolog loggers.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects log level, format and optional file output.
type Config struct {
	Level  string
	Format string
	File   string
}

// Setup is an initialized logger plus the file handle to close on
// shutdown when file output is enabled.
type Setup struct {
	Logger zerolog.Logger

	file *os.File
}

// New builds the root logger from cfg. Unknown levels fall back to
// info. When cfg.File is set the log stream is written both to stderr
// and the file; a file that cannot be opened degrades to console-only
// rather than failing startup.
func New(cfg Config) *Setup {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var console io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	if cfg.Format == "json" {
		console = os.Stderr
	}

	s := &Setup{}
	writers := []io.Writer{console}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err == nil {
			s.file = file
			writers = append(writers, file)
		}
	}

	s.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return s
}

// Close releases the log file handle, if any.
func (s *Setup) Close() error {
	if s.file == nil {
		return nil
	}
	file := s.file
	s.file = nil
	return file.Close()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

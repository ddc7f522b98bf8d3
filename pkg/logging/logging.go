// Package logging sets up the diagnostic file logger. Console output is
// the UI's job; the log file exists so failed requests and capture errors
// can be inspected after the fact.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/finmindlabs/finmind/pkg/config"
)

// Setup opens <config-dir>/finmind.log and returns a logger writing to it.
// If the file cannot be opened the logger is disabled rather than failing
// the command.
func Setup(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return zerolog.Nop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(filepath.Join(dir, "finmind.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop()
	}

	return zerolog.New(f).Level(lvl).With().Timestamp().Logger()
}

// Package logging builds the structured logger shared by every entry point.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/warpfield/internal/config"
)

const Prefix = "warpfield"

// New returns a logger configured from s. Output goes to s.LogFile when set,
// otherwise to fallback. The returned closer releases the log file and is
// never nil.
func New(s config.Settings, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nopCloser{}, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

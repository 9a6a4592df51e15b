package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger from the global flags. It writes to w, and
// also to --log-file when set, so startup failures always reach the
// terminal. gameOut is where logs should go while the game owns the
// screen: the log file, or nowhere. The returned close func releases the
// log file, if any.
func newLogger(w io.Writer) (logger *log.Logger, gameOut io.Writer, closeFn func() error, err error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, gameOut := w, io.Discard
	closeFn = func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, gameOut = io.MultiWriter(w, f), f
		closeFn = f.Close
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, gameOut, closeFn, nil
}

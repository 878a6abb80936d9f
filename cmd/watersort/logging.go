package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

func parseLogLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid --log-level: %w", err)
	}
	return level, nil
}

// newLogger returns a logger writing to --log-file, or one that discards
// when no file is given. The returned close func is never nil.
func newLogger(prefix string) (*log.Logger, func() error, error) {
	level, err := parseLogLevel()
	if err != nil {
		return nil, nil, err
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, f.Close, nil
}

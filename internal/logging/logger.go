// Package logging owns the logger behind the dataset file helpers.
//
// DATASET_DEBUG picks the verbosity at start-up: 0 error, 1 warn, 2 info,
// 3 debug. Unset or unrecognised values keep warn, so loads and stores stay
// quiet unless asked.
package logging

import (
	"log/slog"
	"os"
	"strconv"
)

// levels is indexed by the DATASET_DEBUG value.
var levels = [...]slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}

var (
	logLevel = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
)

func init() {
	logLevel.Set(parseLogLevel(os.Getenv("DATASET_DEBUG")))
}

// Logger is used whenever a call does not bring its own through IOOpt.
func Logger() *slog.Logger { return logger }

// SetLogLevel changes the verbosity for every later record.
func SetLogLevel(level slog.Level) { logLevel.Set(level) }

func parseLogLevel(v string) slog.Level {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n >= len(levels) {
		return slog.LevelWarn
	}
	return levels[n]
}

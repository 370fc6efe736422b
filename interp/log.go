package interp

import (
	"log/slog"
	"os"
)

// logger traces block entry/exit and operator dispatch decisions at
// slog.LevelDebug, gated by the PYTH_DEBUG environment variable so a
// normal run pays nothing for it.
var logger = newLogger()

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("PYTH_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

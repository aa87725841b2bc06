package logging

import (
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures the CLI logger.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// NoColor disables ANSI colours, e.g. when stderr is not a terminal.
	NoColor bool
}

// Setup installs a tint handler writing to w as the default slog logger and
// returns it. Module source goes to stdout, so w is normally stderr.
func Setup(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}))
	slog.SetDefault(logger)

	// some deps still use the standard logger
	lw := &slogWriter{logger: logger}
	log.SetFlags(0)
	log.SetOutput(lw)
	return logger
}

// Package logging builds the leveled console logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"taskline/internal/config"
)

// Options holds logger construction settings derived from config.
type Options struct {
	Level   log.Level
	Format  log.Formatter
	NoColor bool
	Prefix  string
}

// OptionsFromConfig maps config strings onto logger options. Unknown level
// or format strings fall back to the defaults rather than erroring; the
// logger is ambient plumbing and must not block startup.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Level:   log.WarnLevel,
		Format:  log.TextFormatter,
		NoColor: cfg.NoColor,
		Prefix:  "taskline",
	}

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		opts.Level = lvl
	}

	switch cfg.LogFormat {
	case "json":
		opts.Format = log.JSONFormatter
	case "logfmt":
		opts.Format = log.LogfmtFormatter
	}

	return opts
}

// New creates a console logger writing to w with the given options.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Format,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          opts.Prefix,
	})
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

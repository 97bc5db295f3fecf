package config

import "flag"

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskline", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Path to the task file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")

	return fs.Parse(args)
}

package config

// Default values.
const (
	DefaultTasksFile = "tasks.txt"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for taskline.
type Config struct {
	// TasksFile is the path to the task file. Relative paths are resolved
	// against the working directory, matching the classic tasks.txt layout.
	TasksFile string `toml:"tasks_file"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	NoColor   bool   `toml:"no_color"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.NoColor = false
}

package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Taskline configuration file
# Values can be overridden by environment variables or CLI flags

# Task file (relative paths resolve against the working directory)
tasks_file = "tasks.txt"

# Log level: debug, info, warn, error
log_level = "warn"

# Log format: text, json, logfmt
log_format = "text"

# Disable colored log output
no_color = false
`
}

// Package cmd implements the CLI command structure for taskline.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"taskline/internal/config"
	"taskline/internal/logging"
	"taskline/internal/menu"
	"taskline/internal/todo"
	"taskline/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskline CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskline", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	logger := logging.New(os.Stderr, logging.OptionsFromConfig(cfg))

	// No subcommand starts the interactive menu.
	subcommand := "menu"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "menu":
		return menuCommand(ctx, cfg, logger, remaining)
	case "ls":
		return lsCommand(cfg, remaining, os.Stdout)
	case "add":
		return addCommand(cfg, logger, remaining, os.Stdout)
	case "rm":
		return rmCommand(cfg, logger, remaining, os.Stdout)
	case "tui":
		return tuiCommand(ctx, cfg, remaining)
	case "doctor":
		return doctorCommand(cfg, remaining, os.Stdout)
	case "config":
		return configCommand(remaining, os.Stdout)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// resolveTasksFile applies an optional positional file argument over the
// configured tasks file.
func resolveTasksFile(cfg *config.Config, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return cfg.TasksFile, nil
}

// menuCommand runs the interactive session (default command).
func menuCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline menu", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := resolveTasksFile(cfg, fs.Args())
	if err != nil {
		return err
	}

	session := menu.NewSession(todo.NewStore(path), os.Stdin, os.Stdout, logger)
	return session.Run(ctx)
}

// lsCommand prints the task list and exits.
func lsCommand(cfg *config.Config, args []string, out io.Writer) error {
	path, err := resolveTasksFile(cfg, args)
	if err != nil {
		return err
	}

	tasks, err := todo.NewStore(path).Load()
	if err != nil {
		return err
	}
	for _, line := range tasks.Render() {
		fmt.Fprintln(out, line)
	}
	return nil
}

// addCommand appends one task from the command line.
func addCommand(cfg *config.Config, logger *log.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: taskline add <text>")
	}
	text := strings.Join(args, " ")

	store := todo.NewStore(cfg.TasksFile)
	tasks, err := store.Load()
	if err != nil {
		return err
	}
	tasks = tasks.Add(text)
	if err := store.Save(tasks); err != nil {
		return err
	}

	logger.Debug("added task", "total", len(tasks))
	fmt.Fprintln(out, menu.MsgAdded)
	return nil
}

// rmCommand deletes one task by its 1-based position.
func rmCommand(cfg *config.Config, logger *log.Logger, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: taskline rm <number>")
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task number: %q", args[0])
	}

	store := todo.NewStore(cfg.TasksFile)
	tasks, err := store.Load()
	if err != nil {
		return err
	}
	updated, ok := tasks.Delete(num - 1)
	if !ok {
		return fmt.Errorf("no task at position %d", num)
	}
	if err := store.Save(updated); err != nil {
		return err
	}

	logger.Debug("deleted task", "position", num, "remaining", len(updated))
	fmt.Fprintln(out, menu.MsgDeleted)
	return nil
}

// tuiCommand launches the full-screen interface.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskline tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := resolveTasksFile(cfg, fs.Args())
	if err != nil {
		return err
	}

	return ui.RunTUI(ctx, todo.NewStore(path))
}

// doctorCommand checks the resolved config and task file.
func doctorCommand(cfg *config.Config, args []string, out io.Writer) error {
	path, err := resolveTasksFile(cfg, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Taskline Doctor")
	fmt.Fprintln(out, "===============")
	fmt.Fprintln(out)

	allOK := true

	fmt.Fprintln(out, "Config:")
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
		fmt.Fprintf(out, "  ✅ Log format: %s\n", cfg.LogFormat)
	default:
		fmt.Fprintf(out, "  ❌ Log format: %s (expected text|json|logfmt)\n", cfg.LogFormat)
		allOK = false
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		fmt.Fprintf(out, "  ✅ Log level: %s\n", cfg.LogLevel)
	default:
		fmt.Fprintf(out, "  ❌ Log level: %s (expected debug|info|warn|error)\n", cfg.LogLevel)
		allOK = false
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Tasks file: %s\n", path)
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		fmt.Fprintf(out, "  ❌ Directory: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(out, "  ✅ Directory: %s\n", dir)
	}

	tasks, err := todo.NewStore(path).Load()
	switch {
	case err != nil:
		fmt.Fprintf(out, "  ❌ Error: %v\n", err)
		allOK = false
	case len(tasks) == 0:
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			fmt.Fprintln(out, "  ✅ Not created yet (written on first save)")
		} else {
			fmt.Fprintln(out, "  ✅ Empty")
		}
	default:
		fmt.Fprintf(out, "  ✅ %d task(s)\n", len(tasks))
	}
	fmt.Fprintln(out)

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

// configCommand manages config files: `init` writes a commented example,
// `example` prints it.
func configCommand(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: taskline config <init|example>")
	}

	switch args[0] {
	case "example":
		fmt.Fprint(out, config.ExampleConfig())
		return nil
	case "init":
		const path = "taskline.toml"
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s", args[0])
	}
}

func versionCommand(out io.Writer) error {
	fmt.Fprintf(out, "taskline version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskline - A plain-text to-do list manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskline [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  menu [file]   Interactive session (default command)")
	fmt.Fprintln(w, "  ls [file]     Print the task list")
	fmt.Fprintln(w, "  add <text>    Add a task")
	fmt.Fprintln(w, "  rm <number>   Delete the task at a 1-based position")
	fmt.Fprintln(w, "  tui [file]    Launch terminal UI")
	fmt.Fprintln(w, "  doctor [file] Check config and task file")
	fmt.Fprintln(w, "  config init   Write an example config file")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

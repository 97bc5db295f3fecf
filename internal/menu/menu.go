// Package menu implements the interactive task session.
//
// The session is a blocking read-eval-print loop with a single state:
// awaiting a menu choice. Every action reloads the list from the store,
// applies one mutation, and saves it back, so nothing is cached across
// iterations.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"taskline/internal/todo"
)

// User-facing messages. Tests assert on these exact strings.
const (
	MsgAdded           = "Added task."
	MsgDeleted         = "Deleted task."
	MsgNoTasksToDelete = "No tasks to delete."
	MsgInvalidNumber   = "Invalid task number."
	MsgInvalidInput    = "Invalid input, enter a number."
	MsgInvalidChoice   = "Invalid choice, try again."
	MsgFarewell        = "Bye."

	promptChoice = "Choose an option: "
	promptTask   = "New task: "
	promptNumber = "Task number to delete: "
)

// Session runs the interactive menu against a store. Input and output are
// injected so tests can script a whole session.
type Session struct {
	store  *todo.Store
	in     *bufio.Scanner
	lines  chan string
	out    io.Writer
	logger *log.Logger
}

// NewSession creates a session reading choices from in and writing all
// prompts and results to out.
func NewSession(store *todo.Store, in io.Reader, out io.Writer, logger *log.Logger) *Session {
	return &Session{
		store:  store,
		in:     bufio.NewScanner(in),
		lines:  make(chan string),
		out:    out,
		logger: logger,
	}
}

// Run drives the menu loop until the user quits, input ends, the context
// is cancelled, or a store operation fails. Recoverable conditions (bad
// choice, bad number, empty list) are reported to the user and never end
// the loop.
//
// Input is read on a separate goroutine so that cancellation (Ctrl-C in
// main) interrupts the session even while it is blocked waiting for a
// line.
func (s *Session) Run(ctx context.Context) error {
	go func() {
		defer close(s.lines)
		for s.in.Scan() {
			select {
			case s.lines <- s.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, ok := s.readLine(ctx, promptChoice)
		if !ok {
			return s.finish(ctx)
		}

		switch choice {
		case "1":
			if err := s.addTask(ctx); err != nil {
				return err
			}
		case "2":
			if err := s.listTasks(); err != nil {
				return err
			}
		case "3":
			if err := s.deleteTask(ctx); err != nil {
				return err
			}
		case "4":
			fmt.Fprintln(s.out, MsgFarewell)
			return nil
		default:
			s.logger.Debug("unrecognized menu choice", "choice", choice)
			fmt.Fprintln(s.out, MsgInvalidChoice)
		}
	}
}

// finish ends a session whose input stopped: cancellation propagates the
// context error, EOF behaves like Quit so piped input ends cleanly.
func (s *Session) finish(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, MsgFarewell)
	return s.in.Err()
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, "\nTaskline\n")
	fmt.Fprintln(s.out, "  1) Add a task")
	fmt.Fprintln(s.out, "  2) List tasks")
	fmt.Fprintln(s.out, "  3) Delete a task")
	fmt.Fprintln(s.out, "  4) Quit")
}

// readLine prompts and reads one input line, trimmed of surrounding
// whitespace. ok is false when input is exhausted or the context is
// cancelled.
func (s *Session) readLine(ctx context.Context, prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

func (s *Session) addTask(ctx context.Context) error {
	task, ok := s.readLine(ctx, promptTask)
	if !ok {
		return s.finish(ctx)
	}

	tasks, err := s.store.Load()
	if err != nil {
		return err
	}
	tasks = tasks.Add(task)
	if err := s.store.Save(tasks); err != nil {
		return err
	}

	s.logger.Debug("added task", "total", len(tasks))
	fmt.Fprintln(s.out, MsgAdded)
	return nil
}

func (s *Session) listTasks() error {
	tasks, err := s.store.Load()
	if err != nil {
		return err
	}

	s.logger.Debug("loaded tasks", "count", len(tasks))
	for _, line := range tasks.Render() {
		fmt.Fprintln(s.out, line)
	}
	return nil
}

func (s *Session) deleteTask(ctx context.Context) error {
	tasks, err := s.store.Load()
	if err != nil {
		return err
	}

	for _, line := range tasks.Render() {
		fmt.Fprintln(s.out, line)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, MsgNoTasksToDelete)
		return nil
	}

	input, ok := s.readLine(ctx, promptNumber)
	if !ok {
		return s.finish(ctx)
	}

	num, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(s.out, MsgInvalidInput)
		return nil
	}

	// Users count from 1, the list counts from 0.
	updated, ok := tasks.Delete(num - 1)
	if !ok {
		fmt.Fprintln(s.out, MsgInvalidNumber)
		return nil
	}

	if err := s.store.Save(updated); err != nil {
		return err
	}

	s.logger.Debug("deleted task", "position", num, "remaining", len(updated))
	fmt.Fprintln(s.out, MsgDeleted)
	return nil
}

// Package ui provides the optional full-screen terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskline/internal/todo"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RunTUI starts the full-screen interface over the given store.
func RunTUI(ctx context.Context, store *todo.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	program := tea.NewProgram(newModel(store), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*model); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

type tickMsg time.Time

// model holds TUI state. The task slice is only ever a snapshot of the
// file: every mutation goes load-mutate-save through the store, and the
// tick re-reads the file so edits from another session show up.
type model struct {
	store        *todo.Store
	tasks        todo.List
	cursor       int
	adding       bool
	input        textinput.Model
	status       string
	fatal        error
	tickInterval time.Duration
}

func newModel(store *todo.Store) *model {
	input := textinput.New()
	input.Placeholder = "task text"
	input.CharLimit = 256

	return &model{
		store:        store,
		input:        input,
		tickInterval: time.Second,
	}
}

func (m *model) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "a":
		m.adding = true
		m.status = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	case "d", "x":
		m.deleteCurrent()
	case "r", "f5":
		m.refresh()
		m.status = ""
	}
	return m, nil
}

func (m *model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.adding = false
		m.input.Blur()
		m.addTask(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addTask appends text through the store: reload first so tasks added by
// another session are not overwritten.
func (m *model) addTask(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		m.status = "Nothing to add."
		return
	}

	tasks, err := m.store.Load()
	if err != nil {
		m.fatal = err
		return
	}
	if err := m.store.Save(tasks.Add(text)); err != nil {
		m.fatal = err
		return
	}

	m.status = "Added task."
	m.refresh()
}

func (m *model) deleteCurrent() {
	tasks, err := m.store.Load()
	if err != nil {
		m.fatal = err
		return
	}

	updated, ok := tasks.Delete(m.cursor)
	if !ok {
		m.status = "Nothing to delete."
		return
	}
	if err := m.store.Save(updated); err != nil {
		m.fatal = err
		return
	}

	m.status = "Deleted task."
	m.refresh()
}

func (m *model) refresh() {
	if m.fatal != nil {
		return
	}

	tasks, err := m.store.Load()
	if err != nil {
		m.fatal = err
		return
	}
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) View() string {
	if m.fatal != nil {
		return errStyle.Render("Error: "+m.fatal.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Taskline") + "\n")
	b.WriteString(dimStyle.Render(m.store.Path) + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render(todo.EmptyMessage) + "\n")
	}
	for i, task := range m.tasks {
		line := fmt.Sprintf("%d. %s", i+1, task)
		if i == m.cursor && !m.adding {
			b.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString("Add: " + m.input.View() + "\n")
		b.WriteString(dimStyle.Render("enter to save, esc to cancel") + "\n")
		return b.String()
	}

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(dimStyle.Render("a add | d delete | r refresh | q quit") + "\n")
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

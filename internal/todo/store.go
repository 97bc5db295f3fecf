package todo

import (
	"fmt"
	"os"
	"strings"
)

// Store reads and writes the task list at a fixed path. It is the only
// component that touches the file; callers reload through it before every
// mutation instead of holding a cached copy.
type Store struct {
	Path string
}

// NewStore creates a store for the task file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the task file and returns its tasks in file order, with
// surrounding whitespace trimmed from each line. A missing file is not an
// error and yields an empty list.
func (s *Store) Load() (List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return List{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if len(data) == 0 {
		return List{}, nil
	}

	// A lone newline is one (empty) task, not an empty file: a saved
	// empty task must survive the round trip.
	raw := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	tasks := make(List, len(raw))
	for i, line := range raw {
		tasks[i] = strings.TrimSpace(line)
	}
	return tasks, nil
}

// Save replaces the task file with the given list, one task per line.
// The write truncates prior content; there is no append mode.
func (s *Store) Save(tasks List) error {
	var b strings.Builder
	for _, task := range tasks {
		b.WriteString(task)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.Path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

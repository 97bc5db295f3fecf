package todo

import "fmt"

// EmptyMessage is the single line Render produces when the list has no tasks.
const EmptyMessage = "No tasks yet."

// List is an ordered sequence of tasks. Insertion order is display order
// and persisted order; duplicate text is allowed. The zero value is an
// empty, usable list.
type List []string

// Add appends a task to the end of the list and returns the extended list.
// The text is stored as-is; empty strings are accepted.
func (l List) Add(task string) List {
	return append(l, task)
}

// Delete removes the task at the 0-based index i. It returns the updated
// list and true when i is in range, or the list unchanged and false when it
// is not. Later tasks shift down by one on success.
func (l List) Delete(i int) (List, bool) {
	if i < 0 || i >= len(l) {
		return l, false
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	out = append(out, l[i+1:]...)
	return out, true
}

// Render formats the list for display: one numbered line per task, counted
// from 1, or a single EmptyMessage line when the list is empty.
func (l List) Render() []string {
	if len(l) == 0 {
		return []string{EmptyMessage}
	}
	lines := make([]string, len(l))
	for i, task := range l {
		lines[i] = fmt.Sprintf("%d. %s", i+1, task)
	}
	return lines
}

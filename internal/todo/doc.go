// Package todo holds the task list and its persistent store.
//
// The on-disk format is deliberately plain: one task per line, terminated
// by \n, no header and no escaping. A task's position in the file is its
// only identity, so removing a task shifts every later position down by
// one.
//
// # Known limitations
//
//   - A task containing a newline corrupts the store on save; callers are
//     expected to pass single-line text.
//   - The file is not locked. Two concurrent processes race on
//     load/save and the last writer wins, replacing the whole file.
//
// Both are accepted for the single-user, single-process scope.
package todo

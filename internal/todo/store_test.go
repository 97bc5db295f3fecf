package todo

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tasks.txt"))

	tasks := List{"buy milk", "walk dog", "buy milk"}
	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, tasks) {
		t.Errorf("round trip: got %v, want %v", loaded, tasks)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tasks.txt"))

	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: unexpected error %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load on missing file: got %v, want empty list", tasks)
	}
}

func TestStoreLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("  buy milk \t\nwalk dog\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tasks, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := List{"buy milk", "walk dog"}
	if !reflect.DeepEqual(tasks, want) {
		t.Errorf("Load: got %v, want %v", tasks, want)
	}
}

func TestStoreLoadWithoutTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("buy milk\nwalk dog"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tasks, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := List{"buy milk", "walk dog"}
	if !reflect.DeepEqual(tasks, want) {
		t.Errorf("Load: got %v, want %v", tasks, want)
	}
}

func TestStoreLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tasks, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load on empty file: got %v, want empty list", tasks)
	}
}

func TestStoreRoundTripEmptyTask(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tasks.txt"))

	tasks := List{"buy milk", ""}
	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, tasks) {
		t.Errorf("round trip: got %v, want %v", loaded, tasks)
	}
}

func TestStoreLoadLoneNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tasks, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(tasks, List{""}) {
		t.Errorf("Load: got %v, want one empty task", tasks)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tasks.txt"))

	if err := store.Save(List{"a", "b", "c"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(List{"walk dog"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path)
	if err != nil {
		t.Fatalf("read task file: %v", err)
	}
	if got, want := string(data), "walk dog\n"; got != want {
		t.Errorf("file content: got %q, want %q", got, want)
	}
}

func TestStoreSaveEmptyListTruncates(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tasks.txt"))

	if err := store.Save(List{"a"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(List{}); err != nil {
		t.Fatalf("Save of empty list failed: %v", err)
	}

	data, err := os.ReadFile(store.Path)
	if err != nil {
		t.Fatalf("read task file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("file content: got %q, want empty", data)
	}
}

func TestStoreLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0000); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Load on unreadable file: expected an error")
	}
}

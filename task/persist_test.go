package task

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestStore_SaveThenOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	store := NewStore(path, nil)
	for _, item := range []Task{
		{Title: "write report", Description: "quarterly", Priority: 2, Status: StatusInProgress},
		{Title: "call mum", Priority: 0, Status: StatusNotStarted},
		{Title: "taxes", Description: "with receipts\nand forms", Priority: 5, Status: StatusDone},
	} {
		if _, err := store.Add(item.Title, AddOptions{Description: item.Description, Priority: item.Priority, Status: item.Status}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := store.Sort(Descending); err != nil {
		t.Fatalf("sort: %v", err)
	}

	if err := store.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened := Open(path, OpenOptions{})
	if err := reopened.LoadError(); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !slices.Equal(reopened.Tasks(), store.Tasks()) {
		t.Fatalf("reopened tasks differ:\n got %+v\nwant %+v", reopened.Tasks(), store.Tasks())
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected temp file to be gone, stat err = %v", err)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	store := newTestStore(t, Task{Title: "a"}, Task{Title: "b"})
	if err := store.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Delete(1, true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened := Open(path, OpenOptions{})
	if got := titles(reopened); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("expected [b] after overwrite, got %v", got)
	}
}

func TestStore_SaveEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")

	if err := NewStore(path, nil).Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array, got %q", data)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "missing.json"), OpenOptions{})

	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d tasks", store.Len())
	}
	if err := store.LoadError(); err != nil {
		t.Fatalf("missing file should not report a load error, got %v", err)
	}
}

func TestOpen_MalformedFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"empty file", ""},
		{"object instead of array", `{"title": "a"}`},
		{"missing status", `[{"title": "a", "description": "", "priority": 1}]`},
		{"priority out of range", `[{"title": "a", "description": "", "priority": 6, "status": "Done"}]`},
		{"lower-case status", `[{"title": "a", "description": "", "priority": 1, "status": "done"}]`},
		{"priority as string", `[{"title": "a", "description": "", "priority": "1", "status": "Done"}]`},
		{"blank title", `[{"title": "   ", "description": "", "priority": 1, "status": "Done"}]`},
		{"one bad record", `[
			{"title": "a", "description": "", "priority": 1, "status": "Done"},
			{"title": "", "description": "", "priority": 1, "status": "Done"}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			store := Open(path, OpenOptions{})
			if store.Len() != 0 {
				t.Fatalf("expected empty store, got %d tasks", store.Len())
			}
			if !errors.Is(store.LoadError(), ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord load error, got %v", store.LoadError())
			}
		})
	}
}

func TestOpen_UnreadableFile(t *testing.T) {
	dir := t.TempDir()

	store := Open(dir, OpenOptions{})
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d tasks", store.Len())
	}
	if store.LoadError() == nil {
		t.Fatal("expected a load error for a directory path")
	}
}

func TestReadTasks_IgnoresUnknownKeys(t *testing.T) {
	input := `[{"title": "a", "description": "b", "priority": 4, "status": "In Progress", "due": "tomorrow"}]`

	tasks, err := ReadTasks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	want := []Task{{Title: "a", Description: "b", Priority: 4, Status: StatusInProgress}}
	if !slices.Equal(tasks, want) {
		t.Fatalf("got %+v, want %+v", tasks, want)
	}
}

func TestWriteTasks_Format(t *testing.T) {
	var buf bytes.Buffer
	tasks := []Task{{Title: "a", Description: "", Priority: 1, Status: StatusNotStarted}}

	if err := WriteTasks(&buf, tasks); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := `[
    {
        "title": "a",
        "description": "",
        "priority": 1,
        "status": "Not Started"
    }
]
`
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

package task

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultFile is the file name used when no other path is configured.
const DefaultFile = "tasks.json"

//go:embed tasks.schema.json
var schemaJSON string

var fileSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Logger receives diagnostic output. If nil, logs are discarded.
	Logger *slog.Logger
}

// Open loads the tasks saved at path.
//
// Open never fails. A missing file yields an empty store. An unreadable or
// malformed file also yields an empty store, and the cause is available
// from LoadError so the caller can tell the user.
func Open(path string, opts OpenOptions) *Store {
	s := NewStore(path, opts.Logger)

	tasks, err := readFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no task file, starting empty", "path", path)
		return s
	}
	if err != nil {
		s.loadErr = err
		s.logger.Warn("could not load tasks, starting empty", "path", path, "error", err)
		return s
	}

	s.tasks = tasks
	s.logger.Debug("tasks loaded", "path", path, "count", len(tasks))
	return s
}

// LoadError reports why Open started with an empty list, or nil.
func (s *Store) LoadError() error {
	return s.loadErr
}

// Save writes the whole list, in current order, to the store's path.
func (s *Store) Save() error {
	return s.SaveTo(s.path)
}

// SaveTo writes the whole list, in current order, to path, replacing any
// existing content.
func (s *Store) SaveTo(path string) error {
	if err := writeFile(path, s.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Debug("tasks saved", "path", path, "count", len(s.tasks))
	return nil
}

func readFile(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTasks(f)
}

// ReadTasks decodes a JSON array of task records. Unknown keys are ignored.
// Any invalid record fails the whole read with ErrMalformedRecord.
func ReadTasks(r io.Reader) ([]Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if err := fileSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	tasks := make([]Task, 0, len(records))
	for i, record := range records {
		t, err := FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// WriteTasks encodes tasks as an indented JSON array of records.
func WriteTasks(w io.Writer, tasks []Task) error {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, t.ToRecord())
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// writeFile replaces the file at path via a temp file and rename.
func writeFile(path string, tasks []Task) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create parent dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := WriteTasks(&buf, tasks); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// schemaError reduces a schema failure to its first leaf cause.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	location := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if location == "" {
		return fmt.Errorf("%w: %s", ErrMalformedRecord, leaf.Message)
	}
	return fmt.Errorf("%w: %s: %s", ErrMalformedRecord, location, leaf.Message)
}

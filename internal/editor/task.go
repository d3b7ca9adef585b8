package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasks/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	Title    string
	Priority int
	// Status is a status label such as "Not Started".
	Status      string
	Description string
}

// DefaultCreateData returns TaskData with default values for a new task.
func DefaultCreateData() TaskData {
	return TaskData{
		Priority: 2,
		Status:   task.StatusNotStarted.String(),
	}
}

var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"statuses": statusList,
}).Parse(`title = {{ printf "%q" .Title }}
priority = {{ .Priority }} # 0=highest, 5=lowest
status = {{ printf "%q" .Status }} # {{ statuses }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the editor output.
type ParsedTask struct {
	Title       string `toml:"title"`
	Priority    int    `toml:"priority"`
	Status      string `toml:"status"`
	Description string `toml:"-"`
}

// ParseTaskTOML parses the content written by the editor. The front matter
// above the "---" line is TOML; everything below it is the description.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	meta, err := toml.Decode(frontmatter, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	if !meta.IsDefined("priority") {
		parsed.Priority = DefaultCreateData().Priority
	}
	parsed.Title = strings.TrimSpace(parsed.Title)
	parsed.Description = strings.TrimSpace(body)

	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidatePriority(parsed.Priority); err != nil {
		return nil, err
	}
	status := task.StatusNotStarted
	if strings.TrimSpace(parsed.Status) != "" {
		status, err = task.LookupStatus(parsed.Status)
		if err != nil {
			return nil, fmt.Errorf("%w (valid: %s)", err, statusList())
		}
	}
	parsed.Status = status.String()

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "tasks-*.md")
}

func statusList() string {
	valid := task.ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, status.String())
	}
	return strings.Join(values, ", ")
}

// EditTask opens the editor pre-populated with data and returns the parsed result.
func EditTask(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToAddOptions converts a ParsedTask to task.AddOptions.
func (p *ParsedTask) ToAddOptions() (task.AddOptions, error) {
	status, err := task.ParseStatus(p.Status)
	if err != nil {
		return task.AddOptions{}, err
	}
	return task.AddOptions{
		Description: p.Description,
		Priority:    p.Priority,
		Status:      status,
	}, nil
}

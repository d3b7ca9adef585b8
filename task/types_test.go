package task

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusNotStarted, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{Status(-1), false},
		{Status(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("Status(%d).IsValid() = %v, want %v", int(tt.status), got, tt.valid)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		label   string
		want    Status
		wantErr bool
	}{
		{"Not Started", StatusNotStarted, false},
		{"In Progress", StatusInProgress, false},
		{"Done", StatusDone, false},
		{"done", 0, true},
		{"not started", 0, true},
		{"in_progress", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseStatus(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("ParseStatus(%q) error = %v, want ErrValidation", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) failed: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestStatus_LabelsRoundTrip(t *testing.T) {
	for _, status := range ValidStatuses() {
		parsed, err := ParseStatus(status.String())
		if err != nil {
			t.Fatalf("ParseStatus(%q) failed: %v", status.String(), err)
		}
		if parsed != status {
			t.Errorf("ParseStatus(%q) = %v, want %v", status.String(), parsed, status)
		}
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusInProgress)
	if err != nil {
		t.Fatalf("marshal status: %v", err)
	}
	if string(data) != `"In Progress"` {
		t.Fatalf("expected label, got %s", data)
	}

	var status Status
	if err := json.Unmarshal([]byte(`"Done"`), &status); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if status != StatusDone {
		t.Fatalf("expected done, got %v", status)
	}

	if err := json.Unmarshal([]byte(`"finished"`), &status); err == nil {
		t.Fatal("expected unknown label to fail")
	}
	if _, err := json.Marshal(Status(9)); err == nil {
		t.Fatal("expected invalid status to fail to marshal")
	}
}

func TestDirection_String(t *testing.T) {
	if Ascending.String() != "ascending" || Descending.String() != "descending" {
		t.Fatalf("unexpected direction names %q %q", Ascending, Descending)
	}
}

func TestLookupStatus(t *testing.T) {
	tests := []struct {
		value string
		want  Status
	}{
		{"Not Started", StatusNotStarted},
		{"not-started", StatusNotStarted},
		{" IN_PROGRESS ", StatusInProgress},
		{"done", StatusDone},
	}

	for _, tt := range tests {
		got, err := LookupStatus(tt.value)
		if err != nil {
			t.Fatalf("LookupStatus(%q): %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("LookupStatus(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if _, err := LookupStatus("finished"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if lipgloss.Width(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d (%q)", tableCellMaxWidth, lipgloss.Width(got), got)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	builder := NewTableBuilder([]string{"#", "PRI", "TITLE"}, 2)
	builder.AddRow("1", "0", "call mum")
	builder.AddRow("10", "5", "taxes")

	got := builder.String()

	expected := "" +
		"#   PRI  TITLE\n" +
		"1   0    call mum\n" +
		"10  5    taxes\n"
	if got != expected {
		t.Fatalf("unexpected table:\n%q\nwant\n%q", got, expected)
	}
}

func TestFormatTableIgnoresANSIWidth(t *testing.T) {
	colored := "\x1b[32mDone\x1b[0m"

	got := FormatTable([]string{"STATUS", "TITLE"}, [][]string{{colored, "a"}})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1])+len("TITLE")-len("a") {
		t.Fatalf("escape codes affected alignment: %q", got)
	}
}

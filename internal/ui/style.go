package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	statusStyles = map[string]lipgloss.Style{
		"Not Started": lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"In Progress": lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"Done":        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// ColorEnabled reports whether styled output should be written to stdout.
var ColorEnabled = ansiEnabled

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(style lipgloss.Style, value string) string {
	if !ColorEnabled() {
		return value
	}
	return style.Render(value)
}

// Header renders a section heading.
func Header(value string) string {
	return render(headerStyle, value)
}

// Success renders a confirmation message.
func Success(value string) string {
	return render(successStyle, value)
}

// Error renders an error message.
func Error(value string) string {
	return render(errorStyle, value)
}

// Muted renders secondary text.
func Muted(value string) string {
	return render(mutedStyle, value)
}

// Status renders a status label in its colour.
func Status(label string) string {
	style, ok := statusStyles[label]
	if !ok {
		return label
	}
	return render(style, label)
}

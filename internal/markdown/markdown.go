// Package markdown renders task descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/tasks/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text wrapped to width. It returns "" for blank
// input and the trimmed source when rendering fails.
func Render(value string, width int) string {
	value = internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(value))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	rendered := value
	if r := rendererFor(width); r != nil {
		if formatted, ok := safeRender(r, value); ok {
			rendered = formatted
		}
	}
	return strings.Trim(internalstrings.TrimTrailingNewlines(rendered), "\n")
}

func safeRender(r renderer, value string) (formatted string, ok bool) {
	defer func() {
		if recover() != nil {
			formatted, ok = "", false
		}
	}()
	formatted, err := r.Render(value)
	if err != nil {
		return "", false
	}
	return formatted, true
}

func rendererFor(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	zero := uint(0)
	style.Document.Margin = &zero
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/amonks/tasks/internal/markdown"
	"github.com/amonks/tasks/internal/ui"
	"github.com/amonks/tasks/task"
)

const emptyListMessage = "Your task list is empty. Enjoy your free day!"

// printTaskBlocks prints each task as a numbered block, as the menu shows them.
func printTaskBlocks(w io.Writer, tasks iter.Seq2[int, task.Task], width int) {
	for position, t := range tasks {
		fmt.Fprintln(w, ui.Header(fmt.Sprintf("Task %d", position)))
		fmt.Fprintf(w, "    Title:       %s\n", t.Title)
		fmt.Fprintf(w, "    Description: %s\n", formatBlockDescription(t.Description, width))
		fmt.Fprintf(w, "    Priority:    %d\n", t.Priority)
		fmt.Fprintf(w, "    Status:      %s\n", ui.Status(t.Status.String()))
	}
}

// Description continuation lines align under the first line's value.
const blockValueIndent = 17

func formatBlockDescription(value string, width int) string {
	wrapped := ui.ReflowParagraphs(value, width-blockValueIndent)
	if wrapped == "" {
		return ui.Muted("-")
	}
	indented := ui.IndentBlock(wrapped, blockValueIndent)
	return indented[blockValueIndent:]
}

// printTaskTable prints tasks in a table format.
func printTaskTable(w io.Writer, store *task.Store) {
	seq, err := store.View()
	if err != nil {
		fmt.Fprintln(w, emptyListMessage)
		return
	}

	builder := ui.NewTableBuilder([]string{"#", "PRI", "STATUS", "TITLE"}, store.Len())
	for position, t := range seq {
		builder.AddRow(
			strconv.Itoa(position),
			strconv.Itoa(t.Priority),
			ui.Status(t.Status.String()),
			ui.TruncateTableCell(t.Title),
		)
	}
	fmt.Fprint(w, builder.String())
}

// printTaskDetail prints detailed information about a task.
func printTaskDetail(w io.Writer, position int, t task.Task, width int) {
	fmt.Fprintf(w, "Task:     %d\n", position)
	fmt.Fprintf(w, "Title:    %s\n", t.Title)
	fmt.Fprintf(w, "Priority: %d\n", t.Priority)
	fmt.Fprintf(w, "Status:   %s\n", ui.Status(t.Status.String()))

	if description := markdown.Render(t.Description, width); description != "" {
		fmt.Fprintf(w, "\nDescription:\n%s\n", description)
	}
}

// errorMessage turns a store error into a sentence for the user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyList):
		return "Your task list is empty. Add a task first."
	case errors.Is(err, task.ErrOutOfRange):
		return "There is no task at that position."
	default:
		return "ERROR: " + err.Error()
	}
}

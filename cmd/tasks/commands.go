package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/tasks/internal/editor"
	"github.com/amonks/tasks/task"
	"github.com/spf13/cobra"
)

// tasks add
var addCmd = &cobra.Command{
	Use:   "add [<title>]",
	Short: "Add a task to the end of the list",
	Long: `Add a task to the end of the list.

With --edit, the task opens in $EDITOR first, pre-filled from the other flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addPriority    int
	addStatus      string
	addEdit        bool
)

// tasks list
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks in their current order",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var listJSON bool

// tasks show
var showCmd = &cobra.Command{
	Use:   "show <position>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// tasks sort
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort tasks by priority, most urgent first",
	Args:  cobra.NoArgs,
	RunE:  runSort,
}

var sortDescending bool

// tasks done
var doneCmd = &cobra.Command{
	Use:   "done <position>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

// tasks priority
var priorityCmd = &cobra.Command{
	Use:   "priority <position> <priority>",
	Short: "Change the priority of a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runPriority,
}

// tasks delete
var deleteCmd = &cobra.Command{
	Use:   "delete <position>",
	Short: "Delete a task",
	Long: `Delete a task.

Asks for confirmation when stdin is a terminal. Without a terminal the task
is kept unless --yes is given.`,
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, sortCmd, doneCmd, priorityCmd, deleteCmd)
	applyFlagAliases(addFlagAliases, addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description")
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 2, fmt.Sprintf("Priority (%d=highest, %d=lowest)", task.PriorityHighest, task.PriorityLowest))
	addCmd.Flags().StringVarP(&addStatus, "status", "s", task.StatusNotStarted.String(), "Status (not-started, in-progress, done)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR to write the task")

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	sortCmd.Flags().BoolVar(&sortDescending, "descending", false, "Least urgent first")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")
}

func runAdd(cmd *cobra.Command, args []string) error {
	status, err := task.LookupStatus(addStatus)
	if err != nil {
		return err
	}

	var title string
	if len(args) == 1 {
		title = strings.TrimSpace(args[0])
	}
	opts := task.AddOptions{
		Description: addDescription,
		Priority:    addPriority,
		Status:      status,
	}

	if addEdit {
		parsed, err := editor.EditTask(editor.TaskData{
			Title:       title,
			Priority:    opts.Priority,
			Status:      opts.Status.String(),
			Description: opts.Description,
		})
		if err != nil {
			return err
		}
		title = parsed.Title
		if opts, err = parsed.ToAddOptions(); err != nil {
			return err
		}
	} else if len(args) == 0 {
		return fmt.Errorf("a title is required unless --edit is given")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	added, err := a.store.Add(title, opts)
	if err != nil {
		return err
	}
	if err := a.store.Save(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added task %d: %s\n", a.store.Len(), added.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	if listJSON {
		return task.WriteTasks(a.out, a.store.Tasks())
	}
	printTaskTable(a.out, a.store)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	t, err := a.store.Get(position)
	if err != nil {
		return err
	}
	printTaskDetail(a.out, position, t, a.cfg.UI.Width)
	return nil
}

func runSort(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	direction := task.Ascending
	if sortDescending {
		direction = task.Descending
	}
	if err := a.store.Sort(direction); err != nil {
		return err
	}
	if err := a.store.Save(); err != nil {
		return err
	}

	printTaskTable(a.out, a.store)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	t, err := a.store.MarkDone(position)
	if err != nil {
		return err
	}
	if err := a.store.Save(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Task %d marked as done: %s\n", position, t.Title)
	return nil
}

func runPriority(cmd *cobra.Command, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	priority, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid priority %q", args[1])
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	if _, err := a.store.ChangePriority(position, priority); err != nil {
		return err
	}
	if err := a.store.Save(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Priority of task %d updated to %d.\n", position, priority)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	t, err := a.store.Get(position)
	if err != nil {
		return err
	}

	confirmed := deleteYes
	if !confirmed && stdinIsTerminal() {
		confirmed, err = a.prompt.Confirm(fmt.Sprintf("Are you sure you want to delete task %d (%s)?", position, t.Title))
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	if err := a.deleteAt(position, confirmed); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	return a.store.Save()
}

var stdinIsTerminal = editor.IsInteractive

func parsePosition(value string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", value)
	}
	return position, nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amonks/tasks/internal/ui"
	"github.com/amonks/tasks/task"
	"github.com/spf13/cobra"
)

const menuText = `Choose from the following:
1- Add a task
2- View tasks
3- Sort tasks
4- Mark task as done
5- Change task priority
6- Delete task
7- Save to file
8- Exit
`

const menuExit = 8

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	return a.menuLoop()
}

// menuLoop shows the menu until the user exits or input runs out.
func (a *app) menuLoop() error {
	actions := map[int]func() error{
		1: a.menuAdd,
		2: a.menuView,
		3: a.menuSort,
		4: a.menuMarkDone,
		5: a.menuChangePriority,
		6: a.menuDelete,
		7: a.save,
	}

	fmt.Fprint(a.out, menuText)
	for {
		line, err := a.prompt.Line("> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return a.goodbye()
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice == menuExit {
			return a.goodbye()
		}
		action, ok := actions[choice]
		if err != nil || !ok {
			fmt.Fprintln(a.out, ui.Error(fmt.Sprintf("Wrong choice! Please choose a number from 1 to %d.", menuExit)))
			continue
		}

		if err := action(); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return a.goodbye()
			}
			fmt.Fprintln(a.out, ui.Error(errorMessage(err)))
		}
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, menuText)
	}
}

func (a *app) goodbye() error {
	fmt.Fprintln(a.out, "Thank you for using tasks. Goodbye!")
	return nil
}

func (a *app) menuAdd() error {
	title, err := a.prompt.RequiredLine("Enter title: ", "Title cannot be empty!")
	if err != nil {
		return err
	}
	description, err := a.prompt.Line("Enter description: ")
	if err != nil {
		return err
	}
	priority, err := a.prompt.Int(
		fmt.Sprintf("Enter priority (highest %d - lowest %d): ", task.PriorityHighest, task.PriorityLowest),
		fmt.Sprintf("Priority range from %d to %d only!", task.PriorityMin, task.PriorityMax),
		task.PriorityMin, task.PriorityMax)
	if err != nil {
		return err
	}

	statuses := task.ValidStatuses()
	for i, status := range statuses {
		fmt.Fprintf(a.out, "%d- %s\n", i+1, status)
	}
	choice, err := a.prompt.Int("Choose the status of this task: ", "There is no such status, try again!", 1, len(statuses))
	if err != nil {
		return err
	}

	if _, err := a.store.Add(title, task.AddOptions{
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      statuses[choice-1],
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, ui.Success("Task added successfully!"))
	return nil
}

func (a *app) menuView() error {
	seq, err := a.store.View()
	if errors.Is(err, task.ErrEmptyList) {
		fmt.Fprintln(a.out, emptyListMessage)
		return nil
	}
	if err != nil {
		return err
	}
	printTaskBlocks(a.out, seq, a.cfg.UI.Width)
	return nil
}

func (a *app) menuSort() error {
	if a.store.Len() == 0 {
		return task.ErrEmptyList
	}

	choice, err := a.prompt.Int("1- Ascending\n2- Descending\n1 or 2? ", "No such option", 1, 2)
	if err != nil {
		return err
	}
	direction := task.Ascending
	if choice == 2 {
		direction = task.Descending
	}

	if err := a.store.Sort(direction); err != nil {
		return err
	}
	fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("Tasks sorted %s:", direction)))
	return a.menuView()
}

// choosePosition shows the list and asks for a position in it.
func (a *app) choosePosition(message string) (int, error) {
	seq, err := a.store.View()
	if err != nil {
		return 0, err
	}
	printTaskBlocks(a.out, seq, a.cfg.UI.Width)
	return a.prompt.Int(message, "There is no task with this number!", 1, a.store.Len())
}

func (a *app) menuMarkDone() error {
	position, err := a.choosePosition("Choose the task number to mark as done: ")
	if err != nil {
		return err
	}
	if _, err := a.store.MarkDone(position); err != nil {
		return err
	}
	fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("Task %d marked as done!", position)))
	return nil
}

func (a *app) menuChangePriority() error {
	position, err := a.choosePosition("Choose the task number to change its priority: ")
	if err != nil {
		return err
	}
	priority, err := a.prompt.Int("Enter new priority: ",
		fmt.Sprintf("Priority range from %d to %d only!", task.PriorityMin, task.PriorityMax),
		task.PriorityMin, task.PriorityMax)
	if err != nil {
		return err
	}
	if _, err := a.store.ChangePriority(position, priority); err != nil {
		return err
	}
	fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("Priority of task %d updated to %d.", position, priority)))
	return nil
}

func (a *app) menuDelete() error {
	position, err := a.choosePosition("Choose the task number to delete: ")
	if err != nil {
		return err
	}
	confirmed, err := a.prompt.Confirm(fmt.Sprintf("Are you sure you want to delete task %d?", position))
	if err != nil {
		return err
	}
	return a.deleteAt(position, confirmed)
}

// deleteAt deletes the task at position if confirmed and reports the outcome.
func (a *app) deleteAt(position int, confirmed bool) error {
	deleted, err := a.store.Delete(position, confirmed)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(a.out, "Task %d was not deleted.\n", position)
		return nil
	}
	fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("Task %d deleted.", position)))
	return nil
}

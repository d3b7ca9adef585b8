package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/amonks/tasks/internal/config"
	"github.com/amonks/tasks/internal/logging"
	"github.com/amonks/tasks/internal/paths"
	"github.com/amonks/tasks/internal/prompt"
	"github.com/amonks/tasks/internal/ui"
	"github.com/amonks/tasks/task"
	"github.com/spf13/cobra"
)

// app bundles what a command needs to work on the task list.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *task.Store
	out    io.Writer
	errOut io.Writer
	prompt *prompt.Prompter
}

// openApp loads configuration and the task file for cmd.
func openApp(cmd *cobra.Command) (*app, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if rootFile != "" {
		cfg.Store.File = rootFile
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	path := paths.Resolve(cwd, cfg.Store.File)
	store := task.Open(path, task.OpenOptions{Logger: logger})

	a := &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		prompt: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
	}

	if err := store.LoadError(); err != nil {
		fmt.Fprintln(a.errOut, ui.Error(fmt.Sprintf("Could not load %s: %v", store.Path(), err)))
		fmt.Fprintln(a.errOut, "Starting with an empty task list.")
	}
	return a, nil
}

// save writes the list and tells the user where it went.
func (a *app) save() error {
	if err := a.store.Save(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, ui.Success(fmt.Sprintf("Tasks saved to %s", a.store.Path())))
	return nil
}

// Package main implements the tasks CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "tasks",
	Short: "A personal task list",
	Long: `A personal task list.

Run without a subcommand to open the interactive menu. Changes made in the
menu are only written when you choose "Save to file". Subcommands save
after each change.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runMenu,
}

var rootFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "Task file (default from config, $TASKS_FILE, or tasks.json)")
}

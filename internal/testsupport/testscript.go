package testsupport

import (
	"path/filepath"

	"github.com/rogpeppe/go-internal/testscript"
)

// SetupScriptEnv gives each script its own home directory and plain output.
func SetupScriptEnv(env *testscript.Env) error {
	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	env.Setenv("TASKS_FILE", "")
	return nil
}

// CmdTaskCount checks the number of records in a task file.
func CmdTaskCount(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: taskcount FILE N")
	}

	records, err := readRecords(ts.MkAbs(args[0]))
	if err != nil {
		ts.Fatalf("read %s: %v", args[0], err)
	}

	matches := len(records) == atoi(ts, args[1])
	if matches == neg {
		ts.Fatalf("%s has %d tasks", args[0], len(records))
	}
}

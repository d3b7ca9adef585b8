package testsupport

import (
	"os"
	"strconv"

	"github.com/amonks/tasks/task"
	"github.com/rogpeppe/go-internal/testscript"
)

func readRecords(path string) ([]task.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return task.ReadTasks(f)
}

func atoi(ts *testscript.TestScript, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		ts.Fatalf("invalid number %q", value)
	}
	return n
}

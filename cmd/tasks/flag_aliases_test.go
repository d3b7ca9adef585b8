package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newAliasedAddCommand() (*cobra.Command, *string, *int) {
	var description string
	var priority int
	cmd := &cobra.Command{Use: "add"}
	applyFlagAliases(addFlagAliases, cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().IntVarP(&priority, "priority", "p", 2, "Priority")
	return cmd, &description, &priority
}

func TestAddFlagAliasesResolveToTarget(t *testing.T) {
	tests := []struct {
		alias  string
		target string
		value  string
	}{
		{"desc", "description", "two litres"},
		{"prio", "priority", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			cmd, _, _ := newAliasedAddCommand()
			if err := cmd.Flags().Set(tt.alias, tt.value); err != nil {
				t.Fatalf("set %s alias: %v", tt.alias, err)
			}
			if !cmd.Flags().Changed(tt.target) {
				t.Fatalf("expected %s to be marked as changed", tt.target)
			}
			if got := cmd.Flags().Lookup(tt.target).Value.String(); got != tt.value {
				t.Fatalf("%s = %q, want %q", tt.target, got, tt.value)
			}
		})
	}
}

func TestAddFlagAliasesParseFromArgs(t *testing.T) {
	cmd, description, priority := newAliasedAddCommand()

	if err := cmd.ParseFlags([]string{"--desc", "bring receipts", "--prio", "0"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if *description != "bring receipts" {
		t.Fatalf("description = %q", *description)
	}
	if *priority != 0 {
		t.Fatalf("priority = %d, want 0", *priority)
	}
}

func TestAddFlagAliasesStayOutOfUsage(t *testing.T) {
	cmd, _, _ := newAliasedAddCommand()

	usage := cmd.Flags().FlagUsages()
	for _, alias := range []string{"--desc ", "--prio "} {
		if strings.Contains(usage, alias) {
			t.Fatalf("did not expect %q in usage, got %q", alias, usage)
		}
	}
	if !strings.Contains(usage, "-d, --description") || !strings.Contains(usage, "-p, --priority") {
		t.Fatalf("expected target flags in usage, got %q", usage)
	}
}

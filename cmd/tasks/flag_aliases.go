package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addFlagAliases are the short spellings accepted by tasks add. They parse
// as the flag they name and stay out of the usage text.
var addFlagAliases = map[string]string{
	"desc": "description",
	"prio": "priority",
}

// applyFlagAliases makes each alias in aliases resolve to its target flag
// on every cmd.
func applyFlagAliases(aliases map[string]string, cmds ...*cobra.Command) {
	if len(aliases) == 0 {
		return
	}
	for _, cmd := range cmds {
		flags := cmd.Flags()
		normalize := flags.GetNormalizeFunc()
		flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
			if target, ok := aliases[name]; ok {
				name = target
			}
			return normalize(f, name)
		})
	}
}

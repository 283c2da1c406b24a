package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Earlier versions spelled these flags differently; the old names keep
// working as aliases.
var labelFlagAliases = map[string]string{
	"labels": "label",
}

var dependencyFlagAliases = map[string]string{
	"dependence": "dependency",
}

func addLabelFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), labelFlagAliases)
	}
}

func addDependencyFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), dependencyFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}

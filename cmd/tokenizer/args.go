package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// splitLeadingFlags keeps only the leading arguments naming a known flag as
// flags and puts "--" before the first one that does not, so separators and
// source text may start with '-' (or even be "--help").
func splitLeadingFlags(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	out := make([]string, 0, len(args)+1)
	i := 0
	for i < len(args) {
		f, inline := lookupFlag(cmd, args[i])
		if f == nil {
			break
		}
		out = append(out, args[i])
		i++
		// значение строкового флага может идти отдельным аргументом
		if !inline && f.NoOptDefVal == "" && i < len(args) {
			out = append(out, args[i])
			i++
		}
	}
	out = append(out, "--")
	return append(out, args[i:]...)
}

// lookupFlag returns the flag arg names and whether its value is inline (--name=value).
func lookupFlag(cmd *cobra.Command, arg string) (*pflag.Flag, bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, inline := strings.Cut(arg[2:], "=")
		return findFlag(cmd, name), inline
	case len(arg) == 2 && arg[0] == '-' && arg[1] != '-':
		if f := cmd.Flags().ShorthandLookup(arg[1:]); f != nil {
			return f, false
		}
		return cmd.PersistentFlags().ShorthandLookup(arg[1:]), false
	}
	return nil, false
}

func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

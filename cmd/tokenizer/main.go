package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tokenizer/internal/version"
)

const usageLine = `Usage: tokenizer "<separators>" "<string>"`

const usageTemplate = usageLine + `
{{if .HasAvailableFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}`

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tokenizer [flags] <separators> <string>",
		Short: "Split a string into tokens on a set of separator characters",
		Long: `Tokenizer splits <string> into maximal runs of characters not found in <separators>
and prints each token on its own line. Both arguments understand backslash escapes
(\n \t \v \b \r \f \a \\ \? \' \"); the same characters are printed as [0xHH].

Flags go before <separators>; every argument after the first non-flag is taken
verbatim, even when it starts with '-'.`,
		Args:          exactArgs(2),
		RunE:          runTokenize,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version.String(),
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.Flags().SetInterspersed(false)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize error output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr, *.ndjson for JSON)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|debug)")

	return rootCmd
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(splitLeadingFlags(rootCmd, args))
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

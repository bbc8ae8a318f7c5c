package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrArgumentCount is returned when the command is not given exactly two arguments.
var ErrArgumentCount = errors.New("incorrect number of arguments")

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: want %d, got %d", ErrArgumentCount, n, len(args))
		}
		return nil
	}
}

var errorColor = color.New(color.FgRed, color.Bold)

// reportError prints err to stderr. Argument count errors get the usage line.
func reportError(cmd *cobra.Command, stderr io.Writer, err error) {
	mode, modeErr := readColorMode(colorFlag(cmd))
	if modeErr != nil {
		mode = colorAuto
	}
	if shouldColor(mode, stderr) {
		errorColor.EnableColor()
	} else {
		errorColor.DisableColor()
	}

	if errors.Is(err, ErrArgumentCount) {
		fmt.Fprintln(stderr, errorColor.Sprint("Incorrect number of arguments."))
		fmt.Fprintln(stderr, usageLine)
		return
	}
	fmt.Fprintln(stderr, errorColor.Sprint("error: "+err.Error()))
}

func colorFlag(cmd *cobra.Command) string {
	v, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "auto"
	}
	return v
}

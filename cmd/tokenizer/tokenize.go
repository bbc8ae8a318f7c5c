package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tokenizer/internal/driver"
	"tokenizer/internal/observ"
	"tokenizer/internal/trace"
	"tokenizer/internal/version"
)

func runTokenize(cmd *cobra.Command, args []string) error {
	if _, err := readColorMode(colorFlag(cmd)); err != nil {
		return err
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	tr := trace.FromContext(ctx)
	runSpan := trace.Begin(tr, trace.ScopeDriver, "tokenizer", 0).
		WithExtra("version", version.Plain())
	ctx = trace.WithSpan(ctx, runSpan)

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	res := driver.Tokenize(ctx, args[0], args[1], timer)
	runSpan.WithExtra("source_bytes", strconv.Itoa(len(res.Source)))
	n, err := driver.Render(ctx, cmd.OutOrStdout(), res, timer)
	if err != nil {
		runSpan.End("failed")
		return fmt.Errorf("output failed: %w", err)
	}
	runSpan.WithExtra("tokens", strconv.Itoa(n)).End("")

	if showTimings {
		if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("failed to write timings: %w", err)
		}
	}
	return nil
}

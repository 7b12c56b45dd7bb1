package main

import (
	"context"
	"fmt"
	"path/filepath"

	"wordpools/internal/logging"
	"wordpools/internal/output"
	"wordpools/internal/wordpool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Generate flags
var (
	genOutput      string
	genSplit       bool
	genFormat      string
	genOutputIsDir bool
)

// runGenerate loads the input, groups it and writes the pools.
func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]

	// Flags win over config, config wins over flag defaults.
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = genFormat
	}
	split := cfg.Output.Split
	if cmd.Flags().Changed("split") {
		split = genSplit
	}

	fmtValue, err := output.ParseFormat(format)
	if err != nil {
		return &usageError{err: err}
	}

	words, err := wordpool.LoadFile(input)
	if err != nil {
		return err
	}
	logger.Get(logging.CategoryLoad).Debug("Loaded words", zap.String("input", input), zap.Int("count", len(words)))

	pool := wordpool.Group(words)
	logger.Get(logging.CategoryGroup).Debug("Grouped words",
		zap.Int("groups", pool.Len()),
		zap.Int("unique", pool.Total()),
		zap.Int("dropped", len(words)-pool.Total()))

	target, err := output.Resolve(output.Options{
		Input:       input,
		Output:      genOutput,
		Split:       split,
		Format:      fmtValue,
		OutputIsDir: genOutputIsDir,
	})
	if err != nil {
		return err
	}
	logger.Get(logging.CategoryResolve).Debug("Resolved output",
		zap.Stringer("mode", target.Mode),
		zap.String("path", target.Path),
		zap.String("format", string(target.Format)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := output.NewWriter(logger.Get(logging.CategoryWrite)).Write(ctx, pool, target); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shown := filepath.Clean(target.Path)
	if target.Mode == output.Split {
		fmt.Fprintf(out, "Wrote split pools to directory %s\n", shown)
	} else {
		fmt.Fprintf(out, "Wrote combined pools to %s\n", shown)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"wordpools/internal/logging"
	"wordpools/internal/wordpool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Pick flags
var (
	pickLength int
	pickSeed   uint64
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <word_pools.json>",
		Short: "Show the groups of a combined JSON pool",
		Long: `Reads a combined JSON pool and prints one tab-separated line per
length group (length, word count) followed by a total line. Groups are
listed in file order.`,
		Args: withUsage(cobra.ExactArgs(1)),
		RunE: runInspect,
	}
}

func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick <word_pools.json> --length N",
		Short: "Print a random word of about N characters",
		Long: `Draws one word from a combined JSON pool. The group used is the longest
length from 1 to N; when there is none, the longest group is used
instead.

Example:
  wordpools pick word_pools.json --length 5 --seed 42`,
		Args: withUsage(cobra.ExactArgs(1)),
		RunE: runPick,
	}
	cmd.Flags().IntVar(&pickLength, "length", 0, "Target word length (required)")
	cmd.Flags().Uint64Var(&pickSeed, "seed", 0, "Seed for a repeatable pick")
	return cmd
}

// runInspect prints per-length word counts of a pool file.
func runInspect(cmd *cobra.Command, args []string) error {
	pool, err := wordpool.ReadCombinedFile(args[0])
	if err != nil {
		return err
	}
	logger.Get(logging.CategoryInspect).Debug("Read pool", zap.String("path", args[0]), zap.Int("groups", pool.Len()))

	out := cmd.OutOrStdout()
	for _, n := range pool.Lengths() {
		fmt.Fprintf(out, "%d\t%d\n", n, len(pool.Words(n)))
	}
	fmt.Fprintf(out, "total\t%d\n", pool.Total())
	return nil
}

// runPick prints one word from the best matching bucket.
func runPick(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("length") {
		return usageErrorf("--length is required")
	}

	pool, err := wordpool.ReadCombinedFile(args[0])
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if cmd.Flags().Changed("seed") {
		rng = rand.New(rand.NewPCG(pickSeed, pickSeed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	word, ok := pool.Pick(pickLength, rng)
	if !ok {
		return errors.New("pool has no words")
	}
	bucket, _ := pool.Bucket(pickLength)
	logger.Get(logging.CategoryInspect).Debug("Picked word", zap.Int("target", pickLength), zap.Int("bucket", bucket))

	fmt.Fprintln(cmd.OutOrStdout(), word)
	return nil
}

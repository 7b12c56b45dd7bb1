package main

import (
	"errors"
	"fmt"
	"os"

	"wordpools/internal/config"
	"wordpools/internal/logging"
	"wordpools/internal/output"
	"wordpools/internal/wordpool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2 // missing input, bad input shape, bad invocation
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved at startup
	cfg    = config.DefaultConfig()
	logger = logging.Nop()
)

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// configError marks a config file or environment that could not be used.
// It exits as a general failure even when it wraps an invocation sentinel.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// withUsage wraps a positional-args validator so its failures exit as
// invocation errors.
func withUsage(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// newRootCmd builds the command tree. The root command is the generator.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordpools <input.json>",
		Short: "Group words by length from a words JSON file",
		Long: `Reads a JSON words file, either {"words": [...]} or a plain list,
groups the words by character length and writes the pools.

Without --output, word_pools.json (or the word_pools/ directory with
--split) is written next to the input. An --output with a file extension
is used as the exact output file; anything else is treated as a directory.

Examples:
  wordpools res/data/words/english_1k.json
  wordpools res/data/words/english_1k.json --split -o res/data/words/pools/
  wordpools res/data/words/english_1k.json -o res/data/words/pools.json --format txt`,
		Args:          withUsage(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return &configError{err: err}
			}
			if err := loaded.Validate(); err != nil {
				return &configError{err: fmt.Errorf("invalid config %s: %w", configPath, err)}
			}

			l, err := logging.New(logging.Options{
				Level:      loaded.Logging.Level,
				Format:     loaded.Logging.Format,
				Verbose:    verbose,
				Categories: loaded.Logging.Categories,
			})
			if err != nil {
				return &configError{err: err}
			}

			cfg = loaded
			logger = l
			logger.Get(logging.CategoryBoot).Debug("Configuration loaded",
				zap.String("config", configPath),
				zap.String("format", cfg.Output.Format),
				zap.Bool("split", cfg.Output.Split))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runGenerate,
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file (YAML)")

	root.Flags().StringVarP(&genOutput, "output", "o", "", "Output file or directory. If omitted, writes word_pools.json next to input.")
	root.Flags().BoolVar(&genSplit, "split", false, "Write one file per word length (directory required or created).")
	root.Flags().StringVar(&genFormat, "format", string(output.FormatJSON), "Output format when writing files: json or txt.")
	root.Flags().BoolVar(&genOutputIsDir, "output-is-dir", false, "Treat --output as a directory even if it has a file extension.")

	root.AddCommand(newInspectCmd(), newPickCmd(), newConfigCmd())
	return root
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		cerr *configError
		uerr *usageError
	)
	switch {
	case errors.As(err, &cerr):
		return exitFailure
	case errors.As(err, &uerr),
		errors.Is(err, wordpool.ErrMissingInput),
		errors.Is(err, wordpool.ErrInvalidInputShape),
		errors.Is(err, output.ErrUnknownFormat):
		return exitInvalid
	default:
		return exitFailure
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

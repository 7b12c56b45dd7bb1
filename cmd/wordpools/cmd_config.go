package main

import (
	"errors"
	"fmt"
	"os"

	"wordpools/internal/config"

	"github.com/spf13/cobra"
)

var configInitForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the wordpools config file",
		// The file may not exist yet or may be the broken one being
		// replaced, so skip the root config load.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to --config",
		Long: `Writes the built-in defaults as YAML to the --config path
(default .wordpools.yaml). An existing file is left alone unless --force
is given.

Example:
  wordpools config init --config res/.wordpools.yaml`,
		Args: withUsage(cobra.NoArgs),
		RunE: runConfigInit,
	}
	initCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// runConfigInit saves the default configuration.
func runConfigInit(cmd *cobra.Command, args []string) error {
	if !configInitForce {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", configPath)
	return nil
}

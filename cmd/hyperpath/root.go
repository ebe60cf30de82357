package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperpath/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hyperpath",
		Short: "Hyperpath maps high-dimensional points onto bounded 3D paths",
		Long: `Hyperpath folds every coordinate beyond X/Y/Z into a clamped displacement
inside its own shell and accumulates the displacements into a 3D path that a
renderer can draw without hypercube clutter.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to the hyperpath YAML configuration")

	root.AddCommand(newTransformCmd(), newShellsCmd(), newDemoCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the --config file and builds its logger.
func loadConfig(cmd *cobra.Command) (*config.File, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

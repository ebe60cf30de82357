package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpath/shell"
	"github.com/katalvlaran/hyperpath/vector"
)

// maxListedDim bounds --max-dim so a typo cannot allocate a huge table.
const maxListedDim = 4096

func newShellsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shells",
		Short: "Print shell radii and directions of the configured engine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := cfg.EngineConfig()
			if err != nil {
				return err
			}

			maxDim, _ := cmd.Flags().GetInt("max-dim")
			if maxDim <= 0 {
				maxDim = engine.LimitDimensions()
			}
			if maxDim > maxListedDim {
				return fmt.Errorf("--max-dim %d exceeds %d", maxDim, maxListedDim)
			}
			shells, err := shell.Radii(engine, maxDim)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DIM\tRADIUS\tANGLE")
			for _, s := range shells {
				fmt.Fprintf(tw, "D%d\t%g\t%g°\n", s.Dim, s.Radius, vector.Angle(s.Dim, engine.AngleStep()))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().Int("max-dim", 0, "Highest dimension to list, at most 4096 (default limit_dimensions)")

	return cmd
}

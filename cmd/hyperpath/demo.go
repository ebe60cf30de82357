package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperpath/batch"
	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/transform"
)

// demoLimit caps the demo engine at X, Y, Z, D4, D5.
const demoLimit = 5

// demoPoints exercises a system limited to five dimensions (X, Y, Z, D4, D5):
// two valid points and one that carries D6/D7 and gets truncated.
var demoPoints = []transform.RawPoint{
	transform.NewPoint("Valid Point", 8, 0, 0, 2, 20),
	transform.NewPoint("Valid Point", 8, 0, 0, 2, -20),
	transform.NewPoint("Overloaded Point", 8, 0, 0, 2, 2, 99, 99),
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a built-in five-dimension scenario and print the paths",
		Long: `Runs three built-in points through the configured engine. The engine block
of --config applies (slopes, angle step, system length) except
limit_dimensions, which the demo pins to 5 so the last point is truncated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			configured, err := cfg.EngineConfig()
			if err != nil {
				return err
			}
			params := configured.Params()
			params.LimitDimensions = demoLimit
			engine, err := hyperspace.NewConfig(params)
			if err != nil {
				return err
			}
			logger.Info("demo engine", zap.Stringer("config", engine))

			res, err := batch.TransformAll(demoPoints, engine, batch.WithLogger(logger), batch.WithWorkers(1))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range res.Paths {
				fmt.Fprintf(out, "%s truncated=%t\n", p.Label, p.Truncated)
				for _, s := range p.Steps {
					fmt.Fprintf(out, "  %-14s (%.3f, %.3f, %.3f)\n", s.Name(p.Label), s.Pos.X, s.Pos.Y, s.Pos.Z)
				}
			}

			return res.Err()
		},
	}
}

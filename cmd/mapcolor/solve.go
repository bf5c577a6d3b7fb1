package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/internal/render"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		mapPath  string
		colors   int
		format   string
		trace    bool
		maxSteps int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Color a map and print the assignment",
		Example: `  mapcolor solve --map examples/maps/south_america.yaml --colors 3
  mapcolor solve --map map.json --colors 2 --trace --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			m, err := loadMap(mapPath)
			if err != nil {
				return err
			}
			warnAsymmetric(a.log, m)

			opts := []coloring.Option{coloring.WithContext(cmd.Context())}
			if cmd.Flags().Changed("max-steps") {
				opts = append(opts, coloring.WithMaxSteps(maxSteps))
			}

			start := time.Now()
			res, err := coloring.Solve(m, colors, opts...)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			a.log.Debug("search finished",
				"regions", m.Len(),
				"colors", colors,
				"solved", res.Solved,
				"steps", len(res.Trace),
				"duration", time.Since(start),
			)
			if res.Solved && m.Symmetric() {
				if err := coloring.Verify(m, res.Assignment, colors); err != nil {
					return fmt.Errorf("verify: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			report := render.Report{Order: m.Regions(), NumColors: colors, Result: res, ShowTrace: trace}

			return render.Write(out, f, report, render.ProfileFor(out))
		},
	}

	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "Map file (.json, .yaml, or a .txt painting)")
	cmd.Flags().IntVarP(&colors, "colors", "k", 0, "Number of available colors")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, markdown")
	cmd.Flags().BoolVar(&trace, "trace", false, "Include every search step")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Abort after this many steps")
	_ = cmd.MarkFlagRequired("map")
	_ = cmd.MarkFlagRequired("colors")

	return cmd
}

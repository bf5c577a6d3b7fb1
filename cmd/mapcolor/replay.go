package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/internal/render"
	"github.com/katalvlaran/mapcolor/replay"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		mapPath string
		colors  int
		step    int
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Show the board at a given step of the search",
		Long: `replay runs the search and prints the board as it stood after step K
(1-based; 0 is the blank board), with an explanation of that step.
Without --step the final board is shown; --all prints every board in turn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(mapPath)
			if err != nil {
				return err
			}
			warnAsymmetric(a.log, m)

			res, err := coloring.Solve(m, colors,
				coloring.WithContext(cmd.Context()),
				coloring.WithMaxSteps(a.cfg.MaxSteps),
			)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			out := cmd.OutOrStdout()
			prof := render.ProfileFor(out)
			order := m.Regions()
			pl := replay.NewPlayer(res.Trace)

			if all {
				if err := render.Board(out, order, pl, res.Solved, replay.DefaultPalette, prof); err != nil {
					return err
				}
				for pl.Next() {
					fmt.Fprintln(out)
					if err := render.Board(out, order, pl, res.Solved, replay.DefaultPalette, prof); err != nil {
						return err
					}
				}
				return nil
			}

			k := pl.Len()
			if cmd.Flags().Changed("step") {
				k = step
			}
			if err := pl.Seek(k - 1); err != nil {
				return fmt.Errorf("step %d: %w", k, err)
			}

			return render.Board(out, order, pl, res.Solved, replay.DefaultPalette, prof)
		},
	}

	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "Map file (.json, .yaml, or a .txt painting)")
	cmd.Flags().IntVarP(&colors, "colors", "k", 0, "Number of available colors")
	cmd.Flags().IntVar(&step, "step", 0, "Step to show, 1-based (0 is the blank board)")
	cmd.Flags().BoolVar(&all, "all", false, "Print the board after every step")
	_ = cmd.MarkFlagRequired("map")
	_ = cmd.MarkFlagRequired("colors")

	return cmd
}

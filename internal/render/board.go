package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/mapcolor/replay"
)

// uncolored marks a region without a color on the board.
const uncolored = "-"

// Board writes the replay position of p: a header line with the step
// narration, then one line per region in order with its current color.
func Board(w io.Writer, order []string, pl *replay.Player, solved bool, pal replay.Palette, prof termenv.Profile) error {
	if len(pal) == 0 {
		pal = replay.DefaultPalette
	}
	fmt.Fprintf(w, "Step %d/%d: %s\n", pl.Index()+1, pl.Len(), replay.Narrate(pl, solved, pal))

	state := pl.State()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, id := range order {
		c, ok := state[id]
		if !ok {
			fmt.Fprintf(tw, "%s\t%s\n", id, uncolored)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", id, Swatch(pal.Swatch(c), prof))
	}

	return tw.Flush()
}

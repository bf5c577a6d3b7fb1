package replay

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/coloring"
)

// Explain describes one trace entry in a sentence, naming colors through pal.
func Explain(s coloring.Step, pal Palette) string {
	switch {
	case s.Undo:
		return fmt.Sprintf("Backtracking: region %s has no options left", s.Region)
	case s.Accepted:
		return fmt.Sprintf("Region %s painted %s", s.Region, pal.Swatch(s.Color).Name)
	default:
		return fmt.Sprintf("Conflict: %s cannot be %s", s.Region, pal.Swatch(s.Color).Name)
	}
}

// Narrate explains the player's position: the current step, or an opening
// line on the blank board that depends on whether the search succeeded.
func Narrate(p *Player, solved bool, pal Palette) string {
	s, ok := p.Current()
	if ok {
		return Explain(s, pal)
	}
	if !solved && p.Len() > 0 {
		return "The search determined that there is no solution"
	}

	return "Step forward to start the search"
}

// Action is the short table label of a step: "Try Pink" or "Backtrack".
func Action(s coloring.Step, pal Palette) string {
	if s.Undo {
		return "Backtrack"
	}

	return "Try " + pal.Swatch(s.Color).Name
}

// Outcome is the short table status of a step.
func Outcome(s coloring.Step) string {
	switch {
	case s.Undo:
		return "undo"
	case s.Accepted:
		return "valid"
	default:
		return "failed"
	}
}

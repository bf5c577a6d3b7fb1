package replay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mapcolor/coloring"
)

// ErrIndexOutOfRange is returned by Seek for an index outside [-1, Len()-1].
var ErrIndexOutOfRange = errors.New("replay: index out of range")

// StateAt folds trace[0..k] into the board after step k. k < 0 gives an empty
// board; k past the end is clamped to the last step.
func StateAt(trace []coloring.Step, k int) coloring.Assignment {
	board := make(coloring.Assignment)
	if k >= len(trace) {
		k = len(trace) - 1
	}
	for i := 0; i <= k; i++ {
		apply(board, trace[i])
	}

	return board
}

func apply(board coloring.Assignment, s coloring.Step) {
	switch {
	case s.Undo:
		delete(board, s.Region)
	case s.Accepted:
		board[s.Region] = s.Color
	}
}

// Player walks a trace one step at a time. Index -1 is the blank board
// before the first step. A Player is not safe for concurrent use.
type Player struct {
	trace []coloring.Step
	idx   int
	board coloring.Assignment
}

// NewPlayer returns a Player positioned before the first step.
func NewPlayer(trace []coloring.Step) *Player {
	p := &Player{trace: trace}
	p.Reset()

	return p
}

// Reset returns to the blank board.
func (p *Player) Reset() {
	p.idx = -1
	p.board = make(coloring.Assignment)
}

// Next applies the following step. It reports false, without moving, at the end.
func (p *Player) Next() bool {
	if p.idx >= len(p.trace)-1 {
		return false
	}
	p.idx++
	apply(p.board, p.trace[p.idx])

	return true
}

// Prev steps back one entry. It reports false, without moving, at the blank board.
// Undos cannot be reversed locally, so the board is rebuilt from the start.
func (p *Player) Prev() bool {
	if p.idx < 0 {
		return false
	}
	p.idx--
	p.board = StateAt(p.trace, p.idx)

	return true
}

// Seek jumps to step k (-1 for the blank board).
func (p *Player) Seek(k int) error {
	if k < -1 || k >= len(p.trace) {
		return fmt.Errorf("%w: %d not in [-1,%d]", ErrIndexOutOfRange, k, len(p.trace)-1)
	}
	p.idx = k
	p.board = StateAt(p.trace, k)

	return nil
}

// Index returns the position of the last applied step, -1 before the first.
func (p *Player) Index() int { return p.idx }

// Len returns the trace length.
func (p *Player) Len() int { return len(p.trace) }

// Done reports whether the last step has been applied.
func (p *Player) Done() bool { return p.idx == len(p.trace)-1 }

// Current returns the last applied step; false before the first.
func (p *Player) Current() (coloring.Step, bool) {
	if p.idx < 0 {
		return coloring.Step{}, false
	}

	return p.trace[p.idx], true
}

// State returns a copy of the board after the current step.
func (p *Player) State() coloring.Assignment {
	return p.board.Clone()
}

// Package replay steps through a coloring trace the way an animation does:
// forwards, backwards, or straight to step k, rebuilding the board after each
// move and explaining the step in words.
//
// The board after step k is a pure fold over trace[0..k]: an undo removes the
// region's color, an accepted trial sets it, a rejected trial changes nothing.
package replay

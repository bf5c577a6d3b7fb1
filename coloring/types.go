package coloring

import (
	"context"
	"errors"
)

// Color is a palette entry. Valid colors are 1..numColors.
type Color int

// NoColor marks "no color" in undo steps.
const NoColor Color = 0

var (
	// ErrMapNil is returned when a nil *core.Map is passed to Solve or Verify.
	ErrMapNil = errors.New("coloring: map is nil")

	// ErrStepLimit is returned when the search would record more steps than
	// allowed by WithMaxSteps.
	ErrStepLimit = errors.New("coloring: step limit exceeded")

	// ErrUncolored indicates that Verify found a region without a color.
	ErrUncolored = errors.New("coloring: region has no color")

	// ErrConflict indicates that Verify found two bordering regions sharing a color.
	ErrConflict = errors.New("coloring: bordering regions share a color")

	// ErrColorOutOfRange indicates that Verify found a color outside 1..numColors.
	ErrColorOutOfRange = errors.New("coloring: color outside the palette")
)

// Assignment maps a region to its color.
type Assignment map[string]Color

// Clone returns an independent copy (nil stays nil).
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	for r, c := range a {
		out[r] = c
	}

	return out
}

// Step is one trace entry: a color trial or an undo.
type Step struct {
	// Region is the region the step acts on.
	Region string

	// Color is the attempted color; NoColor for undo steps.
	Color Color

	// Accepted reports whether the trial's color was valid and got assigned.
	// Always false for undo steps.
	Accepted bool

	// Undo marks the retraction of Region's color after a failed deeper search.
	Undo bool
}

// Stats summarizes a trace.
type Stats struct {
	// Trials counts trial steps (accepted or not).
	Trials int

	// Accepted counts trials whose color was assigned.
	Accepted int

	// Undos counts undo steps.
	Undos int

	// MaxDepth is the deepest search position reached, counted in frames
	// (position+1); n on success for an n-region map.
	MaxDepth int
}

// Result captures the outcome of a search.
type Result struct {
	// Solved reports whether a complete coloring was found.
	Solved bool

	// Assignment is the complete coloring when Solved, nil otherwise.
	Assignment Assignment

	// Trace is every step of the whole search in order, failed branches included.
	Trace []Step

	// Stats summarizes Trace.
	Stats Stats
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters of the search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per search frame.
	Ctx context.Context

	// MaxSteps, if positive, caps the trace length; the step that would exceed it
	// aborts the search with ErrStepLimit. Default 0 (no limit).
	MaxSteps int

	// OnStep, if non-nil, is called for every trace entry once it is final for
	// that moment: trials after the validity decision, undos when appended.
	// Returning an error aborts the search with that error.
	OnStep func(index int, s Step) error
}

// DefaultOptions returns Options with a background context, no step limit and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps returns an Option that caps the number of recorded steps.
// Non-positive values disable the cap.
func WithMaxSteps(limit int) Option {
	return func(o *Options) {
		o.MaxSteps = limit
	}
}

// WithOnStep returns an Option that installs fn as a per-step hook.
func WithOnStep(fn func(index int, s Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Package coloring implements the backtracking search over a core.Map.
//
// Key features:
//   - Solve(m, k, opts...): fixed region order (insertion order), ascending colors
//   - Explicit frame stack: one frame (position, last color tried) per colored region
//   - Trace: append-then-patch trial entries, one undo entry per retraction
//   - Cancellation via context.Context, step budget, per-step hook
package coloring

import (
	"fmt"

	"github.com/katalvlaran/mapcolor/core"
)

// frame is one level of the search: the region at position pos of the order and
// the last color tried there (NoColor before the first trial).
type frame struct {
	pos  int
	last Color
}

// searcher encapsulates state during a search.
type searcher struct {
	order []string            // search order
	adj   map[string][]string // declared neighbours
	k     Color               // palette size
	opts  Options             // search options
	asg   Assignment          // working assignment, owned by this search
	res   *Result             // result collector
}

// Solve colors m with numColors colors by exhaustive backtracking.
//
// It returns a Result holding the first complete coloring found in search order
// (or Solved == false after the whole space is exhausted) together with the trace
// of every trial and undo. An unsatisfiable map is not an error.
//
// Zero regions are solved trivially with an empty assignment and an empty trace.
// numColors <= 0 with at least one region fails with an empty trace.
//
// When aborted (context, step limit or hook error) Solve returns the partial
// Result (trace so far, no assignment) and the error.
func Solve(m *core.Map, numColors int, opts ...Option) (*Result, error) {
	// 1. Validate input map
	if m == nil {
		return nil, ErrMapNil
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Snapshot the map; the search never touches m again.
	order, adj := m.Snapshot()

	k := Color(numColors)
	if k < 0 {
		k = 0
	}

	s := &searcher{
		order: order,
		adj:   adj,
		k:     k,
		opts:  o,
		asg:   make(Assignment, len(order)),
		res:   &Result{Trace: make([]Step, 0, len(order))},
	}

	// 4. Search
	solved, err := s.run()
	if err != nil {
		return s.res, err
	}

	// 5. Only a complete coloring ever leaves the search, as a copy.
	s.res.Solved = solved
	if solved {
		s.res.Assignment = s.asg.Clone()
	}

	return s.res, nil
}

// run drives the frame stack. It reports whether a complete coloring was found.
//
// A frame at position i corresponds to one activation of the recursive
// formulation: it tries colors after f.last, pushes a frame for i+1 on an
// accepted color and, when its child frame fails, undoes its own color and
// resumes with the next one.
func (s *searcher) run() (bool, error) {
	n := len(s.order)
	if n == 0 {
		return true, nil
	}

	stack := make([]frame, 1, n)
	stack[0] = frame{pos: 0, last: NoColor}

	for len(stack) > 0 {
		// 1. Cancellation check, once per frame activation
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}

		if depth := len(stack); depth > s.res.Stats.MaxDepth {
			s.res.Stats.MaxDepth = depth
		}

		// 2. Try the remaining colors of the top frame.
		f := &stack[len(stack)-1]
		region := s.order[f.pos]
		advanced := false
		for f.last < s.k {
			f.last++
			c := f.last

			idx, err := s.record(Step{Region: region, Color: c})
			if err != nil {
				return false, err
			}
			s.res.Stats.Trials++

			if !isValid(region, c, s.asg, s.adj) {
				if err = s.emit(idx); err != nil {
					return false, err
				}
				continue
			}

			// Accept: assign and patch the entry just appended.
			s.asg[region] = c
			s.res.Trace[idx].Accepted = true
			s.res.Stats.Accepted++
			if err = s.emit(idx); err != nil {
				return false, err
			}

			// Base case: every region is colored.
			if f.pos+1 == n {
				return true, nil
			}

			stack = append(stack, frame{pos: f.pos + 1, last: NoColor})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		// 3. Colors exhausted: fail back to the parent frame, which undoes its color.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return false, nil
		}
		parent := s.order[stack[len(stack)-1].pos]
		delete(s.asg, parent)

		idx, err := s.record(Step{Region: parent, Color: NoColor, Undo: true})
		if err != nil {
			return false, err
		}
		s.res.Stats.Undos++
		if err = s.emit(idx); err != nil {
			return false, err
		}
	}

	return false, nil
}

// record appends st to the trace, enforcing the step budget, and returns its index.
func (s *searcher) record(st Step) (int, error) {
	if s.opts.MaxSteps > 0 && len(s.res.Trace) >= s.opts.MaxSteps {
		return -1, fmt.Errorf("%w: %d steps", ErrStepLimit, s.opts.MaxSteps)
	}
	s.res.Trace = append(s.res.Trace, st)

	return len(s.res.Trace) - 1, nil
}

// emit hands the final form of trace entry idx to the OnStep hook.
func (s *searcher) emit(idx int) error {
	if s.opts.OnStep == nil {
		return nil
	}
	st := s.res.Trace[idx]
	if err := s.opts.OnStep(idx, st); err != nil {
		return fmt.Errorf("coloring: OnStep hook at step %d (%q): %w", idx, st.Region, err)
	}

	return nil
}

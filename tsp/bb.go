// Package tsp - Little's branch-and-bound (best-first search over reduced
// cost matrices).
//
// Engine drives one search from a root Subproblem to a terminal state.
//
// Rationale (succinct):
//  1. Reduction: subtracting row/column minima keeps the ranking of
//     completions and raises an admissible lower bound.
//  2. Branching: from the current node, take the first zero-cost successor
//     in scan order ("take the edge"); its clone with that edge blocked is
//     queued ("skip the edge"). Together they cover every completion.
//  3. Best-first: the active subproblem always has the lowest bound among
//     itself and the pool (first-queued wins ties). A reduction that lifts
//     the active bound above the pool minimum triggers re-selection before
//     branching, so the first subproblem closed at size 1 is optimal.
//  4. Pruning: a subproblem with no zero-cost successor, or whose closing
//     edge is blocked, has no completion and is dropped silently.
//  5. Cancellation: ctx is polled once per iteration; a done context drops
//     the pool and ends the search.
//
// Complexity:
//   - Worst case exponential in N (exact search).
//   - Per iteration: O(N²) for reduction, cloning and commit + O(|pool|) for
//     selection.
package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/littletsp/matrix"
)

// State is the lifecycle of an Engine.
type State int

const (
	// Searching means Run has not reached a terminal state yet.
	Searching State = iota
	// Solved means an optimal Route was produced.
	Solved
	// Infeasible means the pool ran dry without a tour.
	Infeasible
	// Cancelled means the context was done before a tour was found.
	Cancelled
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Solved:
		return "solved"
	case Infeasible:
		return "infeasible"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats counts search events.
type Stats struct {
	Iterations int `json:"iterations"` // loop iterations
	Branches   int `json:"branches"`   // take/skip splits
	Discarded  int `json:"discarded"`  // subproblems dropped as infeasible
	Swaps      int `json:"swaps"`      // best-first reselections
	PeakPool   int `json:"peak_pool"`  // largest waiting pool
}

// Engine runs one branch-and-bound search. It is single-use and not safe
// for concurrent use; start a new Engine per search.
type Engine struct {
	active *Subproblem
	pool   pool
	state  State
	stats  Stats
}

// NewEngine validates dist and prepares the root subproblem.
//
// Errors: matrix validation sentinels, ErrTooFewNodes.
func NewEngine(dist matrix.Matrix) (*Engine, error) {
	root, err := NewSubproblem(dist)
	if err != nil {
		return nil, err
	}
	if root.Size() < MinNodes {
		return nil, ErrTooFewNodes
	}

	return &Engine{active: root}, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Stats returns the counters collected so far.
func (e *Engine) Stats() Stats {
	st := e.stats
	st.PeakPool = e.pool.peak

	return st
}

// Run searches until a terminal state is reached.
//
// Returns the optimal Route, or ErrNoTour, or an error matching both
// ErrCancelled and ctx.Err().
func (e *Engine) Run(ctx context.Context) (Route, error) {
	if e.state != Searching {
		return Route{}, ErrEngineDone
	}

	var (
		t    int
		ok   bool
		from int
		alt  *Subproblem
	)
	for {
		if ctx.Err() != nil {
			return Route{}, e.cancel(ctx)
		}
		e.stats.Iterations++

		// 1. Terminal check: one cell left, the edge back to the start.
		if e.active.Size() == 1 {
			closing := e.active.cells[0]
			if closing.Cost.IsBlocked() {
				if !e.discard() {
					return Route{}, e.infeasible()
				}
				continue
			}

			return e.solve(closing), nil
		}

		// 2. Best-first selection.
		e.selectBest()

		// 3. Reduce; re-select if the bound rose above a waiting sibling.
		if e.active.Reduce() > 0 {
			if b, has := e.pool.minBound(); has && b < e.active.Bound() {
				continue
			}
		}

		// 4. Branch on the first zero-cost successor.
		if t, ok = e.active.NextZero(); !ok {
			if !e.discard() {
				return Route{}, e.infeasible()
			}
			continue
		}

		// 5. Queue "skip (from, t)", then take it on the active subproblem.
		from = e.active.Current()
		alt = e.active.Clone()
		alt.Block(from, t)
		e.pool.push(alt)
		e.stats.Branches++

		e.active.Commit(from, t)
		if e.active.Size() > 1 {
			e.active.Block(t, startNode)
		}
	}
}

// selectBest swaps the active subproblem with the pool's first minimum when
// that minimum is strictly lower.
func (e *Engine) selectBest() {
	i := e.pool.minIndex()
	if i < 0 || !e.pool.items[i].Less(e.active) {
		return
	}
	next := e.pool.popMin()
	e.pool.push(e.active)
	e.active = next
	e.stats.Swaps++
}

// discard drops the active subproblem and promotes the pool's best entry.
// It reports false when the pool is empty.
func (e *Engine) discard() bool {
	e.stats.Discarded++
	e.active = e.pool.popMin()

	return e.active != nil
}

// solve commits the closing edge and builds the Route.
func (e *Engine) solve(closing Cell) Route {
	w, _ := closing.Cost.Value()
	e.active.Commit(closing.From, closing.To)
	r := newRoute(e.active.Bound()+w, e.active.transitions)
	e.state = Solved
	e.release()

	return r
}

// infeasible ends the search without a tour.
func (e *Engine) infeasible() error {
	e.state = Infeasible
	e.release()

	return ErrNoTour
}

// cancel ends the search on a done context.
func (e *Engine) cancel(ctx context.Context) error {
	e.state = Cancelled
	e.release()

	return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
}

// release drops every subproblem the engine still references.
func (e *Engine) release() {
	e.stats.PeakPool = e.pool.peak
	e.pool.release()
	e.active = nil
}

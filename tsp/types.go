package tsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/littletsp/matrix"
)

// Input size limits.
const (
	// MinNodes is the smallest instance with a non-trivial tour.
	MinNodes = 3

	// DefaultMaxNodes bounds interactive instances.
	DefaultMaxNodes = 20

	// HeldKarpMaxNodes bounds the O(N·2ᴺ) table of the reference solver.
	HeldKarpMaxNodes = 16
)

var (
	// ErrNoTour is returned when the blocked transitions admit no
	// Hamiltonian cycle. It is an ordinary outcome, not a failure.
	ErrNoTour = errors.New("tsp: no tour exists")

	// ErrCancelled is returned when the context is done before a tour was
	// found. The returned error also matches the context's error.
	ErrCancelled = errors.New("tsp: search cancelled")

	// ErrTooFewNodes is returned for N < MinNodes.
	ErrTooFewNodes = errors.New("tsp: too few nodes")

	// ErrTooManyNodes is returned for N above the configured limit.
	ErrTooManyNodes = errors.New("tsp: too many nodes")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidTour is returned by ValidateTour for malformed sequences.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrBlockedTransition is returned by TourCost when a tour uses a
	// blocked transition.
	ErrBlockedTransition = errors.New("tsp: tour uses a blocked transition")

	// ErrEngineDone is returned by Engine.Run on an engine that already
	// reached a terminal state.
	ErrEngineDone = errors.New("tsp: engine already finished")
)

// Transition is one committed directed edge of a route.
type Transition struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// String renders the transition as "from→to".
func (t Transition) String() string {
	return strconv.Itoa(t.From) + "→" + strconv.Itoa(t.To)
}

// Cell is one entry of a subproblem's reduced cost matrix.
// Cells are values: changing a cost means building a new Cell.
type Cell struct {
	From int         `json:"from"`
	To   int         `json:"to"`
	Cost matrix.Cost `json:"cost"`
}

// WithCost returns a Cell with the same indices and cost c.
func (c Cell) WithCost(cost matrix.Cost) Cell {
	return Cell{From: c.From, To: c.To, Cost: cost}
}

// Route is an optimal tour.
type Route struct {
	// Cost is the total length of the cycle.
	Cost int `json:"cost"`

	// Sequence lists node indices in visiting order, starting and ending at 0.
	// For N nodes, len(Sequence) == N+1.
	Sequence []int `json:"sequence"`
}

// newRoute builds a Route from committed transitions, prepending the start
// node of the first transition.
func newRoute(cost int, ts []Transition) Route {
	seq := make([]int, 0, len(ts)+1)
	if len(ts) > 0 {
		seq = append(seq, ts[0].From)
	}
	for _, t := range ts {
		seq = append(seq, t.To)
	}

	return Route{Cost: cost, Sequence: seq}
}

// Transitions returns the consecutive edges of the route.
func (r Route) Transitions() []Transition {
	if len(r.Sequence) < 2 {
		return nil
	}
	out := make([]Transition, 0, len(r.Sequence)-1)
	for i := 1; i < len(r.Sequence); i++ {
		out = append(out, Transition{From: r.Sequence[i-1], To: r.Sequence[i]})
	}

	return out
}

// Equal reports whether both routes have the same cost and sequence.
func (r Route) Equal(o Route) bool {
	if r.Cost != o.Cost || len(r.Sequence) != len(o.Sequence) {
		return false
	}
	for i := range r.Sequence {
		if r.Sequence[i] != o.Sequence[i] {
			return false
		}
	}

	return true
}

// String renders the route as "0 → 1 → 3 → 2 → 0 (cost 80)".
func (r Route) String() string {
	parts := make([]string, len(r.Sequence))
	for i, v := range r.Sequence {
		parts[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("%s (cost %d)", strings.Join(parts, " → "), r.Cost)
}

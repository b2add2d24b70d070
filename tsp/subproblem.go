// Package tsp - reduced-cost subproblem of Little's branch-and-bound.
//
// A Subproblem is an owned snapshot of one partial solution:
//   - cells:       the shrinking cost matrix, row-major over the rows/columns
//     still in play (insertion order is significant for branching),
//   - size:        the active dimension (N at the root, −1 per committed edge),
//   - bound:       accumulated reduction total, a lower bound on every tour
//     extending the committed path, and the priority key,
//   - current:     the last node on the committed path (0 at the root),
//   - transitions: the committed path,
//   - remaining:   unvisited nodes in scan order.
//
// Ownership:
//   - Mutating methods touch only the receiver. Clone copies every slice, so
//     siblings created by branching never share storage.
package tsp

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/littletsp/matrix"
)

// startNode is the fixed origin of every tour.
const startNode = 0

// Subproblem is a partial solution with its reduced cost matrix.
type Subproblem struct {
	cells       []Cell
	size        int
	bound       int
	current     int
	transitions []Transition
	remaining   []int
}

// NewSubproblem builds the root subproblem covering every node of dist.
// The diagonal is treated as blocked whatever dist reports there.
//
// Errors: matrix validation sentinels (ErrNonSquare, ErrNegativeCost, ...).
// Complexity: O(N²).
func NewSubproblem(dist matrix.Matrix) (*Subproblem, error) {
	n, err := matrix.ValidateMatrix(dist)
	if err != nil {
		return nil, err
	}

	s := &Subproblem{
		cells:       make([]Cell, 0, n*n),
		size:        n,
		current:     startNode,
		transitions: make([]Transition, 0, n),
		remaining:   make([]int, 0, n-1),
	}
	var (
		i, j int
		c    matrix.Cost
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c, _ = dist.At(i, j) // bounds already validated
			if i == j {
				c = matrix.Blocked()
			}
			s.cells = append(s.cells, Cell{From: i, To: j, Cost: c})
		}
	}
	for i = 0; i < n; i++ {
		if i != startNode {
			s.remaining = append(s.remaining, i)
		}
	}

	return s, nil
}

// Size returns the active dimension.
func (s *Subproblem) Size() int { return s.size }

// Bound returns the accumulated lower bound.
func (s *Subproblem) Bound() int { return s.bound }

// Current returns the last node on the committed path.
func (s *Subproblem) Current() int { return s.current }

// Transitions returns a copy of the committed path.
func (s *Subproblem) Transitions() []Transition { return slices.Clone(s.transitions) }

// Remaining returns a copy of the unvisited nodes in scan order.
func (s *Subproblem) Remaining() []int { return slices.Clone(s.remaining) }

// Cells returns a copy of the reduced matrix in row-major order.
func (s *Subproblem) Cells() []Cell { return slices.Clone(s.cells) }

// Cell returns the (from, to) cell if it is still part of the matrix.
func (s *Subproblem) Cell(from, to int) (Cell, bool) {
	if idx := s.find(from, to); idx >= 0 {
		return s.cells[idx], true
	}

	return Cell{}, false
}

// find returns the position of (from, to) in cells, or −1.
func (s *Subproblem) find(from, to int) int {
	for i := range s.cells {
		if s.cells[i].From == from && s.cells[i].To == to {
			return i
		}
	}

	return -1
}

// Reduce subtracts each row minimum and then each column minimum from the
// open cells of that line and adds the subtracted amounts to the bound.
// Lines without open cells are left alone. It returns the bound increase.
//
// Complexity: O(size²).
func (s *Subproblem) Reduce() int {
	var (
		n     = s.size
		k     int
		added int
	)
	for k = 0; k < n; k++ { // rows: stride 1
		added += s.reduceLine(k*n, 1)
	}
	for k = 0; k < n; k++ { // columns: stride n
		added += s.reduceLine(k, n)
	}
	s.bound += added

	return added
}

// reduceLine reduces the size cells starting at first, stepping by stride.
func (s *Subproblem) reduceLine(first, stride int) int {
	var (
		minW  int
		found bool
		w     int
		ok    bool
		k     int
		idx   int
	)
	for k = 0; k < s.size; k++ {
		idx = first + k*stride
		if w, ok = s.cells[idx].Cost.Value(); !ok {
			continue
		}
		if !found || w < minW {
			minW, found = w, true
		}
		if minW == 0 {
			return 0
		}
	}
	if !found {
		return 0
	}
	for k = 0; k < s.size; k++ {
		idx = first + k*stride
		s.cells[idx] = s.cells[idx].WithCost(s.cells[idx].Cost.Sub(minW))
	}

	return minW
}

// NextZero scans remaining in order and returns the first node t whose
// cell (current, t) has weight exactly 0. The scan order is the branching
// tie-break.
func (s *Subproblem) NextZero() (int, bool) {
	var idx int
	for _, t := range s.remaining {
		if idx = s.find(s.current, t); idx >= 0 && s.cells[idx].Cost.IsZero() {
			return t, true
		}
	}

	return 0, false
}

// Block forbids the (from, to) transition in place. It is a no-op when the
// cell has already been dropped from the matrix.
func (s *Subproblem) Block(from, to int) {
	if idx := s.find(from, to); idx >= 0 {
		s.cells[idx] = s.cells[idx].WithCost(matrix.Blocked())
	}
}

// Commit takes the (from, to) edge: it records the transition, moves the
// current node to `to`, removes `to` from the unvisited set, forbids the
// reverse edge, drops row `from` and column `to`, and shrinks size by one.
// It reports false, changing nothing, when (from, to) is not an active cell.
//
// Complexity: O(size²).
func (s *Subproblem) Commit(from, to int) bool {
	if s.find(from, to) < 0 {
		return false
	}
	s.transitions = append(s.transitions, Transition{From: from, To: to})
	s.current = to
	s.remaining = slices.DeleteFunc(s.remaining, func(v int) bool { return v == to })
	s.Block(to, from)

	kept := s.cells[:0]
	for _, c := range s.cells {
		if c.From == from || c.To == to {
			continue
		}
		kept = append(kept, c)
	}
	clear(s.cells[len(kept):])
	s.cells = kept
	s.size--

	return true
}

// Clone returns an independent deep copy.
func (s *Subproblem) Clone() *Subproblem {
	return &Subproblem{
		cells:       slices.Clone(s.cells),
		size:        s.size,
		bound:       s.bound,
		current:     s.current,
		transitions: slices.Clone(s.transitions),
		remaining:   slices.Clone(s.remaining),
	}
}

// Compare orders subproblems by ascending bound; equal bounds compare equal.
func (s *Subproblem) Compare(o *Subproblem) int { return cmp.Compare(s.bound, o.bound) }

// Less reports whether s has a strictly lower bound than o.
func (s *Subproblem) Less(o *Subproblem) bool { return s.bound < o.bound }

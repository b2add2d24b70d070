package tsp

import "slices"

// pool holds the subproblems waiting to be explored.
//
// A linear scan is used instead of a heap: ties must go to the entry that
// was queued first, and a binary heap does not keep insertion order among
// equal keys. Pools stay small for N ≤ 20.
type pool struct {
	items []*Subproblem
	peak  int
}

// push appends s at the back of the scan order.
func (p *pool) push(s *Subproblem) {
	p.items = append(p.items, s)
	if len(p.items) > p.peak {
		p.peak = len(p.items)
	}
}

// minIndex returns the first position holding the lowest bound, or −1.
func (p *pool) minIndex() int {
	best := -1
	for i, s := range p.items {
		if best < 0 || s.Less(p.items[best]) {
			best = i
		}
	}

	return best
}

// minBound returns the lowest waiting bound.
func (p *pool) minBound() (int, bool) {
	if i := p.minIndex(); i >= 0 {
		return p.items[i].bound, true
	}

	return 0, false
}

// popMin removes and returns the first lowest-bound entry, or nil.
func (p *pool) popMin() *Subproblem {
	i := p.minIndex()
	if i < 0 {
		return nil
	}
	s := p.items[i]
	p.items = slices.Delete(p.items, i, i+1)

	return s
}

// release drops every waiting subproblem.
func (p *pool) release() {
	clear(p.items)
	p.items = nil
}

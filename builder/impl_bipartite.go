package builder

import (
	"github.com/katalvlaran/littletsp/matrix"
)

// Bipartite returns a (left+right)-node matrix where nodes [0,left) and
// [left,left+right) only connect across the two groups. A Hamiltonian
// cycle alternates sides, so one exists iff left == right (and left ≥ 1).
// Unequal groups give instances with no tour whose infeasibility is slow
// to prove, which makes them useful for timeout and cancellation tests.
//
// Cross weights come from the WeightFn; WithBlockedProbability applies.
//
// Errors: ErrTooFewNodes if left < 1 or right < 1.
func Bipartite(left, right int, opts ...BuilderOption) (*matrix.Costs, error) {
	if left < 1 || right < 1 {
		return nil, builderErrorf(methodBipartite, ErrTooFewNodes, "left=%d right=%d", left, right)
	}
	cfg := newBuilderConfig(opts...)
	n := left + right
	m, err := matrix.NewCosts(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c := matrix.Blocked()
			if (i < left) != (j < left) {
				c = cfg.draw()
			}
			if err = m.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

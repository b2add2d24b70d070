package builder

import (
	"github.com/katalvlaran/littletsp/matrix"
)

// Planted hides a tour of known cost among heavier transitions. A random
// cyclic order of the n nodes gets weight 1 on each of its edges; every
// other off-diagonal cell draws from the WeightFn shifted up by 1 (so it
// is ≥ 1). The planted tour therefore costs n and no tour is cheaper.
// The order is returned starting and ending at 0.
//
// WithBlockedProbability blocks only non-planted cells, so a tour always
// exists. WithSymmetric is ignored.
//
// Errors: ErrTooFewNodes if n < 2.
func Planted(n int, opts ...BuilderOption) (*matrix.Costs, []int, error) {
	if n < minNodes {
		return nil, nil, builderErrorf(methodPlanted, ErrTooFewNodes, "n=%d < %d", n, minNodes)
	}
	cfg := newBuilderConfig(opts...)

	// Node 0 stays first; the rest are shuffled.
	order := make([]int, 0, n+1)
	order = append(order, 0)
	for _, v := range cfg.rng.Perm(n - 1) {
		order = append(order, v+1)
	}
	order = append(order, 0)

	next := make([]int, n)
	for k := 0; k < n; k++ {
		next[order[k]] = order[k+1]
	}

	m, err := matrix.NewCosts(n)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c := cfg.draw()
			if next[i] == j {
				c = matrix.Weight(1)
			} else if w, ok := c.Value(); ok {
				c = matrix.Weight(w + 1)
			}
			if err = m.Set(i, j, c); err != nil {
				return nil, nil, err
			}
		}
	}

	return m, order, nil
}

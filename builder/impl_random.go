package builder

import (
	"github.com/katalvlaran/littletsp/matrix"
)

const (
	methodRandom    = "Random"
	methodEuclidean = "Euclidean"
	methodPlanted   = "Planted"
	methodBipartite = "Bipartite"
)

// minNodes is the smallest instance any constructor produces.
const minNodes = 2

// Random returns an n×n matrix whose off-diagonal cells are drawn
// independently from the configured WeightFn, each blocked with the
// configured probability. With WithSymmetric only the upper triangle is
// drawn and mirrored.
//
// Errors: ErrTooFewNodes if n < 2.
// Complexity: O(n²).
func Random(n int, opts ...BuilderOption) (*matrix.Costs, error) {
	if n < minNodes {
		return nil, builderErrorf(methodRandom, ErrTooFewNodes, "n=%d < %d", n, minNodes)
	}
	cfg := newBuilderConfig(opts...)
	m, err := matrix.NewCosts(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (cfg.symmetric && j < i) {
				continue
			}
			c := cfg.draw()
			if err = setPair(m, cfg.symmetric, i, j, c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// draw yields one open or blocked cost. The blocked roll happens first so
// the number of RNG calls per cell does not depend on the outcome.
func (c *builderConfig) draw() matrix.Cost {
	roll := c.rng.Float64()
	w := c.weightFn(c.rng)
	if c.pBlocked > 0 && roll < c.pBlocked {
		return matrix.Blocked()
	}
	if w < 0 {
		w = 0
	}

	return matrix.Weight(w)
}

// setPair writes c at (i,j) and, when symmetric, at (j,i).
func setPair(m *matrix.Costs, symmetric bool, i, j int, c matrix.Cost) error {
	if err := m.Set(i, j, c); err != nil {
		return err
	}
	if symmetric {
		return m.Set(j, i, c)
	}

	return nil
}

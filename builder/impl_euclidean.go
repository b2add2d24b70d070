package builder

import (
	"math"

	"github.com/katalvlaran/littletsp/matrix"
)

// Point is an integer grid location.
type Point struct{ X, Y int }

// Euclidean places n points uniformly on the [0,side]² grid (WithGridSide)
// and sets cost(i,j) to their rounded distance. The result is symmetric and
// satisfies the triangle inequality up to rounding. WeightFn and
// WithSymmetric are ignored; WithBlockedProbability still applies per
// unordered pair.
//
// Errors: ErrTooFewNodes if n < 2.
func Euclidean(n int, opts ...BuilderOption) (*matrix.Costs, []Point, error) {
	if n < minNodes {
		return nil, nil, builderErrorf(methodEuclidean, ErrTooFewNodes, "n=%d < %d", n, minNodes)
	}
	cfg := newBuilderConfig(opts...)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: cfg.rng.Intn(cfg.gridSide + 1), Y: cfg.rng.Intn(cfg.gridSide + 1)}
	}
	m, err := matrix.NewCosts(n)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c := matrix.Weight(distance(pts[i], pts[j]))
			if cfg.pBlocked > 0 && cfg.rng.Float64() < cfg.pBlocked {
				c = matrix.Blocked()
			}
			if err = setPair(m, true, i, j, c); err != nil {
				return nil, nil, err
			}
		}
	}

	return m, pts, nil
}

func distance(a, b Point) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return int(math.Round(math.Hypot(dx, dy)))
}

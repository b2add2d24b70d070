package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littletsp/builder"
	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

// requireDiagonalBlocked checks the matrix shape every constructor promises.
func requireDiagonalBlocked(t *testing.T, m *matrix.Costs) {
	t.Helper()
	for i := 0; i < m.Size(); i++ {
		c, err := m.At(i, i)
		require.NoError(t, err)
		require.True(t, c.IsBlocked(), "diagonal (%d,%d) open", i, i)
	}
}

func requireSymmetric(t *testing.T, m *matrix.Costs) {
	t.Helper()
	for i := 0; i < m.Size(); i++ {
		for j := i + 1; j < m.Size(); j++ {
			a, _ := m.At(i, j)
			b, _ := m.At(j, i)
			require.Equal(t, a, b, "(%d,%d) vs (%d,%d)", i, j, j, i)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(9, builder.WithSeed(7), builder.WithUniformWeight(1, 50))
	require.NoError(t, err)
	b, err := builder.Random(9, builder.WithSeed(7), builder.WithUniformWeight(1, 50))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := builder.Random(9, builder.WithSeed(8), builder.WithUniformWeight(1, 50))
	require.NoError(t, err)
	require.False(t, a.Equal(c))
	requireDiagonalBlocked(t, a)
}

func TestRandom_WeightRange(t *testing.T) {
	m, err := builder.Random(12, builder.WithSeed(3), builder.WithUniformWeight(5, 9))
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if i == j {
				continue
			}
			c, _ := m.At(i, j)
			w, ok := c.Value()
			require.True(t, ok)
			require.GreaterOrEqual(t, w, 5)
			require.LessOrEqual(t, w, 9)
		}
	}
}

func TestRandom_Symmetric(t *testing.T) {
	m, err := builder.Random(10,
		builder.WithSeed(11),
		builder.WithUniformWeight(0, 100),
		builder.WithBlockedProbability(0.2),
		builder.WithSymmetric(),
	)
	require.NoError(t, err)
	requireSymmetric(t, m)
	requireDiagonalBlocked(t, m)
}

func TestRandom_AllBlocked(t *testing.T) {
	m, err := builder.Random(5, builder.WithBlockedProbability(1))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			c, _ := m.At(i, j)
			require.True(t, c.IsBlocked())
		}
	}
	_, err = tsp.Solve(t.Context(), m, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNoTour)
}

func TestRandom_SharedRand(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a, err := builder.Random(6, builder.WithRand(rng), builder.WithNormalWeight(20, 5))
	require.NoError(t, err)
	b, err := builder.Random(6, builder.WithRand(rng), builder.WithNormalWeight(20, 5))
	require.NoError(t, err)
	require.False(t, a.Equal(b), "a shared RNG must advance between builds")
}

func TestEuclidean(t *testing.T) {
	m, pts, err := builder.Euclidean(8, builder.WithSeed(5), builder.WithGridSide(10))
	require.NoError(t, err)
	require.Len(t, pts, 8)
	requireSymmetric(t, m)
	requireDiagonalBlocked(t, m)
	for _, p := range pts {
		require.GreaterOrEqual(t, p.X, 0)
		require.LessOrEqual(t, p.X, 10)
		require.GreaterOrEqual(t, p.Y, 0)
		require.LessOrEqual(t, p.Y, 10)
	}
	// Distance on a 10×10 grid never exceeds the rounded diagonal.
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i == j {
				continue
			}
			c, _ := m.At(i, j)
			w, ok := c.Value()
			require.True(t, ok)
			require.LessOrEqual(t, w, 14)
		}
	}
}

func TestPlanted_OptimumIsKnown(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m, order, err := builder.Planted(9,
			builder.WithSeed(seed),
			builder.WithUniformWeight(0, 40),
			builder.WithBlockedProbability(0.3),
		)
		require.NoError(t, err)
		require.Len(t, order, 10)
		require.Equal(t, 0, order[0])
		require.Equal(t, 0, order[9])
		require.NoError(t, tsp.ValidateTour(order, 9))

		cost, err := tsp.TourCost(m, order)
		require.NoError(t, err)
		require.Equal(t, 9, cost)

		r, err := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, 9, r.Cost, "seed %d", seed)
	}
}

func TestBipartite(t *testing.T) {
	m, err := builder.Bipartite(3, 3, builder.WithSeed(2), builder.WithUniformWeight(1, 9))
	require.NoError(t, err)
	require.Equal(t, 6, m.Size())
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			c, _ := m.At(i, j)
			require.Equal(t, (i < 3) == (j < 3), c.IsBlocked(), "(%d,%d)", i, j)
		}
	}
	r, err := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
	require.NoError(t, err)
	for k := 1; k < len(r.Sequence); k++ {
		require.NotEqual(t, r.Sequence[k-1] < 3, r.Sequence[k] < 3)
	}

	uneven, err := builder.Bipartite(3, 2)
	require.NoError(t, err)
	_, err = tsp.Solve(t.Context(), uneven, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNoTour)
}

func TestBuild(t *testing.T) {
	for _, k := range builder.Kinds() {
		m, err := builder.Build(k, 6, builder.WithSeed(1))
		require.NoError(t, err, k)
		require.Equal(t, 6, m.Size())
	}
	m, err := builder.Build(builder.KindBipartite, 7)
	require.NoError(t, err)
	require.Equal(t, 7, m.Size())

	_, err = builder.Build("spiral", 6)
	require.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestConstructorErrors(t *testing.T) {
	_, err := builder.Random(1)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, _, err = builder.Euclidean(0)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, _, err = builder.Planted(-3)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.Bipartite(0, 4)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithBlockedProbability(1.5) })
	require.Panics(t, func() { builder.WithGridSide(0) })
	require.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.NormalWeightFn(1, -1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, 4, builder.ConstantWeightFn(4)(rng))
	require.Equal(t, 3, builder.UniformWeightFn(3, 3)(rng))
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, builder.NormalWeightFn(0, 10)(rng), 0)
	}
}

// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// blocked marks a forbidden transition in the integer fixtures below.
	blocked = -1

	// bruteMaxN bounds the brute-force oracle (7! permutations at N=8).
	bruteMaxN = 8

	// seedCount is the number of random instances per size.
	seedCount = 25
)

// classic4 is the 4-node symmetric instance with an optimal tour of 80.
var classic4 = [][]int{
	{blocked, 10, 15, 20},
	{10, blocked, 35, 25},
	{15, 35, blocked, 30},
	{20, 25, 30, blocked},
}

// mkCosts builds a matrix from integers (-1 = blocked) or fails the test.
func mkCosts(t testing.TB, rows [][]int) *matrix.Costs {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// randomCosts draws an n×n instance with weights in [1, maxW] and roughly
// blockedPct percent of off-diagonal cells blocked.
func randomCosts(t testing.TB, seed uint64, n, maxW, blockedPct int) *matrix.Costs {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			switch {
			case i == j:
				rows[i][j] = blocked
			case rng.IntN(100) < blockedPct:
				rows[i][j] = blocked
			default:
				rows[i][j] = 1 + rng.IntN(maxW)
			}
		}
	}

	return mkCosts(t, rows)
}

// bruteForce enumerates every tour from 0 and returns the optimal cost.
// ok is false when no tour exists.
func bruteForce(m *matrix.Costs) (best int, ok bool) {
	n := m.Size()
	used := make([]bool, n)
	used[0] = true

	var walk func(last, depth, cost int)
	walk = func(last, depth, cost int) {
		if ok && cost >= best {
			return
		}
		if depth == n {
			c, _ := m.At(last, 0)
			if w, open := c.Value(); open && (!ok || cost+w < best) {
				best, ok = cost+w, true
			}
			return
		}
		for v := 1; v < n; v++ {
			if used[v] {
				continue
			}
			c, _ := m.At(last, v)
			w, open := c.Value()
			if !open {
				continue
			}
			used[v] = true
			walk(v, depth+1, cost+w)
			used[v] = false
		}
	}
	walk(0, 1, 0)

	return best, ok
}

// mustValidRoute asserts the Route invariants and that its cost matches the
// original matrix.
func mustValidRoute(t *testing.T, m *matrix.Costs, r tsp.Route) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(r.Sequence, m.Size()))
	got, err := tsp.TourCost(m, r.Sequence)
	require.NoError(t, err)
	require.Equal(t, r.Cost, got, "route cost disagrees with the matrix")
}

// Package tsp_test validates Little's branch-and-bound engine.
// Focus:
//  1. Concrete scenarios (classic 4-node, infeasible and minimal 3-node).
//  2. Optimality against a brute-force oracle on random instances.
//  3. Determinism and engine lifecycle.
//  4. Cancellation without a route.
package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
	"github.com/stretchr/testify/require"
)

// ---------------------------
// 1) Concrete scenarios.
// ---------------------------

func TestBB_Classic4(t *testing.T) {
	m := mkCosts(t, classic4)

	r, err := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 80, r.Cost)
	require.Equal(t, []int{0, 1, 3, 2, 0}, r.Sequence)
	mustValidRoute(t, m, r)
}

func TestBB_Minimal3(t *testing.T) {
	// Tours: 0→1→2→0 = 1+4+5 = 10, 0→2→1→0 = 2+6+3 = 11.
	m := mkCosts(t, [][]int{
		{blocked, 1, 2},
		{3, blocked, 4},
		{5, 6, blocked},
	})

	e, err := tsp.NewEngine(m)
	require.NoError(t, err)
	r, err := e.Run(t.Context())
	require.NoError(t, err)
	require.Equal(t, tsp.Route{Cost: 10, Sequence: []int{0, 1, 2, 0}}, r)
	require.Equal(t, tsp.Solved, e.State())
}

func TestBB_Infeasible3(t *testing.T) {
	// Both orientations need 1→2 or 2→1.
	m := mkCosts(t, [][]int{
		{blocked, 1, 2},
		{3, blocked, blocked},
		{5, blocked, blocked},
	})

	e, err := tsp.NewEngine(m)
	require.NoError(t, err)
	_, err = e.Run(t.Context())
	require.ErrorIs(t, err, tsp.ErrNoTour)
	require.NotErrorIs(t, err, tsp.ErrCancelled)
	require.Equal(t, tsp.Infeasible, e.State())
	require.Positive(t, e.Stats().Discarded)
}

// TestBB_IsolatedNode blocks every outgoing (or incoming) edge of one node.
func TestBB_IsolatedNode(t *testing.T) {
	for _, dir := range []string{"outgoing", "incoming"} {
		t.Run(dir, func(t *testing.T) {
			rows := make([][]int, 5)
			for i := range rows {
				rows[i] = make([]int, 5)
				for j := range rows[i] {
					rows[i][j] = 1 + (i*7+j*3)%11
				}
			}
			for k := 0; k < 5; k++ {
				if dir == "outgoing" {
					rows[3][k] = blocked
				} else {
					rows[k][3] = blocked
				}
			}
			_, err := tsp.Solve(t.Context(), mkCosts(t, rows), tsp.DefaultOptions())
			require.ErrorIs(t, err, tsp.ErrNoTour)
		})
	}
}

func TestBB_InputErrors(t *testing.T) {
	two := mkCosts(t, [][]int{{blocked, 1}, {1, blocked}})
	_, err := tsp.Solve(t.Context(), two, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooFewNodes)

	_, err = tsp.NewEngine(two)
	require.ErrorIs(t, err, tsp.ErrTooFewNodes)

	big := randomCosts(t, 1, 21, 10, 0)
	_, err = tsp.Solve(t.Context(), big, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooManyNodes)

	_, err = tsp.Solve(t.Context(), nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(42)
	_, err = tsp.Solve(t.Context(), mkCosts(t, classic4), opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

// ---------------------------------------------
// 2) Optimality against brute force.
// ---------------------------------------------

func TestBB_OptimalVsBruteForce(t *testing.T) {
	for n := tsp.MinNodes; n <= bruteMaxN; n++ {
		for seed := uint64(1); seed <= seedCount; seed++ {
			m := randomCosts(t, seed*100+uint64(n), n, 40, 25)
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				want, feasible := bruteForce(m)
				r, err := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
				if !feasible {
					require.ErrorIs(t, err, tsp.ErrNoTour)
					return
				}
				require.NoError(t, err)
				require.Equal(t, want, r.Cost)
				mustValidRoute(t, m, r)
			})
		}
	}
}

// TestBB_AgreesWithHeldKarp covers sizes beyond the brute-force oracle.
func TestBB_AgreesWithHeldKarp(t *testing.T) {
	for _, n := range []int{9, 11, 13} {
		for seed := uint64(1); seed <= 4; seed++ {
			m := randomCosts(t, seed+uint64(n)*1000, n, 100, 5)
			hk, hkErr := tsp.HeldKarp(t.Context(), m)
			bb, bbErr := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
			if hkErr != nil {
				require.ErrorIs(t, hkErr, tsp.ErrNoTour)
				require.ErrorIs(t, bbErr, tsp.ErrNoTour)
				continue
			}
			require.NoError(t, bbErr)
			require.Equal(t, hk.Cost, bb.Cost, "n=%d seed=%d", n, seed)
			mustValidRoute(t, m, bb)
		}
	}
}

// ---------------------------------------------
// 3) Determinism and lifecycle.
// ---------------------------------------------

func TestBB_Deterministic(t *testing.T) {
	m := randomCosts(t, 77, 10, 30, 10)
	first, err1 := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
	for i := 0; i < 3; i++ {
		again, err2 := tsp.Solve(t.Context(), m, tsp.DefaultOptions())
		require.Equal(t, err1, err2)
		require.True(t, first.Equal(again))
	}
}

func TestBB_EngineSingleUse(t *testing.T) {
	e, err := tsp.NewEngine(mkCosts(t, classic4))
	require.NoError(t, err)
	require.Equal(t, tsp.Searching, e.State())

	_, err = e.Run(t.Context())
	require.NoError(t, err)
	st := e.Stats()
	require.Positive(t, st.Iterations)
	require.Positive(t, st.Branches)
	require.GreaterOrEqual(t, st.PeakPool, 1)

	_, err = e.Run(t.Context())
	require.ErrorIs(t, err, tsp.ErrEngineDone)
}

// ---------------------------------------------
// 4) Cancellation.
// ---------------------------------------------

func TestBB_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	e, err := tsp.NewEngine(randomCosts(t, 5, 15, 100, 0))
	require.NoError(t, err)
	r, err := e.Run(ctx)
	require.ErrorIs(t, err, tsp.ErrCancelled)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, tsp.ErrNoTour)
	require.Equal(t, tsp.Route{}, r)
	require.Equal(t, tsp.Cancelled, e.State())
}

func TestBB_DeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 0)
	defer cancel()

	_, err := tsp.Solve(ctx, randomCosts(t, 6, 20, 1000, 0), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrCancelled)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "searching", tsp.Searching.String())
	require.Equal(t, "solved", tsp.Solved.String())
	require.Equal(t, "infeasible", tsp.Infeasible.String())
	require.Equal(t, "cancelled", tsp.Cancelled.String())
	require.Equal(t, "state(9)", tsp.State(9).String())
}

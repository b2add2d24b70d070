package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/littletsp/matrix"
)

// unreachable marks DP states with no path.
const unreachable = -1

// ctxPollMask sets how often the DP polls its context (every 1024 masks).
const ctxPollMask = 1<<10 - 1

// HeldKarp solves the instance exactly with the Held–Karp dynamic program.
// It serves as an independent reference for the branch-and-bound engine.
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the nodes in
// mask (bit 0 always set), and end at j. Blocked transitions are skipped.
// After filling dp, we "close" the tour by returning from j back to 0.
// Among equal-cost predecessors the lowest index wins, so results are
// deterministic.
//
// Errors: matrix validation sentinels, ErrTooFewNodes, ErrTooManyNodes
// (N > HeldKarpMaxNodes), ErrNoTour, ErrCancelled.
//
// Time complexity:  O(N² · 2ᴺ)
// Memory complexity: O(N · 2ᴺ)
func HeldKarp(ctx context.Context, dist matrix.Matrix) (Route, error) {
	n, err := validateInput(dist, HeldKarpMaxNodes)
	if err != nil {
		return Route{}, err
	}

	// Prefetch weights; −1 for blocked.
	w := make([]int, n*n)
	var (
		i, j, k int
		c       matrix.Cost
		v       int
		ok      bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c, _ = dist.At(i, j)
			if v, ok = c.Value(); !ok || i == j {
				v = unreachable
			}
			w[i*n+j] = v
		}
	}

	full := 1<<n - 1
	dp := make([][]int, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := 0; mask <= full; mask++ {
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = unreachable
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	var prev, cand, wkj int
	for mask := 1; mask <= full; mask += 2 { // only masks containing node 0
		if mask&ctxPollMask == 1 && ctx.Err() != nil {
			return Route{}, fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || dp[prev][k] == unreachable {
					continue
				}
				if wkj = w[k*n+j]; wkj == unreachable {
					continue
				}
				cand = dp[prev][k] + wkj
				if dp[mask][j] == unreachable || cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the tour by returning to 0.
	best, last := unreachable, -1
	for j = 1; j < n; j++ {
		if dp[full][j] == unreachable || w[j*n] == unreachable {
			continue
		}
		cand = dp[full][j] + w[j*n]
		if best == unreachable || cand < best {
			best, last = cand, j
		}
	}
	if last < 0 {
		return Route{}, ErrNoTour
	}

	// Reconstruct from the parent table.
	seq := make([]int, n+1)
	mask, cur := full, last
	for i = n - 1; i >= 1; i-- {
		seq[i] = cur
		p := parent[mask][cur]
		mask ^= 1 << cur
		cur = p
	}
	seq[0], seq[n] = startNode, startNode

	return Route{Cost: best, Sequence: seq}, nil
}

// Package tsp_test provides runnable, deterministic examples.
package tsp_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

// ExampleSolve solves the classic 4-city instance.
func ExampleSolve() {
	m, err := matrix.FromInts([][]int{
		{-1, 10, 15, 20},
		{10, -1, 35, 25},
		{15, 35, -1, 30},
		{20, 25, 30, -1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	r, err := tsp.Solve(context.Background(), m, tsp.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output: 0 → 1 → 3 → 2 → 0 (cost 80)
}

// ExampleSolve_noTour shows the infeasible outcome.
func ExampleSolve_noTour() {
	m, _ := matrix.FromInts([][]int{
		{-1, 1, 2},
		{3, -1, -1},
		{5, -1, -1},
	})

	_, err := tsp.Solve(context.Background(), m, tsp.DefaultOptions())
	fmt.Println(errors.Is(err, tsp.ErrNoTour))
	// Output: true
}

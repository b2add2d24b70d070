package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/render"
	"github.com/katalvlaran/littletsp/tsp"
)

func fixture(t *testing.T) (*matrix.Costs, tsp.Route) {
	t.Helper()
	m, err := matrix.FromInts([][]int{
		{-1, 1, 2},
		{3, -1, 4},
		{5, 6, -1},
	})
	require.NoError(t, err)
	return m, tsp.Route{Cost: 10, Sequence: []int{0, 1, 2, 0}}
}

func TestDOT(t *testing.T) {
	m, r := fixture(t)

	dot, err := render.DOT(m, r, render.Options{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dot, "digraph tour {\n"))
	require.Contains(t, dot, `label="cost 10";`)
	require.Contains(t, dot, "  0 [fillcolor=lightblue];\n")
	require.Contains(t, dot, `0 -> 1 [label="1", penwidth=2.5];`)
	require.Contains(t, dot, `1 -> 2 [label="4", penwidth=2.5];`)
	require.Contains(t, dot, `2 -> 0 [label="5", penwidth=2.5];`)
	require.NotContains(t, dot, "dotted")
}

func TestDOT_AllEdges(t *testing.T) {
	m, r := fixture(t)

	dot, err := render.DOT(m, r, render.Options{AllEdges: true})
	require.NoError(t, err)
	// Three unused open transitions: 0→2, 1→0, 2→1.
	require.Equal(t, 3, strings.Count(dot, "style=dotted"))
	require.Contains(t, dot, "1 -> 0 [style=dotted")
}

func TestDOT_Errors(t *testing.T) {
	m, _ := fixture(t)

	_, err := render.DOT(nil, tsp.Route{}, render.Options{})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = render.DOT(m, tsp.Route{Sequence: []int{0, 1, 0}}, render.Options{})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in -short mode")
	}
	m, r := fixture(t)
	dot, err := render.DOT(m, r, render.Options{})
	require.NoError(t, err)

	svg, err := render.SVG(t.Context(), dot)
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
}

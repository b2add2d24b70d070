// Package render draws a solved tour as a Graphviz diagram.
//
// DOT produces the graph text; SVG lays it out on a circle with the
// embedded Graphviz engine.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

// Options configures the diagram.
type Options struct {
	// AllEdges also draws the open transitions the tour does not use, dotted
	// and grey.
	AllEdges bool
}

// DOT renders the nodes of m with the tour r highlighted. Each tour edge is
// labelled with its cost from m; r must be a tour over m.
func DOT(m *matrix.Costs, r tsp.Route, opts Options) (string, error) {
	if m == nil {
		return "", matrix.ErrNilMatrix
	}
	if err := tsp.ValidateTour(r.Sequence, m.Size()); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph tour {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("cost %d", r.Cost))
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	n := m.Size()
	for v := 0; v < n; v++ {
		if v == r.Sequence[0] {
			fmt.Fprintf(&buf, "  %d [fillcolor=lightblue];\n", v)
			continue
		}
		fmt.Fprintf(&buf, "  %d;\n", v)
	}

	buf.WriteString("\n")
	used := make(map[tsp.Transition]bool, n)
	for _, t := range r.Transitions() {
		used[t] = true
		c, err := m.At(t.From, t.To)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  %d -> %d [label=%q, penwidth=2.5];\n", t.From, t.To, c.String())
	}

	if opts.AllEdges {
		buf.WriteString("\n")
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				c, _ := m.At(i, j)
				if c.IsBlocked() || used[tsp.Transition{From: i, To: j}] {
					continue
				}
				fmt.Fprintf(&buf, "  %d -> %d [style=dotted, color=grey, arrowsize=0.5];\n", i, j)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// SVG lays out a DOT graph with the circo engine and returns the SVG bytes.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.CIRCO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

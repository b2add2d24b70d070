package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/littletsp/tsp"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNode    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printRoute prints the tour, its cost and the search counters.
func printRoute(w io.Writer, r tsp.Route, stats tsp.Stats, cached bool) {
	nodes := make([]string, len(r.Sequence))
	for i, v := range r.Sequence {
		nodes[i] = styleNode.Render(strconv.Itoa(v))
	}
	fmt.Fprintln(w, styleTitle.Render("tour"))
	fmt.Fprintln(w, "  "+strings.Join(nodes, styleDim.Render(" "+iconArrow+" ")))
	printKeyValue(w, "cost", styleNumber.Render(strconv.Itoa(r.Cost)))

	if cached {
		printKeyValue(w, "source", styleCached.Render("cached"))
		return
	}
	printKeyValue(w, "iterations", strconv.Itoa(stats.Iterations))
	printKeyValue(w, "branches", strconv.Itoa(stats.Branches))
	printKeyValue(w, "peak pool", strconv.Itoa(stats.PeakPool))
}

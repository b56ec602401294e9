package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// InteractionDiagramData holds the curve data to render
type InteractionDiagramData struct {
	// Parallel moment/axial slices (tonf-m, tonf)
	NominalM []float64
	NominalP []float64
	DesignM  []float64
	DesignP  []float64

	// Optional demand point, drawn when either is non-zero
	Mu float64
	Pu float64
}

// DrawASCIIInteractionDiagram renders the nominal and design interaction
// curves on a character grid, moment on the horizontal axis and axial
// force on the vertical axis.
func DrawASCIIInteractionDiagram(data InteractionDiagramData) string {
	const (
		widthChars  = 61
		heightChars = 25
	)

	minM, maxM := bounds(data.NominalM, data.DesignM)
	minP, maxP := bounds(data.NominalP, data.DesignP)
	if data.Mu != 0 || data.Pu != 0 {
		minM = minFloat(minM, data.Mu)
		maxM = maxFloat(maxM, data.Mu)
		minP = minFloat(minP, data.Pu)
		maxP = maxFloat(maxP, data.Pu)
	}

	// Margin so the polygon does not touch the frame
	spanM := maxM - minM
	spanP := maxP - minP
	if spanM == 0 {
		spanM = 1
	}
	if spanP == 0 {
		spanP = 1
	}
	minM -= 0.05 * spanM
	maxM += 0.05 * spanM
	minP -= 0.05 * spanP
	maxP += 0.05 * spanP

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = make([]rune, widthChars+1)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	toCol := func(m float64) int {
		return int((m - minM) / (maxM - minM) * float64(widthChars))
	}
	toRow := func(p float64) int {
		// Row 0 is the top of the grid
		return heightChars - int((p-minP)/(maxP-minP)*float64(heightChars))
	}

	// Axis lines through the origin
	if minM < 0 && maxM > 0 {
		col := toCol(0)
		for i := range grid {
			grid[i][col] = '│'
		}
	}
	if minP < 0 && maxP > 0 {
		row := toRow(0)
		for j := range grid[row] {
			grid[row][j] = '─'
		}
	}

	plot := func(ms, ps []float64, mark rune) {
		for i := range ms {
			grid[toRow(ps[i])][toCol(ms[i])] = mark
		}
	}
	plot(data.NominalM, data.NominalP, '·')
	plot(data.DesignM, data.DesignP, '*')
	if data.Mu != 0 || data.Pu != 0 {
		grid[toRow(data.Pu)][toCol(data.Mu)] = '◆'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  P-M INTERACTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────\n\n")
	sb.WriteString(fmt.Sprintf("  %8.1f ┐\n", maxP))
	for _, row := range grid {
		sb.WriteString("           │")
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  %8.1f ┴%s\n", minP, strings.Repeat("─", widthChars+1)))
	sb.WriteString(fmt.Sprintf("           %-10.1f%*s\n", minM, widthChars-8, fmt.Sprintf("%.1f", maxM)))
	sb.WriteString("\n")
	sb.WriteString("  Axes: Mn (tonf-m) horizontal, Pn (tonf) vertical\n")
	sb.WriteString("  ·  nominal curve    *  design curve (φ-factored)\n")
	if data.Mu != 0 || data.Pu != 0 {
		sb.WriteString(fmt.Sprintf("  ◆  demand point (Mu = %.2f tonf-m, Pu = %.2f tonf)\n", data.Mu, data.Pu))
	}

	return sb.String()
}

// DrawAxialProfile charts the nominal axial capacity across the sweep
// stations, from pure tension to pure compression and back.
func DrawAxialProfile(data InteractionDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  AXIAL CAPACITY ALONG THE SWEEP (tonf)\n")
	sb.WriteString("  ─────────────────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(data.NominalP,
		asciigraph.Height(12),
		asciigraph.Offset(3),
		asciigraph.Precision(1),
		asciigraph.Caption("sweep station: tension → compression → tension"),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func bounds(series ...[]float64) (lo, hi float64) {
	first := true
	for _, s := range series {
		for _, v := range s {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

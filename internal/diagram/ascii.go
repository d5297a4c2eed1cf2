package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/section"
)

// FlexureDiagramData holds data for drawing a designed beam face. Lengths in
// cm, areas in cm².
type FlexureDiagramData struct {
	Width  float64
	Height float64
	Cover  float64

	NeutralAxisDepth float64 // c, from the compression face
	StressBlockDepth float64 // a, from the compression face

	As       float64
	Bars     int // Bars drawn for As, 3 when zero
	EpsilonT float64
	Phi      float64
	Fc       float64 // MPa

	// TopTension flips the drawing for negative moment.
	TopTension bool
}

// NewFlexureDiagramData collects the drawing data of a flexure result.
func NewFlexureDiagramData(s section.Section, r beam.FlexureResult, topTension bool) FlexureDiagramData {
	return FlexureDiagramData{
		Width:            s.B(),
		Height:           s.H(),
		Cover:            s.Cover(),
		NeutralAxisDepth: r.C,
		StressBlockDepth: r.A,
		As:               r.AsDesign,
		EpsilonT:         r.EpsilonT,
		Phi:              r.Phi,
		Fc:               s.Fc(),
		TopTension:       topTension,
	}
}

func (d FlexureDiagramData) bars() int {
	if d.Bars > 0 {
		return d.Bars
	}
	return 3
}

// DrawASCIISectionDiagram sketches the section with its stress block, the
// neutral axis and the tension steel, next to the strain and stress labels.
func DrawASCIISectionDiagram(data FlexureDiagramData) string {
	const (
		widthChars  = 30
		heightChars = 20
	)
	if data.Height <= 0 {
		return ""
	}

	// Rows counted from the compression face
	toRow := func(depth float64) int {
		return int(depth / data.Height * heightChars)
	}
	naLine := toRow(data.NeutralAxisDepth)
	aLine := toRow(data.StressBlockDepth)
	steelLine := toRow(data.Height - data.Cover)

	lines := make([]string, heightChars+1)
	for i := 0; i <= heightChars; i++ {
		pos := i
		if data.TopTension {
			pos = heightChars - i
		}

		var sb strings.Builder
		switch pos {
		case 0:
			sb.WriteString("  ┌" + strings.Repeat("─", widthChars) + "┐")
		case heightChars:
			sb.WriteString("  └" + strings.Repeat("─", widthChars) + "┘")
		default:
			fill := []rune(strings.Repeat(" ", widthChars))
			if i > 0 && i <= aLine {
				fill = []rune(strings.Repeat("░", widthChars))
			}
			if i == steelLine {
				marker := []rune("●────●")
				copy(fill[widthChars/2-3:], marker)
			}
			sb.WriteString("  │" + string(fill) + "│")
		}

		if i == naLine && naLine > 0 {
			sb.WriteString(" ◄─ N.A.")
		} else {
			sb.WriteString("        ")
		}

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  εcu = %.4f", aci.EpsilonCU))
			sb.WriteString(fmt.Sprintf("      0.85f'c = %.1f MPa", aci.Whitney*data.Fc))
		case i == naLine:
			sb.WriteString("  ε = 0")
		case i == steelLine:
			sb.WriteString(fmt.Sprintf("  εt = %.4f", data.EpsilonT))
			sb.WriteString(fmt.Sprintf("      As = %.2f cm²", data.As))
		case i == aLine && aLine > 0:
			sb.WriteString("                    └── (stress block)")
		}
		lines[pos] = strings.TrimRight(sb.String(), " ")
	}

	face := "BOTTOM TENSION (+M)"
	if data.TopTension {
		face = "TOP TENSION (-M)"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION, " + face + "\n")
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")
	for _, l := range lines {
		sb.WriteString(l + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone (stress block)\n")
	sb.WriteString("  ●─● = Tension reinforcement\n")
	sb.WriteString(fmt.Sprintf("  N.A. at c = %.2f cm, a = %.2f cm, φ = %.3f\n", data.NeutralAxisDepth, data.StressBlockDepth, data.Phi))
	return sb.String()
}

// DrawTorsionLayout sketches the closed stirrup and the distributed
// longitudinal torsion bars of a b×h section (cm).
func DrawTorsionLayout(b, h, cover float64, dist beam.TorsionDistribution) string {
	const (
		cols = 31
		rows = 15
	)
	if b <= 0 || h <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}
	col := func(x float64) int { return clamp(int(math.Round(x/b*(cols-1))), 0, cols-1) }
	row := func(y float64) int { return clamp(rows-1-int(math.Round(y/h*(rows-1))), 0, rows-1) }

	box(grid, 0, 0, cols-1, rows-1, '─', '│', [4]rune{'┌', '┐', '└', '┘'})
	x0, x1 := col(cover), col(b-cover)
	y0, y1 := row(h-cover), row(cover)
	if x1 > x0 && y1 > y0 {
		box(grid, x0, y0, x1, y1, '╌', '╎', [4]rune{'+', '+', '+', '+'})
	}

	for _, p := range TorsionBarLayout(b, h, cover, dist).All() {
		grid[row(p.Y)][col(p.X)] = '●'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TORSION REINFORCEMENT  %gx%g cm, cover %g cm\n", b, h, cover))
	sb.WriteString("  " + strings.Repeat("─", cols) + "\n")
	for _, r := range grid {
		sb.WriteString("  " + string(r) + "\n")
	}
	sb.WriteString("\n")
	if dist.AlTotal <= 0 {
		sb.WriteString("  No longitudinal torsion steel required\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("  Al = %.2f cm² in %d bars (%.3f cm² each)\n", dist.AlTotal, dist.NBars, dist.AlPerBar))
	sb.WriteString(fmt.Sprintf("  bottom %d (%.2f cm²), top %d (%.2f cm²), %d per side (%.2f cm²)\n",
		dist.NBottom, dist.AlBottom, dist.NTop, dist.AlTop, dist.NSideEach, dist.AlSideEach))
	return sb.String()
}

func box(grid [][]rune, x0, y0, x1, y1 int, horiz, vert rune, corners [4]rune) {
	for x := x0; x <= x1; x++ {
		grid[y0][x] = horiz
		grid[y1][x] = horiz
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = vert
		grid[y][x1] = vert
	}
	grid[y0][x0], grid[y0][x1] = corners[0], corners[1]
	grid[y1][x0], grid[y1][x1] = corners[2], corners[3]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

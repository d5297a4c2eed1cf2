package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	steelColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	blockColor   = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	blockEdge    = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	stirrupColor = color.RGBA{R: 0, G: 100, B: 0, A: 255}
)

// ShearDiagramData describes a beam segment elevation with its stirrups.
// Lengths in cm.
type ShearDiagramData struct {
	Height  float64
	Cover   float64
	Length  float64 // Segment drawn, 300 cm when zero
	Spacing float64 // Stirrup spacing, no stirrups when zero
	SMax    float64
	Status  string
}

// NewShearDiagramData collects the drawing data of a shear result.
func NewShearDiagramData(h, cover float64, r beam.ShearResult) ShearDiagramData {
	d := ShearDiagramData{Height: h, Cover: cover, Status: r.Status}
	if r.SReq != nil {
		d.Spacing = *r.SReq
	}
	if r.SMax != nil {
		d.SMax = *r.SMax
	}
	return d
}

// TorsionDiagramData describes the closed stirrup and longitudinal torsion bars.
type TorsionDiagramData struct {
	Width        float64
	Height       float64
	Cover        float64
	Distribution beam.TorsionDistribution
	AtS          float64 // cm²/m, one leg
}

// ExportFlexureSection exports the section with its stress block, neutral
// axis and tension bars to an image file.
func ExportFlexureSection(data FlexureDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section, Flexure"
	p.X.Label.Text = "Width (cm)"
	p.Y.Label.Text = "Height (cm)"

	if err := addOutline(p, data.Width, data.Height); err != nil {
		return err
	}

	// Compression face is the top for positive moment
	compFace, sign := data.Height, -1.0
	if data.TopTension {
		compFace, sign = 0, 1.0
	}

	if data.StressBlockDepth > 0 {
		blockEnd := compFace + sign*data.StressBlockDepth
		stressBlock, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: compFace},
			{X: data.Width, Y: compFace},
			{X: data.Width, Y: blockEnd},
			{X: 0, Y: blockEnd},
		})
		if err != nil {
			return err
		}
		stressBlock.Color = blockColor
		stressBlock.LineStyle.Color = blockEdge
		p.Add(stressBlock)
	}

	naY := compFace + sign*data.NeutralAxisDepth
	if data.NeutralAxisDepth > 0 {
		naLine, err := plotter.NewLine(plotter.XYs{
			{X: -0.1 * data.Width, Y: naY},
			{X: 1.1 * data.Width, Y: naY},
		})
		if err != nil {
			return err
		}
		naLine.LineStyle.Width = vg.Points(1.5)
		naLine.LineStyle.Color = axisColor
		naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(naLine)
	}

	bars := FlexureBarLayout(data.Width, data.Height, data.Cover, data.bars(), data.TopTension)
	if err := addBars(p, bars, steelColor, 6); err != nil {
		return err
	}

	steelY := bars[0].Y
	labels := []struct {
		x, y float64
		text string
	}{
		{data.Width * 1.02, naY, fmt.Sprintf("N.A. c=%.1fcm", data.NeutralAxisDepth)},
		{data.Width * 0.35, steelY - sign*0.08*data.Height, fmt.Sprintf("As=%.2fcm²", data.As)},
	}
	for _, lbl := range labels {
		if err := addLabel(p, lbl.x, lbl.y, lbl.text); err != nil {
			return err
		}
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportShearLayout exports an elevation of a beam segment showing the
// stirrup spacing.
func ExportShearLayout(data ShearDiagramData, filename string) error {
	length := data.Length
	if length <= 0 {
		length = 300
	}

	p := plot.New()
	p.Title.Text = "Stirrup Layout"
	if data.Status != "" {
		p.Title.Text += ": " + data.Status
	}
	p.X.Label.Text = "Length (cm)"
	p.Y.Label.Text = "Height (cm)"

	if err := addOutline(p, length, data.Height); err != nil {
		return err
	}

	if data.Spacing > 0 {
		for x := data.Spacing / 2; x < length; x += data.Spacing {
			stirrup, err := plotter.NewLine(plotter.XYs{
				{X: x, Y: data.Cover},
				{X: x, Y: data.Height - data.Cover},
			})
			if err != nil {
				return err
			}
			stirrup.LineStyle.Width = vg.Points(1.5)
			stirrup.LineStyle.Color = stirrupColor
			p.Add(stirrup)
		}
		text := fmt.Sprintf("s = %.1f cm", data.Spacing)
		if data.SMax > 0 {
			text += fmt.Sprintf(" (s,max = %.1f cm)", data.SMax)
		}
		if err := addLabel(p, length*0.05, data.Height*1.05, text); err != nil {
			return err
		}
	} else if err := addLabel(p, length*0.05, data.Height*1.05, "No stirrups required"); err != nil {
		return err
	}

	return save(p, 10*vg.Inch, 4*vg.Inch, filename)
}

// ExportTorsionSection exports the section with its closed stirrup and the
// distributed longitudinal torsion bars.
func ExportTorsionSection(data TorsionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Torsion Reinforcement"
	p.X.Label.Text = "Width (cm)"
	p.Y.Label.Text = "Height (cm)"

	if err := addOutline(p, data.Width, data.Height); err != nil {
		return err
	}

	c := data.Cover
	stirrup, err := plotter.NewLine(plotter.XYs{
		{X: c, Y: c},
		{X: data.Width - c, Y: c},
		{X: data.Width - c, Y: data.Height - c},
		{X: c, Y: data.Height - c},
		{X: c, Y: c},
	})
	if err != nil {
		return err
	}
	stirrup.LineStyle.Width = vg.Points(1.5)
	stirrup.LineStyle.Color = stirrupColor
	p.Add(stirrup)

	bars := TorsionBarLayout(data.Width, data.Height, c, data.Distribution).All()
	if len(bars) > 0 {
		if err := addBars(p, bars, steelColor, 5); err != nil {
			return err
		}
	}

	d := data.Distribution
	text := fmt.Sprintf("Al=%.2fcm² in %d bars, At/s=%.2fcm²/m", d.AlTotal, d.NBars, data.AtS)
	if err := addLabel(p, 0, data.Height*1.05, text); err != nil {
		return err
	}

	return save(p, 6*vg.Inch, 7*vg.Inch, filename)
}

func addOutline(p *plot.Plot, w, h float64) error {
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)
	return nil
}

func addBars(p *plot.Plot, pts []Point, c color.Color, radius float64) error {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(radius)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	return nil
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// save writes the plot in the format given by the file extension, PNG when
// the extension is not one of png, svg or pdf.
func save(p *plot.Plot, w, h vg.Length, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create diagram directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("save diagram %s: %w", filename, err)
	}
	return nil
}

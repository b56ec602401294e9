package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportInteractionDiagram exports the interaction diagram to an image file
func ExportInteractionDiagram(data InteractionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "P-M Interaction Diagram"
	p.X.Label.Text = "Mn (tonf-m)"
	p.Y.Label.Text = "Pn (tonf)"
	p.Add(plotter.NewGrid())

	nominal, err := plotter.NewLine(toXYs(data.NominalM, data.NominalP))
	if err != nil {
		return err
	}
	nominal.LineStyle.Width = vg.Points(1.5)
	nominal.LineStyle.Color = color.Black
	p.Add(nominal)
	p.Legend.Add("nominal curve ACI 318-14", nominal)

	design, err := plotter.NewLine(toXYs(data.DesignM, data.DesignP))
	if err != nil {
		return err
	}
	design.LineStyle.Width = vg.Points(1.5)
	design.LineStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(design)
	p.Legend.Add("design curve ACI 318-14", design)

	// Demand marker
	if data.Mu != 0 || data.Pu != 0 {
		demand, err := plotter.NewScatter(plotter.XYs{{X: data.Mu, Y: data.Pu}})
		if err != nil {
			return err
		}
		demand.GlyphStyle.Color = color.RGBA{B: 139, A: 255}
		demand.GlyphStyle.Radius = vg.Points(4)
		demand.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(demand)
		p.Legend.Add("demand (Mu, Pu)", demand)
	}

	p.Legend.Top = true

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

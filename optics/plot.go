package optics

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotScan saves a range-versus-angle chart of the measurements. Angles are
// shown in degrees relative to the sensor orientation.
func PlotScan(filename string, measurements []Measurement, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = "Range profile"
	p.X.Label.Text = "Angle (deg)"
	p.Y.Label.Text = "Range (m)"

	xys := make(plotter.XYs, len(measurements))
	for i, m := range measurements {
		xys[i].X = m.Angle * 180 / math.Pi
		xys[i].Y = m.Distance
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("building scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = ScanColor
	p.Add(plotter.NewGrid(), scatter)

	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

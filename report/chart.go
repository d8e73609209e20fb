package report

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/quantataraxia/jumpsim/models"
)

// Chart renders every simulated path as a line over time and saves the
// figure to file (format chosen by extension, typically .png).
func Chart(paths *mat.Dense, m models.MertonJumpDiffusion, file string) error {
	rows, cols := paths.Dims()

	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"Monte Carlo simulated price paths, Merton jump diffusion\nS0=%g mu=%g sigma=%g a=%g b=%g lambda=%g T=%g Nsteps=%d Nsim=%d",
		m.S0, m.Mu, m.Sigma, m.A, m.B, m.Lambda, m.T, m.Nsteps, m.Nsim)
	p.X.Label.Text = "Time (years)"
	p.Y.Label.Text = "Price"

	t := make([]float64, cols)
	floats.Span(t, 0, m.T)

	for r := 0; r < rows; r++ {
		pts := make(plotter.XYs, cols)
		for c := 0; c < cols; c++ {
			pts[c].X = t[c]
			pts[c].Y = paths.At(r, c)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart line: %w", err)
		}
		line.Width = vg.Points(0.5)
		line.Color = plotutil.Color(r)
		p.Add(line)
	}

	if err := p.Save(10*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("save chart %s: %w", file, err)
	}
	return nil
}

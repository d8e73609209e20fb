package report

import (
	"fmt"
	"io"
	"time"

	"github.com/leekchan/accounting"

	"github.com/quantataraxia/jumpsim/models"
	"github.com/quantataraxia/jumpsim/simulation"
)

// Result bundles one scenario's outputs for reporting.
type Result struct {
	Name    string                     `json:"name"`
	Model   models.MertonJumpDiffusion `json:"parameters"`
	Moments models.TheoreticalMoments  `json:"theoretical_moments"`
	Summary simulation.Summary         `json:"empirical_statistics"`
	Elapsed time.Duration              `json:"elapsed_ns"`
}

// Print writes a human-readable statistics report for one scenario.
func Print(w io.Writer, res Result) {
	ac := accounting.Accounting{Symbol: "$", Precision: 4}
	m := res.Model
	s := res.Summary

	fmt.Fprintf(w, "Scenario %q: %d paths x %d steps, T=%g\n", res.Name, m.Nsim, m.Nsteps, m.T)
	fmt.Fprintf(w, "  mu=%g sigma=%g lambda=%g a=%g b=%g\n", m.Mu, m.Sigma, m.Lambda, m.A, m.B)
	fmt.Fprintf(w, "  Terminal mean:      %s (theoretical %s)\n",
		ac.FormatMoney(s.Mean), ac.FormatMoney(res.Moments.Mean))
	fmt.Fprintf(w, "  Terminal variance:  %.6f (theoretical %.6f)\n", s.Variance, res.Moments.Variance)
	fmt.Fprintf(w, "  Std deviation:      %.6f\n", s.Std)
	fmt.Fprintf(w, "  Skewness:           %.6f\n", s.Skewness)
	fmt.Fprintf(w, "  Excess kurtosis:    %.6f\n", s.ExcessKurtosis)
	fmt.Fprintf(w, "  %.0f%% CI for mean:   [%s, %s]\n",
		100*(1-s.Alpha), ac.FormatMoney(s.CILow), ac.FormatMoney(s.CIHigh))
	fmt.Fprintf(w, "  Running time:       %.2f ms\n", float64(res.Elapsed.Microseconds())/1000)
}

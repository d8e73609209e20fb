package simulation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantataraxia/jumpsim/models"
)

// ErrDegenerateSample is returned when too few terminal prices exist to
// compute variance and the higher moments.
var ErrDegenerateSample = errors.New("degenerate sample")

// Summary holds the empirical statistics of a terminal price sample.
// Variance is the population variance (second central moment); Skewness and
// ExcessKurtosis are the uncorrected standardized moments, matching the
// Fisher-Pearson convention with no sample-size bias adjustment.
type Summary struct {
	N              int     `json:"n"`
	Alpha          float64 `json:"alpha"`
	Mean           float64 `json:"mean"`
	Variance       float64 `json:"variance"`
	Std            float64 `json:"std"`
	Skewness       float64 `json:"skewness"`
	ExcessKurtosis float64 `json:"excess_kurtosis"`
	CILow          float64 `json:"ci_low"`
	CIHigh         float64 `json:"ci_high"`
}

// Summarize reduces a terminal price sample to its moments and a two-sided
// confidence interval for the population mean at significance level alpha.
// At least two samples are required; the documented recommendation for
// stable skewness and kurtosis is 10,000 or more.
func Summarize(terminal []float64, alpha float64) (Summary, error) {
	if len(terminal) < 2 {
		return Summary{}, fmt.Errorf("%w: need at least 2 terminal prices, got %d", ErrDegenerateSample, len(terminal))
	}
	if alpha <= 0 || alpha >= 1 {
		return Summary{}, fmt.Errorf("%w: Alpha must be in (0,1), got %g", models.ErrInvalidParameter, alpha)
	}

	mean := stat.Mean(terminal, nil)
	m2 := stat.Moment(2, terminal, nil)
	m3 := stat.Moment(3, terminal, nil)
	m4 := stat.Moment(4, terminal, nil)
	std := math.Sqrt(m2)

	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	half := z * std / math.Sqrt(float64(len(terminal)))

	return Summary{
		N:              len(terminal),
		Alpha:          alpha,
		Mean:           mean,
		Variance:       m2,
		Std:            std,
		Skewness:       m3 / math.Pow(m2, 1.5),
		ExcessKurtosis: m4/(m2*m2) - 3,
		CILow:          mean - half,
		CIHigh:         mean + half,
	}, nil
}

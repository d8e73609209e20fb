package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// MertonJumpDiffusion holds the full parameter set for one simulation run.
// The asset follows dS/S = mu dt + sigma dW + (Y-1) dN where N is a Poisson
// process with intensity Lambda and the jump factor Y is lognormal with
// underlying normal parameters (A, B).
type MertonJumpDiffusion struct {
	S0     float64 `json:"s0"`     // Initial asset price
	Mu     float64 `json:"mu"`     // Drift
	Sigma  float64 `json:"sigma"`  // Diffusion volatility
	Lambda float64 `json:"lambda"` // Jump intensity, expected jumps per unit time
	A      float64 `json:"a"`      // Jump size log-mean
	B      float64 `json:"b"`      // Jump size log-std
	T      float64 `json:"t"`      // Horizon in years
	Nsteps int     `json:"nsteps"` // Time steps per path
	Nsim   int     `json:"nsim"`   // Number of simulated paths
	Alpha  float64 `json:"alpha"`  // Significance level for the mean CI
	Seed   *uint64 `json:"seed"`   // RNG seed; nil means system entropy
	Strike float64 `json:"strike"` // Accepted for caller compatibility, unused by the simulation
}

// NewMertonJumpDiffusion returns a parameter set with the standard defaults.
// Nsim defaults to 100 for quick runs; 10,000 or more is recommended before
// trusting the higher moments.
func NewMertonJumpDiffusion() MertonJumpDiffusion {
	return MertonJumpDiffusion{
		S0:     1,
		Mu:     0.12,
		Sigma:  0.3,
		Lambda: 0.25,
		A:      0.2,
		B:      0.2,
		T:      1,
		Nsteps: 252,
		Nsim:   100,
		Alpha:  0.05,
	}
}

// Validate fails fast on parameters the simulation cannot run with.
// Extreme but finite values are accepted; overflow in the exponential terms
// propagates as Inf/NaN and is the caller's responsibility.
func (m MertonJumpDiffusion) Validate() error {
	switch {
	case m.S0 <= 0:
		return fmt.Errorf("%w: S0 must be positive, got %g", ErrInvalidParameter, m.S0)
	case m.T <= 0:
		return fmt.Errorf("%w: T must be positive, got %g", ErrInvalidParameter, m.T)
	case m.Nsteps <= 0:
		return fmt.Errorf("%w: Nsteps must be positive, got %d", ErrInvalidParameter, m.Nsteps)
	case m.Nsim <= 0:
		return fmt.Errorf("%w: Nsim must be positive, got %d", ErrInvalidParameter, m.Nsim)
	case m.Sigma < 0:
		return fmt.Errorf("%w: Sigma must be non-negative, got %g", ErrInvalidParameter, m.Sigma)
	case m.Lambda < 0:
		return fmt.Errorf("%w: Lambda must be non-negative, got %g", ErrInvalidParameter, m.Lambda)
	case m.B < 0:
		return fmt.Errorf("%w: B must be non-negative, got %g", ErrInvalidParameter, m.B)
	case m.Alpha <= 0 || m.Alpha >= 1:
		return fmt.Errorf("%w: Alpha must be in (0,1), got %g", ErrInvalidParameter, m.Alpha)
	}
	return nil
}

// TheoreticalMoments are the closed-form mean and variance of the terminal
// price, used to cross-check Monte Carlo convergence.
type TheoreticalMoments struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// Moments computes the exact terminal-price moments from the parameters
// alone. With Lambda = 0 the formulas reduce to plain geometric Brownian
// motion; with B = 0 the jump factor degenerates to the constant exp(A).
func (m MertonJumpDiffusion) Moments() TheoreticalMoments {
	meanY := math.Exp(m.A + 0.5*m.B*m.B)
	varY := math.Exp(2*m.A+m.B*m.B) * (math.Exp(m.B*m.B) - 1)

	mean := m.S0 * math.Exp(m.Mu*m.T+m.Lambda*m.T*(meanY-1))
	variance := m.S0 * m.S0 *
		(math.Exp((2*m.Mu+m.Sigma*m.Sigma)*m.T+m.Lambda*m.T*(varY+meanY*meanY-1)) -
			math.Exp(2*m.Mu*m.T+2*m.Lambda*m.T*(meanY-1)))

	return TheoreticalMoments{Mean: mean, Variance: variance}
}

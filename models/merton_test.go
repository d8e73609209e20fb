package models_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantataraxia/jumpsim/models"
)

// TestDefaults verifies the standard parameter set.
func TestDefaults(t *testing.T) {
	m := models.NewMertonJumpDiffusion()

	require.Equal(t, 1.0, m.S0)
	require.Equal(t, 0.12, m.Mu)
	require.Equal(t, 0.3, m.Sigma)
	require.Equal(t, 0.25, m.Lambda)
	require.Equal(t, 0.2, m.A)
	require.Equal(t, 0.2, m.B)
	require.Equal(t, 1.0, m.T)
	require.Equal(t, 252, m.Nsteps)
	require.Equal(t, 100, m.Nsim)
	require.Equal(t, 0.05, m.Alpha)
	require.Nil(t, m.Seed)
	require.NoError(t, m.Validate())
}

// TestValidate checks that each out-of-range field is rejected before any
// computation and wraps ErrInvalidParameter.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.MertonJumpDiffusion)
	}{
		{"zero S0", func(m *models.MertonJumpDiffusion) { m.S0 = 0 }},
		{"negative S0", func(m *models.MertonJumpDiffusion) { m.S0 = -1 }},
		{"zero T", func(m *models.MertonJumpDiffusion) { m.T = 0 }},
		{"negative T", func(m *models.MertonJumpDiffusion) { m.T = -0.5 }},
		{"zero Nsteps", func(m *models.MertonJumpDiffusion) { m.Nsteps = 0 }},
		{"negative Nsteps", func(m *models.MertonJumpDiffusion) { m.Nsteps = -5 }},
		{"zero Nsim", func(m *models.MertonJumpDiffusion) { m.Nsim = 0 }},
		{"negative Nsim", func(m *models.MertonJumpDiffusion) { m.Nsim = -100 }},
		{"negative Sigma", func(m *models.MertonJumpDiffusion) { m.Sigma = -0.1 }},
		{"negative Lambda", func(m *models.MertonJumpDiffusion) { m.Lambda = -0.25 }},
		{"negative B", func(m *models.MertonJumpDiffusion) { m.B = -0.2 }},
		{"zero Alpha", func(m *models.MertonJumpDiffusion) { m.Alpha = 0 }},
		{"Alpha of one", func(m *models.MertonJumpDiffusion) { m.Alpha = 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := models.NewMertonJumpDiffusion()
			tc.mutate(&m)
			err := m.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, models.ErrInvalidParameter)
		})
	}
}

// TestValidateBoundaries confirms that zero volatility and zero jump
// intensity are legal degenerate cases.
func TestValidateBoundaries(t *testing.T) {
	m := models.NewMertonJumpDiffusion()
	m.Sigma = 0
	m.Lambda = 0
	m.B = 0
	require.NoError(t, m.Validate())
}

// TestMomentsDefaults pins the closed-form moments for the default
// parameter set.
func TestMomentsDefaults(t *testing.T) {
	mom := models.NewMertonJumpDiffusion().Moments()

	require.InDelta(t, 1.1990375372027382, mom.Mean, 1e-12)
	require.InDelta(t, 0.18489081066187074, mom.Variance, 1e-12)
}

// TestMomentsGBMReduction: with Lambda = 0 the moments must collapse to the
// geometric Brownian motion closed form.
func TestMomentsGBMReduction(t *testing.T) {
	m := models.NewMertonJumpDiffusion()
	m.S0 = 100
	m.Mu = 0.05
	m.Sigma = 0.2
	m.T = 2
	m.Lambda = 0

	mom := m.Moments()

	wantMean := m.S0 * math.Exp(m.Mu*m.T)
	wantVar := m.S0 * m.S0 * math.Exp(2*m.Mu*m.T) * (math.Exp(m.Sigma*m.Sigma*m.T) - 1)

	require.InDelta(t, wantMean, mom.Mean, 1e-9)
	require.InDelta(t, wantVar, mom.Variance, 1e-9)
}

// TestMomentsDeterministicJumpSize: with B = 0 the jump factor is the
// constant exp(A), so mean_Y = exp(A) and var_Y = 0.
func TestMomentsDeterministicJumpSize(t *testing.T) {
	m := models.NewMertonJumpDiffusion()
	m.B = 0

	mom := m.Moments()

	meanY := math.Exp(m.A)
	wantMean := m.S0 * math.Exp(m.Mu*m.T+m.Lambda*m.T*(meanY-1))
	wantVar := m.S0 * m.S0 *
		(math.Exp((2*m.Mu+m.Sigma*m.Sigma)*m.T+m.Lambda*m.T*(meanY*meanY-1)) -
			math.Exp(2*m.Mu*m.T+2*m.Lambda*m.T*(meanY-1)))

	require.InDelta(t, wantMean, mom.Mean, 1e-12)
	require.InDelta(t, wantVar, mom.Variance, 1e-12)
}

// TestMomentsPure confirms Moments is deterministic and side-effect free.
func TestMomentsPure(t *testing.T) {
	m := models.NewMertonJumpDiffusion()
	first := m.Moments()
	second := m.Moments()
	require.Equal(t, first, second)
}

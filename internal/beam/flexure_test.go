package beam

import (
	"testing"

	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSection() section.Section {
	return section.MustNew(30, 50, 28, 420, 4)
}

func TestAsMin(t *testing.T) {
	// 1.4/fy governs for f'c = 28 MPa
	assert.InDelta(t, 460.0, AsMin(28, 420, 300, 460), 1e-9)
}

func TestFlexure(t *testing.T) {
	s := sampleSection()

	t.Run("tension controlled", func(t *testing.T) {
		res := Flexure(s, 100)

		assert.Equal(t, StatusFlexureOK, res.Status)
		assert.Equal(t, trace.StatusOK, res.StatusCode)
		assert.InDelta(t, 5.98, res.AsCalc, 0.01)
		assert.InDelta(t, 4.60, res.AsMin, 1e-9)
		assert.Equal(t, res.AsCalc, res.AsDesign)
		assert.InDelta(t, 0.9, res.Phi, 1e-9)
		assert.Greater(t, res.EpsilonT, 0.005)
		assert.InDelta(t, 3.52, res.A, 0.01)
		assert.InDelta(t, 4.14, res.C, 0.01)
		assert.True(t, res.Converged)
		assert.Equal(t, 1, res.Iterations)
		assert.InDelta(t, 100.0, res.PhiMn, 0.01)

		_, ok := res.Trace.Find("As_required_quadratic")
		assert.True(t, ok)
	})

	t.Run("hand calculation", func(t *testing.T) {
		res := Flexure(s, 150)
		assert.InDelta(t, 9.16, res.AsDesign, 0.01)
		assert.Greater(t, res.AsDesign, 8.0)
		assert.Less(t, res.AsDesign, 11.0)
	})

	t.Run("zero moment gives minimum steel", func(t *testing.T) {
		res := Flexure(s, 0)

		assert.Equal(t, StatusMinSteel, res.Status)
		assert.Equal(t, 0.0, res.AsCalc)
		assert.InDelta(t, res.AsMin, res.AsDesign, 1e-12)
		assert.True(t, res.Converged)
		assert.Equal(t, 0, res.Iterations)
		assert.Greater(t, res.PhiMn, 0.0)
	})

	t.Run("overloaded section", func(t *testing.T) {
		res := Flexure(s, 1000)

		assert.Equal(t, StatusOverloaded, res.Status)
		assert.Equal(t, trace.StatusError, res.StatusCode)
		assert.Equal(t, 0.0, res.AsCalc)
		assert.Equal(t, 0.0, res.AsDesign)

		check, ok := res.Trace.Find("phiMn_quadratic_discriminant")
		require.True(t, ok)
		assert.Equal(t, trace.StatusError, check.Status)
	})

	t.Run("invalid geometry", func(t *testing.T) {
		res := Flexure(section.MustNew(10, 15, 28, 420, 8), 50)

		assert.Contains(t, res.Status, "Error:")
		assert.Equal(t, trace.StatusError, res.StatusCode)
		assert.InDelta(t, 0.65, res.Phi, 1e-9)
		assert.Empty(t, res.Trace)
	})
}

func TestFlexureSignInvariance(t *testing.T) {
	s := sampleSection()
	pos := Flexure(s, 120)
	neg := Flexure(s, -120)

	assert.Equal(t, pos.AsCalc, neg.AsCalc)
	assert.Equal(t, pos.AsDesign, neg.AsDesign)
	assert.Equal(t, pos.Phi, neg.Phi)
	assert.Equal(t, pos.EpsilonT, neg.EpsilonT)
	assert.Equal(t, pos.Status, neg.Status)

	require.NotEmpty(t, neg.Trace)
	assert.Equal(t, "Mu_SIGN_NORMALIZATION", neg.Trace[0].FormulaID)
	assert.Equal(t, trace.StatusWarning, neg.Trace[0].Status)
	_, flipped := pos.Trace.Find("Mu_SIGN_NORMALIZATION")
	assert.False(t, flipped)
}

func TestFlexureMaterials(t *testing.T) {
	for _, fc := range []float64{21, 28, 35, 42, 55, 70} {
		res := Flexure(section.MustNew(30, 50, fc, 420, 4), 100)
		assert.Greater(t, res.AsCalc, 0.0, "f'c=%v", fc)
		assert.GreaterOrEqual(t, res.AsDesign, res.AsMin, "f'c=%v", fc)
	}
	for _, fy := range []float64{280, 420, 500} {
		res := Flexure(section.MustNew(30, 50, 28, fy, 4), 100)
		assert.Greater(t, res.AsCalc, 0.0, "fy=%v", fy)
	}

	weak := Flexure(section.MustNew(30, 50, 21, 420, 4), 100)
	strong := Flexure(section.MustNew(30, 50, 42, 420, 4), 100)
	assert.Greater(t, weak.AsCalc, strong.AsCalc)

	mild := Flexure(section.MustNew(30, 50, 28, 280, 4), 100)
	high := Flexure(section.MustNew(30, 50, 28, 500, 4), 100)
	assert.Greater(t, mild.AsCalc, high.AsCalc)
}

func TestFlexureLowDuctility(t *testing.T) {
	s := sampleSection()

	var warned bool
	for mu := 200.0; mu <= 1000; mu += 10 {
		res := Flexure(s, mu)
		if res.StatusCode == trace.StatusError {
			break
		}
		if res.Status == StatusLowDuctility {
			warned = true
			assert.Less(t, res.EpsilonT, 0.004)
			assert.Equal(t, trace.StatusWarning, res.StatusCode)
			break
		}
	}
	assert.True(t, warned, "expected a low ductility warning before overload")
}

func TestFlexureIterationCap(t *testing.T) {
	// Near the transition the φ iteration oscillates and hits the cap
	res := Flexure(sampleSection(), 370)

	assert.Equal(t, MaxPhiIterations, res.Iterations)
	assert.False(t, res.Converged)
	check, ok := res.Trace.Find("phi_strain_classification")
	require.True(t, ok)
	assert.NotEmpty(t, check.Note)
}

func TestFlexureDeterministic(t *testing.T) {
	s := sampleSection()
	assert.Equal(t, Flexure(s, 180), Flexure(s, 180))
}

func TestAnalyzeFlexure(t *testing.T) {
	s := sampleSection()

	t.Run("tension controlled", func(t *testing.T) {
		res := AnalyzeFlexure(s, 5.98)
		assert.True(t, res.IsTensionControlled)
		assert.True(t, res.MeetsMinReinf)
		assert.InDelta(t, 0.9, res.Phi, 1e-9)
		assert.InDelta(t, 100.0, res.PhiMn, 0.1)
		assert.InDelta(t, res.Phi*res.Mn, res.PhiMn, 1e-9)
	})

	t.Run("below minimum", func(t *testing.T) {
		res := AnalyzeFlexure(s, 2)
		assert.False(t, res.MeetsMinReinf)
		assert.Contains(t, res.Message, "Below minimum")
	})

	t.Run("no steel", func(t *testing.T) {
		res := AnalyzeFlexure(s, 0)
		assert.Equal(t, 0.0, res.PhiMn)
		assert.Equal(t, "No tension reinforcement", res.Message)
	})
}

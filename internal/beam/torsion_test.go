package beam

import (
	"testing"

	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTorsion(t *testing.T) {
	s := sampleSection()

	t.Run("below threshold", func(t *testing.T) {
		res := Torsion(s, 1, 10)

		assert.Equal(t, StatusTorsionNeglectable, res.Status)
		assert.Equal(t, trace.StatusOK, res.StatusCode)
		assert.Equal(t, ActionNoTorsion, res.Action)
		assert.InDelta(t, 6.18, res.Tth, 0.01)
		assert.InDelta(t, 4.63, res.PhiTth, 0.01)
		assert.InDelta(t, res.Tth*0.33/0.083, res.Tcr, 1e-9)
		assert.Equal(t, 0.0, res.AtSReq)
		assert.Equal(t, 0.0, res.AlReq)
	})

	t.Run("zero torsion", func(t *testing.T) {
		res := Torsion(s, 0, 50)
		assert.Equal(t, StatusTorsionNeglectable, res.Status)
	})

	t.Run("reinforcement required", func(t *testing.T) {
		res := Torsion(s, 20, 50)

		assert.Equal(t, StatusTorsionRequired, res.Status)
		assert.Equal(t, trace.StatusWarning, res.StatusCode)
		assert.Equal(t, ActionReinforce, res.Action)
		assert.InDelta(t, 0.4042, res.AtSReq, 1e-4)
		assert.InDelta(t, 10*res.AtSReq, res.AtSReqCm2PerM, 1e-12)
		assert.InDelta(t, 5.17, res.AlReq, 0.01)
		assert.Contains(t, res.CheckCrossSection, "OK")

		_, ok := res.Trace.Find("Al_min_and_required")
		assert.True(t, ok)
	})

	t.Run("cross-section too small", func(t *testing.T) {
		res := Torsion(s, 100, 500)

		assert.Equal(t, StatusTorsionCrossSection, res.Status)
		assert.Equal(t, trace.StatusError, res.StatusCode)
		assert.Contains(t, res.CheckCrossSection, "Combined Shear Stress")
		assert.Equal(t, 0.0, res.AtSReq)
	})

	t.Run("cover too large", func(t *testing.T) {
		res := Torsion(section.MustNew(10, 15, 28, 420, 8), 20, 50)

		assert.Contains(t, res.Status, "Error:")
		assert.Equal(t, trace.StatusError, res.StatusCode)
		assert.Equal(t, "N/A", res.CheckCrossSection)
	})

	t.Run("negative loads", func(t *testing.T) {
		pos := Torsion(s, 20, 50)
		neg := Torsion(s, -20, -50)

		assert.Equal(t, pos.AtSReq, neg.AtSReq)
		assert.Equal(t, pos.AlReq, neg.AlReq)
		assert.Equal(t, 20.0, neg.Tu)
		_, ok := neg.Trace.Find("Tu_SIGN_NORMALIZATION")
		assert.True(t, ok)
		_, ok = neg.Trace.Find("Vu_SIGN_NORMALIZATION")
		assert.True(t, ok)
	})
}

func TestTorsionCover(t *testing.T) {
	thin := Torsion(section.MustNew(30, 50, 28, 420, 3), 20, 50)
	thick := Torsion(section.MustNew(30, 50, 28, 420, 5), 20, 50)

	require.Equal(t, StatusTorsionRequired, thin.Status)
	require.Equal(t, StatusTorsionRequired, thick.Status)
	assert.Greater(t, thick.AtSReq, thin.AtSReq)
	assert.Equal(t, thin.Tth, thick.Tth)
}

func TestNewTorsionProperties(t *testing.T) {
	p := NewTorsionProperties(sampleSection())

	assert.True(t, p.Valid())
	assert.Equal(t, 150000.0, p.Acp)
	assert.Equal(t, 1600.0, p.Pcp)
	assert.Equal(t, 220.0*420.0, p.Aoh)
	assert.Equal(t, 1280.0, p.Ph)
}

func TestLongitudinalTorsionSteel(t *testing.T) {
	// Small demand: the minimum of Eq. 9.6.4.3(a) governs
	al := LongitudinalTorsionSteel(0.05, 1280, 420, 28, 150000)
	assert.InDelta(t, 0.42*5.2915*150000/420-0.05*1280, al, 0.1)

	// Large demand governs
	al = LongitudinalTorsionSteel(0.5, 1280, 420, 28, 150000)
	assert.InDelta(t, 640.0, al, 1e-9)
}

package beam

import (
	"testing"

	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShear(t *testing.T) {
	s := sampleSection()

	tests := []struct {
		name   string
		vu     float64
		status string
		code   trace.Status
		sReq   float64 // cm, zero when no spacing is expected
	}{
		{"below half phi Vc", 5, StatusNoStirrups, trace.StatusOK, 0},
		{"concrete carries demand", 50, StatusMinStirrups, trace.StatusOK, 23},
		{"small steel demand", 100, StatusAddStirrups, trace.StatusOK, 23},
		{"demand spacing governs", 200, StatusAddStirrups, trace.StatusOK, 19.22},
		{"heavy band", 300, StatusAddStirrups, trace.StatusOK, 9.93},
		{"section too small", 1000, StatusShearUndersize, trace.StatusError, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Shear(s, tt.vu, ShearOptions{})

			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.code, res.StatusCode)
			assert.InDelta(t, 124.14, res.Vc, 0.01)
			assert.InDelta(t, 93.10, res.PhiVc, 0.01)
			if tt.sReq > 0 {
				require.NotNil(t, res.SReq)
				assert.InDelta(t, tt.sReq, *res.SReq, 0.01)
			} else {
				assert.Nil(t, res.SReq)
			}
		})
	}
}

func TestShearDetails(t *testing.T) {
	s := sampleSection()

	t.Run("no stirrups reports d/2", func(t *testing.T) {
		res := Shear(s, 5, ShearOptions{})
		require.NotNil(t, res.SMax)
		assert.InDelta(t, 23.0, *res.SMax, 1e-9)
		assert.Equal(t, 0.0, res.VsReq)
	})

	t.Run("negative steel demand is clamped", func(t *testing.T) {
		res := Shear(s, 50, ShearOptions{})
		assert.Equal(t, 0.0, res.VsReq)
	})

	t.Run("heavy band halves the maximum spacing", func(t *testing.T) {
		res := Shear(s, 300, ShearOptions{})
		require.NotNil(t, res.SMax)
		assert.InDelta(t, 11.5, *res.SMax, 1e-9)
		assert.InDelta(t, 275.86, res.VsReq, 0.01)
	})

	t.Run("undersized section keeps the demand", func(t *testing.T) {
		res := Shear(s, 1000, ShearOptions{})
		assert.InDelta(t, 1209.19, res.VsReq, 0.01)
		check, ok := res.Trace.Find("Vs_req_gt_Vs_max")
		require.True(t, ok)
		assert.Equal(t, trace.StatusError, check.Status)
	})

	t.Run("negative shear", func(t *testing.T) {
		pos := Shear(s, 200, ShearOptions{})
		neg := Shear(s, -200, ShearOptions{})
		assert.Equal(t, *pos.SReq, *neg.SReq)
		assert.Equal(t, "Vu_SIGN_NORMALIZATION", neg.Trace[0].FormulaID)
	})

	t.Run("invalid geometry", func(t *testing.T) {
		res := Shear(section.MustNew(10, 15, 28, 420, 8), 50, ShearOptions{})
		assert.Contains(t, res.Status, "Error:")
		assert.Equal(t, trace.StatusError, res.StatusCode)
	})
}

func TestShearStirrups(t *testing.T) {
	s := sampleSection()

	twoLegs := Shear(s, 200, ShearOptions{})
	fourLegs := Shear(s, 200, ShearOptions{Legs: 4})
	assert.InDelta(t, 2*twoLegs.Av, fourLegs.Av, 1e-9)
	assert.Greater(t, *fourLegs.SReq, *twoLegs.SReq)

	bar4 := Shear(s, 200, ShearOptions{DiameterCm: 1.27})
	assert.Greater(t, bar4.AvBarCm2, twoLegs.AvBarCm2)
	assert.InDelta(t, 0.7088, twoLegs.AvBarCm2, 1e-3)
}

func TestStirrupArea(t *testing.T) {
	bar, total := StirrupArea(1.0, 3)
	assert.InDelta(t, 78.54, bar, 0.01)
	assert.InDelta(t, 3*bar, total, 1e-12)
}

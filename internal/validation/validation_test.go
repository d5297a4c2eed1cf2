package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, Geometry(section.MustNew(30, 50, 28, 420, 4)))
	})

	t.Run("cover too large for width", func(t *testing.T) {
		errs := Geometry(section.MustNew(10, 15, 28, 420, 8))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "Cover is too large")
	})

	t.Run("zero value reports all violations", func(t *testing.T) {
		errs := Geometry(section.Section{})
		assert.Len(t, errs, 4)
		assert.Contains(t, errs[0], "width/height")
		assert.Contains(t, errs[1], "cover")
		assert.Contains(t, errs[2], "effective depth")
	})
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, "Error: a | b", ErrorStatus([]string{"a", "b"}))
}

func TestNormalizeLoad(t *testing.T) {
	t.Run("positive passes unchanged", func(t *testing.T) {
		v, check, err := NormalizeLoad(12.5, "Mu", PolicyAbsWithWarning)
		require.NoError(t, err)
		assert.Equal(t, 12.5, v)
		assert.Nil(t, check)
	})

	t.Run("zero passes unchanged", func(t *testing.T) {
		v, check, err := NormalizeLoad(0, "Vu", PolicyReject)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
		assert.Nil(t, check)
	})

	t.Run("negative with warning", func(t *testing.T) {
		v, check, err := NormalizeLoad(-100, "Mu", PolicyAbsWithWarning)
		require.NoError(t, err)
		assert.Equal(t, 100.0, v)
		require.NotNil(t, check)
		assert.Equal(t, trace.StatusWarning, check.Status)
		assert.Equal(t, "Mu_SIGN_NORMALIZATION", check.FormulaID)
		assert.Equal(t, -100.0, check.Inputs["raw_input"])
		assert.Equal(t, 100.0, check.Value)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, _, err := NormalizeLoad(-1, "Tu", PolicyReject)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLoad))
		assert.Contains(t, err.Error(), "Tu")
	})
}

func TestNormalize(t *testing.T) {
	var log trace.Log
	v, log := Normalize(log, 5, "Vu")
	assert.Equal(t, 5.0, v)
	assert.Empty(t, log)

	v, log = Normalize(log, -5, "Vu")
	assert.Equal(t, 5.0, v)
	assert.Len(t, log, 1)
}

func TestNormalizeLoadNotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for _, policy := range []Policy{PolicyAbsWithWarning, PolicyReject} {
			got, check, err := NormalizeLoad(v, "Mu", policy)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLoad))
			assert.Equal(t, 0.0, got)
			require.NotNil(t, check)
			assert.Equal(t, trace.StatusError, check.Status)
			assert.Equal(t, "Mu_NOT_FINITE", check.FormulaID)
		}
	}
}

func TestRejected(t *testing.T) {
	var log trace.Log
	_, log = Normalize(log, -5, "Vu")
	_, bad := Rejected(log)
	assert.False(t, bad, "a sign flip is only a warning")

	v, log := Normalize(log, math.NaN(), "Tu")
	assert.Equal(t, 0.0, v)
	msg, bad := Rejected(log)
	assert.True(t, bad)
	assert.Equal(t, "Error: Tu must be a finite number, got NaN.", msg)
}

package design

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	in := Defaults()

	assert.Equal(t, 100.0, in.MuPos)
	assert.Equal(t, 0.0, in.MuNeg)
	assert.Equal(t, 50.0, in.Vu)
	assert.Equal(t, 15.0, in.Tu)
	assert.Equal(t, 50.0, in.VuTorsion)
	assert.Equal(t, 2, in.NLegs)
	assert.Equal(t, `#3 (3/8")`, in.StirrupBar)
	assert.Equal(t, 6, in.NBarsTorsion)
	assert.NoError(t, in.Validate())
}

func TestWith(t *testing.T) {
	base := Defaults()
	next := base.With(WithMoments(150, -40), WithShear(95), WithStirrups(4, "#4"))

	assert.Equal(t, 150.0, next.MuPos)
	assert.Equal(t, -40.0, next.MuNeg)
	assert.Equal(t, 95.0, next.Vu)
	assert.Equal(t, 4, next.NLegs)

	// snapshot taken before the update is unchanged
	assert.Equal(t, Defaults(), base)
	assert.Equal(t, base, base.With())
}

func TestLookupStirrup(t *testing.T) {
	tests := []struct {
		designation string
		diameter    float64
		found       bool
	}{
		{`#3 (3/8")`, 0.95, true},
		{"#3", 0.95, true},
		{"#4", 1.27, true},
		{` #5 (5/8") `, 1.59, true},
		{"#6", 0, false},
		{"#", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.designation, func(t *testing.T) {
			bar, ok := LookupStirrup(tt.designation)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.diameter, bar.DiameterCm)
		})
	}
}

func TestStirrupDiameterCm(t *testing.T) {
	assert.Equal(t, 0.95, Defaults().StirrupDiameterCm())
	assert.Equal(t, 1.59, Defaults().With(WithStirrups(2, "#5")).StirrupDiameterCm())
	assert.Equal(t, FallbackStirrupDiameter, Defaults().With(WithStirrups(2, "#8")).StirrupDiameterCm())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		msg  string
	}{
		{"single leg", WithStirrups(1, "#3"), "n_legs"},
		{"unknown bar", WithStirrups(2, "#9"), "unknown stirrup bar"},
		{"too few torsion bars", WithTorsionBars(3), "n_bars_torsion"},
		{"NaN moment", WithMoments(math.NaN(), 0), "mu_pos must be finite"},
		{"infinite shear", WithShear(math.Inf(1)), "vu must be finite"},
		{"infinite torsion shear", WithTorsion(10, math.Inf(-1)), "vu_torsion must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Defaults().With(tt.opt).Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInputs))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("negative loads are accepted", func(t *testing.T) {
		in := Defaults().With(WithMoments(-10, -20), WithTorsion(-5, -5))
		assert.NoError(t, in.Validate())
	})
}

package aci

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeta1(t *testing.T) {
	assert.Equal(t, 0.85, Beta1(21))
	assert.Equal(t, 0.85, Beta1(28))
	assert.InDelta(t, 0.85-0.05*12/7.0, Beta1(40), 1e-12)
	assert.Equal(t, 0.65, Beta1(55))
	assert.Equal(t, 0.65, Beta1(70))

	b := Beta1(40)
	assert.True(t, b > 0.65 && b < 0.85)
}

func TestPhi(t *testing.T) {
	tests := []struct {
		name    string
		epsilon float64
		want    float64
	}{
		{"tension controlled", 0.0075, 0.90},
		{"tension limit", 0.005, 0.90},
		{"compression controlled", 0.001, 0.65},
		{"compression limit", 0.002, 0.65},
		{"transition midpoint", 0.0035, 0.775},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Phi(tt.epsilon), 1e-12)
		})
	}
}

func TestRhoMin(t *testing.T) {
	// 1.4/fy governs below f'c = 31.36 MPa
	assert.InDelta(t, 1.4/420, RhoMin(28, 420), 1e-12)
	assert.InDelta(t, 0.25*math.Sqrt(40)/420, RhoMin(40, 420), 1e-12)
}

func TestVc(t *testing.T) {
	assert.InDelta(t, 124138.6, Vc(28, 300, 460), 0.5)
}

func TestFactored(t *testing.T) {
	e := LoadEffects{Dead: 50, Live: 30}
	assert.InDelta(t, 70, LoadCombinations[0].Factored(e), 1e-9)
	assert.InDelta(t, 108, LoadCombinations[1].Factored(e), 1e-9)

	// Lr, S and R are alternatives, only the largest enters
	e = LoadEffects{Dead: 10, Roof: 4, Snow: 6, Rain: 2}
	assert.InDelta(t, 1.2*10+1.6*6, LoadCombinations[2].Factored(e), 1e-9)
}

func TestGoverning(t *testing.T) {
	t.Run("gravity", func(t *testing.T) {
		mu, combo := Governing(LoadEffects{Dead: 50, Live: 30}, LoadCombinations)
		assert.InDelta(t, 108, mu, 1e-9)
		assert.Equal(t, "5.3.1b", combo.ID)
	})

	t.Run("dead only", func(t *testing.T) {
		mu, combo := Governing(LoadEffects{Dead: 50}, GravityCombinations)
		assert.InDelta(t, 70, mu, 1e-9)
		assert.Equal(t, "5.3.1a", combo.ID)
	})

	t.Run("reversal keeps sign", func(t *testing.T) {
		mu, combo := Governing(LoadEffects{Dead: 10, Earthquake: -120}, LoadCombinations)
		assert.InDelta(t, 0.9*10-120, mu, 1e-9)
		assert.Equal(t, "5.3.1g", combo.ID)
	})
}

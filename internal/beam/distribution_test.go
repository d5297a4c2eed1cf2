package beam

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeTorsionLongitudinal(t *testing.T) {
	tests := []struct {
		name                       string
		al, b, h, cover            float64
		nBars                      int
		bottom, top, sideEach, out int
	}{
		{"eight bars", 6, 30, 50, 4, 8, 2, 2, 2, 8},
		{"odd bar moves to bottom", 6, 30, 50, 4, 7, 3, 2, 1, 7},
		{"raised to four bars", 6, 30, 50, 4, 2, 2, 2, 0, 4},
		{"wide section", 6, 100, 30, 4, 12, 5, 5, 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistributeTorsionLongitudinal(tt.al, tt.b, tt.h, tt.cover, tt.nBars)

			assert.Equal(t, tt.out, d.NBars)
			assert.Equal(t, tt.bottom, d.NBottom)
			assert.Equal(t, tt.top, d.NTop)
			assert.Equal(t, tt.sideEach, d.NSideEach)
			assert.Equal(t, d.NBars, d.NBottom+d.NTop+2*d.NSideEach)
			assert.InDelta(t, tt.al, d.Sum(), 1e-9)
		})
	}
}

func TestDistributeTorsionLongitudinalZero(t *testing.T) {
	d := DistributeTorsionLongitudinal(0, 30, 50, 4, 6)

	assert.Equal(t, 6, d.NBars)
	assert.Equal(t, 0.0, d.AlTotal)
	assert.Equal(t, 0.0, d.AlPerBar)
	assert.Equal(t, 0, d.NBottom+d.NTop+d.NSideEach)
}

func TestDistributeTorsionLongitudinalConservation(t *testing.T) {
	for _, al := range []float64{0.1, 1.234567, 5.17, 17.3} {
		for n := 4; n <= 16; n++ {
			d := DistributeTorsionLongitudinal(al, 30, 50, 4, n)
			assert.InDelta(t, al, d.Sum(), 1e-9, "Al=%v n=%d", al, n)
		}
	}
}

func ExampleDistributeTorsionLongitudinal() {
	d := DistributeTorsionLongitudinal(6, 30, 50, 4, 8)
	fmt.Printf("bottom %d, top %d, %d per side, %.2f cm2 per face\n",
		d.NBottom, d.NTop, d.NSideEach, d.AlBottom)
	// Output: bottom 2, top 2, 2 per side, 1.50 cm2 per face
}

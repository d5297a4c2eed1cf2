package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"cm to mm", CmToMm(46), 460},
		{"mm to cm", MmToCm(230), 23},
		{"kN to N", KNToN(50), 50000},
		{"N to kN", NToKN(124138.6), 124.1386},
		{"kN-m to N-mm", KNmToNmm(100), 1e8},
		{"N-mm to kN-m", NmmToKNm(6.176e6), 6.176},
		{"mm2 to cm2", Mm2ToCm2(460), 4.6},
		{"cm2 to mm2", Cm2ToMm2(5.17), 517},
		{"rate", MmPerMmToCm2PerM(0.4042), 4.042},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-9)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	assert.InDelta(t, 12.5, MmToCm(CmToMm(12.5)), 1e-12)
	assert.InDelta(t, 3.3, Mm2ToCm2(Cm2ToMm2(3.3)), 1e-12)
	assert.InDelta(t, -7.0, NToKN(KNToN(-7)), 1e-12)
}

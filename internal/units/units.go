// Package units converts between the caller-facing units (cm, kN, kN-m, cm²)
// and the internal calculation units (mm, N, N-mm, mm²).
package units

// CmToMm converts centimeters to millimeters.
func CmToMm(cm float64) float64 { return cm * 10 }

// MmToCm converts millimeters to centimeters.
func MmToCm(mm float64) float64 { return mm / 10 }

// KNToN converts kilonewtons to newtons.
func KNToN(kn float64) float64 { return kn * 1e3 }

// NToKN converts newtons to kilonewtons.
func NToKN(n float64) float64 { return n / 1e3 }

// KNmToNmm converts kN-m to N-mm.
func KNmToNmm(knm float64) float64 { return knm * 1e6 }

// NmmToKNm converts N-mm to kN-m.
func NmmToKNm(nmm float64) float64 { return nmm / 1e6 }

// Mm2ToCm2 converts mm² to cm².
func Mm2ToCm2(mm2 float64) float64 { return mm2 / 100 }

// Cm2ToMm2 converts cm² to mm².
func Cm2ToMm2(cm2 float64) float64 { return cm2 * 100 }

// MmPerMmToCm2PerM converts a reinforcement rate in mm²/mm to cm²/m.
func MmPerMmToCm2PerM(v float64) float64 { return v * 10 }

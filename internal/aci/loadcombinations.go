package aci

import "math"

// LoadCombination represents an ACI 318-19 strength design load combination
// Based on ACI 318-19 Table 5.3.1
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D
	Live       float64 // L
	Roof       float64 // Lr
	Snow       float64 // S
	Rain       float64 // R
	Wind       float64 // W
	Earthquake float64 // E
}

// LoadCombinations lists the basic combinations of ACI 318-19 Table 5.3.1.
// Combinations with "(Lr or S or R)" take the largest of the three as one
// variable load, see Factored.
var LoadCombinations = []LoadCombination{
	{ID: "5.3.1a", Description: "1.4D", Dead: 1.4},
	{ID: "5.3.1b", Description: "1.2D + 1.6L + 0.5(Lr or S or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Snow: 0.5, Rain: 0.5},
	{ID: "5.3.1c", Description: "1.2D + 1.6(Lr or S or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Snow: 1.6, Rain: 1.6},
	{ID: "5.3.1c'", Description: "1.2D + 1.6(Lr or S or R) + 0.5W", Dead: 1.2, Roof: 1.6, Snow: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "5.3.1d", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or S or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Snow: 0.5, Rain: 0.5},
	{ID: "5.3.1e", Description: "1.2D + 1.0E + 1.0L + 0.2S", Dead: 1.2, Live: 1.0, Earthquake: 1.0, Snow: 0.2},
	{ID: "5.3.1f", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "5.3.1g", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// GravityCombinations is the reduced set used for gravity-only members.
var GravityCombinations = []LoadCombination{
	LoadCombinations[0],
	LoadCombinations[1],
}

// LoadEffects holds one unfactored action (moment, shear or torsion) per load type
type LoadEffects struct {
	Dead       float64
	Live       float64
	Roof       float64
	Snow       float64
	Rain       float64
	Wind       float64
	Earthquake float64
}

// Factored applies the combination to the unfactored effects. Roof live, snow
// and rain enter as alternatives; the one producing the largest magnitude is used.
func (lc LoadCombination) Factored(e LoadEffects) float64 {
	base := lc.Dead*e.Dead + lc.Live*e.Live + lc.Wind*e.Wind + lc.Earthquake*e.Earthquake
	alt := []float64{lc.Roof * e.Roof, lc.Snow * e.Snow, lc.Rain * e.Rain}
	best := 0.0
	for _, v := range alt {
		if math.Abs(base+v) > math.Abs(base+best) {
			best = v
		}
	}
	return base + best
}

// Governing finds the factored effect of largest magnitude over the combinations.
// The sign of the governing value is preserved.
func Governing(e LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var combo LoadCombination

	for _, lc := range combinations {
		u := lc.Factored(e)
		if math.Abs(u) > math.Abs(governing) {
			governing = u
			combo = lc
		}
	}

	return governing, combo
}

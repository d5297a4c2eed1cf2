package beam

import (
	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/units"
)

// AnalysisResult holds the flexural capacity of the section for a given
// tension steel area. Depths in cm, moments in kN-m.
type AnalysisResult struct {
	As       float64 // Tension steel area (cm²)
	A        float64 // Depth of compression block
	C        float64 // Neutral axis depth
	EpsilonT float64 // Net tensile strain
	Phi      float64 // Strength reduction factor

	Rho    float64
	RhoMin float64

	Mn    float64 // Nominal moment capacity
	PhiMn float64 // Design moment capacity

	IsTensionControlled bool
	MeetsMinReinf       bool
	Message             string
}

// AnalyzeFlexure calculates the moment capacity of the section for a tension
// steel area as (cm²), assuming the steel yields.
func AnalyzeFlexure(s section.Section, as float64) AnalysisResult {
	result := AnalysisResult{As: as}
	if as <= 0 || s.B() <= 0 || s.D() <= 0 {
		result.Message = "No tension reinforcement"
		return result
	}

	b := units.CmToMm(s.B())
	d := units.CmToMm(s.D())
	asMm2 := units.Cm2ToMm2(as)

	result.Rho = asMm2 / (b * d)
	result.RhoMin = aci.RhoMin(s.Fc(), s.Fy())
	result.MeetsMinReinf = result.Rho >= result.RhoMin

	// T = C → As*fy = 0.85*f'c*b*a
	a := asMm2 * s.Fy() / (aci.Whitney * s.Fc() * b)
	c := a / s.Beta1()
	epsilonT := aci.EpsilonCU * (d - c) / c

	result.A = units.MmToCm(a)
	result.C = units.MmToCm(c)
	result.EpsilonT = epsilonT
	result.Phi = aci.Phi(epsilonT)
	result.IsTensionControlled = epsilonT >= aci.EpsilonTension

	// Mn = As * fy * (d - a/2)
	result.Mn = units.NmmToKNm(asMm2 * s.Fy() * (d - a/2))
	result.PhiMn = result.Phi * result.Mn

	if result.IsTensionControlled {
		result.Message = "Section is tension-controlled (εt ≥ 0.005)"
	} else if epsilonT > aci.EpsilonCompression {
		result.Message = "Section is in transition zone"
	} else {
		result.Message = "Section is compression-controlled (εt ≤ 0.002)"
	}
	if !result.MeetsMinReinf {
		result.Message += " | WARNING: Below minimum reinforcement"
	}

	return result
}

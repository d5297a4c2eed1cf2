package aci

import "math"

// ACI 318-19 coefficients (SI, MPa units)

const (
	// Concrete type factor, normal weight concrete
	LambdaNWC = 1.0

	// Equivalent rectangular stress block (Section 22.2.2.4)
	Whitney = 0.85 // 0.85 f'c block intensity

	// Beta1 (Table 22.2.2.4.3)
	Beta1Max     = 0.85 // for f'c <= 28 MPa
	Beta1Min     = 0.65 // for f'c >= 55 MPa
	FcBeta1Upper = 28.0 // MPa
	FcBeta1Lower = 55.0 // MPa

	// Strain limits (Section 21.2.2)
	EpsilonCU          = 0.003 // Ultimate concrete strain
	EpsilonTension     = 0.005 // Tension-controlled limit
	EpsilonCompression = 0.002 // Compression-controlled limit
	EpsilonLowDuctile  = 0.004 // Below this the section is flagged as low ductility

	// Strength reduction factors (Table 21.2.1)
	PhiTension     = 0.90 // Tension-controlled
	PhiCompression = 0.65 // Compression-controlled (other)
	PhiShear       = 0.75
	PhiTorsion     = 0.75

	// Minimum flexural steel (Table 9.6.1.2)
	MinRhoCoeff1 = 0.25 // 0.25 √f'c / fy
	MinRhoCoeff2 = 1.4  // 1.4 / fy

	// Shear (Section 22.5)
	VcCoeff     = 0.17  // Vc = 0.17 λ √f'c bw d
	VsMaxCoeff  = 0.66  // Vs,max = 0.66 √f'c bw d
	VsHalfCoeff = 0.33  // spacing band threshold 0.33 √f'c bw d
	AvMinCoeff1 = 0.062 // Av,min = 0.062 √f'c bw s / fyt
	AvMinCoeff2 = 0.35  // Av,min = 0.35 bw s / fyt

	// Stirrup spacing caps, mm (Table 9.7.6.2.2)
	SMaxNormal = 600.0 // d/2 or 600 mm
	SMaxHeavy  = 300.0 // d/4 or 300 mm

	// Torsion (Section 22.7)
	TthCoeff           = 0.083 // threshold torsion
	TcrCoeff           = 0.33  // cracking torsion
	CrossSectionCoeff  = 0.66  // 0.66 √f'c in 22.7.7.1
	TorsionStressCoeff = 1.7   // 1.7 Aoh²
	AoFactor           = 0.85  // Ao = 0.85 Aoh
	AlMinCoeff         = 0.42  // Eq. 9.6.4.3(a), 5/12 in MPa units

	// Space truss angle is fixed at 45 degrees
	CotTheta = 1.0
)

// Beta1 calculates the factor for the equivalent rectangular stress block
// ACI 318-19 Table 22.2.2.4.3
func Beta1(fc float64) float64 {
	if fc <= FcBeta1Upper {
		return Beta1Max
	}
	if fc < FcBeta1Lower {
		// β1 = 0.85 - 0.05(f'c - 28)/7
		return Beta1Max - 0.05*(fc-FcBeta1Upper)/7
	}
	return Beta1Min
}

// Phi calculates the flexural strength reduction factor from the net tensile strain
// ACI 318-19 Table 21.2.2
func Phi(epsilonT float64) float64 {
	if epsilonT >= EpsilonTension {
		return PhiTension
	} else if epsilonT <= EpsilonCompression {
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiTension-PhiCompression)*(epsilonT-EpsilonCompression)/(EpsilonTension-EpsilonCompression)
}

// RhoMin calculates the minimum flexural reinforcement ratio
// ACI 318-19 Table 9.6.1.2
func RhoMin(fc, fy float64) float64 {
	rho1 := MinRhoCoeff1 * math.Sqrt(fc) / fy
	rho2 := MinRhoCoeff2 / fy
	return math.Max(rho1, rho2)
}

// Vc returns the simplified concrete shear capacity in N (ACI 318-19 Section 22.5).
// b and d are in mm.
func Vc(fc, b, d float64) float64 {
	return VcCoeff * LambdaNWC * math.Sqrt(fc) * b * d
}

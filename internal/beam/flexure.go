// Package beam implements the ACI 318-19 design checks of a rectangular beam
// section: flexure, one-way shear and torsion.
package beam

import (
	"log/slog"
	"math"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/alexiusacademia/acibeam/internal/units"
	"github.com/alexiusacademia/acibeam/internal/validation"
)

const (
	// MaxPhiIterations caps the fixed-point iteration on φ
	MaxPhiIterations = 10
	// PhiTolerance is the convergence tolerance on successive φ values
	PhiTolerance = 0.001
	// negligibleMoment is the moment (N-mm) below which minimum steel governs
	negligibleMoment = 1e-6
)

// Flexure status messages
const (
	StatusMinSteel     = "OK (Min Steel)"
	StatusFlexureOK    = "OK"
	StatusTransition   = "Transition Zone (epsilon_t < 0.005)"
	StatusLowDuctility = "Warning: Low Ductility (epsilon_t < 0.004)"
	StatusOverloaded   = "Error: Section Overloaded (Compression Failure)"
)

const (
	unboundedDuctility = 1.0
	flexureCodeRef     = "ACI 318-19 Section 22.2"
	strainClassCodeRef = "ACI 318-19 Section 21.2.2"
	minSteelCodeRef    = "ACI 318-19 Table 9.6.1.2"
)

// FlexureResult holds the flexural design of one face of the section.
// Areas are in cm², depths in cm.
type FlexureResult struct {
	AsCalc     float64      `json:"As_calc"`   // Steel area solved from the moment
	AsMin      float64      `json:"As_min"`    // Minimum steel area
	AsDesign   float64      `json:"As_design"` // max(As_calc, As_min)
	Rho        float64      `json:"rho"`       // As_calc / (b d)
	Phi        float64      `json:"phi"`
	EpsilonT   float64      `json:"epsilon_t"`
	Status     string       `json:"status"`
	StatusCode trace.Status `json:"status_code"`
	C          float64      `json:"c"` // Neutral axis depth
	A          float64      `json:"a"` // Stress block depth
	PhiMn      float64      `json:"phi_Mn"`     // Design capacity of As_design (kN-m)
	Converged  bool         `json:"converged"`  // φ iteration met PhiTolerance
	Iterations int          `json:"iterations"` // φ iterations performed
	Trace      trace.Log    `json:"trace"`
}

// phiSolution is the outcome of the φ fixed-point iteration, internal units.
type phiSolution struct {
	as         float64 // mm²
	a          float64 // mm
	c          float64 // mm
	epsilonT   float64
	phi        float64
	iterations int
	converged  bool
	overloaded bool
}

// AsMin returns the minimum flexural steel area in mm² (ACI 318-19 Table 9.6.1.2).
// b and d are in mm.
func AsMin(fc, fy, b, d float64) float64 {
	return aci.RhoMin(fc, fy) * b * d
}

// solvePhi iterates on φ until two successive values agree within PhiTolerance.
//
// Each step solves (fy²/(2·0.85·f'c·b))·As² − (fy·d)·As + Mu/φ = 0 for the
// smaller root, then derives a, c and εt to update φ. A negative discriminant
// means the section cannot carry the moment.
func solvePhi(mu, b, d, fc, fy, beta1 float64) phiSolution {
	sol := phiSolution{phi: aci.PhiTension, epsilonT: unboundedDuctility}

	termA := fy * fy / (2 * aci.Whitney * fc * b)
	termB := -fy * d

	for i := 0; i < MaxPhiIterations; i++ {
		sol.iterations = i + 1
		termC := mu / sol.phi
		delta := termB*termB - 4*termA*termC

		if delta < 0 {
			slog.Warn("section overloaded: discriminant < 0", "phi", sol.phi)
			sol.overloaded = true
			return sol
		}

		sol.as = (-termB - math.Sqrt(delta)) / (2 * termA)
		sol.a = sol.as * fy / (aci.Whitney * fc * b)
		sol.c = sol.a / beta1

		if sol.c <= 0 {
			sol.epsilonT = unboundedDuctility
			sol.phi = aci.PhiTension
			sol.converged = true
			return sol
		}

		sol.epsilonT = aci.EpsilonCU * (d - sol.c) / sol.c
		newPhi := aci.Phi(sol.epsilonT)

		if math.Abs(newPhi-sol.phi) < PhiTolerance {
			sol.phi = newPhi
			sol.converged = true
			return sol
		}
		sol.phi = newPhi
		slog.Debug("phi iteration", "iteration", i, "phi", sol.phi, "epsilon_t", sol.epsilonT)
	}

	return sol
}

// Flexure calculates the required tension reinforcement for an ultimate moment
// mu (kN-m, any sign; the magnitude is designed for).
func Flexure(s section.Section, mu float64) FlexureResult {
	slog.Info("flexure check", "Mu_kNm", mu, "b_cm", s.B(), "h_cm", s.H())

	if errs := validation.Geometry(s); len(errs) > 0 {
		return FlexureResult{
			Status:     validation.ErrorStatus(errs),
			StatusCode: trace.StatusError,
			Phi:        aci.PhiCompression,
		}
	}

	var log trace.Log
	muNorm, log := validation.Normalize(log, mu, "Mu")
	if msg, bad := validation.Rejected(log); bad {
		slog.Warn("flexure load rejected", "Mu_kNm", mu)
		return FlexureResult{
			Status:     msg,
			StatusCode: trace.StatusError,
			Phi:        aci.PhiCompression,
			Trace:      log,
		}
	}

	muNmm := units.KNmToNmm(muNorm)
	b := units.CmToMm(s.B())
	d := units.CmToMm(s.D())
	fc, fy := s.Fc(), s.Fy()

	asMin := AsMin(fc, fy, b, d)
	log = log.Add(trace.Check{
		CodeRef:   minSteelCodeRef,
		FormulaID: "As_min",
		Inputs:    map[string]float64{"fc_MPa": fc, "fy_MPa": fy, "b_mm": b, "d_mm": d},
		Value:     asMin,
		Units:     "mm2",
		Status:    trace.StatusOK,
	})

	if muNmm < negligibleMoment {
		return FlexureResult{
			AsMin:      units.Mm2ToCm2(asMin),
			AsDesign:   units.Mm2ToCm2(asMin),
			Phi:        aci.PhiTension,
			EpsilonT:   unboundedDuctility,
			Status:     StatusMinSteel,
			StatusCode: trace.StatusOK,
			PhiMn:      AnalyzeFlexure(s, units.Mm2ToCm2(asMin)).PhiMn,
			Converged:  true,
			Trace:      log,
		}
	}

	sol := solvePhi(muNmm, b, d, fc, fy, s.Beta1())

	if sol.overloaded {
		log = log.Add(trace.Check{
			CodeRef:   flexureCodeRef,
			FormulaID: "phiMn_quadratic_discriminant",
			Inputs:    map[string]float64{"Mu_Nmm": muNmm},
			Value:     sol.phi,
			Units:     "phi",
			Status:    trace.StatusError,
			Note:      "Negative discriminant in flexure quadratic.",
		})
		return FlexureResult{
			AsMin:      units.Mm2ToCm2(asMin),
			Phi:        sol.phi,
			Status:     StatusOverloaded,
			StatusCode: trace.StatusError,
			Iterations: sol.iterations,
			Trace:      log,
		}
	}

	log = log.Add(trace.Check{
		CodeRef:   flexureCodeRef,
		FormulaID: "As_required_quadratic",
		Inputs:    map[string]float64{"Mu_Nmm": muNmm, "phi": sol.phi, "b_mm": b, "d_mm": d},
		Value:     sol.as,
		Units:     "mm2",
		Status:    trace.StatusOK,
	})

	status, code := StatusFlexureOK, trace.StatusOK
	if sol.epsilonT < aci.EpsilonLowDuctile {
		status, code = StatusLowDuctility, trace.StatusWarning
		slog.Warn("low ductility", "epsilon_t", sol.epsilonT)
	} else if sol.epsilonT < aci.EpsilonTension {
		status, code = StatusTransition, trace.StatusWarning
	}

	classification := trace.Check{
		CodeRef:   strainClassCodeRef,
		FormulaID: "phi_strain_classification",
		Inputs:    map[string]float64{"epsilon_t": sol.epsilonT},
		Value:     sol.phi,
		Units:     "phi",
		Status:    code,
	}
	if !sol.converged {
		classification.Note = "phi did not converge within the iteration cap; last iterate used."
	}
	log = log.Add(classification)

	asDesign := units.Mm2ToCm2(math.Max(sol.as, asMin))
	return FlexureResult{
		AsCalc:     units.Mm2ToCm2(sol.as),
		AsMin:      units.Mm2ToCm2(asMin),
		AsDesign:   asDesign,
		Rho:        sol.as / (b * d),
		Phi:        sol.phi,
		EpsilonT:   sol.epsilonT,
		Status:     status,
		StatusCode: code,
		C:          units.MmToCm(sol.c),
		A:          units.MmToCm(sol.a),
		PhiMn:      AnalyzeFlexure(s, asDesign).PhiMn,
		Converged:  sol.converged,
		Iterations: sol.iterations,
		Trace:      log,
	}
}

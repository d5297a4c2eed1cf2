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

// Shear status messages
const (
	StatusNoStirrups     = "No Shear Reinforcement Required (Vu < 0.5 * phi * Vc)"
	StatusAddStirrups    = "Add Stirrups"
	StatusMinStirrups    = "Minimum Stirrups Required"
	StatusShearUndersize = "Error: Section Dimensions too small for Shear (Vs > Vs_max). Increase Dimensions."
)

const (
	// DefaultStirrupLegs is the stirrup leg count used when none is given
	DefaultStirrupLegs = 2
	// DefaultStirrupDiameter is a #3 (3/8") bar, cm
	DefaultStirrupDiameter = 0.95

	// spacingSentinel (mm) stands in for the demand spacing when Vs is not needed
	spacingSentinel = 9999.0
)

// ShearResult holds the one-way shear design. Forces in kN, spacings in cm.
// SReq and SMax are nil when no spacing applies.
type ShearResult struct {
	Vc         float64      `json:"Vc"`
	PhiVc      float64      `json:"phi_Vc"`
	VsReq      float64      `json:"Vs_req"`
	SReq       *float64     `json:"s_req"`
	SMax       *float64     `json:"s_max"`
	Status     string       `json:"status"`
	StatusCode trace.Status `json:"status_code"`
	Av         float64      `json:"Av"`         // All legs, mm²
	AvBarCm2   float64      `json:"Av_bar_cm2"` // One leg, cm²
	Trace      trace.Log    `json:"trace"`
}

// ShearOptions describes the stirrups.
type ShearOptions struct {
	Legs       int     // Number of stirrup legs
	DiameterCm float64 // Stirrup bar diameter (cm)
}

func (o ShearOptions) withDefaults() ShearOptions {
	if o.Legs <= 0 {
		o.Legs = DefaultStirrupLegs
	}
	if o.DiameterCm <= 0 {
		o.DiameterCm = DefaultStirrupDiameter
	}
	return o
}

// StirrupArea returns the area of one stirrup leg and of all legs in mm²,
// for a bar diameter in cm.
func StirrupArea(diameterCm float64, legs int) (float64, float64) {
	d := units.CmToMm(diameterCm)
	avBar := math.Pi * (d / 2) * (d / 2)
	return avBar, float64(legs) * avBar
}

// StirrupSpacing resolves the stirrup spacing (mm) as the least of the demand
// spacing, the code maximum band and the minimum reinforcement caps. It also
// returns the code maximum band. All inputs in N and mm.
// ACI 318-19 Table 9.7.6.2.2 and Section 9.6.3.4
func StirrupSpacing(av, fy, d, vsReq, fc, b float64) (float64, float64) {
	sCalc := spacingSentinel
	if vsReq > 0 {
		sCalc = av * fy * d / vsReq
	}

	var sMax float64
	if vsReq <= aci.VsHalfCoeff*math.Sqrt(fc)*b*d {
		sMax = math.Min(d/2, aci.SMaxNormal)
	} else {
		sMax = math.Min(d/4, aci.SMaxHeavy)
	}

	sMin1 := av * fy / (aci.AvMinCoeff1 * math.Sqrt(fc) * b)
	sMin2 := av * fy / (aci.AvMinCoeff2 * b)

	return math.Min(sCalc, math.Min(sMax, math.Min(sMin1, sMin2))), sMax
}

// Shear designs the stirrups for an ultimate shear vu (kN, any sign).
func Shear(s section.Section, vu float64, opts ShearOptions) ShearResult {
	opts = opts.withDefaults()
	slog.Info("shear check", "Vu_kN", vu, "b_cm", s.B(), "d_cm", s.D())

	if errs := validation.Geometry(s); len(errs) > 0 {
		return ShearResult{
			Status:     validation.ErrorStatus(errs),
			StatusCode: trace.StatusError,
		}
	}

	var log trace.Log
	vuNorm, log := validation.Normalize(log, vu, "Vu")
	if msg, bad := validation.Rejected(log); bad {
		slog.Warn("shear load rejected", "Vu_kN", vu)
		return ShearResult{
			Status:     msg,
			StatusCode: trace.StatusError,
			Trace:      log,
		}
	}

	vuN := units.KNToN(vuNorm)
	b := units.CmToMm(s.B())
	d := units.CmToMm(s.D())
	fc, fy := s.Fc(), s.Fy()

	vc := aci.Vc(fc, b, d)
	phiVc := aci.PhiShear * vc
	log = log.Add(trace.Check{
		CodeRef:   "ACI 318-19 Section 22.5",
		FormulaID: "Vc_simplified",
		Inputs:    map[string]float64{"fc_MPa": fc, "bw_mm": b, "d_mm": d},
		Value:     vc,
		Units:     "N",
		Status:    trace.StatusOK,
	})

	avBar, av := StirrupArea(opts.DiameterCm, opts.Legs)

	result := ShearResult{
		Vc:       units.NToKN(vc),
		PhiVc:    units.NToKN(phiVc),
		Av:       av,
		AvBarCm2: units.Mm2ToCm2(avBar),
	}

	if vuN <= 0.5*phiVc {
		result.Trace = log.Add(trace.Check{
			CodeRef:   "ACI 318-19 Section 9.6",
			FormulaID: "Vu_threshold_no_stirrups",
			Inputs:    map[string]float64{"Vu_N": vuN, "phiVc_N": phiVc},
			Value:     vuN / math.Max(phiVc, 1e-9),
			Units:     "ratio",
			Status:    trace.StatusOK,
		})
		sMax := units.MmToCm(d / 2)
		result.SMax = &sMax
		result.Status = StatusNoStirrups
		result.StatusCode = trace.StatusOK
		return result
	}

	vsReq := vuN/aci.PhiShear - vc
	vsMax := aci.VsMaxCoeff * math.Sqrt(fc) * b * d
	log = log.Add(trace.Check{
		CodeRef:   "ACI 318-19 Section 22.5",
		FormulaID: "Vs_max",
		Inputs:    map[string]float64{"fc_MPa": fc, "bw_mm": b, "d_mm": d},
		Value:     vsMax,
		Units:     "N",
		Status:    trace.StatusOK,
	})

	if vsReq > vsMax {
		slog.Warn("section too small for shear", "Vs_req_N", vsReq, "Vs_max_N", vsMax)
		result.Trace = log.Add(trace.Check{
			CodeRef:   "ACI 318-19 Section 22.5",
			FormulaID: "Vs_req_gt_Vs_max",
			Inputs:    map[string]float64{"Vs_req_N": vsReq, "Vs_max_N": vsMax},
			Value:     vsReq,
			Units:     "N",
			Status:    trace.StatusError,
		})
		result.VsReq = units.NToKN(vsReq)
		result.Status = StatusShearUndersize
		result.StatusCode = trace.StatusError
		return result
	}

	spacing, sMaxLimit := StirrupSpacing(av, fy, d, vsReq, fc, b)
	result.Trace = log.Add(trace.Check{
		CodeRef:   "ACI 318-19 Table 9.7.6.2.2",
		FormulaID: "stirrup_spacing",
		Inputs:    map[string]float64{"Av_mm2": av, "fy_MPa": fy, "d_mm": d, "Vs_req_N": vsReq},
		Value:     spacing,
		Units:     "mm",
		Status:    trace.StatusOK,
	})

	sReq := units.MmToCm(spacing)
	sMax := units.MmToCm(sMaxLimit)
	result.VsReq = units.NToKN(math.Max(0, vsReq))
	result.SReq = &sReq
	result.SMax = &sMax
	result.StatusCode = trace.StatusOK
	if vsReq > 0 {
		result.Status = StatusAddStirrups
	} else {
		result.Status = StatusMinStirrups
	}
	return result
}

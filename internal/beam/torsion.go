package beam

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/alexiusacademia/acibeam/internal/units"
	"github.com/alexiusacademia/acibeam/internal/validation"
)

// Torsion status messages
const (
	StatusTorsionNeglectable  = "Torsion Neglectable (Tu < phi * T_th)"
	StatusTorsionRequired     = "Torsion Reinforcement Required"
	StatusTorsionCoverTooBig  = "Error: Section too small for defined cover to calculate Aoh."
	StatusTorsionCrossSection = "Error: Cross-Section Too Small for Torsion+Shear!"
)

// Torsion actions
const (
	ActionNoTorsion   = "No Torsion Design Needed"
	ActionReinforce   = "Provide Closed Stirrups + Longitudinal Bars"
	ActionResizeCover = "Increase section or reduce cover"
)

const (
	crossSectionNA = "N/A"
	crossSectionOK = "OK"
	torsionCodeRef = "ACI 318-19 Section 22.7"
)

// TorsionResult holds the torsion check. Torsions in kN-m, At/s in mm²/mm
// (one leg) and cm²/m, Al in cm².
type TorsionResult struct {
	Tu                float64      `json:"Tu"`
	Tth               float64      `json:"T_th"`
	PhiTth            float64      `json:"phi_T_th"`
	Tcr               float64      `json:"T_cr"`
	PhiTcr            float64      `json:"phi_T_cr"`
	Status            string       `json:"status"`
	StatusCode        trace.Status `json:"status_code"`
	AtSReq            float64      `json:"At_s_req"`
	AtSReqCm2PerM     float64      `json:"At_s_req_cm2_m"`
	AlReq             float64      `json:"Al_req"`
	CheckCrossSection string       `json:"check_cross_section"`
	Action            string       `json:"action"`
	Trace             trace.Log    `json:"trace"`
}

// TorsionProperties are the gross and closed-stirrup section properties in mm.
type TorsionProperties struct {
	B, H   float64
	Acp    float64 // Gross area
	Pcp    float64 // Gross perimeter
	X1, Y1 float64 // Stirrup centerline dimensions
	Aoh    float64 // Area enclosed by the stirrup centerline
	Ph     float64 // Stirrup centerline perimeter
}

// Valid reports whether the cover leaves a positive stirrup core.
func (p TorsionProperties) Valid() bool {
	return p.X1 > 0 && p.Y1 > 0
}

// NewTorsionProperties computes Acp, Pcp, Aoh and Ph for the section.
func NewTorsionProperties(s section.Section) TorsionProperties {
	b := units.CmToMm(s.B())
	h := units.CmToMm(s.H())
	cover := units.CmToMm(s.Cover())

	p := TorsionProperties{
		B:   b,
		H:   h,
		Acp: b * h,
		Pcp: 2 * (b + h),
		X1:  b - 2*cover,
		Y1:  h - 2*cover,
	}
	if p.Valid() {
		p.Aoh = p.X1 * p.Y1
		p.Ph = 2 * (p.X1 + p.Y1)
	}
	return p
}

// CrossSectionCheck checks the combined shear and torsion stress limit.
// Forces in N and N-mm, lengths in mm, vc is the concrete shear capacity in N.
// ACI 318-19 22.7.7.1
func CrossSectionCheck(vu, tu, b, d, fc, ph, aoh, vc float64) (bool, string) {
	bwd := b * d
	stressV := vu / bwd
	stressT := tu * ph / (aci.TorsionStressCoeff * aoh * aoh)
	lhs := math.Sqrt(stressV*stressV + stressT*stressT)

	limit := aci.PhiTorsion * (vc/bwd + aci.CrossSectionCoeff*math.Sqrt(fc))

	if lhs > limit {
		return false, fmt.Sprintf("Combined Shear Stress %.2f > Limit %.2f MPa", lhs, limit)
	}
	return true, fmt.Sprintf("OK (%.2f <= %.2f MPa)", lhs, limit)
}

// TransverseTorsionSteel returns At/s (mm²/mm, one leg) for tu in N-mm.
func TransverseTorsionSteel(tu, aoh, fy float64) float64 {
	tn := tu / aci.PhiTorsion
	ao := aci.AoFactor * aoh
	return tn / (2 * ao * fy * aci.CotTheta)
}

// LongitudinalTorsionSteel returns Al (mm²) as the larger of the demand and
// the minimum of ACI 318-19 Eq. 9.6.4.3(a). Transverse and longitudinal steel
// share the same yield strength.
func LongitudinalTorsionSteel(atS, ph, fy, fc, acp float64) float64 {
	alReq := atS * ph * aci.CotTheta * aci.CotTheta
	alMin := aci.AlMinCoeff*math.Sqrt(fc)*acp/fy - atS*ph
	return math.Max(alReq, alMin)
}

// Torsion checks the threshold torsion and, when it is exceeded, the section
// adequacy and the required closed stirrups and longitudinal steel.
// tu in kN-m and the concomitant shear vu in kN, any sign.
func Torsion(s section.Section, tu, vu float64) TorsionResult {
	slog.Info("torsion check", "Tu_kNm", tu, "Vu_kN", vu)

	if errs := validation.Geometry(s); len(errs) > 0 {
		return TorsionResult{
			Tu:                tu,
			Status:            validation.ErrorStatus(errs),
			StatusCode:        trace.StatusError,
			CheckCrossSection: crossSectionNA,
		}
	}

	var log trace.Log
	tuNorm, log := validation.Normalize(log, tu, "Tu")
	vuNorm, log := validation.Normalize(log, vu, "Vu")
	if msg, bad := validation.Rejected(log); bad {
		slog.Warn("torsion load rejected", "Tu_kNm", tu, "Vu_kN", vu)
		return TorsionResult{
			Status:            msg,
			StatusCode:        trace.StatusError,
			CheckCrossSection: crossSectionNA,
			Trace:             log,
		}
	}

	tuNmm := units.KNmToNmm(tuNorm)
	vuN := units.KNToN(vuNorm)
	fc, fy := s.Fc(), s.Fy()

	props := NewTorsionProperties(s)
	result := TorsionResult{
		Tu:                tuNorm,
		Status:            crossSectionOK,
		StatusCode:        trace.StatusOK,
		CheckCrossSection: crossSectionOK,
	}

	if !props.Valid() {
		slog.Error("section too small for torsion cover", "x1_mm", props.X1, "y1_mm", props.Y1)
		result.Status = StatusTorsionCoverTooBig
		result.StatusCode = trace.StatusError
		result.CheckCrossSection = crossSectionNA
		result.Action = ActionResizeCover
		result.Trace = log.Add(trace.Check{
			CodeRef:   torsionCodeRef,
			FormulaID: "Aoh_validity",
			Inputs:    map[string]float64{"x1_mm": props.X1, "y1_mm": props.Y1},
			Value:     0,
			Units:     "mm2",
			Status:    trace.StatusError,
		})
		return result
	}

	// Threshold and cracking torsion
	factor := aci.LambdaNWC * math.Sqrt(fc) * props.Acp * props.Acp / props.Pcp
	tth := aci.TthCoeff * factor
	tcr := aci.TcrCoeff * factor

	result.Tth = units.NmmToKNm(tth)
	result.PhiTth = units.NmmToKNm(aci.PhiTorsion * tth)
	result.Tcr = units.NmmToKNm(tcr)
	result.PhiTcr = units.NmmToKNm(aci.PhiTorsion * tcr)
	log = log.Add(trace.Check{
		CodeRef:   torsionCodeRef,
		FormulaID: "T_th",
		Inputs:    map[string]float64{"fc_MPa": fc, "Acp_mm2": props.Acp, "Pcp_mm": props.Pcp},
		Value:     tth,
		Units:     "Nmm",
		Status:    trace.StatusOK,
	})

	if tuNmm < aci.PhiTorsion*tth {
		result.Status = StatusTorsionNeglectable
		result.Action = ActionNoTorsion
		result.Trace = log
		return result
	}

	d := units.CmToMm(s.D())
	vc := aci.Vc(fc, props.B, d)

	adequate, msg := CrossSectionCheck(vuN, tuNmm, props.B, d, fc, props.Ph, props.Aoh, vc)
	result.CheckCrossSection = msg
	check := trace.Check{
		CodeRef:   "ACI 318-19 22.7.7.1",
		FormulaID: "combined_shear_torsion_stress",
		Inputs:    map[string]float64{"Vu_N": vuN, "Tu_Nmm": tuNmm},
		Value:     1,
		Units:     "pass_fail",
		Status:    trace.StatusOK,
		Note:      msg,
	}
	if !adequate {
		check.Value = 0
		check.Status = trace.StatusError
	}
	log = log.Add(check)

	if !adequate {
		slog.Warn("cross-section inadequate", "check", msg)
		result.Status = StatusTorsionCrossSection
		result.StatusCode = trace.StatusError
		result.Trace = log
		return result
	}

	atS := TransverseTorsionSteel(tuNmm, props.Aoh, fy)
	result.AtSReq = atS
	result.AtSReqCm2PerM = units.MmPerMmToCm2PerM(atS)
	log = log.Add(trace.Check{
		CodeRef:   torsionCodeRef,
		FormulaID: "At_over_s",
		Inputs:    map[string]float64{"Tu_Nmm": tuNmm, "Aoh_mm2": props.Aoh, "fy_MPa": fy},
		Value:     atS,
		Units:     "mm2/mm",
		Status:    trace.StatusOK,
	})

	al := LongitudinalTorsionSteel(atS, props.Ph, fy, fc, props.Acp)
	result.AlReq = units.Mm2ToCm2(al)
	log = log.Add(trace.Check{
		CodeRef:   "ACI 318-19 Eq 9.6.4.3(a)",
		FormulaID: "Al_min_and_required",
		Inputs:    map[string]float64{"At_s_mm2_per_mm": atS, "Ph_mm": props.Ph, "Acp_mm2": props.Acp},
		Value:     al,
		Units:     "mm2",
		Status:    trace.StatusOK,
	})

	result.Status = StatusTorsionRequired
	result.StatusCode = trace.StatusWarning
	result.Action = ActionReinforce
	result.Trace = log
	return result
}

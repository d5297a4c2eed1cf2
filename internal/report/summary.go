package report

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/trace"
)

// Checklist states
const (
	StateComplies = "complies"
	StateWarning  = "warning"
	StateFails    = "fails"
	StatePending  = "pending"
)

// Governing flexure criteria
const (
	CriterionOverloaded = "Section overloaded"
	CriterionMinSteel   = "Minimum steel governs"
	CriterionDemand     = "Moment demand governs"
)

const steelTolerance = 1e-9

// Summary condenses a flexure result for one face of the section.
type Summary struct {
	Face               string  `json:"face"`
	State              string  `json:"state"`
	GoverningCriterion string  `json:"governing_criterion"`
	DuctilityAlert     bool    `json:"ductility_alert"`
	AsCalc             float64 `json:"As_calc_cm2"`
	AsMin              float64 `json:"As_min_cm2"`
	AsDesign           float64 `json:"As_design_cm2"`
	Rho                float64 `json:"rho"`
	Phi                float64 `json:"phi"`
	EpsilonT           float64 `json:"epsilon_t"`
}

// ChecklistRow is one line of the flexure compliance checklist.
type ChecklistRow struct {
	Face    string `json:"face"`
	Check   string `json:"check"`
	CodeRef string `json:"code_ref"`
	Formula string `json:"formula"`
	State   string `json:"state"`
	Value   string `json:"value"`
	Comment string `json:"comment"`
}

func stateOf(code trace.Status) string {
	switch code {
	case trace.StatusOK:
		return StateComplies
	case trace.StatusWarning:
		return StateWarning
	case trace.StatusError:
		return StateFails
	default:
		return StatePending
	}
}

func governingCriterion(r beam.FlexureResult) string {
	if r.StatusCode == trace.StatusError {
		return CriterionOverloaded
	}
	if r.AsDesign <= r.AsMin+steelTolerance {
		return CriterionMinSteel
	}
	return CriterionDemand
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}

// FlexureSummary returns the rounded figures and governing criterion of a
// flexure result.
func FlexureSummary(face string, r beam.FlexureResult) Summary {
	return Summary{
		Face:               face,
		State:              stateOf(r.StatusCode),
		GoverningCriterion: governingCriterion(r),
		DuctilityAlert:     r.EpsilonT < aci.EpsilonTension,
		AsCalc:             round(r.AsCalc, 3),
		AsMin:              round(r.AsMin, 3),
		AsDesign:           round(r.AsDesign, 3),
		Rho:                round(r.Rho, 5),
		Phi:                round(r.Phi, 4),
		EpsilonT:           round(r.EpsilonT, 5),
	}
}

// FlexureChecklist lists the minimum steel and ductility checks of a face,
// plus a capacity failure row when the section is overloaded.
func FlexureChecklist(face string, r beam.FlexureResult) []ChecklistRow {
	minSteel := StateComplies
	if r.AsDesign+steelTolerance < r.AsMin {
		minSteel = StateFails
	}
	rows := []ChecklistRow{{
		Face:    face,
		Check:   "Minimum steel",
		CodeRef: "ACI 318-19 Table 9.6.1.2",
		Formula: "As_min",
		State:   minSteel,
		Value:   fmt.Sprintf("As_design=%.2f cm2 | As_min=%.2f cm2", r.AsDesign, r.AsMin),
		Comment: governingCriterion(r),
	}}

	ductility := StateComplies
	switch {
	case r.StatusCode == trace.StatusError:
		ductility = StateFails
	case r.EpsilonT < aci.EpsilonTension:
		ductility = StateWarning
	}
	rows = append(rows, ChecklistRow{
		Face:    face,
		Check:   "Ductility and phi factor",
		CodeRef: "ACI 318-19 Section 21.2.2",
		Formula: "phi_strain_classification",
		State:   ductility,
		Value:   fmt.Sprintf("epsilon_t=%.5f | phi=%.3f", r.EpsilonT, r.Phi),
		Comment: r.Status,
	})

	if r.StatusCode == trace.StatusError {
		rows = append(rows, ChecklistRow{
			Face:    face,
			Check:   "Section capacity",
			CodeRef: "ACI 318-19 Section 22.2",
			Formula: "phiMn_quadratic_discriminant",
			State:   StateFails,
			Value:   "Flexural capacity failure",
			Comment: "Section overloaded for the applied moment.",
		})
	}
	return rows
}

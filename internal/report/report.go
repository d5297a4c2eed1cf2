// Package report runs every design check for one load case and assembles
// the results into a bundle for display and export.
package report

import (
	"log/slog"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/design"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
)

// Mechanism labels used in the governing criteria and exports
const (
	MechanismFlexurePos = "Flexure (+)"
	MechanismFlexureNeg = "Flexure (-)"
	MechanismShear      = "Shear"
	MechanismTorsion    = "Torsion"
)

// Controlling ACI clauses per mechanism
const (
	ClauseFlexure = "ACI 318-19 Sec. 22.2 / Table 9.6.1.2"
	ClauseShear   = "ACI 318-19 Sec. 22.5 / Table 9.7.6.2.2"
	ClauseTorsion = "ACI 318-19 Sec. 22.7 / Eq. 9.6.4.3(a)"
)

// Face labels of the flexure summaries
const (
	FaceBottom = "Bottom (+)"
	FaceTop    = "Top (-)"
)

// Criterion is one row of the governing criteria table.
type Criterion struct {
	Mechanism    string `json:"mechanism"`
	ACICriterion string `json:"aci_criterion"`
	Status       string `json:"status"`
}

// Bundle is the full design of one load case.
type Bundle struct {
	Section section.Section
	Inputs  design.Inputs

	FlexurePos   beam.FlexureResult
	FlexureNeg   beam.FlexureResult
	Shear        beam.ShearResult
	Torsion      beam.TorsionResult
	Distribution beam.TorsionDistribution

	Warnings          []string
	GoverningCriteria []Criterion

	Summaries []Summary
	Checklist []ChecklistRow
}

// Payload is the serializable form of a Bundle.
type Payload struct {
	FlexurePos        beam.FlexureResult       `json:"flexure_pos"`
	FlexureNeg        beam.FlexureResult       `json:"flexure_neg"`
	Shear             beam.ShearResult         `json:"shear"`
	Torsion           beam.TorsionResult       `json:"torsion"`
	Distribution      beam.TorsionDistribution `json:"torsion_distribution"`
	Warnings          []string                 `json:"warnings"`
	GoverningCriteria []Criterion              `json:"governing_criteria"`
}

// Build runs flexure on both faces, shear and torsion for the load case and
// distributes the torsion longitudinal steel. It has no side effects besides
// logging, so the same inputs always give the same bundle.
func Build(s section.Section, in design.Inputs) Bundle {
	slog.Info("building design report", "section", s.String())

	b := Bundle{
		Section:    s,
		Inputs:     in,
		FlexurePos: beam.Flexure(s, in.MuPos),
		FlexureNeg: beam.Flexure(s, in.MuNeg),
		Shear: beam.Shear(s, in.Vu, beam.ShearOptions{
			Legs:       in.NLegs,
			DiameterCm: in.StirrupDiameterCm(),
		}),
		Torsion: beam.Torsion(s, in.Tu, in.VuTorsion),
	}
	b.Distribution = beam.DistributeTorsionLongitudinal(b.Torsion.AlReq, s.B(), s.H(), s.Cover(), in.NBarsTorsion)

	b.Warnings = []string{}
	for _, r := range []struct {
		status string
		code   trace.Status
	}{
		{b.FlexurePos.Status, b.FlexurePos.StatusCode},
		{b.FlexureNeg.Status, b.FlexureNeg.StatusCode},
		{b.Shear.Status, b.Shear.StatusCode},
		{b.Torsion.Status, b.Torsion.StatusCode},
	} {
		if r.code.IsProblem() {
			b.Warnings = append(b.Warnings, r.status)
		}
	}

	b.GoverningCriteria = []Criterion{
		{Mechanism: MechanismFlexurePos, ACICriterion: ClauseFlexure, Status: b.FlexurePos.Status},
		{Mechanism: MechanismFlexureNeg, ACICriterion: ClauseFlexure, Status: b.FlexureNeg.Status},
		{Mechanism: MechanismShear, ACICriterion: ClauseShear, Status: b.Shear.Status},
		{Mechanism: MechanismTorsion, ACICriterion: ClauseTorsion, Status: b.Torsion.Status},
	}

	b.Summaries = []Summary{
		FlexureSummary(FaceBottom, b.FlexurePos),
		FlexureSummary(FaceTop, b.FlexureNeg),
	}
	b.Checklist = append(FlexureChecklist(FaceBottom, b.FlexurePos), FlexureChecklist(FaceTop, b.FlexureNeg)...)

	if len(b.Warnings) > 0 {
		slog.Warn("design report has warnings", "count", len(b.Warnings))
	}
	return b
}

// ExportPayload returns the serializable view of the bundle.
func (b Bundle) ExportPayload() Payload {
	return Payload{
		FlexurePos:        b.FlexurePos,
		FlexureNeg:        b.FlexureNeg,
		Shear:             b.Shear,
		Torsion:           b.Torsion,
		Distribution:      b.Distribution,
		Warnings:          b.Warnings,
		GoverningCriteria: b.GoverningCriteria,
	}
}

// Worst returns the most severe status code of the four checks.
func (b Bundle) Worst() trace.Status {
	worst := trace.StatusOK
	for _, code := range []trace.Status{
		b.FlexurePos.StatusCode,
		b.FlexureNeg.StatusCode,
		b.Shear.StatusCode,
		b.Torsion.StatusCode,
	} {
		switch code {
		case trace.StatusError:
			return trace.StatusError
		case trace.StatusWarning:
			worst = trace.StatusWarning
		}
	}
	return worst
}

// Recorder receives the outcome of every check in a bundle.
type Recorder interface {
	RecordCheck(mechanism string, status trace.Status)
	ObserveFlexureIterations(n int)
}

// Record reports the four check outcomes and the flexure iteration counts.
func (b Bundle) Record(r Recorder) {
	r.RecordCheck(MechanismFlexurePos, b.FlexurePos.StatusCode)
	r.RecordCheck(MechanismFlexureNeg, b.FlexureNeg.StatusCode)
	r.RecordCheck(MechanismShear, b.Shear.StatusCode)
	r.RecordCheck(MechanismTorsion, b.Torsion.StatusCode)
	r.ObserveFlexureIterations(b.FlexurePos.Iterations)
	r.ObserveFlexureIterations(b.FlexureNeg.Iterations)
}

package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names
const (
	SheetCriteria = "Criteria"
	SheetFlexure  = "Flexure"
	SheetShear    = "Shear"
	SheetTorsion  = "Torsion"
	SheetTrace    = "Trace"
)

// WriteXLSX writes the bundle as a workbook with one sheet per mechanism,
// the governing criteria and the full derivation trace.
func WriteXLSX(w io.Writer, b Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCriteria); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetFlexure, SheetShear, SheetTorsion, SheetTrace} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	sheets := map[string][][]any{
		SheetCriteria: criteriaRows(b),
		SheetFlexure:  flexureRows(b),
		SheetShear:    shearRows(b),
		SheetTorsion:  torsionRows(b),
		SheetTrace:    traceRows(b),
	}
	for _, name := range f.GetSheetList() {
		if err := writeRows(f, name, sheets[name]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func criteriaRows(b Bundle) [][]any {
	rows := [][]any{{CSVHeader[0], CSVHeader[1], CSVHeader[2]}}
	for _, c := range b.GoverningCriteria {
		rows = append(rows, []any{c.Mechanism, c.ACICriterion, c.Status})
	}
	return rows
}

func flexureRows(b Bundle) [][]any {
	rows := [][]any{{"face", "As_calc (cm2)", "As_min (cm2)", "As_design (cm2)", "rho", "phi", "epsilon_t", "a (cm)", "c (cm)", "phi_Mn (kN-m)", "converged", "status"}}
	for _, r := range []struct {
		face string
		res  beam.FlexureResult
	}{{FaceBottom, b.FlexurePos}, {FaceTop, b.FlexureNeg}} {
		rows = append(rows, []any{r.face, r.res.AsCalc, r.res.AsMin, r.res.AsDesign, r.res.Rho, r.res.Phi, r.res.EpsilonT, r.res.A, r.res.C, r.res.PhiMn, r.res.Converged, r.res.Status})
	}
	return rows
}

func shearRows(b Bundle) [][]any {
	r := b.Shear
	rows := [][]any{
		{"quantity", "value", "units"},
		{"Vc", r.Vc, "kN"},
		{"phi_Vc", r.PhiVc, "kN"},
		{"Vs_req", r.VsReq, "kN"},
		{"Av", r.Av, "mm2"},
		{"Av_bar", r.AvBarCm2, "cm2"},
	}
	if r.SReq != nil {
		rows = append(rows, []any{"s_req", *r.SReq, "cm"})
	}
	if r.SMax != nil {
		rows = append(rows, []any{"s_max", *r.SMax, "cm"})
	}
	return append(rows, []any{"status", r.Status, ""})
}

func torsionRows(b Bundle) [][]any {
	r, d := b.Torsion, b.Distribution
	return [][]any{
		{"quantity", "value", "units"},
		{"Tu", r.Tu, "kN-m"},
		{"T_th", r.Tth, "kN-m"},
		{"phi_T_th", r.PhiTth, "kN-m"},
		{"T_cr", r.Tcr, "kN-m"},
		{"At/s", r.AtSReqCm2PerM, "cm2/m"},
		{"Al", r.AlReq, "cm2"},
		{"bars bottom", d.NBottom, "bars"},
		{"bars top", d.NTop, "bars"},
		{"bars each side", d.NSideEach, "bars"},
		{"Al per bar", d.AlPerBar, "cm2"},
		{"cross-section", r.CheckCrossSection, ""},
		{"status", r.Status, ""},
		{"action", r.Action, ""},
	}
}

func traceRows(b Bundle) [][]any {
	rows := [][]any{{"mechanism", "step", "code_ref", "formula_id", "value", "units", "status", "note"}}
	for _, m := range []struct {
		name string
		log  trace.Log
	}{
		{MechanismFlexurePos, b.FlexurePos.Trace},
		{MechanismFlexureNeg, b.FlexureNeg.Trace},
		{MechanismShear, b.Shear.Trace},
		{MechanismTorsion, b.Torsion.Trace},
	} {
		for i, c := range m.log {
			rows = append(rows, []any{m.name, i + 1, c.CodeRef, c.FormulaID, c.Value, c.Units, string(c.Status), c.Note})
		}
	}
	return rows
}

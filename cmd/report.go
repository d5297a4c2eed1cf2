package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/alexiusacademia/acibeam/internal/diagram"
	"github.com/alexiusacademia/acibeam/internal/metrics"
	"github.com/alexiusacademia/acibeam/internal/report"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Load case
	reportMuPos     float64
	reportMuNeg     float64
	reportVu        float64
	reportTu        float64
	reportVuTorsion float64
	reportLegs      int
	reportBar       string
	reportBars      int

	// Outputs
	reportJSONFile   string
	reportCSVFile    string
	reportXLSXFile   string
	reportPDFFile    string
	reportPDFTitle   string
	reportDiagramDir string
	reportMetrics    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run every design check for one load case",
	Long: `Run flexure on both faces, shear and torsion for one load case,
distribute the torsion longitudinal steel and print the governing
criteria, warnings and the flexure checklist.

Load values not given as flags come from the configuration. Exports
accept "-" for stdout.

Examples:
  # Defaults: Mu+ 100, Mu- 0, Vu 50, Tu 15 kN(-m)
  acibeam report

  # Full case with every export
  acibeam report --mu-pos 150 --mu-neg 80 --vu 200 --tu 20 \
    --json design.json --csv criteria.csv --xlsx design.xlsx --pdf design.pdf

  # Section drawings and the check metrics
  acibeam report --diagrams out/ --metrics`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	f := reportCmd.Flags()
	f.Float64Var(&reportMuPos, "mu-pos", 0, "Positive factored moment Mu+ (kN-m)")
	f.Float64Var(&reportMuNeg, "mu-neg", 0, "Negative factored moment Mu- (kN-m)")
	f.Float64Var(&reportVu, "vu", 0, "Factored shear Vu (kN)")
	f.Float64Var(&reportTu, "tu", 0, "Factored torsion Tu (kN-m)")
	f.Float64Var(&reportVuTorsion, "vu-torsion", 0, "Shear concomitant with torsion (kN), defaults to --vu")
	f.IntVar(&reportLegs, "legs", 2, "Number of stirrup legs")
	f.StringVar(&reportBar, "bar", "#3", "Stirrup bar designation (#3, #4, #5)")
	f.IntVar(&reportBars, "bars", 6, "Number of longitudinal torsion bars")

	f.StringVar(&reportJSONFile, "json", "", "Write the JSON payload to this file")
	f.StringVar(&reportCSVFile, "csv", "", "Write the governing criteria CSV to this file")
	f.StringVar(&reportXLSXFile, "xlsx", "", "Write the XLSX workbook to this file")
	f.StringVar(&reportPDFFile, "pdf", "", "Write the PDF calculation sheet to this file")
	f.StringVar(&reportPDFTitle, "title", "Beam Design Report", "Title of the PDF calculation sheet")
	f.StringVar(&reportDiagramDir, "diagrams", "", "Export section drawings (PNG) to this directory")
	f.BoolVar(&reportMetrics, "metrics", false, "Print check metrics in Prometheus text format")
}

func runReport(cmd *cobra.Command, args []string) error {
	override(cmd, cfg, "mu-pos", "loads.mu_pos", reportMuPos)
	override(cmd, cfg, "mu-neg", "loads.mu_neg", reportMuNeg)
	override(cmd, cfg, "vu", "loads.vu", reportVu)
	override(cmd, cfg, "tu", "loads.tu", reportTu)
	override(cmd, cfg, "vu-torsion", "loads.vu_torsion", reportVuTorsion)
	override(cmd, cfg, "legs", "detailing.n_legs", reportLegs)
	override(cmd, cfg, "bar", "detailing.stirrup_bar", reportBar)
	override(cmd, cfg, "bars", "detailing.n_bars_torsion", reportBars)

	s, err := cfg.Section()
	if err != nil {
		return err
	}
	in, err := cfg.DesignInputs()
	if err != nil {
		return err
	}

	bundle := report.Build(s, in)

	rec := metrics.NewRecorder()
	bundle.Record(rec)
	rec.RecordReport()

	toStdout := reportJSONFile == "-" || reportCSVFile == "-" || reportXLSXFile == "-" || reportPDFFile == "-"
	if !toStdout {
		printReport(bundle)
	}

	if err := exportReport(bundle); err != nil {
		return err
	}

	if reportDiagramDir != "" {
		if err := exportDiagrams(bundle, reportDiagramDir); err != nil {
			return err
		}
	}

	if reportMetrics {
		return rec.WriteText(metricsOutput(toStdout))
	}
	return nil
}

func printReport(b report.Bundle) {
	printHeader("BEAM DESIGN REPORT - ACI 318-19")
	printSectionInput(b.Section)

	printSection("LOAD CASE:")
	w := newTable()
	fmt.Fprintf(w, "  Mu+:\t%.2f kN-m\n", b.Inputs.MuPos)
	fmt.Fprintf(w, "  Mu-:\t%.2f kN-m\n", b.Inputs.MuNeg)
	fmt.Fprintf(w, "  Vu:\t%.2f kN\n", b.Inputs.Vu)
	fmt.Fprintf(w, "  Tu:\t%.2f kN-m (with Vu = %.2f kN)\n", b.Inputs.Tu, b.Inputs.VuTorsion)
	fmt.Fprintf(w, "  Stirrups:\t%s, %d legs\n", b.Inputs.StirrupBar, b.Inputs.NLegs)
	w.Flush()
	fmt.Println()

	printSection("RESULTS:")
	w = newTable()
	fmt.Fprintf(w, "  Flexure (+):\tAs = %.2f cm²\tφ = %.3f\tφMn = %.2f kN-m\n", b.FlexurePos.AsDesign, b.FlexurePos.Phi, b.FlexurePos.PhiMn)
	fmt.Fprintf(w, "  Flexure (-):\tAs = %.2f cm²\tφ = %.3f\tφMn = %.2f kN-m\n", b.FlexureNeg.AsDesign, b.FlexureNeg.Phi, b.FlexureNeg.PhiMn)
	fmt.Fprintf(w, "  Shear:\ts = %s\ts,max = %s\tVs = %.2f kN\n", formatSpacing(b.Shear.SReq), formatSpacing(b.Shear.SMax), b.Shear.VsReq)
	fmt.Fprintf(w, "  Torsion:\tAt/s = %.2f cm²/m\tAl = %.2f cm²\tφT_th = %.2f kN-m\n", b.Torsion.AtSReqCm2PerM, b.Torsion.AlReq, b.Torsion.PhiTth)
	w.Flush()
	fmt.Println()

	printSection("GOVERNING CRITERIA:")
	codes := []string{
		badge(b.FlexurePos.StatusCode),
		badge(b.FlexureNeg.StatusCode),
		badge(b.Shear.StatusCode),
		badge(b.Torsion.StatusCode),
	}
	w = newTable()
	fmt.Fprintf(w, "  Mechanism\tACI Criterion\tStatus\n")
	fmt.Fprintf(w, "  ─────────\t─────────────\t──────\n")
	for _, c := range b.GoverningCriteria {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Mechanism, c.ACICriterion, c.Status)
	}
	w.Flush()
	for i, c := range b.GoverningCriteria {
		fmt.Printf("  %-12s %s\n", c.Mechanism, codes[i])
	}
	fmt.Println()

	if b.Distribution.AlTotal > 0 {
		printDistribution(b.Distribution)
	}

	printSection("FLEXURE CHECKLIST:")
	w = newTable()
	fmt.Fprintf(w, "  Face\tCheck\tReference\tValue\tState\n")
	fmt.Fprintf(w, "  ────\t─────\t─────────\t─────\t─────\n")
	for _, row := range b.Checklist {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", row.Face, row.Check, row.CodeRef, row.Value, row.State)
	}
	w.Flush()
	fmt.Println()

	for _, s := range b.Summaries {
		alert := ""
		if s.DuctilityAlert {
			alert = " (ductility alert)"
		}
		fmt.Printf("  %s: %s, %s%s\n", s.Face, s.State, s.GoverningCriterion, alert)
	}
	fmt.Println()

	fmt.Printf("  Overall: %s\n\n", badge(b.Worst()))

	if len(b.Warnings) == 0 {
		fmt.Println("  " + okStyle.Render("All checks passed."))
		fmt.Println()
		return
	}
	printSection("WARNINGS:")
	for _, warning := range b.Warnings {
		fmt.Println("  " + warningStyle.Render("• "+warning))
	}
	fmt.Println()
}

func exportReport(b report.Bundle) error {
	exports := []struct {
		path  string
		write func(io.Writer) error
	}{
		{reportJSONFile, func(w io.Writer) error { return report.WriteJSON(w, b) }},
		{reportCSVFile, func(w io.Writer) error { return report.WriteCSV(w, b) }},
		{reportXLSXFile, func(w io.Writer) error { return report.WriteXLSX(w, b) }},
		{reportPDFFile, func(w io.Writer) error { return report.WritePDF(w, b, reportPDFTitle) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := writeFile(e.path, e.write); err != nil {
			return err
		}
		if e.path != "-" {
			fmt.Printf("  Exported: %s\n", e.path)
		}
	}
	return nil
}

// exportDiagrams draws both flexure faces, the stirrup layout and the
// torsion section into dir.
func exportDiagrams(b report.Bundle, dir string) error {
	s := b.Section
	if err := exportFlexureFace(s, b, false, filepath.Join(dir, "flexure_pos.png")); err != nil {
		return err
	}
	if err := exportFlexureFace(s, b, true, filepath.Join(dir, "flexure_neg.png")); err != nil {
		return err
	}

	shearFile := filepath.Join(dir, "shear.png")
	if err := diagram.ExportShearLayout(diagram.NewShearDiagramData(s.H(), s.Cover(), b.Shear), shearFile); err != nil {
		return err
	}
	fmt.Printf("  Diagram exported to: %s\n", shearFile)

	torsionFile := filepath.Join(dir, "torsion.png")
	err := diagram.ExportTorsionSection(diagram.TorsionDiagramData{
		Width:        s.B(),
		Height:       s.H(),
		Cover:        s.Cover(),
		Distribution: b.Distribution,
		AtS:          b.Torsion.AtSReqCm2PerM,
	}, torsionFile)
	if err != nil {
		return err
	}
	fmt.Printf("  Diagram exported to: %s\n", torsionFile)
	return nil
}

func exportFlexureFace(s section.Section, b report.Bundle, top bool, file string) error {
	r := b.FlexurePos
	if top {
		r = b.FlexureNeg
	}
	if r.AsDesign <= 0 {
		return nil
	}
	if err := diagram.ExportFlexureSection(diagram.NewFlexureDiagramData(s, r, top), file); err != nil {
		return err
	}
	fmt.Printf("  Diagram exported to: %s\n", file)
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/diagram"
	"github.com/alexiusacademia/acibeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	flexureMu       float64
	flexureNegative bool

	flexureShowDiagram bool
	flexureShowTrace   bool
	flexureJSON        bool
	flexureExportFile  string
)

var flexureCmd = &cobra.Command{
	Use:   "flexure",
	Short: "Design the tension reinforcement for a factored moment",
	Long: `Calculate the required tension reinforcement area (As) of the
rectangular section for a factored moment (Mu).

The strength reduction factor is iterated with the net tensile strain:
  - Section 22.2: Equivalent rectangular stress block
  - Section 21.2.2: Strength reduction factor φ(εt)
  - Table 9.6.1.2: Minimum flexural reinforcement

Without --mu, the moment comes from the configuration (loads.mu_pos,
or loads.mu_neg with --negative).

Examples:
  # Design a 30x50 cm beam for Mu = 150 kN-m
  acibeam flexure -b 30 --height 50 -c 4 --fc 28 --fy 420 --mu 150

  # Top face for a hogging moment, with a PNG sketch
  acibeam flexure --mu 120 --negative -o flexure.png`,
	RunE: runFlexure,
}

func init() {
	rootCmd.AddCommand(flexureCmd)

	flexureCmd.Flags().Float64VarP(&flexureMu, "mu", "m", 0, "Factored moment Mu (kN-m)")
	flexureCmd.Flags().BoolVarP(&flexureNegative, "negative", "n", false, "Design the top face (negative moment)")

	flexureCmd.Flags().BoolVar(&flexureShowDiagram, "diagram", false, "Show ASCII section diagram")
	flexureCmd.Flags().BoolVar(&flexureShowTrace, "trace", false, "Show the calculation trace")
	flexureCmd.Flags().BoolVar(&flexureJSON, "json", false, "Print the result as JSON")
	flexureCmd.Flags().StringVarP(&flexureExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runFlexure(cmd *cobra.Command, args []string) error {
	key, face := "loads.mu_pos", report.FaceBottom
	if flexureNegative {
		key, face = "loads.mu_neg", report.FaceTop
	}
	override(cmd, cfg, "mu", key, flexureMu)

	s, err := cfg.Section()
	if err != nil {
		return err
	}
	in, err := cfg.DesignInputs()
	if err != nil {
		return err
	}
	mu := in.MuPos
	if flexureNegative {
		mu = in.MuNeg
	}

	result := beam.Flexure(s, mu)

	if flexureJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printHeader("FLEXURE DESIGN - ACI 318-19 - " + face)
	printSectionInput(s)
	fmt.Printf("  Factored Moment (Mu): %.2f kN-m\n\n", mu)

	printSection("SECTION ANALYSIS:")
	w := newTable()
	fmt.Fprintf(w, "  Compression block depth (a):\t%.2f cm\n", result.A)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.2f cm\n", result.C)
	fmt.Fprintf(w, "  Tensile strain (εt):\t%.6f\n", result.EpsilonT)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.Phi)
	fmt.Fprintf(w, "  φ iterations:\t%d (converged: %t)\n", result.Iterations, result.Converged)
	fmt.Fprintf(w, "  ρ_required:\t%.6f\n", result.Rho)
	w.Flush()
	fmt.Println()

	printSection("DESIGN RESULT:")
	w = newTable()
	fmt.Fprintf(w, "  As,calc:\t%.2f cm²\n", result.AsCalc)
	fmt.Fprintf(w, "  As,min:\t%.2f cm²\n", result.AsMin)
	fmt.Fprintf(w, "  φMn of As,design:\t%.2f kN-m\n", result.PhiMn)
	w.Flush()
	fmt.Println()

	summary := report.FlexureSummary(face, result)
	fmt.Print(diagram.DrawSummaryBox("FLEXURE "+face, []string{
		fmt.Sprintf("REQUIRED As = %.2f cm²", result.AsDesign),
		"Governing: " + summary.GoverningCriterion,
		"Status: " + result.Status,
	}))
	fmt.Printf("  %s\n\n", badge(result.StatusCode))

	if flexureShowTrace {
		printTrace(result.Trace)
	}

	data := diagram.NewFlexureDiagramData(s, result, flexureNegative)
	if flexureShowDiagram && result.AsDesign > 0 {
		fmt.Println(diagram.DrawASCIISectionDiagram(data))
	}

	if flexureExportFile != "" && result.AsDesign > 0 {
		if err := diagram.ExportFlexureSection(data, flexureExportFile); err != nil {
			return err
		}
		fmt.Printf("  Diagram exported to: %s\n\n", flexureExportFile)
	}
	return nil
}

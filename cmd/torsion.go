package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	torsionTu   float64
	torsionVu   float64
	torsionBars int

	torsionShowDiagram bool
	torsionShowTrace   bool
	torsionJSON        bool
	torsionExportFile  string
)

var torsionCmd = &cobra.Command{
	Use:   "torsion",
	Short: "Check torsion and design closed stirrups and longitudinal bars",
	Long: `Check the factored torsion (Tu) against the threshold torsion and,
when it cannot be neglected, check the cross-section for combined shear
and torsion and size the reinforcement.

  - Section 22.7: Threshold and cracking torsion, At/s
  - Section 22.7.7.1: Cross-sectional limit
  - Eq. 9.6.4.3(a): Minimum longitudinal torsion steel

The longitudinal steel Al is distributed over --bars bars.

Examples:
  # Tu = 20 kN-m with a concomitant shear of 50 kN
  acibeam torsion --tu 20 --vu 50

  # Eight bars, with the bar layout sketch
  acibeam torsion --tu 20 --vu 50 --bars 8 --diagram`,
	RunE: runTorsion,
}

func init() {
	rootCmd.AddCommand(torsionCmd)

	torsionCmd.Flags().Float64VarP(&torsionTu, "tu", "t", 0, "Factored torsion Tu (kN-m)")
	torsionCmd.Flags().Float64VarP(&torsionVu, "vu", "v", 0, "Concomitant factored shear Vu (kN)")
	torsionCmd.Flags().IntVar(&torsionBars, "bars", beam.DefaultTorsionBars, "Number of longitudinal torsion bars")

	torsionCmd.Flags().BoolVar(&torsionShowDiagram, "diagram", false, "Show ASCII bar layout")
	torsionCmd.Flags().BoolVar(&torsionShowTrace, "trace", false, "Show the calculation trace")
	torsionCmd.Flags().BoolVar(&torsionJSON, "json", false, "Print the result as JSON")
	torsionCmd.Flags().StringVarP(&torsionExportFile, "output", "o", "", "Export torsion section to file (png, svg, pdf)")
}

func runTorsion(cmd *cobra.Command, args []string) error {
	override(cmd, cfg, "tu", "loads.tu", torsionTu)
	override(cmd, cfg, "vu", "loads.vu_torsion", torsionVu)
	override(cmd, cfg, "bars", "detailing.n_bars_torsion", torsionBars)

	s, err := cfg.Section()
	if err != nil {
		return err
	}
	in, err := cfg.DesignInputs()
	if err != nil {
		return err
	}

	result := beam.Torsion(s, in.Tu, in.VuTorsion)
	dist := beam.DistributeTorsionLongitudinal(result.AlReq, s.B(), s.H(), s.Cover(), in.NBarsTorsion)

	if torsionJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Torsion      beam.TorsionResult       `json:"torsion"`
			Distribution beam.TorsionDistribution `json:"torsion_distribution"`
		}{result, dist})
	}

	printHeader("TORSION DESIGN - ACI 318-19")
	printSectionInput(s)

	printSection("TORSION STRENGTH:")
	w := newTable()
	fmt.Fprintf(w, "  Factored Torsion (Tu):\t%.2f kN-m\n", in.Tu)
	fmt.Fprintf(w, "  Concomitant Shear (Vu):\t%.2f kN\n", in.VuTorsion)
	fmt.Fprintf(w, "  T_th:\t%.2f kN-m\n", result.Tth)
	fmt.Fprintf(w, "  φT_th:\t%.2f kN-m\n", result.PhiTth)
	fmt.Fprintf(w, "  T_cr:\t%.2f kN-m\n", result.Tcr)
	fmt.Fprintf(w, "  φT_cr:\t%.2f kN-m\n", result.PhiTcr)
	fmt.Fprintf(w, "  Cross-section check:\t%s\n", result.CheckCrossSection)
	w.Flush()
	fmt.Println()

	if result.AlReq > 0 {
		printSection("REINFORCEMENT:")
		w = newTable()
		fmt.Fprintf(w, "  At/s (one leg):\t%.4f mm²/mm\n", result.AtSReq)
		fmt.Fprintf(w, "  At/s (one leg):\t%.2f cm²/m\n", result.AtSReqCm2PerM)
		fmt.Fprintf(w, "  Al:\t%.2f cm²\n", result.AlReq)
		w.Flush()
		fmt.Println()
		printDistribution(dist)
	}

	lines := []string{"Status: " + result.Status}
	if result.Action != "" {
		lines = append(lines, "Action: "+result.Action)
	}
	fmt.Print(diagram.DrawSummaryBox("TORSION", lines))
	fmt.Printf("  %s\n\n", badge(result.StatusCode))

	if torsionShowTrace {
		printTrace(result.Trace)
	}

	if torsionShowDiagram && dist.NBars > 0 {
		fmt.Println(diagram.DrawTorsionLayout(s.B(), s.H(), s.Cover(), dist))
	}

	if torsionExportFile != "" {
		data := diagram.TorsionDiagramData{
			Width:        s.B(),
			Height:       s.H(),
			Cover:        s.Cover(),
			Distribution: dist,
			AtS:          result.AtSReqCm2PerM,
		}
		if err := diagram.ExportTorsionSection(data, torsionExportFile); err != nil {
			return err
		}
		fmt.Printf("  Diagram exported to: %s\n\n", torsionExportFile)
	}
	return nil
}

func printDistribution(dist beam.TorsionDistribution) {
	printSection("LONGITUDINAL BAR DISTRIBUTION:")
	w := newTable()
	fmt.Fprintf(w, "  Face\tBars\tAl (cm²)\n")
	fmt.Fprintf(w, "  ────\t────\t────────\n")
	fmt.Fprintf(w, "  Bottom\t%d\t%.2f\n", dist.NBottom, dist.AlBottom)
	fmt.Fprintf(w, "  Top\t%d\t%.2f\n", dist.NTop, dist.AlTop)
	fmt.Fprintf(w, "  Each side\t%d\t%.2f\n", dist.NSideEach, dist.AlSideEach)
	fmt.Fprintf(w, "  Total\t%d\t%.2f\n", dist.NBars, dist.AlTotal)
	w.Flush()
	fmt.Printf("\n  Al per bar: %.2f cm²\n\n", dist.AlPerBar)
}

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
	shearVu   float64
	shearLegs int
	shearBar  string

	shearShowTrace  bool
	shearJSON       bool
	shearExportFile string
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Design stirrups for a factored shear",
	Long: `Calculate the stirrup spacing of the rectangular section for a
factored shear (Vu).

  - Section 22.5: Concrete and steel shear strength, Vs,max
  - Section 9.6.3: Minimum shear reinforcement
  - Table 9.7.6.2.2: Maximum stirrup spacing

Examples:
  # Vu = 200 kN with two-leg #3 stirrups
  acibeam shear --vu 200

  # Four legs of #4 bars, elevation sketch to SVG
  acibeam shear --vu 300 --legs 4 --bar "#4" -o stirrups.svg`,
	RunE: runShear,
}

func init() {
	rootCmd.AddCommand(shearCmd)

	shearCmd.Flags().Float64VarP(&shearVu, "vu", "v", 0, "Factored shear Vu (kN)")
	shearCmd.Flags().IntVar(&shearLegs, "legs", beam.DefaultStirrupLegs, "Number of stirrup legs")
	shearCmd.Flags().StringVar(&shearBar, "bar", "#3", "Stirrup bar designation (#3, #4, #5)")

	shearCmd.Flags().BoolVar(&shearShowTrace, "trace", false, "Show the calculation trace")
	shearCmd.Flags().BoolVar(&shearJSON, "json", false, "Print the result as JSON")
	shearCmd.Flags().StringVarP(&shearExportFile, "output", "o", "", "Export stirrup layout to file (png, svg, pdf)")
}

func runShear(cmd *cobra.Command, args []string) error {
	override(cmd, cfg, "vu", "loads.vu", shearVu)
	override(cmd, cfg, "legs", "detailing.n_legs", shearLegs)
	override(cmd, cfg, "bar", "detailing.stirrup_bar", shearBar)

	s, err := cfg.Section()
	if err != nil {
		return err
	}
	in, err := cfg.DesignInputs()
	if err != nil {
		return err
	}

	result := beam.Shear(s, in.Vu, beam.ShearOptions{
		Legs:       in.NLegs,
		DiameterCm: in.StirrupDiameterCm(),
	})

	if shearJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printHeader("SHEAR DESIGN - ACI 318-19")
	printSectionInput(s)

	printSection("STIRRUPS:")
	w := newTable()
	fmt.Fprintf(w, "  Factored Shear (Vu):\t%.2f kN\n", in.Vu)
	fmt.Fprintf(w, "  Bar:\t%s, %d legs\n", in.StirrupBar, in.NLegs)
	fmt.Fprintf(w, "  Av (one leg):\t%.4f cm²\n", result.AvBarCm2)
	fmt.Fprintf(w, "  Av (all legs):\t%.2f mm²\n", result.Av)
	w.Flush()
	fmt.Println()

	printSection("SHEAR STRENGTH:")
	w = newTable()
	fmt.Fprintf(w, "  Vc:\t%.2f kN\n", result.Vc)
	fmt.Fprintf(w, "  φVc:\t%.2f kN\n", result.PhiVc)
	fmt.Fprintf(w, "  Vs,required:\t%.2f kN\n", result.VsReq)
	fmt.Fprintf(w, "  s,max:\t%s\n", formatSpacing(result.SMax))
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("SHEAR", []string{
		"Spacing s = " + formatSpacing(result.SReq),
		"Status: " + result.Status,
	}))
	fmt.Printf("  %s\n\n", badge(result.StatusCode))

	if shearShowTrace {
		printTrace(result.Trace)
	}

	if shearExportFile != "" {
		data := diagram.NewShearDiagramData(s.H(), s.Cover(), result)
		if err := diagram.ExportShearLayout(data, shearExportFile); err != nil {
			return err
		}
		fmt.Printf("  Diagram exported to: %s\n\n", shearExportFile)
	}
	return nil
}

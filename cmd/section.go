package cmd

import (
	"fmt"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/units"
	"github.com/spf13/cobra"
)

var sectionAs float64

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Show section properties and analyze a given steel area",
	Long: `Show the derived properties of the rectangular section: effective
depth, β1, minimum steel, concrete shear capacity and the threshold and
cracking torsion.

With --as, the flexural capacity (φMn) of that tension steel area is
analyzed as well.

Examples:
  # Default 30x50 cm section, f'c 28 MPa, fy 420 MPa
  acibeam section

  # Capacity of 4 bars of 20 mm (As = 12.57 cm²)
  acibeam section -b 30 --height 60 --as 12.57`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().Float64VarP(&sectionAs, "as", "a", 0, "Tension reinforcement area As (cm²) to analyze")
}

func runSection(cmd *cobra.Command, args []string) error {
	s, err := cfg.Section()
	if err != nil {
		return err
	}

	printHeader("RECTANGULAR SECTION PROPERTIES - ACI 318-19")
	printSectionInput(s)

	shear := beam.Shear(s, 0, beam.ShearOptions{})
	torsion := beam.Torsion(s, 0, 0)
	asMin := units.Mm2ToCm2(beam.AsMin(s.Fc(), s.Fy(), units.CmToMm(s.B()), units.CmToMm(s.D())))

	printSection("DERIVED PROPERTIES:")
	w := newTable()
	fmt.Fprintf(w, "  β1:\t%.3f\n", s.Beta1())
	fmt.Fprintf(w, "  As,min:\t%.2f cm²\n", asMin)
	fmt.Fprintf(w, "  Vc:\t%.2f kN\n", shear.Vc)
	fmt.Fprintf(w, "  φVc:\t%.2f kN\n", shear.PhiVc)
	fmt.Fprintf(w, "  T_th:\t%.2f kN-m\n", torsion.Tth)
	fmt.Fprintf(w, "  φT_th:\t%.2f kN-m\n", torsion.PhiTth)
	fmt.Fprintf(w, "  T_cr:\t%.2f kN-m\n", torsion.Tcr)
	w.Flush()
	fmt.Println()

	if sectionAs <= 0 {
		return nil
	}

	result := beam.AnalyzeFlexure(s, sectionAs)

	printSection("CAPACITY ANALYSIS:")
	w = newTable()
	fmt.Fprintf(w, "  As:\t%.2f cm²\n", result.As)
	fmt.Fprintf(w, "  ρ:\t%.6f\n", result.Rho)
	fmt.Fprintf(w, "  ρ_min:\t%.6f\n", result.RhoMin)
	fmt.Fprintf(w, "  Compression block depth (a):\t%.2f cm\n", result.A)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.2f cm\n", result.C)
	fmt.Fprintf(w, "  Tensile strain (εt):\t%.6f\n", result.EpsilonT)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.Phi)
	fmt.Fprintf(w, "  Mn:\t%.2f kN-m\n", result.Mn)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN CAPACITY φMn = %.2f kN-m  \n", result.PhiMn)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
	fmt.Printf("  Status: %s\n", result.Message)
	fmt.Println()
	return nil
}

func printSectionInput(s section.Section) {
	printSection("INPUT DATA:")
	w := newTable()
	fmt.Fprintf(w, "  Beam Width (b):\t%.1f cm\n", s.B())
	fmt.Fprintf(w, "  Beam Height (h):\t%.1f cm\n", s.H())
	fmt.Fprintf(w, "  Cover:\t%.1f cm\n", s.Cover())
	fmt.Fprintf(w, "  Effective Depth (d):\t%.1f cm\n", s.D())
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", s.Fc())
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", s.Fy())
	w.Flush()
	fmt.Println()
}

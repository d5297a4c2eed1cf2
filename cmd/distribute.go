package cmd

import (
	"fmt"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	distributeAl   float64
	distributeBars int
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Distribute a longitudinal torsion steel area around the section",
	Long: `Split a total longitudinal torsion steel area (Al) over a number of
bars on the stirrup perimeter. Top and bottom faces get a share in
proportion to the inner width, at least two bars each; the remaining
bars go to the sides in pairs.

Examples:
  acibeam distribute --al 6 --bars 8
  acibeam distribute -b 100 --height 30 --al 12 --bars 12`,
	RunE: runDistribute,
}

func init() {
	rootCmd.AddCommand(distributeCmd)

	distributeCmd.Flags().Float64Var(&distributeAl, "al", 0, "Total longitudinal steel Al (cm²) [required]")
	distributeCmd.Flags().IntVar(&distributeBars, "bars", beam.DefaultTorsionBars, "Number of bars")

	distributeCmd.MarkFlagRequired("al")
}

func runDistribute(cmd *cobra.Command, args []string) error {
	s, err := cfg.Section()
	if err != nil {
		return err
	}

	dist := beam.DistributeTorsionLongitudinal(distributeAl, s.B(), s.H(), s.Cover(), distributeBars)

	printHeader("TORSION LONGITUDINAL STEEL DISTRIBUTION")
	fmt.Printf("  Section: %.1f x %.1f cm, cover %.1f cm\n\n", s.B(), s.H(), s.Cover())

	if dist.AlTotal <= 0 {
		fmt.Println("  No longitudinal steel to distribute.")
		fmt.Println()
		return nil
	}
	if dist.NBars != distributeBars {
		fmt.Printf("  Bar count raised to %d, one per stirrup corner.\n\n", dist.NBars)
	}

	printDistribution(dist)
	fmt.Println(diagram.DrawTorsionLayout(s.B(), s.H(), s.Cover(), dist))
	return nil
}

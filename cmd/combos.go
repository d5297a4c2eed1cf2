package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/acibeam/internal/aci"
	"github.com/spf13/cobra"
)

var (
	// Unfactored effects
	comboDead       float64
	comboLive       float64
	comboRoof       float64
	comboSnow       float64
	comboRain       float64
	comboWind       float64
	comboEarthquake float64

	// Options
	comboEffect     string
	comboShowAll    bool
	comboSimplified bool
)

var comboUnits = map[string]string{
	"moment":  "kN-m",
	"shear":   "kN",
	"torsion": "kN-m",
}

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Calculate a factored action using ACI 318-19 load combinations",
	Long: `Calculate the factored moment, shear or torsion from unfactored
effects with the load combinations of ACI 318-19 Table 5.3.1.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Roof live, snow and rain enter a combination as alternatives; the
largest one is used. The governing combination has the largest magnitude.

Examples:
  # Gravity moments
  acibeam combos --dead 50 --live 30

  # Shear with wind, every combination listed
  acibeam combos --effect shear --dead 80 --live 40 --wind 25 --all`,
	RunE: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().Float64VarP(&comboDead, "dead", "d", 0, "Effect of dead load D")
	combosCmd.Flags().Float64VarP(&comboLive, "live", "l", 0, "Effect of live load L")
	combosCmd.Flags().Float64VarP(&comboRoof, "roof", "r", 0, "Effect of roof live load Lr")
	combosCmd.Flags().Float64Var(&comboSnow, "snow", 0, "Effect of snow load S")
	combosCmd.Flags().Float64VarP(&comboRain, "rain", "R", 0, "Effect of rain load R")
	combosCmd.Flags().Float64VarP(&comboWind, "wind", "w", 0, "Effect of wind load W")
	combosCmd.Flags().Float64VarP(&comboEarthquake, "earthquake", "e", 0, "Effect of earthquake load E")

	combosCmd.Flags().StringVar(&comboEffect, "effect", "moment", "Action being combined: moment, shear or torsion")
	combosCmd.Flags().BoolVarP(&comboShowAll, "all", "a", false, "Show all load combination results")
	combosCmd.Flags().BoolVarP(&comboSimplified, "simplified", "s", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runCombos(cmd *cobra.Command, args []string) error {
	unit, ok := comboUnits[comboEffect]
	if !ok {
		return fmt.Errorf("unknown effect %q: use moment, shear or torsion", comboEffect)
	}

	effects := aci.LoadEffects{
		Dead:       comboDead,
		Live:       comboLive,
		Roof:       comboRoof,
		Snow:       comboSnow,
		Rain:       comboRain,
		Wind:       comboWind,
		Earthquake: comboEarthquake,
	}
	if effects == (aci.LoadEffects{}) {
		return fmt.Errorf("provide at least one unfactored effect, see 'acibeam combos --help'")
	}

	combinations := aci.LoadCombinations
	if comboSimplified {
		combinations = aci.GravityCombinations
	}

	printHeader("ACI 318-19 FACTORED " + strings.ToUpper(comboEffect) + " CALCULATION")

	printSection(fmt.Sprintf("UNFACTORED EFFECTS (%s):", unit))
	w := newTable()
	for _, e := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", effects.Dead},
		{"Live Load (L)", effects.Live},
		{"Roof Live Load (Lr)", effects.Roof},
		{"Snow Load (S)", effects.Snow},
		{"Rain Load (R)", effects.Rain},
		{"Wind Load (W)", effects.Wind},
		{"Earthquake Load (E)", effects.Earthquake},
	} {
		if e.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", e.label, e.value)
		}
	}
	w.Flush()
	fmt.Println()

	governing, combo := aci.Governing(effects, combinations)

	if comboShowAll {
		printSection("LOAD COMBINATIONS (ACI 318-19 Table 5.3.1):")
		w = newTable()
		fmt.Fprintf(w, "  #\tCombination\tFactored (%s)\n", unit)
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")
		for _, lc := range combinations {
			marker := ""
			if lc.ID == combo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", lc.ID, lc.Description, lc.Factored(effects), marker)
		}
		w.Flush()
		fmt.Println()
	}

	printSection("RESULT:")
	fmt.Printf("  Governing Combination: %s (%s)\n", combo.ID, combo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED %s = %.2f %s  \n", strings.ToUpper(comboEffect), governing, unit)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	return nil
}

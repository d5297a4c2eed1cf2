package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/acibeam/internal/config"
	"github.com/alexiusacademia/acibeam/internal/telemetry"
	"github.com/alexiusacademia/acibeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	logFile string

	// Section flags, shared by every design command
	sectionWidth  float64
	sectionHeight float64
	sectionCover  float64
	sectionFc     float64
	sectionFy     float64

	cfg      *config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "acibeam",
	Short: "ACI 318-19 Reinforced Concrete Beam Design Tool",
	Long: `acibeam - ACI 318-19 Reinforced Concrete Beam Designer

A CLI tool for the strength design of rectangular reinforced concrete
beam sections per ACI 318-19 (SI units: cm, MPa, kN, kN-m).

This tool performs:
  - Flexural design of the bottom (+) and top (-) faces
  - One-way shear design and stirrup spacing
  - Torsion checks, closed stirrups and longitudinal steel
  - Distribution of torsion longitudinal bars around the section
  - Design reports exported to JSON, CSV, XLSX and PDF

Section and load values come from flags, acibeam.yaml, a .env file
or ACIBEAM_* environment variables, in that order of precedence.`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   acibeam v%-47s║\n", version.Version)
		fmt.Println("  ║   ACI 318-19 Reinforced Concrete Beam Designer            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored actions from ACI 318-19 load combinations")
		fmt.Println("    • Flexure design with iterative strength reduction factor")
		fmt.Println("    • Shear design and stirrup spacing")
		fmt.Println("    • Torsion design with longitudinal bar distribution")
		fmt.Println("    • Full design reports and spreadsheet batches")
		fmt.Println()
		fmt.Println("  Use 'acibeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./acibeam.yaml)")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "Also append logs to this file")

	pf.Float64VarP(&sectionWidth, "width", "b", 30, "Beam width b (cm)")
	pf.Float64Var(&sectionHeight, "height", 50, "Beam total height h (cm)")
	pf.Float64VarP(&sectionCover, "cover", "c", 4, "Cover to the steel centroid (cm)")
	pf.Float64Var(&sectionFc, "fc", 28, "Concrete compressive strength f'c (MPa)")
	pf.Float64Var(&sectionFy, "fy", 420, "Steel yield strength fy (MPa)")
}

// setup loads the configuration, applies explicitly given flags on top of it
// and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	override(cmd, c, "debug", "log.debug", debug)
	override(cmd, c, "log-file", "log.file", logFile)
	override(cmd, c, "width", "section.b", sectionWidth)
	override(cmd, c, "height", "section.h", sectionHeight)
	override(cmd, c, "cover", "section.cover", sectionCover)
	override(cmd, c, "fc", "section.fc", sectionFc)
	override(cmd, c, "fy", "section.fy", sectionFy)

	closer, err := telemetry.InitLogger(c.Debug(), c.LogFile())
	if err != nil {
		return err
	}
	cfg, closeLog = c, closer
	slog.Debug("configuration loaded", "file", c.FileUsed(), "command", cmd.Name())
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return closeLog()
}

// override copies a flag into the configuration when the user set it.
func override(cmd *cobra.Command, c *config.Config, flag, key string, value any) {
	if cmd.Flags().Changed(flag) {
		c.Set(key, value)
	}
}

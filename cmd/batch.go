package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/acibeam/internal/importer"
	"github.com/alexiusacademia/acibeam/internal/metrics"
	"github.com/alexiusacademia/acibeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchJSONFile string
	batchMetrics  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <cases.xlsx>",
	Short: "Design a spreadsheet of load cases for one section",
	Long: `Read load cases from the first sheet of an XLSX workbook and run the
full design report for each of them on the configured section.

The header row is: name, mu_pos, mu_neg, vu, tu, vu_torsion
Blank cells keep the configured value. Rows that cannot be parsed are
reported and skipped.

Examples:
  acibeam batch cases.xlsx
  acibeam batch cases.xlsx -b 35 --height 60 --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchJSONFile, "json", "", "Write the payload of every case to this file")
	batchCmd.Flags().BoolVar(&batchMetrics, "metrics", false, "Print check metrics in Prometheus text format")
}

type batchResult struct {
	Row     int            `json:"row"`
	Name    string         `json:"name"`
	Payload report.Payload `json:"payload"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := cfg.Section()
	if err != nil {
		return err
	}
	base, err := cfg.DesignInputs()
	if err != nil {
		return err
	}

	cases, rowErrs, err := importer.LoadCasesFile(args[0], base)
	if err != nil {
		return err
	}
	for _, e := range rowErrs {
		fmt.Fprintln(os.Stderr, errorStyle.Render("skipped")+" "+e.Error())
	}

	rec := metrics.NewRecorder()
	bundles := make([]report.Bundle, 0, len(cases))
	results := make([]batchResult, 0, len(cases))
	for _, c := range cases {
		b := report.Build(s, c.Inputs)
		b.Record(rec)
		rec.RecordReport()
		bundles = append(bundles, b)
		results = append(results, batchResult{Row: c.Row, Name: c.Name, Payload: b.ExportPayload()})
	}

	// stdout carries only the JSON when it is the export target
	toStdout := batchJSONFile == "-"
	if !toStdout {
		printBatch(s.String(), cases, bundles, len(rowErrs), rec.Summary())
	}

	if batchJSONFile != "" {
		err := writeFile(batchJSONFile, func(out io.Writer) error {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		})
		if err != nil {
			return err
		}
		if !toStdout {
			fmt.Printf("  Exported: %s\n\n", batchJSONFile)
		}
	}

	if batchMetrics {
		return rec.WriteText(metricsOutput(toStdout))
	}
	return nil
}

func printBatch(sec string, cases []importer.Case, bundles []report.Bundle, skipped int, outcomes []string) {
	printHeader("BATCH DESIGN - ACI 318-19")
	fmt.Printf("  Section: %s\n", sec)
	fmt.Printf("  Cases: %d read, %d skipped\n\n", len(cases), skipped)

	printSection("RESULTS:")
	w := newTable()
	fmt.Fprintf(w, "  Row\tCase\tAs+ (cm²)\tAs- (cm²)\ts (cm)\tAl (cm²)\tWorst\tWarnings\n")
	fmt.Fprintf(w, "  ───\t────\t─────────\t─────────\t──────\t────────\t─────\t────────\n")
	for i, c := range cases {
		b := bundles[i]
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.2f\t%s\t%.2f\t%s\t%d\n",
			c.Row, c.Name, b.FlexurePos.AsDesign, b.FlexureNeg.AsDesign,
			formatSpacing(b.Shear.SReq), b.Torsion.AlReq, b.Worst(), len(b.Warnings))
	}
	w.Flush()
	fmt.Println()

	printSection("CHECK OUTCOMES:")
	for _, line := range outcomes {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()
}

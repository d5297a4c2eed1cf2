package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/charmbracelet/lipgloss"
)

const rule = "───────────────────────────────────────────────────────────────"

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Padding(0, 1).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// badge renders a status code for the terminal.
func badge(s trace.Status) string {
	switch s {
	case trace.StatusOK:
		return okStyle.Render("✓ OK")
	case trace.StatusWarning:
		return warningStyle.Render("! WARNING")
	default:
		return errorStyle.Render("✗ ERROR")
	}
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// printTrace lists the calculation trace of a result.
func printTrace(log trace.Log) {
	printSection("CALCULATION TRACE:")
	w := newTable()
	fmt.Fprintf(w, "  Formula\tReference\tValue\tUnits\tStatus\n")
	fmt.Fprintf(w, "  ───────\t─────────\t─────\t─────\t──────\n")
	for _, c := range log {
		fmt.Fprintf(w, "  %s\t%s\t%.4g\t%s\t%s\n", c.FormulaID, c.CodeRef, c.Value, c.Units, c.Status)
	}
	w.Flush()
	for _, c := range log {
		if c.Note != "" {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("  %s: %s", c.FormulaID, c.Note)))
		}
	}
	fmt.Println()
}

// createOutput opens path for writing, "-" meaning stdout.
func createOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, f.Close, nil
}

// writeFile writes one export with fn and closes the file.
func writeFile(path string, fn func(io.Writer) error) error {
	w, closeFn, err := createOutput(path)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		closeFn()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return closeFn()
}

func formatSpacing(s *float64) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f cm", *s)
}

// metricsOutput keeps the metrics dump off stdout when stdout carries an export.
func metricsOutput(stdoutTaken bool) io.Writer {
	if stdoutTaken {
		return os.Stderr
	}
	return os.Stdout
}

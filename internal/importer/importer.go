// Package importer reads batches of load cases from spreadsheets.
package importer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/acibeam/internal/design"
	"github.com/xuri/excelize/v2"
)

// Columns is the expected header of a load case sheet.
var Columns = []string{"name", "mu_pos", "mu_neg", "vu", "tu", "vu_torsion"}

// ErrEmptySheet is returned when the sheet has no data rows.
var ErrEmptySheet = errors.New("sheet has no load cases")

// Case is one load case read from a sheet row.
type Case struct {
	Row    int // 1-based spreadsheet row
	Name   string
	Inputs design.Inputs
}

// RowError reports a row that could not be parsed.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// LoadCasesFile opens an xlsx file and reads its load cases.
func LoadCasesFile(path string, base design.Inputs) ([]Case, []RowError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return LoadCases(file, base)
}

// LoadCases reads the first sheet of an xlsx workbook. The first row is the
// header. Blank load cells keep the value from base, so detailing choices
// and any omitted load come from the session inputs. Rows that fail to parse
// are skipped and reported.
func LoadCases(r io.Reader, base design.Inputs) ([]Case, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}

	var cases []Case
	var rowErrs []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		c, err := parseRow(row, base)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Err: err})
			continue
		}
		c.Row = i + 1
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i)
		}
		cases = append(cases, c)
	}
	return cases, rowErrs, nil
}

func parseRow(row []string, base design.Inputs) (Case, error) {
	c := Case{Inputs: base}
	if len(row) > 0 {
		c.Name = strings.TrimSpace(row[0])
	}

	targets := []*float64{&c.Inputs.MuPos, &c.Inputs.MuNeg, &c.Inputs.Vu, &c.Inputs.Tu, &c.Inputs.VuTorsion}
	for i, target := range targets {
		col := i + 1
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := toFloat(row[col])
		if err != nil {
			return Case{}, fmt.Errorf("column %s: %w", Columns[col], err)
		}
		*target = v
	}
	return c, nil
}

// ErrNotFinite is returned for NaN and infinite load cells.
var ErrNotFinite = errors.New("load must be a finite number")

func toFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w, got %q", ErrNotFinite, strings.TrimSpace(s))
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// CSVHeader is the header row of the governing criteria export.
var CSVHeader = []string{"mechanism", "aci_criterion", "status"}

// WriteJSON writes the export payload as indented JSON.
func WriteJSON(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.ExportPayload()); err != nil {
		return fmt.Errorf("encode report payload: %w", err)
	}
	return nil
}

// WriteCSV writes the governing criteria table.
func WriteCSV(w io.Writer, b Bundle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range b.GoverningCriteria {
		if err := cw.Write([]string{c.Mechanism, c.ACICriterion, c.Status}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Package trace records the derivation steps of a design check.
package trace

// Status is the machine status code of a check or a result.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// IsProblem reports whether the status should be surfaced as a warning.
func (s Status) IsProblem() bool {
	return s == StatusWarning || s == StatusError
}

// Check is one step of a derivation, referencing the originating code clause.
type Check struct {
	CodeRef   string             `json:"code_ref"`
	FormulaID string             `json:"formula_id"`
	Inputs    map[string]float64 `json:"inputs"`
	Value     float64            `json:"value"`
	Units     string             `json:"units"`
	Status    Status             `json:"status"`
	Note      string             `json:"note"`
}

// Log is an append-only list of checks in computation order.
type Log []Check

// Add appends a check and returns the extended log.
func (l Log) Add(c Check) Log {
	return append(l, c)
}

// Worst returns the most severe status in the log, StatusOK when empty.
func (l Log) Worst() Status {
	worst := StatusOK
	for _, c := range l {
		switch c.Status {
		case StatusError:
			return StatusError
		case StatusWarning:
			worst = StatusWarning
		}
	}
	return worst
}

// Find returns the first check with the given formula id.
func (l Log) Find(formulaID string) (Check, bool) {
	for _, c := range l {
		if c.FormulaID == formulaID {
			return c, true
		}
	}
	return Check{}, false
}

// Package validation holds the pre-checks shared by the flexure, shear and
// torsion engines: geometry validity and the sign policy for loads.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/alexiusacademia/acibeam/internal/trace"
)

// ErrInvalidLoad is returned for non-finite loads, and for negative loads
// under PolicyReject.
var ErrInvalidLoad = errors.New("invalid load")

// Policy decides how negative load values are treated.
type Policy int

const (
	// PolicyAbsWithWarning takes the magnitude and records a warning trace.
	PolicyAbsWithWarning Policy = iota
	// PolicyReject fails with ErrInvalidLoad.
	PolicyReject
)

// Geometry returns every geometry violation of the section. An empty result means valid.
func Geometry(s section.Section) []string {
	var errs []string
	if s.B() <= 0 || s.H() <= 0 {
		errs = append(errs, "Invalid section dimensions: width/height must be positive.")
	}
	if s.Cover() <= 0 {
		errs = append(errs, "Invalid cover: cover must be positive.")
	}
	if s.D() <= 0 {
		errs = append(errs, "Invalid effective depth: d must be positive.")
	}
	if s.Cover() >= math.Min(s.B(), s.H())/2 {
		errs = append(errs, "Cover is too large relative to section dimensions.")
	}
	return errs
}

// ErrorStatus formats geometry violations as a result status message.
func ErrorStatus(violations []string) string {
	return "Error: " + strings.Join(violations, " | ")
}

// NormalizeLoad applies the sign policy to a load. Non-negative values pass
// unchanged with no trace. The returned check is nil unless a sign flip happened
// or the value is NaN or infinite; the latter is an error under every policy
// and comes with an error-status check.
func NormalizeLoad(value float64, name string, policy Policy) (float64, *trace.Check, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &trace.Check{
			CodeRef:   "Input Policy",
			FormulaID: name + "_NOT_FINITE",
			Inputs:    map[string]float64{},
			Value:     0,
			Units:     "same_as_input",
			Status:    trace.StatusError,
			Note:      fmt.Sprintf("%s must be a finite number, got %g.", name, value),
		}, fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidLoad, name, value)
	}

	if value >= 0 {
		return value, nil, nil
	}

	if policy == PolicyReject {
		return 0, nil, fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidLoad, name, value)
	}

	normalized := math.Abs(value)
	return normalized, &trace.Check{
		CodeRef:   "Input Policy",
		FormulaID: name + "_SIGN_NORMALIZATION",
		Inputs:    map[string]float64{"raw_input": value},
		Value:     normalized,
		Units:     "same_as_input",
		Status:    trace.StatusWarning,
		Note:      name + " was negative and converted to magnitude by policy.",
	}, nil
}

// Normalize applies PolicyAbsWithWarning and appends any sign-flip or
// non-finite check to the log. A non-finite value normalizes to 0; callers
// check the log with Rejected.
func Normalize(log trace.Log, value float64, name string) (float64, trace.Log) {
	v, check, _ := NormalizeLoad(value, name, PolicyAbsWithWarning)
	if check != nil {
		log = log.Add(*check)
	}
	return v, log
}

// Rejected reports whether the log holds an input error and returns the
// result status message for it.
func Rejected(log trace.Log) (string, bool) {
	if log.Worst() != trace.StatusError {
		return "", false
	}
	for _, c := range log {
		if c.Status == trace.StatusError {
			return "Error: " + c.Note, true
		}
	}
	return "", false
}

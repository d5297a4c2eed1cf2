// Package section models a rectangular reinforced concrete beam cross-section.
package section

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

var (
	// ErrInvalidGeometry is wrapped by errors for non-finite or non-positive dimensions or cover.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInvalidMaterial is wrapped by errors for non-finite or non-positive strengths.
	ErrInvalidMaterial = errors.New("invalid material")
)

// ValidationError names the violated section invariant.
type ValidationError struct {
	Kind  error  // ErrInvalidGeometry or ErrInvalidMaterial
	Field string // b, h, cover, fc or fy
	msg   string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Section is an immutable rectangular beam section.
// Dimensions are in cm and strengths in MPa.
type Section struct {
	b     float64 // width
	h     float64 // total height
	cover float64 // cover to the centroid of the reinforcement
	fc    float64 // f'c
	fy    float64 // fy
	d     float64 // effective depth h - cover
	beta1 float64
}

// New validates the inputs and returns a Section.
func New(b, h, fc, fy, cover float64) (Section, error) {
	for _, v := range []struct {
		kind  error
		field string
		value float64
	}{
		{ErrInvalidGeometry, "b", b},
		{ErrInvalidGeometry, "h", h},
		{ErrInvalidGeometry, "cover", cover},
		{ErrInvalidMaterial, "fc", fc},
		{ErrInvalidMaterial, "fy", fy},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return Section{}, invalid(v.kind, v.field, fmt.Sprintf("%s must be a finite number, got %g", v.field, v.value))
		}
	}
	if b <= 0 {
		return Section{}, invalid(ErrInvalidGeometry, "b", fmt.Sprintf("width b must be positive, got %g cm", b))
	}
	if h <= 0 {
		return Section{}, invalid(ErrInvalidGeometry, "h", fmt.Sprintf("height h must be positive, got %g cm", h))
	}
	if cover <= 0 {
		return Section{}, invalid(ErrInvalidGeometry, "cover", fmt.Sprintf("Cover must be positive, got %g cm", cover))
	}
	if cover >= h {
		return Section{}, invalid(ErrInvalidGeometry, "cover", fmt.Sprintf("Cover (%g cm) must be less than height h (%g cm)", cover, h))
	}
	if fc <= 0 {
		return Section{}, invalid(ErrInvalidMaterial, "fc", fmt.Sprintf("f'c must be positive, got %g MPa", fc))
	}
	if fy <= 0 {
		return Section{}, invalid(ErrInvalidMaterial, "fy", fmt.Sprintf("fy must be positive, got %g MPa", fy))
	}

	return Section{
		b:     b,
		h:     h,
		cover: cover,
		fc:    fc,
		fy:    fy,
		d:     h - cover,
		beta1: aci.Beta1(fc),
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixed test data.
func MustNew(b, h, fc, fy, cover float64) Section {
	s, err := New(b, h, fc, fy, cover)
	if err != nil {
		panic(err)
	}
	return s
}

func invalid(kind error, field, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, msg: msg}
}

// B returns the width (cm).
func (s Section) B() float64 { return s.b }

// H returns the total height (cm).
func (s Section) H() float64 { return s.h }

// Cover returns the cover to the reinforcement centroid (cm).
func (s Section) Cover() float64 { return s.cover }

// Fc returns the concrete compressive strength (MPa).
func (s Section) Fc() float64 { return s.fc }

// Fy returns the steel yield strength (MPa).
func (s Section) Fy() float64 { return s.fy }

// D returns the effective depth (cm).
func (s Section) D() float64 { return s.d }

// Beta1 returns the stress block depth factor.
func (s Section) Beta1() float64 { return s.beta1 }

func (s Section) String() string {
	return fmt.Sprintf("%gx%g cm (d=%g cm), f'c=%g MPa, fy=%g MPa", s.b, s.h, s.d, s.fc, s.fy)
}

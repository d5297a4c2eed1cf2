// Package design holds the load case and detailing choices of one design
// session as an immutable value.
package design

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// StirrupBar is a stirrup bar designation and its nominal diameter.
type StirrupBar struct {
	Designation string
	DiameterCm  float64
}

// StirrupBars are the stirrup sizes offered for detailing.
var StirrupBars = []StirrupBar{
	{Designation: `#3 (3/8")`, DiameterCm: 0.95},
	{Designation: `#4 (1/2")`, DiameterCm: 1.27},
	{Designation: `#5 (5/8")`, DiameterCm: 1.59},
}

// FallbackStirrupDiameter is used for a designation not in StirrupBars (#4).
const FallbackStirrupDiameter = 1.27

// LookupStirrup finds a stirrup bar by designation prefix, so "#4" matches `#4 (1/2")`.
func LookupStirrup(designation string) (StirrupBar, bool) {
	key := strings.TrimSpace(designation)
	if i := strings.IndexByte(key, ' '); i > 0 {
		key = key[:i]
	}
	if key == "" {
		return StirrupBar{}, false
	}
	for _, bar := range StirrupBars {
		if strings.HasPrefix(bar.Designation, key+" ") || bar.Designation == key {
			return bar, true
		}
	}
	return StirrupBar{}, false
}

// Inputs is a snapshot of the load case (kN, kN-m) and detailing choices.
type Inputs struct {
	MuPos        float64 `json:"mu_pos"`
	MuNeg        float64 `json:"mu_neg"`
	Vu           float64 `json:"vu"`
	Tu           float64 `json:"tu"`
	VuTorsion    float64 `json:"vu_torsion"` // Shear acting with Tu
	NLegs        int     `json:"n_legs"`
	StirrupBar   string  `json:"stirrup_bar"`
	NBarsTorsion int     `json:"n_bars_torsion"`
}

// Defaults returns the starting load case of a new session.
func Defaults() Inputs {
	return Inputs{
		MuPos:        100,
		MuNeg:        0,
		Vu:           50,
		Tu:           15,
		VuTorsion:    50,
		NLegs:        2,
		StirrupBar:   StirrupBars[0].Designation,
		NBarsTorsion: 6,
	}
}

// Option changes one aspect of an Inputs snapshot.
type Option func(*Inputs)

// With returns a copy of the inputs with the options applied.
// The receiver is left untouched.
func (in Inputs) With(opts ...Option) Inputs {
	next := in
	for _, opt := range opts {
		opt(&next)
	}
	return next
}

// WithMoments sets the positive and negative factored moments.
func WithMoments(pos, neg float64) Option {
	return func(in *Inputs) {
		in.MuPos = pos
		in.MuNeg = neg
	}
}

// WithShear sets the factored shear of the stirrup design.
func WithShear(vu float64) Option {
	return func(in *Inputs) { in.Vu = vu }
}

// WithTorsion sets the torsion and the shear acting with it.
func WithTorsion(tu, vu float64) Option {
	return func(in *Inputs) {
		in.Tu = tu
		in.VuTorsion = vu
	}
}

// WithStirrups sets the stirrup leg count and bar designation.
func WithStirrups(legs int, bar string) Option {
	return func(in *Inputs) {
		in.NLegs = legs
		in.StirrupBar = bar
	}
}

// WithTorsionBars sets the number of longitudinal torsion bars.
func WithTorsionBars(n int) Option {
	return func(in *Inputs) { in.NBarsTorsion = n }
}

// StirrupDiameterCm returns the stirrup diameter for the chosen bar,
// FallbackStirrupDiameter when the designation is unknown.
func (in Inputs) StirrupDiameterCm() float64 {
	if bar, ok := LookupStirrup(in.StirrupBar); ok {
		return bar.DiameterCm
	}
	return FallbackStirrupDiameter
}

// Validate checks the detailing choices and that every load is a finite
// number. Loads of any sign are accepted.
func (in Inputs) Validate() error {
	for _, load := range []struct {
		name  string
		value float64
	}{
		{"mu_pos", in.MuPos},
		{"mu_neg", in.MuNeg},
		{"vu", in.Vu},
		{"tu", in.Tu},
		{"vu_torsion", in.VuTorsion},
	} {
		if math.IsNaN(load.value) || math.IsInf(load.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidInputs, load.name, load.value)
		}
	}
	if in.NLegs < 2 {
		return fmt.Errorf("%w: n_legs must be at least 2, got %d", ErrInvalidInputs, in.NLegs)
	}
	if _, ok := LookupStirrup(in.StirrupBar); !ok {
		return fmt.Errorf("%w: unknown stirrup bar %q", ErrInvalidInputs, in.StirrupBar)
	}
	if in.NBarsTorsion < 4 {
		return fmt.Errorf("%w: n_bars_torsion must be at least 4, got %d", ErrInvalidInputs, in.NBarsTorsion)
	}
	return nil
}

// ErrInvalidInputs is wrapped by every Validate failure.
var ErrInvalidInputs = errors.New("invalid design inputs")

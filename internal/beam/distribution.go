package beam

import "math"

const (
	// MinTorsionBars is the least longitudinal bar count, one per stirrup corner
	MinTorsionBars = 4
	// DefaultTorsionBars is the bar count used when none is given
	DefaultTorsionBars = 6
)

// TorsionDistribution apportions the longitudinal torsion steel around the
// stirrup perimeter. Areas in cm².
type TorsionDistribution struct {
	AlTotal    float64 `json:"al_total"`
	NBars      int     `json:"n_bars"`
	AlPerBar   float64 `json:"al_per_bar"`
	NBottom    int     `json:"n_bottom"`
	NTop       int     `json:"n_top"`
	NSideEach  int     `json:"n_side_each"`
	AlBottom   float64 `json:"al_bottom"`
	AlTop      float64 `json:"al_top"`
	AlSideEach float64 `json:"al_side_each"`
}

// Sum returns bottom + top + both sides, which equals AlTotal.
func (t TorsionDistribution) Sum() float64 {
	return t.AlBottom + t.AlTop + 2*t.AlSideEach
}

// DistributeTorsionLongitudinal splits alTotal (cm²) over nBars bars placed on
// the inner perimeter of a b×h section (cm). Top and bottom faces get a share
// proportional to the inner width, at least two bars each; the rest go to the
// sides in pairs, an odd leftover bar moving to the bottom.
func DistributeTorsionLongitudinal(alTotal, b, h, cover float64, nBars int) TorsionDistribution {
	if alTotal <= 0 {
		return TorsionDistribution{NBars: nBars}
	}

	if nBars < MinTorsionBars {
		nBars = MinTorsionBars
	}
	bInner := math.Max(b-2*cover, 0)
	hInner := math.Max(h-2*cover, 0)
	ph := math.Max(2*(bInner+hInner), 1e-9)

	share := int(math.RoundToEven(float64(nBars) * bInner / ph))
	nBottom := max(2, share)
	nTop := max(2, share)
	nSides := nBars - nBottom - nTop
	if nSides < 0 {
		nSides = 0
		nBottom = nBars / 2
		nTop = nBars - nBottom
	}

	if nSides%2 != 0 {
		nBottom++
		nSides--
	}
	nSideEach := nSides / 2

	perBar := alTotal / float64(nBars)
	return TorsionDistribution{
		AlTotal:    alTotal,
		NBars:      nBars,
		AlPerBar:   perBar,
		NBottom:    nBottom,
		NTop:       nTop,
		NSideEach:  nSideEach,
		AlBottom:   float64(nBottom) * perBar,
		AlTop:      float64(nTop) * perBar,
		AlSideEach: float64(nSideEach) * perBar,
	}
}

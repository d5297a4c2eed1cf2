package diagram

import "github.com/alexiusacademia/acibeam/internal/beam"

// Point is a position in the section plane, cm from the bottom-left corner.
type Point struct {
	X float64
	Y float64
}

// BarLayout holds the longitudinal bar positions on each face.
type BarLayout struct {
	Bottom []Point
	Top    []Point
	Left   []Point
	Right  []Point
}

// All returns every bar position, bottom face first.
func (l BarLayout) All() []Point {
	pts := make([]Point, 0, len(l.Bottom)+len(l.Top)+len(l.Left)+len(l.Right))
	pts = append(pts, l.Bottom...)
	pts = append(pts, l.Top...)
	pts = append(pts, l.Left...)
	return append(pts, l.Right...)
}

// TorsionBarLayout places the distributed torsion bars on the stirrup
// centerline of a b×h section. Corner bars belong to the top and bottom faces;
// side bars are evenly spaced between them.
func TorsionBarLayout(b, h, cover float64, dist beam.TorsionDistribution) BarLayout {
	var l BarLayout
	if dist.AlTotal <= 0 {
		return l
	}

	l.Bottom = spread(dist.NBottom, cover, b-cover, func(x float64) Point { return Point{x, cover} })
	l.Top = spread(dist.NTop, cover, b-cover, func(x float64) Point { return Point{x, h - cover} })

	gap := (h - 2*cover) / float64(dist.NSideEach+1)
	for i := 1; i <= dist.NSideEach; i++ {
		y := cover + float64(i)*gap
		l.Left = append(l.Left, Point{cover, y})
		l.Right = append(l.Right, Point{b - cover, y})
	}
	return l
}

// FlexureBarLayout places n tension bars at the cover depth from the tension face.
func FlexureBarLayout(b, h, cover float64, n int, topTension bool) []Point {
	y := cover
	if topTension {
		y = h - cover
	}
	return spread(n, cover, b-cover, func(x float64) Point { return Point{x, y} })
}

// spread returns n points evenly spaced from lo to hi, or one centered point.
func spread(n int, lo, hi float64, at func(float64) Point) []Point {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Point{at((lo + hi) / 2)}
	}
	pts := make([]Point, n)
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = at(lo + float64(i)*step)
	}
	return pts
}

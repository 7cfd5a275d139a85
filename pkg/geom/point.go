package geom

import (
	"fmt"
	"slices"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is an immutable 3D position. Comparisons use the rounded
// coordinates.
type Point v3.Vec

// Pt is shorthand for constructing a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Vec returns the point as an sdfx vector.
func (p Point) Vec() v3.Vec {
	return v3.Vec(p)
}

// Coord returns the raw coordinate along axis a.
func (p Point) Coord(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// Rounded returns the coordinates rounded to Precision.
func (p Point) Rounded() [3]float64 {
	return [3]float64{Round(p.X), Round(p.Y), Round(p.Z)}
}

// Equal reports whether p and q are identical after rounding.
func (p Point) Equal(q Point) bool {
	return p.Rounded() == q.Rounded()
}

// Compare orders points lexicographically by rounded x, y, z.
// It returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	a, b := p.Rounded(), q.Rounded()
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Mirror returns the axis on which p and q mirror each other: the
// coordinate along that axis differs while the other two agree. Points
// that are identical, or differ on more than one axis, mirror nothing.
func (p Point) Mirror(q Point) (Axis, bool) {
	a, b := p.Rounded(), q.Rounded()
	if a == b {
		return 0, false
	}
	for i, axis := range Axes {
		j, k := (i+1)%3, (i+2)%3
		if a[i] != b[i] && a[j] == b[j] && a[k] == b[k] {
			return axis, true
		}
	}
	return 0, false
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// SortPoints sorts points in place by Compare.
func SortPoints(pts []Point) {
	slices.SortStableFunc(pts, Point.Compare)
}

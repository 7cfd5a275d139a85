package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var up = v3.Vec{Z: 1}

// FacesUp reports whether normal points along +Z.
func FacesUp(normal v3.Vec) bool {
	return Round(normal.X) == 0 && Round(normal.Y) == 0 && normal.Z > 0
}

// VerticalAngle returns the angle between normal and +Z in degrees.
func VerticalAngle(normal v3.Vec) float64 {
	cos := math.Max(-1, math.Min(1, normal.Normalize().Dot(up)))
	return Round(math.Acos(cos) * 180 / math.Pi)
}

// RightAxis returns the X or Y axis that normal is perpendicular to,
// preferring X.
func RightAxis(normal v3.Vec) (Axis, bool) {
	for _, a := range []Axis{AxisX, AxisY} {
		if Round(normal.Dot(a.Unit())) == 0 {
			return a, true
		}
	}
	return 0, false
}

// Flatten rotates loop about the minimum corner of its bounding box so
// that a polygon with the given normal ends up facing +Z. Points keep
// their winding order. A loop that already faces up is returned as a
// copy.
func Flatten(loop []Point, normal v3.Vec) []Point {
	out := make([]Point, len(loop))
	angle := VerticalAngle(normal) * math.Pi / 180
	if angle == 0 {
		copy(out, loop)
		return out
	}

	axis := normal.Cross(up)
	if Round(axis.Length()) == 0 {
		if a, ok := RightAxis(normal); ok {
			axis = a.Unit()
		} else {
			axis = AxisX.Unit()
		}
	}
	axis = axis.Normalize()

	rot := sdf.Rotate3d(axis, angle)
	if !Point(rot.MulPosition(normal)).Equal(Point(up)) {
		rot = sdf.Rotate3d(axis, -angle)
	}

	corner := Bounds(loop).Min
	m := sdf.Translate3d(corner).Mul(rot).Mul(sdf.Translate3d(corner.Neg()))
	for i, p := range loop {
		out[i] = Point(m.MulPosition(p.Vec()))
	}
	return out
}

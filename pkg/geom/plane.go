package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Plane is a supporting plane n·p + D = 0 with a unit normal.
type Plane struct {
	Normal v3.Vec
	D      float64
}

// PlaneOf derives the supporting plane of a closed polygon using Newell's
// method. The normal follows the winding order. It returns false for
// polygons with fewer than three vertices or zero area.
func PlaneOf(loop []Point) (Plane, bool) {
	if len(loop) < 3 {
		return Plane{}, false
	}
	var n, c v3.Vec
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
		c = c.Add(p.Vec())
	}
	if Round(n.Length()) == 0 {
		return Plane{}, false
	}
	n = n.Normalize()
	c = c.DivScalar(float64(len(loop)))
	return Plane{Normal: n, D: -n.Dot(c)}, true
}

// Distance returns the unsigned perpendicular distance from p to the plane.
func (pl Plane) Distance(p Point) float64 {
	return math.Abs(pl.Normal.Dot(p.Vec()) + pl.D)
}

// Coincident reports whether both planes describe the same set of points,
// regardless of which way their normals face.
func (pl Plane) Coincident(o Plane) bool {
	a := pl.rounded()
	if a == o.rounded() {
		return true
	}
	return a == o.flip().rounded()
}

func (pl Plane) flip() Plane {
	return Plane{Normal: pl.Normal.Neg(), D: -pl.D}
}

func (pl Plane) rounded() [4]float64 {
	return [4]float64{Round(pl.Normal.X), Round(pl.Normal.Y), Round(pl.Normal.Z), Round(pl.D)}
}

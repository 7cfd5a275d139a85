// Package sdfx implements kernel.Kernel with the vector and matrix types
// of github.com/deadsy/sdfx. Solids are kept as boundary polygons so that
// faces survive every transform exactly.
package sdfx

import (
	"math"

	"github.com/chazu/vectorize/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// polyhedron is a solid bounded by planar polygons.
type polyhedron struct {
	faces [][]v3.Vec
}

// BoundingBox returns the axis-aligned bounding box.
func (p *polyhedron) BoundingBox() (min, max [3]float64) {
	bb := p.box()
	return [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}, [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
}

func (p *polyhedron) box() sdf.Box3 {
	var bb sdf.Box3
	first := true
	for _, f := range p.faces {
		for _, v := range f {
			if first {
				bb = sdf.Box3{Min: v, Max: v}
				first = false
				continue
			}
			bb.Min = bb.Min.Min(v)
			bb.Max = bb.Max.Max(v)
		}
	}
	return bb
}

// Faces returns copies of the boundary polygons.
func (p *polyhedron) Faces() []kernel.Polygon {
	out := make([]kernel.Polygon, len(p.faces))
	for i, f := range p.faces {
		poly := make(kernel.Polygon, len(f))
		for j, v := range f {
			poly[j] = [3]float64{v.X, v.Y, v.Z}
		}
		out[i] = poly
	}
	return out
}

// transform returns a new polyhedron with m applied to every vertex.
func (p *polyhedron) transform(m sdf.M44) *polyhedron {
	out := &polyhedron{faces: make([][]v3.Vec, len(p.faces))}
	for i, f := range p.faces {
		nf := make([]v3.Vec, len(f))
		for j, v := range f {
			nf[j] = m.MulPosition(v)
		}
		out.faces[i] = nf
	}
	return out
}

// SdfxKernel implements kernel.Kernel using sdfx math.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the polyhedron behind a kernel.Solid.
func unwrap(s kernel.Solid) *polyhedron {
	return s.(*polyhedron)
}

// extrude sweeps a counter-clockwise outline from z=0 to z=height. Faces
// come out as bottom, top, then one side per outline edge.
func extrude(outline [][2]float64, height float64) *polyhedron {
	n := len(outline)
	bottom := make([]v3.Vec, n)
	top := make([]v3.Vec, n)
	for i, p := range outline {
		bottom[n-1-i] = v3.Vec{X: p[0], Y: p[1]}
		top[i] = v3.Vec{X: p[0], Y: p[1], Z: height}
	}
	faces := [][]v3.Vec{bottom, top}
	for i, p := range outline {
		q := outline[(i+1)%n]
		faces = append(faces, []v3.Vec{
			{X: p[0], Y: p[1]},
			{X: q[0], Y: q[1]},
			{X: q[0], Y: q[1], Z: height},
			{X: p[0], Y: p[1], Z: height},
		})
	}
	return &polyhedron{faces: faces}
}

// Box creates a box with its minimum corner at the origin so that
// (place :at (vec3 10 0 0)) puts the board's corner at x=10.
func (k *SdfxKernel) Box(x, y, z float64) kernel.Solid {
	return extrude([][2]float64{{0, 0}, {x, 0}, {x, y}, {0, y}}, z)
}

// Cylinder approximates a cylinder standing on the XY plane, centred on
// the Z axis, with a regular polygon of the given number of segments.
func (k *SdfxKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	if segments < 3 {
		segments = 3
	}
	outline := make([][2]float64, segments)
	for i := range outline {
		a := 2 * math.Pi * float64(i) / float64(segments)
		outline[i] = [2]float64{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return extrude(outline, height)
}

// Prism extrudes an arbitrary simple outline along +Z.
func (k *SdfxKernel) Prism(outline [][2]float64, height float64) kernel.Solid {
	return extrude(kernel.CounterClockwise(outline), height)
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return unwrap(s).transform(sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}))
}

// Rotate rotates a solid by Euler angles (degrees) around X, then Y,
// then Z.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return unwrap(s).transform(m)
}

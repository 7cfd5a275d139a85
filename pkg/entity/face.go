package entity

import (
	"slices"

	"github.com/chazu/vectorize/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
)

// Face is a planar polygon. Its vertices are fixed at construction.
type Face struct {
	base
	loop     []geom.Point
	points   []geom.Point
	plane    geom.Plane
	planar   bool
	extents  geom.Extents
	edges    []*Edge
	topology Topology
	material string
}

// NewFace builds a face from its vertices in winding order.
func NewFace(id string, loop ...geom.Point) *Face {
	f := &Face{
		base:     newBase(id),
		loop:     slices.Clone(loop),
		points:   slices.Clone(loop),
		extents:  geom.ExtentsOf(geom.Bounds(loop)),
		topology: EdgeTopology{},
	}
	geom.SortPoints(f.points)
	f.plane, f.planar = geom.PlaneOf(loop)
	return f
}

func (f *Face) Kind() Kind { return KindFace }

// Valid reports whether the face has at least three vertices and a
// non-zero area. Invalid faces mirror nothing.
func (f *Face) Valid() bool {
	return len(f.loop) >= 3 && f.planar
}

// Loop returns the vertices in winding order.
func (f *Face) Loop() []geom.Point { return f.loop }

// Points returns the vertices sorted by geom.Point.Compare.
func (f *Face) Points() []geom.Point { return f.points }

// Plane returns the supporting plane; false if the face is degenerate.
func (f *Face) Plane() (geom.Plane, bool) { return f.plane, f.planar }

// Normal returns the unit normal following the winding order.
func (f *Face) Normal() v3.Vec { return f.plane.Normal }

// Extents returns the size of the face's bounding box.
func (f *Face) Extents() geom.Extents { return f.extents }

// Dimensions returns the rounded non-zero extents in ascending order.
func (f *Face) Dimensions() []float64 { return f.extents.Dimensions() }

// Material returns the face's material name.
func (f *Face) Material() string { return f.material }

// SetMaterial paints the face.
func (f *Face) SetMaterial(m string) { f.material = m }

// Edges returns the edges bounding the face.
func (f *Face) Edges() []*Edge { return f.edges }

// AddEdge links e to the face in both directions.
func (f *Face) AddEdge(e *Edge) {
	if slices.Contains(f.edges, e) {
		return
	}
	f.edges = append(f.edges, e)
	e.faces = append(e.faces, f)
}

// SetTopology replaces the connectivity source. Nil restores the
// edge-derived default.
func (f *Face) SetTopology(t Topology) {
	if t == nil {
		t = EdgeTopology{}
	}
	f.topology = t
}

// ConnectedFaces returns the faces that share an edge with f.
func (f *Face) ConnectedFaces() []*Face {
	return f.topology.Adjacent(f)
}

// AllConnected returns every face reachable from f through shared edges.
func (f *Face) AllConnected() []*Face {
	return f.topology.Component(f)
}

// DecoupledFaces returns the faces connected to f only indirectly.
func (f *Face) DecoupledFaces() []*Face {
	adjacent := f.ConnectedFaces()
	return lo.Filter(f.AllConnected(), func(g *Face, _ int) bool {
		return g != f && !slices.Contains(adjacent, g)
	})
}

type offset struct {
	axis geom.Axis
	dist float64
}

// Mirror returns the axis on which f and other mirror each other.
//
// Every sorted vertex of f must mirror the respective vertex of other on
// one common axis at one common signed distance, and other must be the
// only face that f is connected to without sharing an edge.
func (f *Face) Mirror(other *Face) (geom.Axis, bool) {
	if other == nil || !f.Valid() || !other.Valid() {
		return 0, false
	}
	if len(f.points) != len(other.points) {
		return 0, false
	}
	if !slices.Equal(f.Dimensions(), other.Dimensions()) {
		return 0, false
	}
	if f.plane.Coincident(other.plane) {
		return 0, false
	}

	var first offset
	for i, a := range f.points {
		b := other.points[i]
		axis, ok := a.Mirror(b)
		if !ok {
			return 0, false
		}
		o := offset{axis: axis, dist: geom.Round(a.Coord(axis) - b.Coord(axis))}
		if i == 0 {
			first = o
		} else if o != first {
			return 0, false
		}
	}

	decoupled := f.DecoupledFaces()
	if len(decoupled) != 1 || decoupled[0] != other {
		return 0, false
	}
	return first.axis, true
}

// DistanceTo returns the rounded distance from f's first sorted vertex to
// the supporting plane of other.
func (f *Face) DistanceTo(other *Face) float64 {
	if len(f.points) == 0 || !other.planar {
		return 0
	}
	return geom.Round(other.plane.Distance(f.points[0]))
}

// FaceUp reports whether the face's normal points along +Z.
func (f *Face) FaceUp() bool { return geom.FacesUp(f.plane.Normal) }

// RightAxis returns the X or Y axis the face's normal is perpendicular to.
func (f *Face) RightAxis() (geom.Axis, bool) { return geom.RightAxis(f.plane.Normal) }

// VerticalAngle returns the angle between the normal and +Z in degrees.
func (f *Face) VerticalAngle() float64 { return geom.VerticalAngle(f.plane.Normal) }

// Flatten returns the face's vertices rotated to lie face up.
func (f *Face) Flatten() []geom.Point {
	return geom.Flatten(f.loop, f.plane.Normal)
}

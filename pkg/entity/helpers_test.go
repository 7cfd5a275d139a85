package entity

import "github.com/chazu/vectorize/pkg/geom"

// cuboidLoops returns the six outward-wound faces of an axis-aligned box
// in the order bottom, top, front, back, left, right.
func cuboidLoops(lo, hi geom.Point) [][]geom.Point {
	x0, y0, z0 := lo.X, lo.Y, lo.Z
	x1, y1, z1 := hi.X, hi.Y, hi.Z
	return [][]geom.Point{
		{geom.Pt(x0, y0, z0), geom.Pt(x0, y1, z0), geom.Pt(x1, y1, z0), geom.Pt(x1, y0, z0)},
		{geom.Pt(x0, y0, z1), geom.Pt(x1, y0, z1), geom.Pt(x1, y1, z1), geom.Pt(x0, y1, z1)},
		{geom.Pt(x0, y0, z0), geom.Pt(x1, y0, z0), geom.Pt(x1, y0, z1), geom.Pt(x0, y0, z1)},
		{geom.Pt(x0, y1, z0), geom.Pt(x0, y1, z1), geom.Pt(x1, y1, z1), geom.Pt(x1, y1, z0)},
		{geom.Pt(x0, y0, z0), geom.Pt(x0, y0, z1), geom.Pt(x0, y1, z1), geom.Pt(x0, y1, z0)},
		{geom.Pt(x1, y0, z0), geom.Pt(x1, y1, z0), geom.Pt(x1, y1, z1), geom.Pt(x1, y0, z1)},
	}
}

// cuboid builds and stitches the faces of an axis-aligned box.
func cuboid(lo, hi geom.Point) []*Face {
	var faces []*Face
	for _, loop := range cuboidLoops(lo, hi) {
		faces = append(faces, NewFace("", loop...))
	}
	Stitch(faces...)
	return faces
}

func rect(z float64) *Face {
	return NewFace("", geom.Pt(0, 0, z), geom.Pt(2, 0, z), geom.Pt(2, 1, z), geom.Pt(0, 1, z))
}

// staticTopology connects faces by an explicit table.
type staticTopology struct {
	adjacent  map[*Face][]*Face
	component []*Face
}

func (s staticTopology) Adjacent(f *Face) []*Face  { return s.adjacent[f] }
func (s staticTopology) Component(f *Face) []*Face { return s.component }

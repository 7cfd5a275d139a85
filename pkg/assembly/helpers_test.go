package assembly

import (
	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
)

// cuboidFaces builds the stitched faces of an axis-aligned box in the
// order bottom, top, front, back, left, right.
func cuboidFaces(lo, hi geom.Point) ([]*entity.Face, []*entity.Edge) {
	return cuboidFacesWithID("", lo, hi)
}

// cuboidFacesWithID is cuboidFaces with every face given the same id.
func cuboidFacesWithID(id string, lo, hi geom.Point) ([]*entity.Face, []*entity.Edge) {
	x0, y0, z0 := lo.X, lo.Y, lo.Z
	x1, y1, z1 := hi.X, hi.Y, hi.Z
	loops := [][]geom.Point{
		{geom.Pt(x0, y0, z0), geom.Pt(x0, y1, z0), geom.Pt(x1, y1, z0), geom.Pt(x1, y0, z0)},
		{geom.Pt(x0, y0, z1), geom.Pt(x1, y0, z1), geom.Pt(x1, y1, z1), geom.Pt(x0, y1, z1)},
		{geom.Pt(x0, y0, z0), geom.Pt(x1, y0, z0), geom.Pt(x1, y0, z1), geom.Pt(x0, y0, z1)},
		{geom.Pt(x0, y1, z0), geom.Pt(x0, y1, z1), geom.Pt(x1, y1, z1), geom.Pt(x1, y1, z0)},
		{geom.Pt(x0, y0, z0), geom.Pt(x0, y0, z1), geom.Pt(x0, y1, z1), geom.Pt(x0, y1, z0)},
		{geom.Pt(x1, y0, z0), geom.Pt(x1, y1, z0), geom.Pt(x1, y1, z1), geom.Pt(x1, y0, z1)},
	}
	faces := make([]*entity.Face, len(loops))
	for i, l := range loops {
		faces[i] = entity.NewFace(id, l...)
	}
	return faces, entity.Stitch(faces...)
}

// board returns a component instance holding a box.
func board(name string, lo, hi geom.Point) *entity.ComponentInstance {
	def := entity.NewDefinition(name)
	faces, edges := cuboidFaces(lo, hi)
	for _, f := range faces {
		def.Entities.Add(f)
	}
	for _, e := range edges {
		def.Entities.Add(e)
	}
	return entity.NewComponentInstance("", name, def)
}

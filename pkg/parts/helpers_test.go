package parts

import (
	"github.com/chazu/vectorize/pkg/assembly"
	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
)

// box returns a component instance holding the stitched faces and edges
// of an axis-aligned box.
func box(name string, lo, hi geom.Point) *entity.ComponentInstance {
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
	def := entity.NewDefinition(name)
	faces := make([]*entity.Face, len(loops))
	for i, l := range loops {
		faces[i] = entity.NewFace("", l...)
		def.Entities.Add(faces[i])
	}
	for _, e := range entity.Stitch(faces...) {
		def.Entities.Add(e)
	}
	return entity.NewComponentInstance("", name, def)
}

func plate(name string, w, h, t float64) *entity.ComponentInstance {
	return box(name, geom.Pt(0, 0, 0), geom.Pt(w, h, t))
}

func asm(name string, children ...entity.Entity) *assembly.Assembly {
	g := entity.NewGroup("", name)
	g.Entities.Add(children...)
	return assembly.New(g)
}

// tableTopology connects faces by an explicit adjacency table.
type tableTopology struct {
	adjacent  map[*entity.Face][]*entity.Face
	component []*entity.Face
}

func (t tableTopology) Adjacent(f *entity.Face) []*entity.Face  { return t.adjacent[f] }
func (t tableTopology) Component(f *entity.Face) []*entity.Face { return t.component }

// Package parts turns the graphic leaves of one or more assemblies into a
// list of flat parts cut from sheet stock of a given thickness.
package parts

import (
	"github.com/chazu/vectorize/pkg/assembly"
	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
)

// Part is a graphic assembly cut from the list's stock. Its orientation is
// the mirrored face pair that spans the stock thickness.
type Part struct {
	Assembly *assembly.Assembly

	list         *List
	orientations []*assembly.MirroredFaces
	resolved     bool
	orientation  *assembly.MirroredFaces
	assigned     bool
}

func newPart(a *assembly.Assembly, l *List) *Part {
	return &Part{Assembly: a, list: l}
}

// Name returns the display name of the part's assembly, falling back to
// its ID when unnamed.
func (p *Part) Name() string {
	if n := p.Assembly.Name(); n != "" {
		return n
	}
	return p.Assembly.ID()
}

// Thickness returns the stock thickness of the owning list.
func (p *Part) Thickness() float64 {
	return p.list.Thickness
}

// Orientations returns the mirrored pairs at the stock thickness.
func (p *Part) Orientations() []*assembly.MirroredFaces {
	if p.orientations == nil {
		p.orientations = p.Assembly.OrientationsAtThickness(p.Thickness())
	}
	return p.orientations
}

// Orientation returns the assigned orientation, or the only candidate
// pair when there is exactly one. It returns nil when the part is
// ambiguous.
func (p *Part) Orientation() *assembly.MirroredFaces {
	if p.assigned {
		return p.orientation
	}
	if !p.resolved {
		if cands := p.Orientations(); len(cands) == 1 {
			p.orientation = cands[0]
		}
		p.resolved = true
	}
	return p.orientation
}

// SetOrientation overrides the resolved orientation. Passing nil clears
// the override.
func (p *Part) SetOrientation(m *assembly.MirroredFaces) {
	p.orientation = m
	p.assigned = m != nil
	p.resolved = false
}

// Valid reports whether the part has an orientation.
func (p *Part) Valid() bool {
	return p.Orientation() != nil
}

// Face returns the face the part is cut from: the first face of its
// orientation.
func (p *Part) Face() (*entity.Face, bool) {
	o := p.Orientation()
	if o == nil {
		return nil, false
	}
	return o.A, true
}

// Axis returns the axis the part's thickness is measured along.
func (p *Part) Axis() (geom.Axis, bool) {
	o := p.Orientation()
	if o == nil {
		return 0, false
	}
	return o.Axis()
}

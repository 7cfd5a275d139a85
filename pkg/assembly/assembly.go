package assembly

import (
	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
	"github.com/samber/lo"
)

// Node is an entity that owns children: groups, component instances and
// selections.
type Node interface {
	Name() string
	UsableEntities() []entity.Entity
}

var (
	_ Node = (*entity.Group)(nil)
	_ Node = (*entity.ComponentInstance)(nil)
	_ Node = (*entity.Selection)(nil)
)

// Assembly adds classification, mirror detection and graphic discovery to
// a Node. The classification is computed on first use and kept until
// Reanalyze is called.
type Assembly struct {
	node     Node
	analysis *Classification
}

// New wraps n.
func New(n Node) *Assembly {
	return &Assembly{node: n}
}

// Of wraps e when it is an assembly-like entity.
func Of(e entity.Entity) (*Assembly, bool) {
	n, ok := e.(Node)
	if !ok {
		return nil, false
	}
	return New(n), true
}

// Node returns the wrapped node.
func (a *Assembly) Node() Node { return a.node }

// Name returns the node's display name.
func (a *Assembly) Name() string { return a.node.Name() }

// ID returns the node's entity ID, or its name for nodes that are not
// entities.
func (a *Assembly) ID() string {
	if e, ok := a.node.(entity.Entity); ok {
		return e.ID()
	}
	return a.node.Name()
}

// Classification returns the cached classification, analyzing on first
// use.
func (a *Assembly) Classification() *Classification {
	if a.analysis == nil {
		a.analysis = Classify(a.node.UsableEntities())
	}
	return a.analysis
}

// Reanalyze drops the cached classification and recomputes it. Call it
// after the node's children change.
func (a *Assembly) Reanalyze() *Classification {
	a.analysis = nil
	return a.Classification()
}

// IsGraphic reports whether the assembly holds geometry directly and no
// nested assemblies.
func (a *Assembly) IsGraphic() bool {
	c := a.Classification()
	return len(c.Facets) > 0 && len(c.Children) == 0
}

// pairKey identifies an unordered pair of faces by identity. The face
// listed first in the classification comes first.
type pairKey [2]*entity.Face

func keyOf(order map[*entity.Face]int, a, b *entity.Face) pairKey {
	if order[a] > order[b] {
		return pairKey{b, a}
	}
	return pairKey{a, b}
}

// Mirrors returns every pair of the assembly's faces that mirror each
// other, in pair generation order.
func (a *Assembly) Mirrors() []*MirroredFaces {
	faces := a.Classification().Faces
	order := make(map[*entity.Face]int, len(faces))
	for i := len(faces) - 1; i >= 0; i-- {
		order[faces[i]] = i
	}
	seen := make(map[pairKey]bool)
	var out []*MirroredFaces
	for i, f := range faces {
		for _, g := range faces[i+1:] {
			if f == g {
				continue
			}
			k := keyOf(order, f, g)
			if seen[k] {
				continue
			}
			seen[k] = true
			if axis, ok := f.Mirror(g); ok {
				out = append(out, NewMirroredFaces(f, g, axis))
			}
		}
	}
	return out
}

// OrientationsAtThickness returns the mirrored pairs whose distance equals
// thickness after rounding.
func (a *Assembly) OrientationsAtThickness(thickness float64) []*MirroredFaces {
	want := geom.Round(thickness)
	return lo.Filter(a.Mirrors(), func(m *MirroredFaces, _ int) bool {
		return m.Distance() == want
	})
}

// Graphics returns the maximal graphic assemblies at or below a: a itself
// when it is a graphic, otherwise the graphics of each child in order.
func (a *Assembly) Graphics() []*Assembly {
	if a.IsGraphic() {
		return []*Assembly{a}
	}
	var out []*Assembly
	for _, child := range a.Classification().Children {
		sub, ok := Of(child)
		if !ok {
			continue
		}
		if sub.IsGraphic() {
			out = append(out, sub)
			continue
		}
		out = append(out, sub.Graphics()...)
	}
	return out
}

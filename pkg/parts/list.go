package parts

import (
	"sort"

	"github.com/chazu/vectorize/pkg/assembly"
	"github.com/samber/lo"
)

// List collects the parts of a set of top-level assemblies for one stock
// thickness.
type List struct {
	Thickness  float64
	Assemblies []*assembly.Assembly

	parts []*Part
	built bool
}

// New returns a list for stock of the given thickness.
func New(thickness float64, assemblies ...*assembly.Assembly) *List {
	return &List{Thickness: thickness, Assemblies: assemblies}
}

// Parts returns the graphics of every assembly that have at least one
// mirrored pair at the stock thickness, sorted by name. Graphics without
// any candidate are not parts of this stock and are left out.
func (l *List) Parts() []*Part {
	if !l.built {
		l.parts = l.collect()
		l.built = true
	}
	return l.parts
}

func (l *List) collect() []*Part {
	out := []*Part{}
	for _, a := range l.Assemblies {
		for _, g := range a.Graphics() {
			p := newPart(g, l)
			if len(p.Orientations()) == 0 {
				continue
			}
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Refresh discards the cached parts, including assigned orientations.
// Call it after the model changes.
func (l *List) Refresh() {
	l.parts = nil
	l.built = false
	for _, a := range l.Assemblies {
		a.Reanalyze()
	}
}

// Invalid returns the parts without a unique orientation.
func (l *List) Invalid() []*Part {
	return lo.Filter(l.Parts(), func(p *Part, _ int) bool {
		return !p.Valid()
	})
}

// Valid reports whether every part has an orientation.
func (l *List) Valid() bool {
	return len(l.Invalid()) == 0
}

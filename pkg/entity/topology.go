package entity

import "github.com/samber/lo"

// Topology answers connectivity questions about the faces of one
// assembly.
type Topology interface {
	// Adjacent returns the faces sharing an edge with f, f included when
	// it has any edge.
	Adjacent(f *Face) []*Face
	// Component returns every face reachable from f through shared edges,
	// f included.
	Component(f *Face) []*Face
}

// EdgeTopology derives connectivity from the edges linked to each face.
type EdgeTopology struct{}

var _ Topology = EdgeTopology{}

func (EdgeTopology) Adjacent(f *Face) []*Face {
	var out []*Face
	for _, e := range f.edges {
		out = append(out, e.faces...)
	}
	return lo.Uniq(out)
}

func (t EdgeTopology) Component(f *Face) []*Face {
	seen := map[*Face]bool{f: true}
	out := []*Face{f}
	queue := []*Face{f}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range t.Adjacent(cur) {
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
				queue = append(queue, next)
			}
		}
	}
	return out
}

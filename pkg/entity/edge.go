package entity

import "github.com/chazu/vectorize/pkg/geom"

// Edge is a straight segment bounding one or more faces.
type Edge struct {
	base
	A, B  geom.Point
	faces []*Face
}

// NewEdge returns an edge between a and b that bounds no face yet.
func NewEdge(id string, a, b geom.Point) *Edge {
	return &Edge{base: newBase(id), A: a, B: b}
}

func (e *Edge) Kind() Kind { return KindEdge }

// Faces returns the faces this edge bounds.
func (e *Edge) Faces() []*Face { return e.faces }

// edgeKey identifies an undirected segment by its rounded endpoints.
type edgeKey [2][3]float64

func keyOf(a, b geom.Point) edgeKey {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return edgeKey{a.Rounded(), b.Rounded()}
}

// Stitch creates one edge per distinct polygon side across faces and
// links every face to the edges of its loop. Faces that share a side end
// up sharing the edge, which is what makes them directly connected.
// The new edges are returned in creation order.
func Stitch(faces ...*Face) []*Edge {
	index := make(map[edgeKey]*Edge)
	var edges []*Edge
	for _, f := range faces {
		loop := f.Loop()
		for i, p := range loop {
			q := loop[(i+1)%len(loop)]
			k := keyOf(p, q)
			e, ok := index[k]
			if !ok {
				e = NewEdge("", p, q)
				index[k] = e
				edges = append(edges, e)
			}
			f.AddEdge(e)
		}
	}
	return edges
}

package assembly

import "github.com/chazu/vectorize/pkg/entity"

// Classification partitions the usable children of an assembly. Facets
// is Faces followed by Edges in child order, Children is every nested
// component or group in child order, and Meta holds everything else.
type Classification struct {
	Faces      []*entity.Face
	Edges      []*entity.Edge
	Facets     []entity.Entity
	Components []*entity.ComponentInstance
	Groups     []*entity.Group
	Children   []entity.Entity
	Meta       []entity.Entity
}

// Classify sorts es into buckets in a single pass. Nil and unrecognized
// entities go to Meta.
func Classify(es []entity.Entity) *Classification {
	c := &Classification{}
	for _, e := range es {
		switch v := e.(type) {
		case *entity.Face:
			c.Faces = append(c.Faces, v)
			c.Facets = append(c.Facets, v)
		case *entity.Edge:
			c.Edges = append(c.Edges, v)
			c.Facets = append(c.Facets, v)
		case *entity.ComponentInstance:
			c.Components = append(c.Components, v)
			c.Children = append(c.Children, v)
		case *entity.Group:
			c.Groups = append(c.Groups, v)
			c.Children = append(c.Children, v)
		default:
			c.Meta = append(c.Meta, e)
		}
	}
	return c
}

// Total returns the number of classified entities.
func (c *Classification) Total() int {
	return len(c.Facets) + len(c.Children) + len(c.Meta)
}

package entity

import "github.com/samber/lo"

// Entities is an ordered collection of entities owned by a group,
// component definition or selection.
type Entities struct {
	items []Entity
}

// NewEntities returns a collection holding es in order.
func NewEntities(es ...Entity) *Entities {
	c := &Entities{}
	c.Add(es...)
	return c
}

// Add appends entities to the collection. Nil entries are kept so that
// callers can see them; they are never usable.
func (c *Entities) Add(es ...Entity) {
	c.items = append(c.items, es...)
}

// All returns every entity in insertion order.
func (c *Entities) All() []Entity {
	if c == nil {
		return nil
	}
	return c.items
}

// Len returns the number of entities, usable or not.
func (c *Entities) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Usable returns the usable entities in insertion order.
func (c *Entities) Usable() []Entity {
	return lo.Filter(c.All(), func(e Entity, _ int) bool {
		return e != nil && e.Usable()
	})
}

// Faces returns the faces of the collection, usable or not.
func (c *Entities) Faces() []*Face {
	return lo.FilterMap(c.All(), func(e Entity, _ int) (*Face, bool) {
		f, ok := e.(*Face)
		return f, ok
	})
}

// Package entity models the entity tree of a solid model: faces, edges,
// groups, component instances and anything else a model may hold.
//
// Entities carry the visibility attributes that decide whether they are
// usable. Faces additionally carry the geometry and connectivity needed to
// detect mirrored pairs.
package entity

import "github.com/google/uuid"

// Kind enumerates the entity variants.
type Kind int

const (
	KindFace Kind = iota
	KindEdge
	KindComponent
	KindGroup
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindEdge:
		return "edge"
	case KindComponent:
		return "component"
	case KindGroup:
		return "group"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Entity is a single element of the entity tree. The set of
// implementations is closed: Face, Edge, ComponentInstance, Group, Other.
type Entity interface {
	ID() string
	Kind() Kind
	// Usable reports whether the entity is visible, on a visible layer,
	// and not deleted.
	Usable() bool
	entity() // marker method restricting implementations to this package
}

// NewID returns a fresh random identifier for anonymous entities.
func NewID() string {
	return uuid.NewString()
}

// Layer is a named visibility switch shared by many entities.
type Layer struct {
	Name    string
	Visible bool
}

// NewLayer returns a visible layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, Visible: true}
}

// base carries the attributes shared by every entity.
type base struct {
	id      string
	hidden  bool
	deleted bool
	layer   *Layer
}

func newBase(id string) base {
	if id == "" {
		id = NewID()
	}
	return base{id: id}
}

func (b *base) ID() string { return b.id }

func (b *base) Usable() bool {
	if b.hidden || b.deleted {
		return false
	}
	return b.layer == nil || b.layer.Visible
}

// Hide marks the entity hidden.
func (b *base) Hide() { b.hidden = true }

// Show clears the hidden flag.
func (b *base) Show() { b.hidden = false }

// Hidden reports whether the entity itself is hidden.
func (b *base) Hidden() bool { return b.hidden }

// SetLayer assigns the entity to l. A nil layer means the default,
// always-visible layer.
func (b *base) SetLayer(l *Layer) { b.layer = l }

// Layer returns the entity's layer, or nil for the default layer.
func (b *base) Layer() *Layer { return b.layer }

// Erase marks the entity deleted. Deleted entities stay referenced by
// their containers but are never usable again.
func (b *base) Erase() { b.deleted = true }

// Deleted reports whether Erase has been called.
func (b *base) Deleted() bool { return b.deleted }

func (*base) entity() {}

package entity

// Group is a named, anonymous container of entities.
type Group struct {
	base
	name     string
	Entities *Entities
}

// NewGroup returns an empty, visible group.
func NewGroup(id, name string) *Group {
	return &Group{base: newBase(id), name: name, Entities: NewEntities()}
}

func (g *Group) Kind() Kind   { return KindGroup }
func (g *Group) Name() string { return g.name }

// UsableEntities returns the group's usable children.
func (g *Group) UsableEntities() []Entity { return g.Entities.Usable() }

// Definition is the shared content of component instances.
type Definition struct {
	Name     string
	Entities *Entities
}

// NewDefinition returns an empty definition.
func NewDefinition(name string) *Definition {
	return &Definition{Name: name, Entities: NewEntities()}
}

// ComponentInstance is a placed copy of a Definition.
type ComponentInstance struct {
	base
	name       string
	Definition *Definition
}

// NewComponentInstance places def. An empty name falls back to the
// definition's name.
func NewComponentInstance(id, name string, def *Definition) *ComponentInstance {
	if def == nil {
		def = NewDefinition(name)
	}
	return &ComponentInstance{base: newBase(id), name: name, Definition: def}
}

func (c *ComponentInstance) Kind() Kind { return KindComponent }

func (c *ComponentInstance) Name() string {
	if c.name != "" {
		return c.name
	}
	return c.Definition.Name
}

// UsableEntities returns the usable entities of the definition.
func (c *ComponentInstance) UsableEntities() []Entity { return c.Definition.Entities.Usable() }

// Other is any entity without geometry of interest: joints, fasteners,
// drill marks, guides.
type Other struct {
	base
	Tag string
}

// NewOther returns a tagged, visible entity.
func NewOther(id, tag string) *Other {
	return &Other{base: newBase(id), Tag: tag}
}

func (o *Other) Kind() Kind { return KindOther }

// Selection is the set of top-level entities to analyze. It behaves like
// an assembly whose children are the selected entities.
type Selection struct {
	Entities *Entities
}

// NewSelection returns a selection of es.
func NewSelection(es ...Entity) *Selection {
	return &Selection{Entities: NewEntities(es...)}
}

func (s *Selection) Name() string { return "selection" }

// UsableEntities returns the usable selected entities. Hidden entities,
// entities on hidden layers and nil entries are skipped.
func (s *Selection) UsableEntities() []Entity { return s.Entities.Usable() }

// Compile-time interface checks.
var (
	_ Entity = (*Face)(nil)
	_ Entity = (*Edge)(nil)
	_ Entity = (*Group)(nil)
	_ Entity = (*ComponentInstance)(nil)
	_ Entity = (*Other)(nil)
)

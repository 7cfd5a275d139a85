// Package scene walks a design graph and produces the entity tree that
// the part analysis runs on. Each placed primitive becomes a component
// instance whose faces are stitched together along their shared edges.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
	"github.com/chazu/vectorize/pkg/graph"
	"github.com/chazu/vectorize/pkg/kernel"
	"github.com/rs/zerolog"
)

// DefaultSegments is the number of sides used to approximate a dowel.
const DefaultSegments = 32

// ErrUnsupportedData is returned for node payloads the builder cannot
// turn into entities.
var ErrUnsupportedData = errors.New("scene: unsupported node data")

// Options control which part of the graph is built and how.
type Options struct {
	// Select names the nodes to put in the selection. Empty selects the
	// graph roots.
	Select []string
	// Segments is the dowel approximation; zero means DefaultSegments.
	Segments int
	// Logger receives warnings about geometry that is unlikely to yield
	// parts. The zero value discards them.
	Logger zerolog.Logger
}

// builder carries the state of one Build call.
type builder struct {
	g      *graph.DesignGraph
	k      kernel.Kernel
	opts   Options
	log    zerolog.Logger
	layers map[string]*entity.Layer
}

// Build walks the graph and returns the selected entities. The builder is
// read-only and never mutates the graph.
func Build(g *graph.DesignGraph, k kernel.Kernel, opts Options) (*entity.Selection, error) {
	sel := entity.NewSelection()
	if g == nil {
		return sel, nil
	}
	if opts.Segments <= 0 {
		opts.Segments = DefaultSegments
	}

	b := &builder{
		g:      g,
		k:      k,
		opts:   opts,
		log:    opts.Logger.With().Str("component", "scene").Logger(),
		layers: make(map[string]*entity.Layer),
	}

	roots, err := b.roots()
	if err != nil {
		return nil, err
	}

	ts := newTransformStack()
	for _, root := range roots {
		collected, err := b.walk(root, ts)
		if err != nil {
			return nil, fmt.Errorf("scene: error walking root %s: %w", root.DisplayName(), err)
		}
		sel.Entities.Add(collected...)
	}
	return sel, nil
}

// roots resolves the selected nodes.
func (b *builder) roots() ([]*graph.Node, error) {
	if len(b.opts.Select) == 0 {
		var out []*graph.Node
		for _, id := range b.g.Roots {
			if n := b.g.Get(id); n != nil {
				out = append(out, n)
			}
		}
		return out, nil
	}

	out := make([]*graph.Node, 0, len(b.opts.Select))
	for _, name := range b.opts.Select {
		n := b.g.Lookup(name)
		if n == nil {
			return nil, fmt.Errorf("scene: no node named %q to select", name)
		}
		out = append(out, n)
	}
	return out, nil
}

// layer returns the shared entity layer for a graph layer name. The
// default layer maps to nil.
func (b *builder) layer(name string) *entity.Layer {
	if name == "" || name == graph.DefaultLayer {
		return nil
	}
	if l, ok := b.layers[name]; ok {
		return l
	}
	l := entity.NewLayer(name)
	l.Visible = b.g.LayerVisible(name)
	b.layers[name] = l
	return l
}

// attributed is implemented by every concrete entity.
type attributed interface {
	entity.Entity
	Hide()
	SetLayer(*entity.Layer)
	Layer() *entity.Layer
}

// decorate copies a node's visibility attributes onto entities. A layer
// already set by an inner node wins.
func (b *builder) decorate(n *graph.Node, es []entity.Entity) {
	l := b.layer(n.Layer)
	for _, e := range es {
		a, ok := e.(attributed)
		if !ok {
			continue
		}
		if n.Hidden {
			a.Hide()
		}
		if l != nil && a.Layer() == nil {
			a.SetLayer(l)
		}
	}
}

// walk dispatches on the node kind and returns the entities it produced.
func (b *builder) walk(n *graph.Node, ts *transformStack) ([]entity.Entity, error) {
	var (
		out []entity.Entity
		err error
	)
	switch n.Kind {
	case graph.NodePrimitive:
		out, err = b.primitive(n, ts)
	case graph.NodeTransform:
		out, err = b.transform(n, ts)
	case graph.NodeGroup:
		out, err = b.group(n, ts)
	case graph.NodeJoin, graph.NodeDrill, graph.NodeFastener:
		b.log.Debug().Str("node", n.DisplayName()).Stringer("kind", n.Kind).Msg("no geometry for node")
		out = []entity.Entity{entity.NewOther(n.ID.Short(), n.Kind.String())}
	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
	if err != nil {
		return nil, err
	}
	b.decorate(n, out)
	return out, nil
}

// solid creates the kernel solid for a primitive payload.
func (b *builder) solid(n *graph.Node) (kernel.Solid, error) {
	switch data := n.Data.(type) {
	case graph.BoardData:
		return b.k.Box(data.Dimensions.X, data.Dimensions.Y, data.Dimensions.Z), nil
	case graph.DowelData:
		return b.k.Cylinder(data.Length, data.Diameter/2, b.opts.Segments), nil
	case graph.PanelData:
		outline := make([][2]float64, len(data.Outline))
		for i, p := range data.Outline {
			outline[i] = [2]float64{p.X, p.Y}
		}
		return b.k.Prism(outline, data.Thickness), nil
	default:
		return nil, fmt.Errorf("primitive node %s has data %T: %w", n.ID.Short(), n.Data, ErrUnsupportedData)
	}
}

// primitive places a part and wraps its faces in a component instance
// named after the part.
func (b *builder) primitive(n *graph.Node, ts *transformStack) ([]entity.Entity, error) {
	solid, err := b.solid(n)
	if err != nil {
		return nil, err
	}

	// Apply accumulated rotation first, then translation.
	rot := ts.accumulatedRotation()
	if !rot.IsZero() {
		if !rightAngles(rot) {
			b.log.Warn().
				Str("part", n.DisplayName()).
				Stringer("rotation", rot).
				Msg("rotation is not a multiple of 90 degrees; faces may not mirror on an axis")
		}
		solid = b.k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}
	if trans := ts.accumulatedTranslation(); !trans.IsZero() {
		solid = b.k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	polys := solid.Faces()
	faces := make([]*entity.Face, 0, len(polys))
	for _, poly := range polys {
		pts := make([]geom.Point, len(poly))
		for i, v := range poly {
			pts[i] = geom.Pt(v[0], v[1], v[2])
		}
		faces = append(faces, entity.NewFace("", pts...))
	}
	edges := entity.Stitch(faces...)

	def := entity.NewDefinition(n.DisplayName())
	for _, f := range faces {
		def.Entities.Add(f)
	}
	for _, e := range edges {
		def.Entities.Add(e)
	}
	return []entity.Entity{entity.NewComponentInstance("", n.Name, def)}, nil
}

// transform pushes the placement, recurses into children, then pops.
func (b *builder) transform(n *graph.Node, ts *transformStack) ([]entity.Entity, error) {
	td, ok := n.Data.(graph.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has data %T: %w", n.ID.Short(), n.Data, ErrUnsupportedData)
	}

	var translation, rotation graph.Vec3
	if td.Translation != nil {
		translation = *td.Translation
	}
	if td.Rotation != nil {
		rotation = *td.Rotation
	}
	ts.push(translation, rotation)
	defer ts.pop()

	return b.children(n, ts)
}

// group maps an assembly node to an entity group.
func (b *builder) group(n *graph.Node, ts *transformStack) ([]entity.Entity, error) {
	children, err := b.children(n, ts)
	if err != nil {
		return nil, err
	}
	grp := entity.NewGroup(n.ID.Short(), n.Name)
	grp.Entities.Add(children...)
	return []entity.Entity{grp}, nil
}

func (b *builder) children(n *graph.Node, ts *transformStack) ([]entity.Entity, error) {
	var out []entity.Entity
	for _, child := range b.g.Children(n) {
		collected, err := b.walk(child, ts)
		if err != nil {
			return nil, err
		}
		out = append(out, collected...)
	}
	return out, nil
}

// rightAngles reports whether every Euler angle is a multiple of 90.
func rightAngles(r graph.Vec3) bool {
	for _, a := range []float64{r.X, r.Y, r.Z} {
		if geom.Round(math.Mod(a, 90)) != 0 {
			return false
		}
	}
	return true
}

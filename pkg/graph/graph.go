package graph

import (
	"fmt"
	"slices"
	"sort"
)

// DefaultClearance is the default joint clearance in mm.
const DefaultClearance = 0.25

// DefaultLayer is the layer of nodes that name none. It is always visible.
const DefaultLayer = "default"

// GlobalDefaults holds graph-wide settings.
type GlobalDefaults struct {
	Clearance float64      `json:"clearance"`
	Material  MaterialSpec `json:"material"`
	Units     string       `json:"units"`
}

// LayerSpec declares a named layer and its visibility.
type LayerSpec struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// DesignGraph is the result of one evaluation. Each evaluation produces a
// new graph; a graph is not mutated after evaluation finishes.
type DesignGraph struct {
	Nodes     map[NodeID]*Node     `json:"nodes"`
	Roots     []NodeID             `json:"roots"`
	NameIndex map[string]NodeID    `json:"name_index"`
	Layers    map[string]LayerSpec `json:"layers"`
	Defaults  GlobalDefaults       `json:"defaults"`
}

// New creates an empty graph with default settings.
func New() *DesignGraph {
	return &DesignGraph{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
		Layers:    make(map[string]LayerSpec),
		Defaults: GlobalDefaults{
			Clearance: DefaultClearance,
			Units:     "mm",
		},
	}
}

// AddNode adds or replaces a node and indexes its name.
func (g *DesignGraph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
	if n.Name != "" {
		g.NameIndex[n.Name] = n.ID
	}
}

// AddRoot registers id as a root unless it already is one.
func (g *DesignGraph) AddRoot(id NodeID) {
	if !slices.Contains(g.Roots, id) {
		g.Roots = append(g.Roots, id)
	}
}

// RemoveRoot drops id from the roots, keeping the node.
func (g *DesignGraph) RemoveRoot(id NodeID) {
	g.Roots = slices.DeleteFunc(g.Roots, func(r NodeID) bool { return r == id })
}

// DefineLayer declares or redeclares a layer.
func (g *DesignGraph) DefineLayer(name string, visible bool) {
	g.Layers[name] = LayerSpec{Name: name, Visible: visible}
}

// LayerVisible reports whether the named layer is visible. The default
// layer and undeclared layers are visible.
func (g *DesignGraph) LayerVisible(name string) bool {
	spec, ok := g.Layers[name]
	return !ok || spec.Visible
}

// Lookup returns the node with the given name, or nil.
func (g *DesignGraph) Lookup(name string) *Node {
	id, ok := g.NameIndex[name]
	if !ok {
		return nil
	}
	return g.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (g *DesignGraph) MustLookup(name string) *Node {
	n := g.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("graph: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (g *DesignGraph) Get(id NodeID) *Node {
	return g.Nodes[id]
}

// Parts returns all primitive nodes sorted by display name.
func (g *DesignGraph) Parts() []*Node {
	return g.ofKind(NodePrimitive)
}

// Joins returns all join nodes sorted by display name.
func (g *DesignGraph) Joins() []*Node {
	return g.ofKind(NodeJoin)
}

func (g *DesignGraph) ofKind(k NodeKind) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayName() != out[j].DisplayName() {
			return out[i].DisplayName() < out[j].DisplayName()
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// Children returns the existing child nodes of n in order.
func (g *DesignGraph) Children(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if c := g.Nodes[cid]; c != nil {
			children = append(children, c)
		}
	}
	return children
}

// NodeCount returns the total number of nodes.
func (g *DesignGraph) NodeCount() int {
	return len(g.Nodes)
}

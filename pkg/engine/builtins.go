package engine

import (
	"fmt"

	"github.com/chazu/vectorize/pkg/graph"
	zygo "github.com/glycerine/zygomys/zygo"
)

// builtin is the signature zygomys expects from Go functions.
type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// dsl holds the graph that one evaluation populates.
type dsl struct {
	g *graph.DesignGraph
	// counters number anonymous nodes per path prefix so that repeated
	// placements of one part get distinct IDs.
	counters map[string]int
}

// nextID returns a fresh deterministic ID under prefix, e.g. place/shelf/2.
func (d *dsl) nextID(prefix string) graph.NodeID {
	d.counters[prefix]++
	return graph.NewNodeID(fmt.Sprintf("%s/%d", prefix, d.counters[prefix]))
}

// registerBuiltins installs the design builtins into env. They populate g
// while the program runs. Source must go through preprocessSource first
// so :keywords are recognizable.
func registerBuiltins(env *zygo.Zlisp, g *graph.DesignGraph) {
	d := &dsl{g: g, counters: make(map[string]int)}
	for name, fn := range map[string]builtin{
		"material":   d.material,
		"board":      d.board,
		"dowel":      d.dowel,
		"panel":      d.panel,
		"defpart":    d.defpart,
		"part":       d.part,
		"vec3":       d.vec3,
		"place":      d.place,
		"layer":      d.layer,
		"butt_joint": d.buttJoint,
		"screw":      d.screw,
		"assembly":   d.assembly,
	} {
		env.AddFunction(name, fn)
	}
}

// (material :species "white-oak" :thickness 19 :grade "FAS")
func (d *dsl) material(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	var spec graph.MaterialSpec
	for _, err := range []error{
		pa.str("species", &spec.Species),
		pa.float("thickness", &spec.Thickness),
		pa.str("grade", &spec.Grade),
	} {
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("material: %w", err)
		}
	}
	return &sexpMaterial{spec: spec}, nil
}

// (board :length 400 :width 200 :thickness 19 :grain :x :material oak)
func (d *dsl) board(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	bd := graph.BoardData{PrimKind: graph.PrimBoard}
	for _, err := range []error{
		pa.float("length", &bd.Dimensions.X),
		pa.float("width", &bd.Dimensions.Y),
		pa.float("thickness", &bd.Dimensions.Z),
		pa.material("material", &bd.Material),
	} {
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("board: %w", err)
		}
	}
	if v, ok := pa.kw["grain"]; ok {
		a, err := toAxis(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("board: grain: %w", err)
		}
		bd.Grain = a
	}
	return &sexpPrimitive{data: bd}, nil
}

// (dowel :diameter 8 :length 40 :material beech)
func (d *dsl) dowel(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	dd := graph.DowelData{PrimKind: graph.PrimDowel}
	for _, err := range []error{
		pa.float("diameter", &dd.Diameter),
		pa.float("length", &dd.Length),
		pa.material("material", &dd.Material),
	} {
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dowel: %w", err)
		}
	}
	return &sexpPrimitive{data: dd}, nil
}

// (panel :outline (list [0 0] [300 0] [0 200]) :thickness 12 :material ply)
func (d *dsl) panel(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	pd := graph.PanelData{PrimKind: graph.PrimPanel}
	for _, err := range []error{
		pa.float("thickness", &pd.Thickness),
		pa.material("material", &pd.Material),
	} {
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: %w", err)
		}
	}
	v, ok := pa.kw["outline"]
	if !ok {
		return zygo.SexpNull, fmt.Errorf("panel requires :outline")
	}
	items, err := sexpListToSlice(v)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("panel: outline: %w", err)
	}
	for i, item := range items {
		p, err := toVec2(item)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: outline point %d: %w", i, err)
		}
		pd.Outline = append(pd.Outline, p)
	}
	return &sexpPrimitive{data: pd}, nil
}

// (defpart "name" (board ...))
func (d *dsl) defpart(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) < 2 {
		return zygo.SexpNull, fmt.Errorf("defpart requires a name and a body expression")
	}
	partName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("defpart: name: %w", err)
	}
	body, ok := args[1].(*sexpPrimitive)
	if !ok {
		return zygo.SexpNull, fmt.Errorf("defpart: expected board, dowel or panel expression, got %T", args[1])
	}
	if d.g.Lookup(partName) != nil {
		return zygo.SexpNull, fmt.Errorf("defpart: %q is already defined", partName)
	}

	id := graph.NewNodeID(partName)
	d.g.AddNode(&graph.Node{
		ID:   id,
		Kind: graph.NodePrimitive,
		Name: partName,
		Data: body.data,
	})
	return &sexpNodeRef{id: id, name: partName}, nil
}

// (part "name")
func (d *dsl) part(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) < 1 {
		return zygo.SexpNull, fmt.Errorf("part requires a name argument")
	}
	partName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
	}
	n := d.g.Lookup(partName)
	if n == nil {
		return zygo.SexpNull, fmt.Errorf("part: no part named %q", partName)
	}
	return &sexpNodeRef{id: n.ID, name: partName}, nil
}

// (vec3 1 2 3)
func (d *dsl) vec3(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 3 {
		return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
	}
	var xyz [3]float64
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: %c: %w", "xyz"[i], err)
		}
		xyz[i] = f
	}
	return &sexpVec3{vec: graph.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
}

// (place (part "front") :at (vec3 0 0 19) :rotate (vec3 0 90 0)
//        :layer "jigs" :hidden true)
func (d *dsl) place(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if len(pa.positional) < 1 {
		return zygo.SexpNull, fmt.Errorf("place requires a part reference as first argument")
	}
	child, err := toNodeRef(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("place: part: %w", err)
	}

	var td graph.TransformData
	if td.Translation, err = pa.vec3("at"); err != nil {
		return zygo.SexpNull, fmt.Errorf("place: %w", err)
	}
	if td.Rotation, err = pa.vec3("rotate"); err != nil {
		return zygo.SexpNull, fmt.Errorf("place: %w", err)
	}

	node := &graph.Node{
		Kind:     graph.NodeTransform,
		Children: []graph.NodeID{child.id},
		Data:     td,
	}
	if err := pa.str("layer", &node.Layer); err != nil {
		return zygo.SexpNull, fmt.Errorf("place: %w", err)
	}
	if err := pa.boolean("hidden", &node.Hidden); err != nil {
		return zygo.SexpNull, fmt.Errorf("place: %w", err)
	}

	prefix := "place/anon"
	if c := d.g.Get(child.id); c != nil && c.Name != "" {
		prefix = "place/" + c.Name
	}
	node.ID = d.nextID(prefix)
	d.g.AddNode(node)
	d.g.AddRoot(node.ID)
	return &sexpNodeRef{id: node.ID}, nil
}

// (layer "jigs" :visible false)
func (d *dsl) layer(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if len(pa.positional) < 1 {
		return zygo.SexpNull, fmt.Errorf("layer requires a name argument")
	}
	layerName, err := toString(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("layer: name: %w", err)
	}
	visible := true
	if err := pa.boolean("visible", &visible); err != nil {
		return zygo.SexpNull, fmt.Errorf("layer: %w", err)
	}
	d.g.DefineLayer(layerName, visible)
	return &zygo.SexpStr{S: layerName}, nil
}

// (butt-joint :part-a ref :face-a :left :part-b ref :face-b :front
//             :clearance 0.5 :glue true :fasteners (list ...))
//
// Registered as butt_joint; preprocessSource rewrites the hyphen.
func (d *dsl) buttJoint(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	jd := graph.JoinData{Kind: graph.JoinButt}

	for _, side := range []struct {
		part, face string
		id         *graph.NodeID
		fid        *graph.FaceID
	}{
		{"part-a", "face-a", &jd.PartA, &jd.FaceA},
		{"part-b", "face-b", &jd.PartB, &jd.FaceB},
	} {
		if v, ok := pa.kw[side.part]; ok {
			ref, err := toNodeRef(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("butt-joint: %s: %w", side.part, err)
			}
			*side.id = ref.id
		}
		if v, ok := pa.kw[side.face]; ok {
			f, err := toFaceID(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("butt-joint: %s: %w", side.face, err)
			}
			*side.fid = f
		}
	}
	if err := pa.float("clearance", &jd.Clearance); err != nil {
		return zygo.SexpNull, fmt.Errorf("butt-joint: %w", err)
	}
	if err := pa.boolean("glue", &jd.GlueUp); err != nil {
		return zygo.SexpNull, fmt.Errorf("butt-joint: %w", err)
	}
	if v, ok := pa.kw["fasteners"]; ok {
		items, err := sexpListToSlice(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("butt-joint: fasteners: %w", err)
		}
		for _, item := range items {
			ref, err := toNodeRef(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("butt-joint: fastener entry: %w", err)
			}
			jd.Fasteners = append(jd.Fasteners, ref.id)
		}
	}

	id := d.nextID("butt-joint")
	d.g.AddNode(&graph.Node{ID: id, Kind: graph.NodeJoin, Data: jd})
	d.g.AddRoot(id)
	return &sexpNodeRef{id: id}, nil
}

// (screw :diameter 4 :length 50 :position (vec3 0 50 0) :head-dia 8)
func (d *dsl) screw(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	fd := graph.FastenerData{Kind: graph.FastenerScrew}
	for _, err := range []error{
		pa.float("diameter", &fd.Diameter),
		pa.float("length", &fd.Length),
		pa.float("head-dia", &fd.HeadDia),
	} {
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("screw: %w", err)
		}
	}
	pos, err := pa.vec3("position")
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("screw: %w", err)
	}
	if pos != nil {
		fd.Position = *pos
	}

	id := d.nextID("screw")
	d.g.AddNode(&graph.Node{ID: id, Kind: graph.NodeFastener, Data: fd})
	return &sexpNodeRef{id: id}, nil
}

// (assembly "name" (place ...) (butt-joint ...) (assembly ...) ...)
//
// Children stop being roots once an assembly adopts them.
func (d *dsl) assembly(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) < 1 {
		return zygo.SexpNull, fmt.Errorf("assembly requires a name argument")
	}
	asmName, err := toString(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("assembly: name: %w", err)
	}
	if d.g.Lookup(asmName) != nil {
		return zygo.SexpNull, fmt.Errorf("assembly: %q is already defined", asmName)
	}

	children := make([]graph.NodeID, 0, len(args)-1)
	for i, arg := range args[1:] {
		ref, ok := arg.(*sexpNodeRef)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("assembly: child %d: expected node reference, got %T (%s)",
				i+1, arg, arg.SexpString(nil))
		}
		children = append(children, ref.id)
	}

	id := graph.NewNodeID(asmName)
	d.g.AddNode(&graph.Node{
		ID:       id,
		Kind:     graph.NodeGroup,
		Name:     asmName,
		Children: children,
		Data:     graph.GroupData{},
	})
	for _, c := range children {
		d.g.RemoveRoot(c)
	}
	d.g.AddRoot(id)
	return &sexpNodeRef{id: id, name: asmName}, nil
}

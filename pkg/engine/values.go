package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/vectorize/pkg/graph"
	zygo "github.com/glycerine/zygomys/zygo"
)

// sexpMaterial carries a MaterialSpec between builtins.
type sexpMaterial struct {
	spec graph.MaterialSpec
}

func (m *sexpMaterial) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(material :species %q)", m.spec.Species)
}
func (m *sexpMaterial) Type() *zygo.RegisteredType { return nil }

// sexpPrimitive carries the payload of board, dowel or panel until
// defpart names it.
type sexpPrimitive struct {
	data graph.NodeData
}

func (p *sexpPrimitive) SexpString(ps *zygo.PrintState) string {
	switch d := p.data.(type) {
	case graph.BoardData:
		return fmt.Sprintf("(board %gx%gx%g)", d.Dimensions.X, d.Dimensions.Y, d.Dimensions.Z)
	case graph.DowelData:
		return fmt.Sprintf("(dowel %gx%g)", d.Diameter, d.Length)
	case graph.PanelData:
		return fmt.Sprintf("(panel %d points x%g)", len(d.Outline), d.Thickness)
	}
	return "(primitive)"
}
func (p *sexpPrimitive) Type() *zygo.RegisteredType { return nil }

// sexpNodeRef refers to a node already added to the graph.
type sexpNodeRef struct {
	id   graph.NodeID
	name string // for messages
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(noderef %q)", n.name)
	}
	return fmt.Sprintf("(noderef %s)", n.id.Short())
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

type sexpVec3 struct {
	vec graph.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword arguments
// ---------------------------------------------------------------------------

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs is an argument list split into keyword and positional values.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits args. A trailing keyword without a value maps to
// SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// float sets *dst from keyword key when present.
func (a kwArgs) float(key string, dst *float64) error {
	v, ok := a.kw[key]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

// str sets *dst from keyword key when present.
func (a kwArgs) str(key string, dst *string) error {
	v, ok := a.kw[key]
	if !ok {
		return nil
	}
	s, err := toKeywordString(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = s
	return nil
}

// boolean sets *dst from keyword key when present. A bare trailing
// keyword counts as true.
func (a kwArgs) boolean(key string, dst *bool) error {
	v, ok := a.kw[key]
	if !ok {
		return nil
	}
	if v == zygo.SexpNull {
		*dst = true
		return nil
	}
	b, ok := v.(*zygo.SexpBool)
	if !ok {
		return fmt.Errorf("%s: expected boolean, got %T (%s)", key, v, v.SexpString(nil))
	}
	*dst = b.Val
	return nil
}

// material sets *dst from keyword key when present.
func (a kwArgs) material(key string, dst *graph.MaterialSpec) error {
	v, ok := a.kw[key]
	if !ok {
		return nil
	}
	m, ok := v.(*sexpMaterial)
	if !ok {
		return fmt.Errorf("%s: expected material, got %T (%s)", key, v, v.SexpString(nil))
	}
	*dst = m.spec
	return nil
}

// vec3 returns keyword key as a vector, or nil when absent.
func (a kwArgs) vec3(key string) (*graph.Vec3, error) {
	v, ok := a.kw[key]
	if !ok {
		return nil, nil
	}
	vec, err := toVec3(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &vec, nil
}

// ---------------------------------------------------------------------------
// Value extraction
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString accepts both :z and "z".
func toKeywordString(s zygo.Sexp) (string, error) {
	str, err := toString(s)
	if err != nil {
		return "", fmt.Errorf("expected keyword or string: %w", err)
	}
	return strings.TrimPrefix(str, kwPrefix), nil
}

func toAxis(s zygo.Sexp) (graph.Axis, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	switch name {
	case "x":
		return graph.AxisX, nil
	case "y":
		return graph.AxisY, nil
	case "z":
		return graph.AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x, y, or z", name)
}

func toFaceID(s zygo.Sexp) (graph.FaceID, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return "", err
	}
	fid := graph.FaceID(name)
	if !graph.ValidFaceIDs[fid] {
		return "", fmt.Errorf("invalid face %q, expected top/bottom/left/right/front/back", name)
	}
	return fid, nil
}

func toNodeRef(s zygo.Sexp) (*sexpNodeRef, error) {
	if ref, ok := s.(*sexpNodeRef); ok {
		return ref, nil
	}
	return nil, fmt.Errorf("expected node reference, got %T (%s)", s, s.SexpString(nil))
}

func toVec3(s zygo.Sexp) (graph.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return graph.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toVec2 accepts a vec3 (z ignored) or a two-number list or array.
func toVec2(s zygo.Sexp) (graph.Vec2, error) {
	if v, ok := s.(*sexpVec3); ok {
		return graph.Vec2{X: v.vec.X, Y: v.vec.Y}, nil
	}
	items, err := sexpListToSlice(s)
	if err != nil || len(items) != 2 {
		return graph.Vec2{}, fmt.Errorf("expected point (vec3 or [x y]), got %T (%s)", s, s.SexpString(nil))
	}
	x, err := toFloat64(items[0])
	if err != nil {
		return graph.Vec2{}, err
	}
	y, err := toFloat64(items[1])
	if err != nil {
		return graph.Vec2{}, err
	}
	return graph.Vec2{X: x, Y: y}, nil
}

// sexpListToSlice converts a list or array to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

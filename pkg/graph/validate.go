package graph

import "fmt"

// ValidationSeverity says whether a finding blocks further processing.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError is a single validation finding.
type ValidationError struct {
	NodeID   NodeID // zero for graph-level findings
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, e.NodeID.Short(), e.Message)
}

// ValidationWarning is a non-blocking finding.
type ValidationWarning struct {
	NodeID  NodeID
	Message string
}

// ValidationResult separates blocking errors from warnings across all
// validation tiers.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the result holds no errors.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

func errorf(id NodeID, format string, args ...any) ValidationError {
	return ValidationError{NodeID: id, Message: fmt.Sprintf(format, args...), Severity: SeverityError}
}

func warnf(id NodeID, format string, args ...any) ValidationError {
	return ValidationError{NodeID: id, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning}
}

// Validate runs the structural checks. It never mutates the graph.
func Validate(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateDAG(g)...)
	errs = append(errs, validateReferences(g)...)
	errs = append(errs, validateNames(g)...)
	errs = append(errs, validateRoots(g)...)
	errs = append(errs, validateFaceIDs(g)...)
	errs = append(errs, validateJoinParts(g)...)
	errs = append(errs, validateLayers(g)...)
	return errs
}

// ValidateAll runs the structural, geometric and material tiers.
func ValidateAll(g *DesignGraph) ValidationResult {
	var result ValidationResult
	for _, e := range Validate(g) {
		if e.Severity == SeverityWarning {
			result.Warnings = append(result.Warnings, ValidationWarning{NodeID: e.NodeID, Message: e.Message})
		} else {
			result.Errors = append(result.Errors, e)
		}
	}

	geoErrs, geoWarnings := validateGeometry(g)
	result.Errors = append(result.Errors, geoErrs...)
	result.Warnings = append(result.Warnings, geoWarnings...)
	result.Warnings = append(result.Warnings, validateMaterial(g)...)
	return result
}

// dataRefs returns the node IDs referenced from a node's payload.
func dataRefs(n *Node) []NodeID {
	var refs []NodeID
	switch d := n.Data.(type) {
	case JoinData:
		refs = append(refs, d.PartA, d.PartB)
		refs = append(refs, d.Fasteners...)
	case DrillData:
		refs = append(refs, d.TargetPart)
	case FastenerData:
		refs = append(refs, d.JoinRef)
	}
	out := refs[:0]
	for _, r := range refs {
		if !r.IsZero() {
			out = append(out, r)
		}
	}
	return out
}

// validateDAG finds cycles through Children edges with a three-colour DFS.
func validateDAG(g *DesignGraph) []ValidationError {
	const (
		white = iota
		gray
		black
	)
	color := make(map[NodeID]int)

	var cycleAt NodeID
	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		switch color[id] {
		case black:
			return false
		case gray:
			cycleAt = id
			return true
		}
		color[id] = gray
		if n := g.Nodes[id]; n != nil {
			for _, c := range n.Children {
				if visit(c) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for id := range g.Nodes {
		if color[id] == white && visit(id) {
			return []ValidationError{errorf(cycleAt, "cycle detected: node %s is part of a cycle", cycleAt.Short())}
		}
	}
	return nil
}

// validateReferences checks that every referenced node exists.
func validateReferences(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.Nodes {
		for _, c := range n.Children {
			if g.Nodes[c] == nil {
				errs = append(errs, errorf(n.ID, "child reference %s does not exist", c.Short()))
			}
		}
		for _, r := range dataRefs(n) {
			if g.Nodes[r] == nil {
				errs = append(errs, errorf(n.ID, "%s reference %s does not exist", n.Kind, r.Short()))
			}
		}
	}
	return errs
}

// validateNames checks that names are unique and the index is sound.
func validateNames(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	for name, id := range g.NameIndex {
		if g.Nodes[id] == nil {
			errs = append(errs, errorf(ZeroID, "name index entry %q references non-existent node %s", name, id.Short()))
		}
	}
	count := make(map[string]int)
	for _, n := range g.Nodes {
		if n.Name != "" {
			count[n.Name]++
		}
	}
	for name, c := range count {
		if c > 1 {
			errs = append(errs, errorf(ZeroID, "duplicate name %q assigned to %d nodes", name, c))
		}
	}
	return errs
}

// validateRoots checks root references and warns about orphan nodes.
func validateRoots(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	reachable := make(map[NodeID]bool)
	var queue []NodeID
	for _, r := range g.Roots {
		if g.Nodes[r] == nil {
			errs = append(errs, errorf(ZeroID, "root reference %s does not exist", r.Short()))
			continue
		}
		if !reachable[r] {
			reachable[r] = true
			queue = append(queue, r)
		}
	}

	for len(queue) > 0 {
		n := g.Nodes[queue[0]]
		queue = queue[1:]
		if n == nil {
			continue
		}
		next := append(append([]NodeID{}, n.Children...), dataRefs(n)...)
		for _, id := range next {
			if !reachable[id] {
				reachable[id] = true
				queue = append(queue, id)
			}
		}
	}

	for id, n := range g.Nodes {
		if !reachable[id] {
			errs = append(errs, warnf(id, "node %q is not reachable from any root (orphan)", n.DisplayName()))
		}
	}
	return errs
}

// validateFaceIDs checks the faces named by joins and drills.
func validateFaceIDs(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.Nodes {
		switch d := n.Data.(type) {
		case JoinData:
			if !ValidFaceIDs[d.FaceA] {
				errs = append(errs, errorf(n.ID, "invalid face_a %q", d.FaceA))
			}
			if !ValidFaceIDs[d.FaceB] {
				errs = append(errs, errorf(n.ID, "invalid face_b %q", d.FaceB))
			}
		case DrillData:
			if !ValidFaceIDs[d.Face] {
				errs = append(errs, errorf(n.ID, "invalid drill face %q", d.Face))
			}
		}
	}
	return errs
}

// validateJoinParts checks that joins connect two different primitives.
func validateJoinParts(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.Nodes {
		jd, ok := n.Data.(JoinData)
		if !ok {
			continue
		}
		if jd.PartA == jd.PartB {
			errs = append(errs, errorf(n.ID, "join references the same part for both part_a and part_b (self-join)"))
		}
		for i, id := range []NodeID{jd.PartA, jd.PartB} {
			if p := g.Nodes[id]; p != nil && p.Kind != NodePrimitive {
				label := [2]string{"part_a", "part_b"}[i]
				errs = append(errs, errorf(n.ID, "join %s %s is %s, not primitive", label, id.Short(), p.Kind))
			}
		}
	}
	return errs
}

// validateLayers warns about nodes on layers that were never declared.
func validateLayers(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.Nodes {
		if n.Layer == "" || n.Layer == DefaultLayer {
			continue
		}
		if _, ok := g.Layers[n.Layer]; !ok {
			errs = append(errs, warnf(n.ID, "layer %q is not declared; treating it as visible", n.Layer))
		}
	}
	return errs
}

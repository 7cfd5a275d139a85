package graph

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Tier 2: geometric validation
// ---------------------------------------------------------------------------

// validateGeometry runs the geometric checks, returning errors and
// warnings separately.
func validateGeometry(g *DesignGraph) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	errs = append(errs, validateDimensions(g)...)
	errs = append(errs, validatePanelOutlines(g)...)
	errs = append(errs, validateDuplicateJoins(g)...)
	return errs, validateFastenerLength(g)
}

// validateDimensions checks that every primitive has positive size.
func validateDimensions(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	positive := func(n *Node, what string, v float64) {
		if v <= 0 {
			errs = append(errs, errorf(n.ID, "%s is %.4f, must be positive", what, v))
		}
	}
	for _, n := range g.Nodes {
		switch d := n.Data.(type) {
		case BoardData:
			positive(n, "board dimension X", d.Dimensions.X)
			positive(n, "board dimension Y", d.Dimensions.Y)
			positive(n, "board dimension Z", d.Dimensions.Z)
		case DowelData:
			positive(n, "dowel diameter", d.Diameter)
			positive(n, "dowel length", d.Length)
		case PanelData:
			positive(n, "panel thickness", d.Thickness)
		}
	}
	return errs
}

// outlineArea returns the signed shoelace area of a closed outline.
func outlineArea(pts []Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// validatePanelOutlines checks that panel outlines are closed polygons
// with area and without repeated consecutive points.
func validatePanelOutlines(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	for _, n := range g.Nodes {
		pd, ok := n.Data.(PanelData)
		if !ok {
			continue
		}
		if len(pd.Outline) < 3 {
			errs = append(errs, errorf(n.ID, "panel outline has %d points, need at least 3", len(pd.Outline)))
			continue
		}
		for i, p := range pd.Outline {
			if p == pd.Outline[(i+1)%len(pd.Outline)] {
				errs = append(errs, errorf(n.ID, "panel outline repeats point %d", i))
				break
			}
		}
		if math.Abs(outlineArea(pd.Outline)) < 1e-9 {
			errs = append(errs, errorf(n.ID, "panel outline has zero area"))
		}
	}
	return errs
}

// joinKey identifies a join independent of the order of its parts.
type joinKey struct {
	partLo, partHi NodeID
	faceLo, faceHi FaceID
}

func makeJoinKey(jd JoinData) joinKey {
	a, b := jd.PartA.String(), jd.PartB.String()
	if a < b || (a == b && jd.FaceA <= jd.FaceB) {
		return joinKey{jd.PartA, jd.PartB, jd.FaceA, jd.FaceB}
	}
	return joinKey{jd.PartB, jd.PartA, jd.FaceB, jd.FaceA}
}

// validateDuplicateJoins rejects two joins on the same part faces.
func validateDuplicateJoins(g *DesignGraph) []ValidationError {
	var errs []ValidationError
	seen := make(map[joinKey]NodeID)
	for _, n := range g.Joins() {
		jd, ok := n.Data.(JoinData)
		if !ok {
			continue
		}
		key := makeJoinKey(jd)
		if first, ok := seen[key]; ok {
			errs = append(errs, errorf(n.ID, "duplicate join: same part-face pair already joined by node %s", first.Short()))
			continue
		}
		seen[key] = n.ID
	}
	return errs
}

// faceThickness returns a board's extent perpendicular to face.
func faceThickness(bd BoardData, face FaceID) float64 {
	switch face {
	case FaceTop, FaceBottom:
		return bd.Dimensions.Z
	case FaceLeft, FaceRight:
		return bd.Dimensions.X
	case FaceFront, FaceBack:
		return bd.Dimensions.Y
	default:
		return 0
	}
}

// joinedBoards returns the boards on both sides of a join.
func joinedBoards(g *DesignGraph, jd JoinData) (BoardData, BoardData, bool) {
	a, b := g.Nodes[jd.PartA], g.Nodes[jd.PartB]
	if a == nil || b == nil {
		return BoardData{}, BoardData{}, false
	}
	bdA, okA := a.Data.(BoardData)
	bdB, okB := b.Data.(BoardData)
	return bdA, bdB, okA && okB
}

// validateFastenerLength warns when a butt-joint fastener is longer than
// the two boards it passes through.
func validateFastenerLength(g *DesignGraph) []ValidationWarning {
	var warnings []ValidationWarning
	for _, n := range g.Joins() {
		jd, ok := n.Data.(JoinData)
		if !ok || jd.Kind != JoinButt {
			continue
		}
		bdA, bdB, ok := joinedBoards(g, jd)
		if !ok {
			continue
		}
		combined := faceThickness(bdA, jd.FaceA) + faceThickness(bdB, jd.FaceB)
		for _, fid := range jd.Fasteners {
			fn := g.Nodes[fid]
			if fn == nil {
				continue
			}
			if fd, ok := fn.Data.(FastenerData); ok && fd.Length > combined {
				warnings = append(warnings, ValidationWarning{
					NodeID: fn.ID,
					Message: fmt.Sprintf("fastener length %.1fmm exceeds combined board thickness %.1fmm at joint %s",
						fd.Length, combined, n.ID.Short()),
				})
			}
		}
	}
	return warnings
}

// ---------------------------------------------------------------------------
// Tier 3: material warnings
// ---------------------------------------------------------------------------

// isEndGrainFace reports whether face is perpendicular to the grain.
func isEndGrainFace(grain Axis, face FaceID) bool {
	switch grain {
	case AxisX:
		return face == FaceLeft || face == FaceRight
	case AxisY:
		return face == FaceFront || face == FaceBack
	case AxisZ:
		return face == FaceTop || face == FaceBottom
	default:
		return false
	}
}

// validateMaterial warns about end-grain to end-grain butt joints.
func validateMaterial(g *DesignGraph) []ValidationWarning {
	var warnings []ValidationWarning
	for _, n := range g.Joins() {
		jd, ok := n.Data.(JoinData)
		if !ok || jd.Kind != JoinButt {
			continue
		}
		bdA, bdB, ok := joinedBoards(g, jd)
		if ok && isEndGrainFace(bdA.Grain, jd.FaceA) && isEndGrainFace(bdB.Grain, jd.FaceB) {
			warnings = append(warnings, ValidationWarning{
				NodeID:  n.ID,
				Message: "end-grain to end-grain butt joint has poor glue adhesion",
			})
		}
	}
	return warnings
}

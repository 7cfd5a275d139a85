package scene

import "github.com/chazu/vectorize/pkg/graph"

// transformStack accumulates placements during graph traversal.
type transformStack struct {
	translations []graph.Vec3
	rotations    []graph.Vec3
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(translation, rotation graph.Vec3) {
	ts.translations = append(ts.translations, translation)
	ts.rotations = append(ts.rotations, rotation)
}

func (ts *transformStack) pop() {
	if len(ts.translations) > 0 {
		ts.translations = ts.translations[:len(ts.translations)-1]
		ts.rotations = ts.rotations[:len(ts.rotations)-1]
	}
}

// accumulatedTranslation returns the sum of all translations on the stack.
func (ts *transformStack) accumulatedTranslation() graph.Vec3 {
	var sum graph.Vec3
	for _, t := range ts.translations {
		sum = sum.Add(t)
	}
	return sum
}

// accumulatedRotation returns the sum of all rotations on the stack.
func (ts *transformStack) accumulatedRotation() graph.Vec3 {
	var sum graph.Vec3
	for _, r := range ts.rotations {
		sum = sum.Add(r)
	}
	return sum
}

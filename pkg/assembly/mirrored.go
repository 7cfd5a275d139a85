package assembly

import (
	"github.com/chazu/vectorize/pkg/entity"
	"github.com/chazu/vectorize/pkg/geom"
)

// MirroredFaces is a pair of faces of one assembly that mirror each
// other along an axis. The pair is transient and never persisted.
type MirroredFaces struct {
	A, B *entity.Face

	axis     geom.Axis
	hasAxis  bool
	distance *float64
	saved    [2]string
	painted  bool
}

// NewMirroredFaces pairs a and b with a known axis.
func NewMirroredFaces(a, b *entity.Face, axis geom.Axis) *MirroredFaces {
	return &MirroredFaces{A: a, B: b, axis: axis, hasAxis: true}
}

// Pair returns a pair whose axis is computed on first use.
func Pair(a, b *entity.Face) *MirroredFaces {
	return &MirroredFaces{A: a, B: b}
}

// Axis returns the mirror axis, computing it from the faces if needed.
func (m *MirroredFaces) Axis() (geom.Axis, bool) {
	if !m.hasAxis && m.A != nil {
		m.axis, m.hasAxis = m.A.Mirror(m.B)
	}
	return m.axis, m.hasAxis
}

// Distance returns the rounded perpendicular distance between the faces,
// the thickness of the material they bound.
func (m *MirroredFaces) Distance() float64 {
	if m.distance == nil {
		if m.A == nil || m.B == nil {
			return 0
		}
		d := m.A.DistanceTo(m.B)
		m.distance = &d
	}
	return *m.distance
}

// Faces returns both faces.
func (m *MirroredFaces) Faces() []*entity.Face {
	return []*entity.Face{m.A, m.B}
}

// Colorize paints both faces with material, remembering their previous
// materials for Revert.
func (m *MirroredFaces) Colorize(material string) {
	for i, f := range m.Faces() {
		m.saved[i] = f.Material()
		f.SetMaterial(material)
	}
	m.painted = true
}

// Revert restores the materials saved by Colorize.
func (m *MirroredFaces) Revert() {
	if !m.painted {
		return
	}
	for i, f := range m.Faces() {
		f.SetMaterial(m.saved[i])
	}
	m.painted = false
}

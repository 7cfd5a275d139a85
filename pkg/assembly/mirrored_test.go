package assembly

import (
	"testing"

	"github.com/chazu/vectorize/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairComputesAxisLazily(t *testing.T) {
	faces, _ := cuboidFaces(geom.Pt(0, 0, 0), geom.Pt(3, 2, 1))
	m := Pair(faces[4], faces[5])

	axis, ok := m.Axis()
	require.True(t, ok)
	assert.Equal(t, geom.AxisX, axis)
	assert.Equal(t, 3.0, m.Distance())

	_, ok = Pair(faces[0], faces[2]).Axis()
	assert.False(t, ok)
}

func TestColorizeRevert(t *testing.T) {
	faces, _ := cuboidFaces(geom.Pt(0, 0, 0), geom.Pt(1, 1, 1))
	faces[0].SetMaterial("oak")
	m := NewMirroredFaces(faces[0], faces[1], geom.AxisZ)

	m.Revert()
	assert.Equal(t, "oak", faces[0].Material(), "revert before colorize is a no-op")

	m.Colorize("Vectorized")
	assert.Equal(t, "Vectorized", faces[0].Material())
	assert.Equal(t, "Vectorized", faces[1].Material())

	m.Revert()
	assert.Equal(t, "oak", faces[0].Material())
	assert.Empty(t, faces[1].Material())
}

func TestDistanceWithoutFaces(t *testing.T) {
	assert.Zero(t, (&MirroredFaces{}).Distance())
}

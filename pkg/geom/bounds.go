package geom

import (
	"slices"

	"github.com/deadsy/sdfx/sdf"
)

// Bounds returns the axis-aligned bounding box of pts. An empty slice
// yields the zero box.
func Bounds(pts []Point) sdf.Box3 {
	if len(pts) == 0 {
		return sdf.Box3{}
	}
	box := sdf.Box3{Min: pts[0].Vec(), Max: pts[0].Vec()}
	for _, p := range pts[1:] {
		box.Min = box.Min.Min(p.Vec())
		box.Max = box.Max.Max(p.Vec())
	}
	return box
}

// Extents holds the width (x), height (y) and depth (z) of a bounding box.
type Extents struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// ExtentsOf returns the extents of box.
func ExtentsOf(box sdf.Box3) Extents {
	size := box.Size()
	return Extents{Width: size.X, Height: size.Y, Depth: size.Z}
}

// Rounded returns the extents rounded to Precision.
func (e Extents) Rounded() [3]float64 {
	return [3]float64{Round(e.Width), Round(e.Height), Round(e.Depth)}
}

// Dimensions returns the rounded, non-zero extents in ascending order.
// A planar face aligned with the axes has two; a tilted one may have
// three.
func (e Extents) Dimensions() []float64 {
	dims := make([]float64, 0, 3)
	for _, v := range e.Rounded() {
		if v != 0 {
			dims = append(dims, v)
		}
	}
	slices.Sort(dims)
	return dims
}

// Package kernel defines the abstract geometry kernel. A kernel builds
// polyhedral solids whose planar faces become entity faces in the scene.
// Backends live in sub-packages so they can be swapped without touching
// the rest of the system.
package kernel

// Polygon is a planar face loop. Vertices follow the right-hand rule:
// the normal they define points out of the solid.
type Polygon [][3]float64

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
	// Faces returns the boundary polygons. Adjacent faces share their
	// common edge vertices exactly.
	Faces() []Polygon
}

// Kernel builds and places solids.
type Kernel interface {
	// Primitives. Each sits on the XY plane with its minimum corner (or
	// outline origin) at the origin.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid
	Prism(outline [][2]float64, height float64) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
}

package graph

import "fmt"

// Vec3 is a 3D vector in millimetres.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool { return v == Vec3{} }

func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

// Vec2 is a point of a 2D outline.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Axis names a board axis, used for grain direction.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// FaceID names one of the six faces of a board.
type FaceID string

const (
	FaceTop    FaceID = "top"
	FaceBottom FaceID = "bottom"
	FaceLeft   FaceID = "left"
	FaceRight  FaceID = "right"
	FaceFront  FaceID = "front"
	FaceBack   FaceID = "back"
)

// ValidFaceIDs is the set of accepted FaceID values.
var ValidFaceIDs = map[FaceID]bool{
	FaceTop: true, FaceBottom: true,
	FaceLeft: true, FaceRight: true,
	FaceFront: true, FaceBack: true,
}

package geom

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Axis identifies one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the principal axes in comparison order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() v3.Vec {
	switch a {
	case AxisX:
		return v3.Vec{X: 1}
	case AxisY:
		return v3.Vec{Y: 1}
	default:
		return v3.Vec{Z: 1}
	}
}

// MarshalText encodes the axis as its lower-case letter.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

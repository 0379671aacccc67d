package glm

import "strconv"

// Axis names a component slot of a vector.
type Axis uint8

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
	AxisW Axis = 3
)

// Valid reports whether a addresses one of the four components of a Vec4.
func (a Axis) Valid() bool {
	return a <= AxisW
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

package glm

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate is returned when a vector without a usable direction
	// (zero or non-finite magnitude) is normalized or rescaled.
	ErrDegenerate = errors.New("degenerate vector")

	// ErrInexact is returned when an integer vector cannot be normalized or
	// rescaled without changing its direction, e.g. normalizing (1, 2).
	// Convert to a float vector first, see Normalize2.
	ErrInexact = errors.New("result not representable in element type")

	// ErrAxisRange is wrapped by AxisError.
	ErrAxisRange = errors.New("axis out of range")
)

// AxisError indicates a runtime swizzle with an axis outside of x, y, z, w.
type AxisError struct {
	Axis Axis
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("axis out of range: %d", uint8(e.Axis))
}

func (e *AxisError) Unwrap() error { return ErrAxisRange }

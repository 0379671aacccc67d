package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Rad is an angle in radians.
type Rad float32

func DegToRad[T Scalar](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T Scalar](rad Rad) (deg T) {
	return T(float64(rad) * (180 / math.Pi))
}

func fastSincos(r Rad) (float32, float32) {
	return f32.Sin(float32(r)), f32.Cos(float32(r))
}

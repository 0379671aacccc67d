// Package b2glm converts between glm vectors and box2d vectors.
//
// glm.Vec2f and b2.Vec2 share the same memory layout (two float32), so
// slices can be reinterpreted without copying.
package b2glm

import (
	"unsafe"

	b2 "github.com/oliverbestmann/box2d-go"
	"github.com/oliverbestmann/gmath/glm"
)

// Vec2 converts v into a box2d vector.
func Vec2[T glm.Scalar](v glm.Vec2[T]) b2.Vec2 {
	return b2.Vec2{X: float32(v[0]), Y: float32(v[1])}
}

// FromVec2 converts a box2d vector into a glm vector of element type T.
func FromVec2[T glm.Scalar](v b2.Vec2) glm.Vec2[T] {
	return glm.Vec2Of[T](v.X, v.Y)
}

// Vec2s reinterprets vecs as box2d vectors. The result aliases vecs.
func Vec2s(vecs []glm.Vec2f) []b2.Vec2 {
	if len(vecs) == 0 {
		return nil
	}

	ptr := (*b2.Vec2)(unsafe.Pointer(unsafe.SliceData(vecs)))
	return unsafe.Slice(ptr, len(vecs))
}

// FromVec2s reinterprets box2d vectors as glm vectors. The result aliases vecs.
func FromVec2s(vecs []b2.Vec2) []glm.Vec2f {
	if len(vecs) == 0 {
		return nil
	}

	ptr := (*glm.Vec2f)(unsafe.Pointer(unsafe.SliceData(vecs)))
	return unsafe.Slice(ptr, len(vecs))
}

package glm

// X, Y, Z and W select a component of a Vec4 at compile time. They are only
// used as type arguments, e.g.
//
//	xz := Swizzle2[X, Z](v)
type (
	X struct{}
	Y struct{}
	Z struct{}
	W struct{}
)

func (X) axis() Axis { return AxisX }
func (Y) axis() Axis { return AxisY }
func (Z) axis() Axis { return AxisZ }
func (W) axis() Axis { return AxisW }

// axisMarker admits exactly the four marker types, so a swizzle with an
// axis outside of x, y, z, w does not compile.
type axisMarker interface {
	X | Y | Z | W
	axis() Axis
}

func axisOf[A axisMarker]() Axis {
	var a A
	return a.axis()
}

// Swizzle1 returns the component selected by A.
func Swizzle1[A axisMarker, T Scalar](v Vec4[T]) T {
	return v[axisOf[A]()]
}

// Swizzle2 returns a vector of the components selected by A and B, in that
// order. Axes may repeat.
func Swizzle2[A, B axisMarker, T Scalar](v Vec4[T]) Vec2[T] {
	return Vec2[T]{
		v[axisOf[A]()],
		v[axisOf[B]()],
	}
}

func Swizzle3[A, B, C axisMarker, T Scalar](v Vec4[T]) Vec3[T] {
	return Vec3[T]{
		v[axisOf[A]()],
		v[axisOf[B]()],
		v[axisOf[C]()],
	}
}

func Swizzle4[A, B, C, D axisMarker, T Scalar](v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v[axisOf[A]()],
		v[axisOf[B]()],
		v[axisOf[C]()],
		v[axisOf[D]()],
	}
}

func checkAxes(axes ...Axis) error {
	for _, a := range axes {
		if !a.Valid() {
			return &AxisError{Axis: a}
		}
	}

	return nil
}

// At returns the component at axis a. It is the runtime counterpart of
// Swizzle1 and fails with an AxisError for an axis outside of x, y, z, w.
func (lhs Vec4[T]) At(a Axis) (T, error) {
	if err := checkAxes(a); err != nil {
		var zero T
		return zero, err
	}

	return lhs[a], nil
}

func (lhs Vec4[T]) Pick2(a, b Axis) (Vec2[T], error) {
	if err := checkAxes(a, b); err != nil {
		return Vec2[T]{}, err
	}

	return Vec2[T]{lhs[a], lhs[b]}, nil
}

func (lhs Vec4[T]) Pick3(a, b, c Axis) (Vec3[T], error) {
	if err := checkAxes(a, b, c); err != nil {
		return Vec3[T]{}, err
	}

	return Vec3[T]{lhs[a], lhs[b], lhs[c]}, nil
}

func (lhs Vec4[T]) Pick4(a, b, c, d Axis) (Vec4[T], error) {
	if err := checkAxes(a, b, c, d); err != nil {
		return Vec4[T]{}, err
	}

	return Vec4[T]{lhs[a], lhs[b], lhs[c], lhs[d]}, nil
}

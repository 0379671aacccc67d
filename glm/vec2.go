package glm

import (
	"iter"
	"log/slog"
	"math"
)

// Vec2 is a two component vector. The memory layout is exactly [2]T, so a
// Vec2 (or a slice of them) can be passed to APIs expecting flat scalar data.
//
// Component i is the vector's axis i: X and Y are accessors for slots 0
// and 1, not copies. Indexing out of range panics.
type Vec2[T Scalar] [2]T

// Vec2Of builds a vector from one value per component. Each value is
// converted to T independently, so the arguments may have different types.
func Vec2Of[T, Tx, Ty Scalar](x Tx, y Ty) Vec2[T] {
	return Vec2[T]{T(x), T(y)}
}

// Splat2 returns a vector with every component set to s.
func Splat2[T, S Scalar](s S) Vec2[T] {
	c := T(s)
	return Vec2[T]{c, c}
}

// Cast2 converts every component of v to T using Go's numeric conversion
// rules. No rounding or saturation is applied.
func Cast2[T, U Scalar](v Vec2[U]) Vec2[T] {
	return convert[Vec2[T], Vec2[U], T, U](v)
}

// Not2 returns the bitwise complement of every component.
func Not2[T Integer](v Vec2[T]) Vec2[T] {
	return mapUnary(v, not[T])
}

// Normalize2 returns v scaled to unit length as a float vector. Unlike
// Normalized it works for integer vectors whose unit vector has fractional
// components. A zero vector yields ErrDegenerate.
func Normalize2[F Float, T Scalar](v Vec2[T]) (Vec2[F], error) {
	return normalized[Vec2[F], F](Cast2[F](v))
}

func (lhs Vec2[T]) X() T { return lhs[0] }
func (lhs Vec2[T]) Y() T { return lhs[1] }

func (lhs *Vec2[T]) SetX(x T) { lhs[0] = x }
func (lhs *Vec2[T]) SetY(y T) { lhs[1] = y }

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

// Fill sets every component to s. Unlike Splat2 it only accepts T, values of
// other element types need a conversion first: v.Fill(float32(n)).
func (lhs *Vec2[T]) Fill(s T) *Vec2[T] {
	fill(lhs, s)
	return lhs
}

// All iterates the components in axis order.
func (lhs Vec2[T]) All() iter.Seq2[int, T] {
	return all[Vec2[T], T](lhs)
}

// Slice returns the components as a slice backed by the vector itself.
func (lhs *Vec2[T]) Slice() []T {
	return lhs[:]
}

// Bytes returns the raw memory of the vector. The slice aliases the vector.
func (lhs *Vec2[T]) Bytes() []byte {
	return asBytes(lhs)
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

// Op returns lhs[i] op rhs[i] for every component.
func (lhs Vec2[T]) Op(op func(T, T) T, rhs Vec2[T]) Vec2[T] {
	return zip(lhs, rhs, op)
}

// OpScalar returns lhs[i] op s for every component.
func (lhs Vec2[T]) OpScalar(op func(T, T) T, s T) Vec2[T] {
	return zipScalar(lhs, s, op)
}

// ScalarOp returns s op lhs[i] for every component. The scalar is the left
// operand, which matters for Sub, Div, Rem, Shl and Shr.
func (lhs Vec2[T]) ScalarOp(op func(T, T) T, s T) Vec2[T] {
	return scalarZip(s, lhs, op)
}

// OpAssign sets lhs[i] = lhs[i] op rhs[i] and returns lhs for chaining.
func (lhs *Vec2[T]) OpAssign(op func(T, T) T, rhs Vec2[T]) *Vec2[T] {
	*lhs = zip(*lhs, rhs, op)
	return lhs
}

// OpAssignScalar sets lhs[i] = lhs[i] op s and returns lhs for chaining.
func (lhs *Vec2[T]) OpAssignScalar(op func(T, T) T, s T) *Vec2[T] {
	*lhs = zipScalar(*lhs, s, op)
	return lhs
}

// OpAssignList is OpAssign against a literal list of exactly two values.
func (lhs *Vec2[T]) OpAssignList(op func(T, T) T, rhs [2]T) *Vec2[T] {
	return lhs.OpAssign(op, rhs)
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return zip(lhs, rhs, Add[T])
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return zip(lhs, rhs, Sub[T])
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return zip(lhs, rhs, Mul[T])
}

func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return zip(lhs, rhs, Div[T])
}

func (lhs Vec2[T]) AddScalar(s T) Vec2[T] {
	return zipScalar(lhs, s, Add[T])
}

func (lhs Vec2[T]) SubScalar(s T) Vec2[T] {
	return zipScalar(lhs, s, Sub[T])
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return zipScalar(lhs, s, Mul[T])
}

func (lhs Vec2[T]) DivScalar(s T) Vec2[T] {
	return zipScalar(lhs, s, Div[T])
}

// Pos returns a copy of the vector.
func (lhs Vec2[T]) Pos() Vec2[T] {
	return mapUnary(lhs, pos[T])
}

func (lhs Vec2[T]) Neg() Vec2[T] {
	return mapUnary(lhs, neg[T])
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return dot[Vec2[T], T](lhs, rhs)
}

func (lhs Vec2[T]) MagnitudeSqr() T {
	return lhs.Dot(lhs)
}

// Magnitude returns the euclidean length converted to T. For integer
// vectors the length is truncated, use Length for the exact value.
func (lhs Vec2[T]) Magnitude() T {
	return magnitude[Vec2[T], T](lhs)
}

// Length returns the euclidean length computed in float64.
func (lhs Vec2[T]) Length() float64 {
	return length[Vec2[T], T](lhs)
}

// SetMagnitude rescales the vector in place so that it keeps its direction
// and has the given length. The rescale is computed in float64. It returns
// ErrDegenerate if the vector has no direction, and ErrInexact if an integer
// result would change the direction. The vector is unchanged on error.
func (lhs *Vec2[T]) SetMagnitude(length T) error {
	return rescale(lhs, length)
}

// Normalized returns the vector scaled to unit length. The receiver is not
// modified. A zero vector yields ErrDegenerate. Integer vectors only
// normalize exactly along an axis, anything else yields ErrInexact; use
// Normalize2 to get a float result.
func (lhs Vec2[T]) Normalized() (Vec2[T], error) {
	return normalized[Vec2[T], T](lhs)
}

// Rotate rotates the vector counter-clockwise by angle. Float32 vectors use
// the fast float32 sine and cosine, every other element type is rotated in
// float64. The angle itself is a float32, so it carries float32 precision.
func (lhs Vec2[T]) Rotate(angle Rad) Vec2[T] {
	if _, ok := any(lhs[0]).(float32); ok {
		s, c := fastSincos(angle)
		x, y := float32(lhs[0]), float32(lhs[1])

		return Vec2[T]{
			T(x*c - y*s),
			T(x*s + y*c),
		}
	}

	s, c := math.Sincos(float64(angle))
	x, y := float64(lhs[0]), float64(lhs[1])

	return Vec2[T]{
		T(x*c - y*s),
		T(x*s + y*c),
	}
}

func (lhs Vec2[T]) String() string {
	return format[Vec2[T], T](lhs)
}

func (lhs Vec2[T]) LogValue() slog.Value {
	return logValue[Vec2[T], T](lhs)
}

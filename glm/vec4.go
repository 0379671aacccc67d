package glm

import (
	"iter"
	"log/slog"
)

// Vec4 is a four component vector laid out as [4]T. Components are usually
// read as x, y, z, w, see also the swizzle functions.
type Vec4[T Scalar] [4]T

func Vec4Of[T, Tx, Ty, Tz, Tw Scalar](x Tx, y Ty, z Tz, w Tw) Vec4[T] {
	return Vec4[T]{T(x), T(y), T(z), T(w)}
}

func Splat4[T, S Scalar](s S) Vec4[T] {
	c := T(s)
	return Vec4[T]{c, c, c, c}
}

func Cast4[T, U Scalar](v Vec4[U]) Vec4[T] {
	return convert[Vec4[T], Vec4[U], T, U](v)
}

func Not4[T Integer](v Vec4[T]) Vec4[T] {
	return mapUnary(v, not[T])
}

// Normalize4 returns v scaled to unit length as a float vector. Unlike
// Normalized it works for integer vectors whose unit vector has fractional
// components. A zero vector yields ErrDegenerate.
func Normalize4[F Float, T Scalar](v Vec4[T]) (Vec4[F], error) {
	return normalized[Vec4[F], F](Cast4[F](v))
}

func (lhs Vec4[T]) X() T { return lhs[0] }
func (lhs Vec4[T]) Y() T { return lhs[1] }
func (lhs Vec4[T]) Z() T { return lhs[2] }
func (lhs Vec4[T]) W() T { return lhs[3] }

func (lhs *Vec4[T]) SetX(x T) { lhs[0] = x }
func (lhs *Vec4[T]) SetY(y T) { lhs[1] = y }
func (lhs *Vec4[T]) SetZ(z T) { lhs[2] = z }
func (lhs *Vec4[T]) SetW(w T) { lhs[3] = w }

func (lhs Vec4[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}

// Fill sets every component to s, see Vec2.Fill.
func (lhs *Vec4[T]) Fill(s T) *Vec4[T] {
	fill(lhs, s)
	return lhs
}

func (lhs Vec4[T]) All() iter.Seq2[int, T] {
	return all[Vec4[T], T](lhs)
}

func (lhs *Vec4[T]) Slice() []T {
	return lhs[:]
}

func (lhs *Vec4[T]) Bytes() []byte {
	return asBytes(lhs)
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

func (lhs Vec4[T]) Op(op func(T, T) T, rhs Vec4[T]) Vec4[T] {
	return zip(lhs, rhs, op)
}

func (lhs Vec4[T]) OpScalar(op func(T, T) T, s T) Vec4[T] {
	return zipScalar(lhs, s, op)
}

func (lhs Vec4[T]) ScalarOp(op func(T, T) T, s T) Vec4[T] {
	return scalarZip(s, lhs, op)
}

func (lhs *Vec4[T]) OpAssign(op func(T, T) T, rhs Vec4[T]) *Vec4[T] {
	*lhs = zip(*lhs, rhs, op)
	return lhs
}

func (lhs *Vec4[T]) OpAssignScalar(op func(T, T) T, s T) *Vec4[T] {
	*lhs = zipScalar(*lhs, s, op)
	return lhs
}

func (lhs *Vec4[T]) OpAssignList(op func(T, T) T, rhs [4]T) *Vec4[T] {
	return lhs.OpAssign(op, rhs)
}

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return zip(lhs, rhs, Add[T])
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return zip(lhs, rhs, Sub[T])
}

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return zip(lhs, rhs, Mul[T])
}

func (lhs Vec4[T]) Div(rhs Vec4[T]) Vec4[T] {
	return zip(lhs, rhs, Div[T])
}

func (lhs Vec4[T]) AddScalar(s T) Vec4[T] {
	return zipScalar(lhs, s, Add[T])
}

func (lhs Vec4[T]) SubScalar(s T) Vec4[T] {
	return zipScalar(lhs, s, Sub[T])
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return zipScalar(lhs, s, Mul[T])
}

func (lhs Vec4[T]) DivScalar(s T) Vec4[T] {
	return zipScalar(lhs, s, Div[T])
}

func (lhs Vec4[T]) Pos() Vec4[T] {
	return mapUnary(lhs, pos[T])
}

func (lhs Vec4[T]) Neg() Vec4[T] {
	return mapUnary(lhs, neg[T])
}

func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	return dot[Vec4[T], T](lhs, rhs)
}

func (lhs Vec4[T]) MagnitudeSqr() T {
	return lhs.Dot(lhs)
}

// Magnitude returns the euclidean length converted to T. For integer
// vectors the length is truncated, use Length for the exact value.
func (lhs Vec4[T]) Magnitude() T {
	return magnitude[Vec4[T], T](lhs)
}

// Length returns the euclidean length computed in float64.
func (lhs Vec4[T]) Length() float64 {
	return length[Vec4[T], T](lhs)
}

func (lhs *Vec4[T]) SetMagnitude(length T) error {
	return rescale(lhs, length)
}

// Normalized returns the vector scaled to unit length, see Vec2.Normalized.
func (lhs Vec4[T]) Normalized() (Vec4[T], error) {
	return normalized[Vec4[T], T](lhs)
}

func (lhs Vec4[T]) String() string {
	return format[Vec4[T], T](lhs)
}

func (lhs Vec4[T]) LogValue() slog.Value {
	return logValue[Vec4[T], T](lhs)
}

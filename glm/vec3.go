package glm

import (
	"iter"
	"log/slog"
)

// Vec3 is a three component vector laid out as [3]T.
type Vec3[T Scalar] [3]T

func Vec3Of[T, Tx, Ty, Tz Scalar](x Tx, y Ty, z Tz) Vec3[T] {
	return Vec3[T]{T(x), T(y), T(z)}
}

func Splat3[T, S Scalar](s S) Vec3[T] {
	c := T(s)
	return Vec3[T]{c, c, c}
}

func Cast3[T, U Scalar](v Vec3[U]) Vec3[T] {
	return convert[Vec3[T], Vec3[U], T, U](v)
}

func Not3[T Integer](v Vec3[T]) Vec3[T] {
	return mapUnary(v, not[T])
}

// Normalize3 returns v scaled to unit length as a float vector. Unlike
// Normalized it works for integer vectors whose unit vector has fractional
// components. A zero vector yields ErrDegenerate.
func Normalize3[F Float, T Scalar](v Vec3[T]) (Vec3[F], error) {
	return normalized[Vec3[F], F](Cast3[F](v))
}

func (lhs Vec3[T]) X() T { return lhs[0] }
func (lhs Vec3[T]) Y() T { return lhs[1] }
func (lhs Vec3[T]) Z() T { return lhs[2] }

func (lhs *Vec3[T]) SetX(x T) { lhs[0] = x }
func (lhs *Vec3[T]) SetY(y T) { lhs[1] = y }
func (lhs *Vec3[T]) SetZ(z T) { lhs[2] = z }

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

// Fill sets every component to s, see Vec2.Fill.
func (lhs *Vec3[T]) Fill(s T) *Vec3[T] {
	fill(lhs, s)
	return lhs
}

func (lhs Vec3[T]) All() iter.Seq2[int, T] {
	return all[Vec3[T], T](lhs)
}

func (lhs *Vec3[T]) Slice() []T {
	return lhs[:]
}

func (lhs *Vec3[T]) Bytes() []byte {
	return asBytes(lhs)
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{lhs[0], lhs[1], lhs[2], w}
}

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}

func (lhs Vec3[T]) Op(op func(T, T) T, rhs Vec3[T]) Vec3[T] {
	return zip(lhs, rhs, op)
}

func (lhs Vec3[T]) OpScalar(op func(T, T) T, s T) Vec3[T] {
	return zipScalar(lhs, s, op)
}

// ScalarOp returns s op lhs[i] for every component.
func (lhs Vec3[T]) ScalarOp(op func(T, T) T, s T) Vec3[T] {
	return scalarZip(s, lhs, op)
}

func (lhs *Vec3[T]) OpAssign(op func(T, T) T, rhs Vec3[T]) *Vec3[T] {
	*lhs = zip(*lhs, rhs, op)
	return lhs
}

func (lhs *Vec3[T]) OpAssignScalar(op func(T, T) T, s T) *Vec3[T] {
	*lhs = zipScalar(*lhs, s, op)
	return lhs
}

func (lhs *Vec3[T]) OpAssignList(op func(T, T) T, rhs [3]T) *Vec3[T] {
	return lhs.OpAssign(op, rhs)
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return zip(lhs, rhs, Add[T])
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return zip(lhs, rhs, Sub[T])
}

func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return zip(lhs, rhs, Mul[T])
}

func (lhs Vec3[T]) Div(rhs Vec3[T]) Vec3[T] {
	return zip(lhs, rhs, Div[T])
}

func (lhs Vec3[T]) AddScalar(s T) Vec3[T] {
	return zipScalar(lhs, s, Add[T])
}

func (lhs Vec3[T]) SubScalar(s T) Vec3[T] {
	return zipScalar(lhs, s, Sub[T])
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return zipScalar(lhs, s, Mul[T])
}

func (lhs Vec3[T]) DivScalar(s T) Vec3[T] {
	return zipScalar(lhs, s, Div[T])
}

func (lhs Vec3[T]) Pos() Vec3[T] {
	return mapUnary(lhs, pos[T])
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return mapUnary(lhs, neg[T])
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return dot[Vec3[T], T](lhs, rhs)
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - rhs[1]*lhs[2],
		lhs[2]*rhs[0] - rhs[2]*lhs[0],
		lhs[0]*rhs[1] - rhs[0]*lhs[1],
	}
}

func (lhs Vec3[T]) MagnitudeSqr() T {
	return lhs.Dot(lhs)
}

// Magnitude returns the euclidean length converted to T. For integer
// vectors the length is truncated, use Length for the exact value.
func (lhs Vec3[T]) Magnitude() T {
	return magnitude[Vec3[T], T](lhs)
}

// Length returns the euclidean length computed in float64.
func (lhs Vec3[T]) Length() float64 {
	return length[Vec3[T], T](lhs)
}

// SetMagnitude rescales the vector in place to the given length, see
// Vec2.SetMagnitude.
func (lhs *Vec3[T]) SetMagnitude(length T) error {
	return rescale(lhs, length)
}

func (lhs Vec3[T]) Normalized() (Vec3[T], error) {
	return normalized[Vec3[T], T](lhs)
}

func (lhs Vec3[T]) String() string {
	return format[Vec3[T], T](lhs)
}

func (lhs Vec3[T]) LogValue() slog.Value {
	return logValue[Vec3[T], T](lhs)
}

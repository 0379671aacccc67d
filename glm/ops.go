package glm

import "math"

// The functions below are the scalar operators accepted by the generic
// operator forms of every vector type (Op, OpScalar, ScalarOp, OpAssign,
// OpAssignScalar, OpAssignList). They are applied once per component.
//
// Integer division and remainder by zero panic, as they do for plain Go
// integers. Float division by zero yields ±Inf or NaN.

func Add[T Scalar](a, b T) T { return a + b }

func Sub[T Scalar](a, b T) T { return a - b }

func Mul[T Scalar](a, b T) T { return a * b }

func Div[T Scalar](a, b T) T { return a / b }

// Rem is the truncated remainder a % b.
func Rem[T Integer](a, b T) T { return a % b }

// Mod is the floating point remainder of a/b with the sign of a.
func Mod[T Float](a, b T) T {
	return T(math.Mod(float64(a), float64(b)))
}

func And[T Integer](a, b T) T { return a & b }

func Or[T Integer](a, b T) T { return a | b }

func Xor[T Integer](a, b T) T { return a ^ b }

// Shl shifts a left by b bits. A negative shift count panics.
func Shl[T Integer](a, b T) T { return a << b }

// Shr shifts a right by b bits. A negative shift count panics.
func Shr[T Integer](a, b T) T { return a >> b }

func pos[T Scalar](a T) T { return +a }

func neg[T Scalar](a T) T { return -a }

func not[T Integer](a T) T { return ^a }

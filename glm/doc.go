// Package glm provides generic two, three and four component vectors over
// any integer or floating point element type.
//
// Vectors are plain arrays ([2]T, [3]T, [4]T) with value semantics. Named
// accessors (X, Y, Z, W) read and write fixed slots of that array, so named
// and indexed access always agree. Slice and Bytes expose the backing array
// for APIs that expect flat scalar data.
//
// Arithmetic is available through one generic scheme shared by all arities.
// Every scalar operator (Add, Sub, Mul, Div, Rem, And, Or, Xor, Shl, Shr)
// can be applied in six forms:
//
//	v.Op(Sub, w)              // v - w
//	v.OpScalar(Sub, s)        // v - s
//	v.ScalarOp(Sub, s)        // s - v
//	v.OpAssign(Sub, w)        // v -= w
//	v.OpAssignScalar(Sub, s)  // v -= s
//	v.OpAssignList(Sub, [3]float32{1, 2, 3})
//
// The assigning forms return the receiver, so they can be chained. Integer
// only operators do not compile for float vectors.
//
// Both operands of an operator share one element type, as Go requires for
// plain scalars. Vectors of different element types are combined by
// converting one side first:
//
//	f := Vec2d{0.5, 0.25}
//	i := Vec2i{1, 2}
//	sum := f.Add(Cast2[float64](i))
//
// Lengths are computed in float64. Magnitude converts the result back to
// the element type, Length returns it unchanged. Integer vectors that cannot
// be normalized exactly report ErrInexact; Normalize2, Normalize3 and
// Normalize4 return a float vector instead.
//
// Indexing a vector out of range panics. Vectors are not safe for concurrent
// mutation; distinct values need no synchronization.
package glm

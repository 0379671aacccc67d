package glm

import "golang.org/x/exp/constraints"

// Float is the set of floating point element types.
type Float interface {
	constraints.Float
}

// Integer is the set of integer element types. Bitwise operators and the
// remainder operator are only available for vectors over these types.
type Integer interface {
	constraints.Integer
}

// Scalar is the set of element types a vector can hold.
type Scalar interface {
	Integer | Float
}

package glm

import (
	"iter"
	"math"
	"unsafe"
)

// storage is the flat backing buffer shared by all vector arities. Every
// componentwise algorithm is written once against it and instantiated per
// arity by the vector types.
type storage[T Scalar] interface {
	~[2]T | ~[3]T | ~[4]T
}

func fill[V storage[T], T Scalar](v *V, s T) {
	for i := 0; i < len(*v); i++ {
		(*v)[i] = s
	}
}

func mapUnary[V storage[T], T Scalar](v V, fn func(T) T) V {
	for i := 0; i < len(v); i++ {
		v[i] = fn(v[i])
	}

	return v
}

// zip combines lhs and rhs componentwise: lhs[i] op rhs[i].
func zip[V storage[T], T Scalar](lhs, rhs V, op func(T, T) T) V {
	for i := 0; i < len(lhs); i++ {
		lhs[i] = op(lhs[i], rhs[i])
	}

	return lhs
}

// zipScalar combines every component with s: v[i] op s.
func zipScalar[V storage[T], T Scalar](v V, s T, op func(T, T) T) V {
	for i := 0; i < len(v); i++ {
		v[i] = op(v[i], s)
	}

	return v
}

// scalarZip combines s with every component: s op v[i].
func scalarZip[V storage[T], T Scalar](s T, v V, op func(T, T) T) V {
	for i := 0; i < len(v); i++ {
		v[i] = op(s, v[i])
	}

	return v
}

func convert[D storage[T], S storage[U], T, U Scalar](src S) D {
	var dst D
	for i := 0; i < len(dst); i++ {
		dst[i] = T(src[i])
	}

	return dst
}

func dot[V storage[T], T Scalar](lhs, rhs V) T {
	var sum T
	for i := 0; i < len(lhs); i++ {
		sum += lhs[i] * rhs[i]
	}

	return sum
}

func all[V storage[T], T Scalar](v V) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v); i++ {
			if !yield(i, v[i]) {
				return
			}
		}
	}
}

// asBytes returns the memory of value as a byte slice. The slice aliases
// value, writes through it are visible in value.
func asBytes[V any](value *V) []byte {
	var zero V

	n := unsafe.Sizeof(zero)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}

// length is the euclidean length of v. Squares are summed in float64, so
// integer vectors neither overflow nor lose the fractional part.
func length[V storage[T], T Scalar](v V) float64 {
	var sum float64
	for i := 0; i < len(v); i++ {
		c := float64(v[i])
		sum += c * c
	}

	return math.Sqrt(sum)
}

func magnitude[V storage[T], T Scalar](v V) T {
	return T(length[V, T](v))
}

func degenerate(m float64) bool {
	return m == 0 || math.IsNaN(m) || math.IsInf(m, 0)
}

func isFloat[T Scalar]() bool {
	half := 0.5
	return T(half) != 0
}

// scaledTo returns v scaled to the given length. The division and the
// multiplication run in float64. For integer element types every component
// is rounded and must match the exact result, otherwise the direction would
// change and ErrInexact is returned.
func scaledTo[V storage[T], T Scalar](v V, target float64) (V, error) {
	m := length[V, T](v)
	if degenerate(m) {
		return v, ErrDegenerate
	}

	integer := !isFloat[T]()

	result := v
	for i := 0; i < len(v); i++ {
		f := float64(v[i]) / m * target
		if !integer {
			result[i] = T(f)
			continue
		}

		r := math.Round(f)
		if math.Abs(r-f) > 1e-9*max(1, math.Abs(f)) {
			return v, ErrInexact
		}

		result[i] = T(r)
	}

	return result, nil
}

func normalized[V storage[T], T Scalar](v V) (V, error) {
	return scaledTo[V, T](v, 1)
}

// rescale scales v to target in place. v is left untouched on error.
func rescale[V storage[T], T Scalar](v *V, target T) error {
	scaled, err := scaledTo[V, T](*v, float64(target))
	if err != nil {
		return err
	}

	*v = scaled
	return nil
}

package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarOperators(t *testing.T) {
	assert.Equal(t, 7, Add(3, 4))
	assert.Equal(t, -1, Sub(3, 4))
	assert.Equal(t, 12, Mul(3, 4))
	assert.Equal(t, 2, Div(9, 4))
	assert.Equal(t, 1, Rem(9, 4))
	assert.Equal(t, 0b0100, And(0b0110, 0b1100))
	assert.Equal(t, 0b1110, Or(0b0110, 0b1100))
	assert.Equal(t, 0b1010, Xor(0b0110, 0b1100))
	assert.Equal(t, 16, Shl(1, 4))
	assert.Equal(t, 2, Shr(16, 3))
	assert.InDelta(t, 1.5, Mod(7.5, 3.0), 1e-12)
	assert.InDelta(t, -1.5, Mod(-7.5, 3.0), 1e-12)
}

func TestOperatorForms(t *testing.T) {
	v := Vec3i{10, 20, 30}
	w := Vec3i{1, 2, 3}

	tests := []struct {
		name     string
		got      Vec3i
		expected Vec3i
	}{
		{"VectorVector", v.Op(Sub, w), Vec3i{9, 18, 27}},
		{"VectorScalar", v.OpScalar(Sub, 1), Vec3i{9, 19, 29}},
		{"ScalarVector", v.ScalarOp(Sub, 100), Vec3i{90, 80, 70}},
		{"Div", v.Op(Div, w), Vec3i{10, 10, 10}},
		{"ScalarDiv", w.ScalarOp(Div, 6), Vec3i{6, 3, 2}},
		{"Rem", v.OpScalar(Rem, 7), Vec3i{3, 6, 2}},
		{"ScalarRem", w.ScalarOp(Rem, 7), Vec3i{0, 1, 1}},
		{"And", v.Op(And, w), Vec3i{10 & 1, 20 & 2, 30 & 3}},
		{"Or", v.OpScalar(Or, 1), Vec3i{11, 21, 31}},
		{"Xor", v.Op(Xor, v), Vec3i{}},
		{"Shl", w.OpScalar(Shl, 2), Vec3i{4, 8, 12}},
		{"ScalarShl", w.ScalarOp(Shl, 1), Vec3i{2, 4, 8}},
		{"Shr", v.OpScalar(Shr, 1), Vec3i{5, 10, 15}},
		{"ScalarShr", w.ScalarOp(Shr, 64), Vec3i{32, 16, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}

	assert.Equal(t, Vec3i{10, 20, 30}, v, "value forms must not modify the receiver")
}

func TestAssignForms(t *testing.T) {
	v := Vec4i{1, 2, 3, 4}

	r := v.OpAssignScalar(Add, 1)
	assert.Same(t, &v, r)
	assert.Equal(t, Vec4i{2, 3, 4, 5}, v)

	v.OpAssign(Mul, Vec4i{2, 2, 2, 2})
	assert.Equal(t, Vec4i{4, 6, 8, 10}, v)

	v.OpAssignList(Sub, [4]int{4, 3, 2, 1})
	assert.Equal(t, Vec4i{0, 3, 6, 9}, v)

	v.OpAssignList(Xor, [4]int{0, 3, 6, 9})
	assert.Equal(t, Vec4i{}, v)
}

func TestAssignChaining(t *testing.T) {
	v := Vec2f{1, 2}
	expected := v.AddScalar(1).MulScalar(2)

	v.OpAssignScalar(Add, 1).OpAssignScalar(Mul, 2)

	assert.Equal(t, expected, v)
	assert.Equal(t, Vec2f{4, 6}, v)
}

func TestScalarLeftKeepsOperandOrder(t *testing.T) {
	assert.Equal(t, Vec2i{1, 1}, Vec2i{1, 1}.ScalarOp(Sub, 2))
	assert.Equal(t, Vec2f{0.5, 0.25}, Vec2f{2, 4}.ScalarOp(Div, 1))
	assert.Equal(t, Vec2f{-1, -1}, Vec2f{2, 2}.ScalarOp(Sub, 1))
}

func TestIdentities(t *testing.T) {
	t.Run("Vec2", func(t *testing.T) {
		v := Vec2f{1.5, -2.25}
		assert.Equal(t, v, v.AddScalar(0))
		assert.Equal(t, Vec2f{}, v.Sub(v))
		assert.Equal(t, v, v.Neg().Neg())
		assert.Equal(t, v, v.Pos())
	})

	t.Run("Vec3", func(t *testing.T) {
		v := Vec3i{1, -2, 3}
		assert.Equal(t, v, v.AddScalar(0))
		assert.Equal(t, Vec3i{}, v.Sub(v))
		assert.Equal(t, v, v.Neg().Neg())
		assert.Equal(t, v, v.MulScalar(3).DivScalar(3))
	})

	t.Run("Vec4", func(t *testing.T) {
		v := Vec4d{0.1, 0.2, -0.3, 1e6}
		assert.Equal(t, v, v.AddScalar(0))
		assert.Equal(t, Vec4d{}, v.Sub(v))
		assert.Equal(t, v, v.Neg().Neg())

		scaled := v.MulScalar(7).DivScalar(7)
		for i := range v {
			assert.InEpsilon(t, v[i], scaled[i], 1e-12)
		}
	})
}

func TestNot(t *testing.T) {
	assert.Equal(t, Vec2i{-1, -2}, Not2(Vec2i{0, 1}))
	assert.Equal(t, Vec3uh{0xffff, 0xfffe, 0}, Not3(Vec3uh{0, 1, 0xffff}))
	assert.Equal(t, Vec4u{^uint32(0), 0, 1, 2}, Not4(Vec4u{0, ^uint32(0), ^uint32(1), ^uint32(2)}))
}

func TestNegUnsignedWraps(t *testing.T) {
	assert.Equal(t, Vec2u{math.MaxUint32, 0}, Vec2u{1, 0}.Neg())
}

func TestDivisionByZero(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		v := Vec2f{1, -1}.DivScalar(0)
		assert.True(t, math.IsInf(float64(v[0]), 1))
		assert.True(t, math.IsInf(float64(v[1]), -1))

		n := Vec2f{}.DivScalar(0)
		assert.True(t, math.IsNaN(float64(n[0])))
	})

	t.Run("Integer", func(t *testing.T) {
		assert.Panics(t, func() { Vec2i{1, 2}.DivScalar(0) })
		assert.Panics(t, func() { Vec2i{1, 2}.OpScalar(Rem, 0) })
	})
}

func TestFloatMod(t *testing.T) {
	v := Vec3d{5.5, -5.5, 6}.OpScalar(Mod, 2)
	assert.InDeltaSlice(t, []float64{1.5, -1.5, 0}, v[:], 1e-12)
}

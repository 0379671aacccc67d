package glm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedFieldsAliasSlots(t *testing.T) {
	v := Vec4f{1, 2, 3, 4}

	v.SetX(10)
	v.SetW(40)
	assert.Equal(t, float32(10), v[0])
	assert.Equal(t, float32(40), v[3])

	v[1] = 20
	v[2] = 30
	assert.Equal(t, float32(20), v.Y())
	assert.Equal(t, float32(30), v.Z())

	v.OpAssignScalar(Mul, 2).OpAssign(Sub, Vec4f{1, 1, 1, 1})

	x, y, z, w := v.XYZW()
	assert.Equal(t, []float32{x, y, z, w}, v.Slice())
	assert.Equal(t, Vec4f{19, 39, 59, 79}, v)
}

func TestNamedFieldsSurviveCopy(t *testing.T) {
	a := Vec3i{1, 2, 3}
	b := a

	b.SetY(7)

	assert.Equal(t, 2, a.Y())
	assert.Equal(t, 7, b.Y())
	assert.Equal(t, 7, b[1])
}

func TestSliceAliasesVector(t *testing.T) {
	v := Vec3f{1, 2, 3}

	s := v.Slice()
	require.Len(t, s, 3)

	s[2] = 9
	assert.Equal(t, float32(9), v.Z())

	v.SetX(5)
	assert.Equal(t, float32(5), s[0])
}

func TestBytesAliasesVector(t *testing.T) {
	v := Vec2u{1, 2}

	b := v.Bytes()
	require.Len(t, b, 8)

	binary.NativeEndian.PutUint32(b[4:], 99)
	assert.Equal(t, uint32(99), v.Y())
	assert.Equal(t, uint32(1), binary.NativeEndian.Uint32(b[:4]))
}

func TestAllIteratesInAxisOrder(t *testing.T) {
	v := Vec4i{10, 20, 30, 40}

	var indices []int
	var values []int
	for i, c := range v.All() {
		indices = append(indices, i)
		values = append(values, c)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, indices)
	assert.Equal(t, []int{10, 20, 30, 40}, values)

	count := 0
	for range v.All() {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestFill(t *testing.T) {
	v := Vec3d{1, 2, 3}
	v.Fill(4).OpAssignScalar(Add, 1)

	assert.Equal(t, Vec3d{5, 5, 5}, v)

	n := 3
	w := Vec2f{1, 2}
	w.Fill(float32(n))
	assert.Equal(t, Splat2[float32](n), w)
}

func TestIndexOutOfRangePanics(t *testing.T) {
	v := Vec2f{1, 2}
	i := 2

	assert.Panics(t, func() { _ = v[i] })
}

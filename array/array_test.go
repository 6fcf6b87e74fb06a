package array

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestShape(t *testing.T) {
	sh := Shape{3, 4}
	assert.Equal(t, 2, sh.Rank())
	assert.Equal(t, 12, sh.Size())
	assert.Equal(t, Shape{3}, sh.Outer())
	assert.Equal(t, 4, sh.Inner())
	assert.Equal(t, 1, Shape{}.Size())
	assert.Equal(t, 0, Shape{2, 0, 5}.Size())
	assert.True(t, Shape{}.Equal(Shape(nil)))
	assert.False(t, sh.Equal(Shape{4, 3}))
	assert.Error(t, Shape{2, -1}.Validate())
	assert.Panics(t, func() { Shape{}.Inner() })
	assert.Equal(t, "[3 4]", sh.String())
}

func TestValidateOverflow(t *testing.T) {
	huge := math.MaxInt/2 + 1
	assert.Error(t, Shape{huge, 2}.Validate())
	assert.Error(t, Shape{huge, 0, 2}.Validate())
	assert.NoError(t, Shape{huge, 1}.Validate())
	assert.NoError(t, Shape{huge, 0}.Validate())

	_, err := FromSlice(Shape{huge, 4, 0}, []int{})
	assert.Error(t, err)
	_, err = New[int](Shape{huge, 3})
	assert.Error(t, err)
}

func TestOuterDoesNotAlias(t *testing.T) {
	sh := Shape{2, 3}
	outer := sh.Outer()
	outer = append(outer, 9)
	assert.Equal(t, Shape{2, 3}, sh)
	assert.Equal(t, Shape{2, 9}, outer)
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice(Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 4, a.At(a.Index(1, 1)))
	assert.Equal(t, 5, a.Read()(5))
	assert.Panics(t, func() { a.Index(2, 0) })
	assert.Panics(t, func() { a.Index(1) })

	_, err = FromSlice(Shape{2, 2}, []int{1, 2, 3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestNewAndScalar(t *testing.T) {
	a, err := New[string](Shape{2, 0})
	require.NoError(t, err)
	assert.Empty(t, a.Data())
	_, err = New[string](Shape{-1})
	assert.Error(t, err)

	s := Scalar(7)
	assert.Equal(t, 0, s.Shape().Rank())
	assert.Equal(t, 7, s.At(0))
}

func TestDenseInterop(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	a := FromDense(m)
	assert.Equal(t, Shape{3, 4}, a.Shape())
	assert.Equal(t, 7.0, a.At(a.Index(1, 2)))

	sub := m.Slice(1, 3, 1, 3).(*mat.Dense)
	shape, read := DenseReader(sub)
	assert.Equal(t, Shape{2, 2}, shape)
	var got []float64
	for i := 0; i < shape.Size(); i++ {
		got = append(got, read(i))
	}
	assert.Equal(t, []float64{6, 7, 10, 11}, got)

	v, err := ToVecDense(Vector(1.0, 2.0))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.AtVec(1))
	_, err = ToVecDense(a)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

/*
Package array provides shapes and dense row-major arrays for the fold
package.

Arrays are stored in row-major order, so the innermost dimension is
contiguous: element (i, j) of an array of shape (m, n) lives at linear
index i*n + j. Folds reduce along that innermost dimension, which turns
each output element into a contiguous block of the linear index space.
*/
package array

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrShapeMismatch is returned when data does not match a shape.
var ErrShapeMismatch = errors.New("shape mismatch")

// A Shape lists the extent of each dimension, outermost first. The
// empty Shape is the shape of a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (sh Shape) Rank() int {
	return len(sh)
}

// Size returns the number of elements, which is the product of all
// extents. The size of a scalar shape is 1. Size is only exact for shapes
// that pass Validate.
func (sh Shape) Size() int {
	size := 1
	for _, n := range sh {
		size *= n
	}
	return size
}

// Outer returns the shape without its innermost dimension.
//
// Outer panics on a scalar shape.
func (sh Shape) Outer() Shape {
	if len(sh) == 0 {
		panic("array: scalar shape has no outer dimensions")
	}
	return append(Shape(nil), sh[:len(sh)-1]...)
}

// Inner returns the extent of the innermost dimension.
//
// Inner panics on a scalar shape.
func (sh Shape) Inner() int {
	if len(sh) == 0 {
		panic("array: scalar shape has no inner dimension")
	}
	return sh[len(sh)-1]
}

// Validate checks that no extent is negative, and that the product of
// the non-zero extents fits in an int. The latter keeps Size exact for
// the shape and for every shape derived from it by dropping dimensions.
func (sh Shape) Validate() error {
	product := 1
	for d, n := range sh {
		if n < 0 {
			return errors.Errorf("negative extent %v in dimension %v of shape %v", n, d, []int(sh))
		}
		if n == 0 {
			continue
		}
		if product > math.MaxInt/n {
			return errors.Errorf("size of shape %v overflows int", []int(sh))
		}
		product *= n
	}
	return nil
}

// Equal reports whether two shapes have the same rank and extents.
func (sh Shape) Equal(other Shape) bool {
	if len(sh) != len(other) {
		return false
	}
	for d := range sh {
		if sh[d] != other[d] {
			return false
		}
	}
	return true
}

func (sh Shape) String() string {
	return fmt.Sprint([]int(sh))
}

// An Array is a dense row-major array of elements of type E.
type Array[E any] struct {
	shape Shape
	data  []E
}

// New returns an array of the given shape with all elements set to the
// zero value of E.
func New[E any](shape Shape) (*Array[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[E]{append(Shape(nil), shape...), make([]E, shape.Size())}, nil
}

// FromSlice returns an array of the given shape that shares data.
// The length of data must equal the size of the shape.
func FromSlice[E any](shape Shape, data []E) (*Array[E], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%v elements for shape %v", len(data), shape)
	}
	return &Array[E]{append(Shape(nil), shape...), data}, nil
}

// Vector returns a rank-1 array that shares xs.
func Vector[E any](xs ...E) *Array[E] {
	return &Array[E]{Shape{len(xs)}, xs}
}

// Scalar returns a rank-0 array holding x.
func Scalar[E any](x E) *Array[E] {
	return &Array[E]{Shape{}, []E{x}}
}

// Shape returns the shape of a. The result must not be modified.
func (a *Array[E]) Shape() Shape {
	return a.shape
}

// Data returns the row-major backing slice of a.
func (a *Array[E]) Data() []E {
	return a.data
}

// At returns the element at linear index i.
func (a *Array[E]) At(i int) E {
	return a.data[i]
}

// Read returns an accessor for the elements of a by linear index.
func (a *Array[E]) Read() func(i int) E {
	data := a.data
	return func(i int) E { return data[i] }
}

// Index returns the linear index of the element at the given
// multidimensional index.
//
// Index panics if the number of indices does not match the rank, or
// if an index is out of bounds.
func (a *Array[E]) Index(ix ...int) int {
	if len(ix) != len(a.shape) {
		panic(fmt.Sprintf("array: %v indices for shape %v", len(ix), a.shape))
	}
	linear := 0
	for d, i := range ix {
		if (i < 0) || (i >= a.shape[d]) {
			panic(fmt.Sprintf("array: index %v out of bounds for shape %v", ix, a.shape))
		}
		linear = linear*a.shape[d] + i
	}
	return linear
}

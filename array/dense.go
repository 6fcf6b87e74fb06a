package array

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FromDense returns a rank-2 array of shape (rows, cols) holding a copy of
// m. Folding it reduces each row.
func FromDense(m *mat.Dense) *Array[float64] {
	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		copy(data[r*cols:(r+1)*cols], m.RawRowView(r))
	}
	return &Array[float64]{Shape{rows, cols}, data}
}

// DenseReader returns the shape of m and an accessor that reads m in
// row-major order without copying it, honoring the stride of the
// underlying storage.
func DenseReader(m *mat.Dense) (Shape, func(i int) float64) {
	raw := m.RawMatrix()
	cols, stride, data := raw.Cols, raw.Stride, raw.Data
	return Shape{raw.Rows, cols}, func(i int) float64 {
		return data[(i/cols)*stride+i%cols]
	}
}

// ToVecDense returns a copy of a rank-1 array as a gonum vector. A
// vector of length zero yields a nil *mat.VecDense, since gonum has no
// empty vectors.
func ToVecDense(a *Array[float64]) (*mat.VecDense, error) {
	if a.shape.Rank() != 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "vector from shape %v", a.shape)
	}
	if len(a.data) == 0 {
		return nil, nil
	}
	return mat.NewVecDense(len(a.data), append([]float64(nil), a.data...)), nil
}

/*
Package fold provides parallel folds over dense arrays.

A fold is described by an Op, which holds an associative combining
function and an optional seed. Elements are always combined in
increasing index order, so the combining function need not be
commutative.

Select decides which kernels a fold needs from the rank of its output
and the presence of a seed, and Generate binds these kernels to an Op
and an element accessor:

  - Folds that produce an array (output rank > 0) reduce the innermost
    dimension with the Segmented kernel, one output element per
    segment.
  - Folds that produce a scalar (output rank 0) use either the
    Sequential kernel, or Phase1 over static stripes followed by Phase2
    over the partial results of the stripes.
  - Seeded folds additionally get the Fill kernel, which covers inputs
    whose innermost dimension is empty.

Fold, Fold1, FoldAll, and Fold1All validate their input, pick the
kernels, and run them on a parallel or sequential gang. Unseeded folds
over empty input are rejected with ErrEmptyUnseeded before any kernel
runs.
*/
package fold

import (
	"github.com/pkg/errors"

	"github.com/exascience/parfold"
	"github.com/exascience/parfold/array"
	"github.com/exascience/parfold/internal"
	"github.com/exascience/parfold/parallel"
	"github.com/exascience/parfold/sequential"
)

// Options configure how the kernels of a fold are dispatched. The zero
// Options value is valid.
type Options struct {
	// Stripes is the number of stripes for whole-array folds, and the
	// number of batches of segments for innermost-dimension folds. If
	// Stripes is 0, a reasonable default is used that takes
	// runtime.GOMAXPROCS(0) into account. It is capped at the number of
	// elements or segments.
	Stripes int

	// Threshold, if not 0 and Stripes is 0, derives the stripe count
	// from the grain size parfold.ComputeGrainSize returns for it: each
	// stripe then holds about that many elements or segments.
	Threshold int

	// SequentialBelow makes whole-array folds over fewer elements use the
	// Sequential kernel instead of Phase1 and Phase2. If it is 0, every
	// non-empty whole-array fold runs in two phases.
	SequentialBelow int

	// Sequential runs every gang in stripe order on the calling goroutine.
	// This is useful for testing and debugging.
	Sequential bool

	// OnDispatch, if not nil, is called once per fold with a description
	// of the kernels that ran.
	OnDispatch func(Dispatch)
}

// Dispatch describes how one fold was executed.
type Dispatch struct {
	Plan Plan
	// Kinds lists the kernels that ran, in order.
	Kinds []Kind
	// Stripes is the number of stripes or batches the gang ran, or 0 if
	// no gang was needed.
	Stripes int
}

// stripes returns the stripe count requested for the range from low to
// high, before capping at its size. 0 selects the gang default.
func (opts *Options) stripes(low, high int) int {
	if (opts.Stripes != 0) || (opts.Threshold == 0) || (high == low) {
		return opts.Stripes
	}
	grain := parfold.ComputeGrainSize(low, high, opts.Threshold)
	return (high - low + grain - 1) / grain
}

func (opts *Options) rangeStripes(low, high int, f parfold.StripeFunc) int {
	n := opts.stripes(low, high)
	if opts.Sequential {
		return sequential.RangeStripes(low, high, n, f)
	}
	return parallel.RangeStripes(low, high, n, f)
}

func (opts *Options) report(d Dispatch) {
	if opts.OnDispatch != nil {
		opts.OnDispatch(d)
	}
}

func (opts *Options) validate() error {
	if opts.Stripes < 0 {
		return errors.Errorf("fold: invalid number of stripes %v", opts.Stripes)
	}
	return nil
}

func validate[E any](op Op[E], read parfold.Accessor[E], opts *Options) error {
	if op.Combine == nil {
		return errors.New("fold: nil combining function")
	}
	if read == nil {
		return errors.New("fold: nil accessor")
	}
	return opts.validate()
}

// FoldAll reduces all elements of src, in row-major order, to a single
// value. With a seed, the fold of an empty array is the seed.
//
// FoldAll returns ErrEmptyUnseeded if src is empty and op has no seed.
//
// If the combining function, the seed, or the accessor panic, FoldAll
// panics with the left-most recovered panic value after all workers
// have terminated.
func FoldAll[E any](op Op[E], src *array.Array[E], opts Options) (result E, err error) {
	if src == nil {
		err = errors.New("fold: nil array")
		return
	}
	return FoldAllRead(op, src.Read(), src.Shape().Size(), opts)
}

// Fold1All is FoldAll without a seed.
func Fold1All[E any](combine parfold.Combiner[E], src *array.Array[E], opts Options) (E, error) {
	return FoldAll(Op[E]{Combine: combine}, src, opts)
}

// FoldAllRead reduces the elements read(0) to read(size-1) to a single
// value, like FoldAll. This allows folding elements that are computed on
// the fly rather than stored.
func FoldAllRead[E any](op Op[E], read parfold.Accessor[E], size int, opts Options) (result E, err error) {
	if err = validate(op, read, &opts); err != nil {
		return
	}
	if size < 0 {
		err = errors.Errorf("fold: negative size %v", size)
		return
	}
	if (size == 0) && !op.Seeded() {
		err = errors.Wrap(ErrEmptyUnseeded, "fold all")
		return
	}
	plan, err := Select(0, op.Seeded())
	if err != nil {
		return
	}
	ks := Generate(plan, op, read, size)
	out := make([]E, 1)
	d := Dispatch{Plan: plan}

	if (size == 0) || (size < opts.SequentialBelow) {
		ks.Sequential(out, 0, size)
		d.Kinds = []Kind{Sequential}
	} else {
		partials := NewPartials[E](internal.ComputeNofStripes(0, size, opts.stripes(0, size)))
		d.Stripes = opts.rangeStripes(0, size, func(stripe, low, high int) {
			ks.Phase1(partials, stripe, low, high)
		})
		ks.Phase2(out, partials)
		d.Kinds = []Kind{Phase1, Phase2}
	}
	opts.report(d)
	return out[0], nil
}

// Fold reduces the innermost dimension of src. The result has the shape
// of src without its innermost dimension, and each of its elements is
// the fold of the corresponding row.
//
// Fold returns ErrRankMismatch if src is a scalar, and ErrEmptyUnseeded
// if the innermost dimension is empty while the result is not, and op has
// no seed. With a seed, an empty innermost dimension yields a result
// filled with the seed.
//
// If the combining function, the seed, or the accessor panic, Fold panics
// with the left-most recovered panic value after all workers have
// terminated.
func Fold[E any](op Op[E], src *array.Array[E], opts Options) (*array.Array[E], error) {
	if src == nil {
		return nil, errors.New("fold: nil array")
	}
	return FoldRead(op, src.Read(), src.Shape(), opts)
}

// Fold1 is Fold without a seed.
func Fold1[E any](combine parfold.Combiner[E], src *array.Array[E], opts Options) (*array.Array[E], error) {
	return Fold(Op[E]{Combine: combine}, src, opts)
}

// FoldRead reduces the innermost dimension of an array of the given shape
// whose elements are produced by read, like Fold.
func FoldRead[E any](op Op[E], read parfold.Accessor[E], shape array.Shape, opts Options) (*array.Array[E], error) {
	if err := validate(op, read, &opts); err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Rank() == 0 {
		return nil, errors.Wrap(ErrRankMismatch, "fold innermost dimension of a scalar")
	}
	outShape, inner := shape.Outer(), shape.Inner()
	plan, err := Select(outShape.Rank(), op.Seeded())
	if err != nil {
		return nil, err
	}
	if plan.Rank == 0 {
		// A rank-1 input folds to a scalar, through the whole-array kernels.
		x, err := FoldAllRead(op, read, inner, opts)
		if err != nil {
			return nil, err
		}
		return array.Scalar(x), nil
	}
	result, err := array.New[E](outShape)
	if err != nil {
		return nil, err
	}
	segments := outShape.Size()
	d := Dispatch{Plan: plan}
	if segments == 0 {
		opts.report(d)
		return result, nil
	}
	if (inner == 0) && !op.Seeded() {
		return nil, errors.Wrapf(ErrEmptyUnseeded, "fold innermost dimension of shape %v", shape)
	}
	ks := Generate(plan, op, read, inner)
	out := result.Data()
	if inner == 0 {
		d.Stripes = opts.rangeStripes(0, segments, func(_, low, high int) {
			ks.Fill(out, low, high)
		})
		d.Kinds = []Kind{Fill}
	} else {
		d.Stripes = opts.rangeStripes(0, segments, func(_, low, high int) {
			ks.Segmented(out, low, high)
		})
		d.Kinds = []Kind{Segmented}
	}
	opts.report(d)
	return result, nil
}

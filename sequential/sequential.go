// Package sequential provides the sequential reduction loops that all fold
// kernels are built from, and sequential implementations of the gang
// functions provided by the parallel package. The latter are useful for
// testing and debugging, since they run every stripe on the calling
// goroutine in stripe order.
package sequential

import (
	"fmt"

	"github.com/exascience/parfold"
	"github.com/exascience/parfold/internal"
)

// ReduceFromTo folds z with read(start), read(start+1), ..., read(end-1),
// in that order, as combine(...combine(combine(z, read(start)), read(start+1))...).
//
// Each index is read exactly once. For an empty range, ReduceFromTo returns
// z unchanged.
//
// ReduceFromTo panics if end < start.
func ReduceFromTo[E any](
	start, end int,
	combine parfold.Combiner[E],
	z E,
	read parfold.Accessor[E],
) E {
	if end < start {
		panic(fmt.Sprintf("invalid range: %v:%v", start, end))
	}
	acc := z
	for i := start; i < end; i++ {
		acc = combine(acc, read(i))
	}
	return acc
}

// Reduce1FromTo folds read(start), ..., read(end-1) without a seed. It is
// equivalent to ReduceFromTo(start+1, end, combine, read(start), read).
//
// Reduce1FromTo panics if the range is empty. Callers must make sure
// that unseeded folds are never dispatched over empty ranges.
func Reduce1FromTo[E any](
	start, end int,
	combine parfold.Combiner[E],
	read parfold.Accessor[E],
) E {
	if end <= start {
		panic(fmt.Sprintf("unseeded reduction over empty range: %v:%v", start, end))
	}
	return ReduceFromTo(start+1, end, combine, read(start), read)
}

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches sequentially, in increasing order, covering
// the half-open interval from low to high, including low but
// excluding high.
//
// The batches are determined the same way as in parallel.Range. An
// empty range invokes nothing.
//
// Range panics if high < low, or if n < 0.
func Range(low, high, n int, f parfold.RangeFunc) {
	stripes := internal.ComputeNofStripes(low, high, n)
	for i := 0; i < stripes; i++ {
		f(internal.StripeBounds(low, high, stripes, i))
	}
}

// RangeStripes receives a range, a stripe count n, and a stripe
// function f, and invokes f sequentially for each stripe, in stripe
// order, passing the stripe id along with its bounds. It returns the
// number of stripes, which is also the number of invocations of f.
//
// Every stripe is non-empty. An empty range yields no stripes.
//
// RangeStripes panics if high < low, or if n < 0.
func RangeStripes(low, high, n int, f parfold.StripeFunc) int {
	stripes := internal.ComputeNofStripes(low, high, n)
	for i := 0; i < stripes; i++ {
		from, to := internal.StripeBounds(low, high, stripes, i)
		f(i, from, to)
	}
	return stripes
}

package parfold

import (
	"fmt"
	"runtime"
)

type (
	// A Combiner combines an accumulator x with the next element y. It is
	// assumed to be associative. It is not assumed to be commutative: x
	// always stems from lower indices than y.
	Combiner[E any] func(x, y E) E

	// A Seeder produces the initial accumulator of a fold. A nil Seeder
	// means the fold has no seed.
	Seeder[E any] func() E

	// An Accessor returns the element at a linear index. It may compute the
	// element on the fly rather than read it from memory, and is invoked at
	// most once per index that is reduced.
	Accessor[E any] func(i int) E

	// A RangeFunc is a function that receives a range from low to high,
	// with 0 <= low <= high.
	RangeFunc func(low, high int)

	// A StripeFunc is a function that receives a stripe id and the range
	// from low to high that belongs to that stripe, with 0 <= low < high.
	StripeFunc func(stripe, low, high int)
)

/*
ComputeGrainSize determines how many consecutive indices of the range
from low to high one stripe should hold, given a threshold designator.
The fold package derives its stripe count from the result when
fold.Options.Threshold is set.

If the threshold is > 0, the range is divided evenly across threshold
stripes per logical CPU (as determined by runtime.GOMAXPROCS(0)), and
the grain size is ceiling((high - low) / (threshold * GOMAXPROCS)).
Use 1 if you expect no load imbalance, between 2 and 10 if you expect
some, and more than that if you expect even more.

If the threshold is == 0, the grain size is 1, which yields the most
fine-grained parallelism.

If the threshold is < 0, its absolute value is the grain size.

The result is always at least 1.

ComputeGrainSize panics if low < 0 or high < low.
*/
func ComputeGrainSize(low, high, threshold int) int {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	switch {
	case threshold < 0:
		return -threshold
	case threshold == 0:
		return 1
	}
	stripes := threshold * runtime.GOMAXPROCS(0)
	if grain := (high - low + stripes - 1) / stripes; grain > 1 {
		return grain
	}
	return 1
}

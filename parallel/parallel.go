// Package parallel provides the gang that executes the stripes of an
// index range in parallel.
//
// Stripe boundaries are always decided before any worker starts, and
// never re-split afterwards. The functions in this package return only
// when all workers have terminated, so their return acts as the barrier
// between two phases of a parallel fold.
package parallel

import (
	"sync"

	"github.com/exascience/parfold"
	"github.com/exascience/parfold/internal"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only
// when all thunks have terminated.
//
// If one or more thunks panic, the corresponding goroutines recover
// the panics, and Do eventually panics with the left-most
// recovered panic value.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p0, p1 interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	half := len(thunks) / 2
	go func() {
		defer func() {
			p1 = internal.WrapPanic(recover())
			wg.Done()
		}()
		Do(thunks[half:]...)
	}()
	func() {
		defer func() {
			p0 = recover()
		}()
		Do(thunks[:half]...)
	}()
	wg.Wait()
	if p0 != nil {
		panic(p0)
	}
	if p1 != nil {
		panic(p1)
	}
}

// Stripes returns the static partition of the half-open interval from
// low to high into contiguous, non-empty stripes, as pairs of bounds in
// stripe order.
//
// The number of stripes is n, but never more than the size of the
// range. If n is 0, a reasonable default is used that takes
// runtime.GOMAXPROCS(0) into account. An empty range has no stripes.
//
// Stripes panics if high < low, or if n < 0.
func Stripes(low, high, n int) [][2]int {
	count := internal.ComputeNofStripes(low, high, n)
	result := make([][2]int, count)
	for i := range result {
		result[i][0], result[i][1] = internal.StripeBounds(low, high, count, i)
	}
	return result
}

// RangeStripes receives a range, a stripe count n, and a stripe
// function f, divides the range into stripes as Stripes does, and
// invokes f for each stripe in parallel, passing the stripe id along
// with the bounds of that stripe. It returns the number of stripes.
//
// Stripe functions may run in any interleaving and complete in any
// order. Each stripe id is passed to exactly one invocation, so a
// stripe function that only writes to the slot of its own stripe
// needs no further synchronization.
//
// RangeStripes panics if high < low, or if n < 0.
//
// If one or more stripe function invocations panic, the corresponding
// goroutines recover the panics, and RangeStripes eventually panics
// with the left-most recovered panic value.
func RangeStripes(low, high, n int, f parfold.StripeFunc) int {
	stripes := Stripes(low, high, n)
	var recur func(first, last int)
	recur = func(first, last int) {
		switch last - first {
		case 0:
			return
		case 1:
			f(first, stripes[first][0], stripes[first][1])
		default:
			mid := first + (last-first)/2
			Do(
				func() { recur(first, mid) },
				func() { recur(mid, last) },
			)
		}
	}
	recur(0, len(stripes))
	return len(stripes)
}

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches in parallel, covering the half-open interval
// from low to high, including low but excluding high.
//
// The range is specified by a low and high integer, with low <=
// high. The batches are determined by dividing up the size of the
// range (high - low) by n. If n is 0, a reasonable default is used
// that takes runtime.GOMAXPROCS(0) into account. An empty range
// invokes nothing.
//
// Range panics if high < low, or if n < 0.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with
// the left-most recovered panic value.
func Range(low, high, n int, f parfold.RangeFunc) {
	RangeStripes(low, high, n, func(_, low, high int) {
		f(low, high)
	})
}

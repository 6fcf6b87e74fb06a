// Package internal holds the stripe arithmetic and panic handling shared by
// the parallel and sequential gangs.
package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/pkg/errors"
)

// ComputeNofStripes divides the size of the range (high - low) into n
// stripes. If n is 0, a default is used that takes runtime.GOMAXPROCS(0)
// into account.
//
// The result never exceeds the size of a non-empty range, so every stripe of
// the partition holds at least one index. An empty range yields 0 stripes.
func ComputeNofStripes(low, high, n int) (stripes int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			stripes = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			stripes = n
		default:
			panic(fmt.Sprintf("invalid number of stripes: %v", n))
		}
		if stripes > size {
			stripes = size
		}
	case size == 0:
		if n < 0 {
			panic(fmt.Sprintf("invalid number of stripes: %v", n))
		}
		stripes = 0
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// StripeBounds returns the half-open bounds of stripe i when the range from
// low to high is split into n stripes. Sizes of any two stripes differ by at
// most one, and the stripes are laid out in increasing order of i.
func StripeBounds(low, high, n, i int) (from, to int) {
	if (i < 0) || (i >= n) {
		panic(fmt.Sprintf("invalid stripe %v of %v", i, n))
	}
	size := high - low
	from = low + (i*size)/n
	to = low + ((i+1)*size)/n
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

func (e runtimeError) Cause() error { return e.error }

func (e runtimeError) Unwrap() error { return e.error }

// WrapPanic adds stack trace information to a recovered panic. Error values
// keep their cause, so errors.Cause on the rethrown value still finds the
// original error.
func WrapPanic(p interface{}) interface{} {
	if p == nil {
		return nil
	}
	stack := fmt.Sprintf("%s\nrethrown at", debug.Stack())
	if err, isError := p.(error); isError {
		r := errors.WithMessage(err, stack)
		if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
			return runtimeError{r}
		}
		return r
	}
	return fmt.Sprintf("%v\n%s", p, stack)
}

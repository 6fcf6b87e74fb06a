package fold

import (
	"fmt"

	"github.com/exascience/parfold"
	"github.com/exascience/parfold/sequential"
)

// An Op describes a fold: an associative combining function and an
// optional seed. A nil Seed makes the fold unseeded, which requires
// non-empty input.
type Op[E any] struct {
	Combine parfold.Combiner[E]
	Seed    parfold.Seeder[E]
}

// Seeded reports whether op has a seed.
func (op Op[E]) Seeded() bool {
	return op.Seed != nil
}

// Kernels is the kernel set generated from a Plan, bound to an Op, an
// element accessor, and the innermost extent of the input.
//
// Every kernel runs to completion on the calling goroutine. Kernels that
// receive a range may run concurrently with each other as long as their
// ranges, and thus the output slots they write, are disjoint.
type Kernels[E any] struct {
	plan  Plan
	op    Op[E]
	read  parfold.Accessor[E]
	inner int
}

// Generate binds the kernels of plan to op and read. The inner extent is
// the number of elements per segment and only matters for Segmented.
func Generate[E any](plan Plan, op Op[E], read parfold.Accessor[E], inner int) *Kernels[E] {
	if op.Combine == nil {
		panic("fold: nil combining function")
	}
	if plan.Seeded != op.Seeded() {
		panic(fmt.Sprintf("fold: plan seeded=%v for op seeded=%v", plan.Seeded, op.Seeded()))
	}
	if inner < 0 {
		panic(fmt.Sprintf("fold: invalid inner extent %v", inner))
	}
	return &Kernels[E]{plan: plan, op: op, read: read, inner: inner}
}

// Plan returns the plan the kernels were generated from.
func (ks *Kernels[E]) Plan() Plan {
	return ks.plan
}

func (ks *Kernels[E]) require(k Kind) {
	if !ks.plan.Has(k) {
		panic(fmt.Sprintf("fold: kernel %v not generated for rank %v, seeded=%v", k, ks.plan.Rank, ks.plan.Seeded))
	}
}

func (ks *Kernels[E]) reduce(start, end int, read parfold.Accessor[E]) E {
	if ks.op.Seeded() {
		return sequential.ReduceFromTo(start, end, ks.op.Combine, ks.op.Seed(), read)
	}
	return sequential.Reduce1FromTo(start, end, ks.op.Combine, read)
}

// Segmented reduces the segments start to end of the input, writing the
// result for segment seg to out[seg]. Segment seg covers the linear input
// indices from seg*inner to seg*inner+inner.
func (ks *Kernels[E]) Segmented(out []E, start, end int) {
	ks.require(Segmented)
	n := ks.inner
	for seg := start; seg < end; seg++ {
		from := seg * n
		out[seg] = ks.reduce(from, from+n, ks.read)
	}
}

// Sequential reduces the input from start to end into out[0]. With a seed,
// an empty range yields the seed.
func (ks *Kernels[E]) Sequential(out []E, start, end int) {
	ks.require(Sequential)
	out[0] = ks.reduce(start, end, ks.read)
}

// Phase1 reduces the stripe from start to end without seed and stores the
// result in the slot of the given stripe. The stripe must not be empty.
func (ks *Kernels[E]) Phase1(partials *Partials[E], stripe, start, end int) {
	ks.require(Phase1)
	partials.store(stripe, sequential.Reduce1FromTo(start, end, ks.op.Combine, ks.read))
}

// Phase2 reduces the partial results in stripe order into out[0], starting
// from the seed if there is one. It must only run after all Phase1 workers
// of the same fold have terminated.
func (ks *Kernels[E]) Phase2(out []E, partials *Partials[E]) {
	ks.require(Phase2)
	out[0] = ks.reduce(0, partials.Len(), partials.load)
}

// Fill writes the seed to out[start] through out[end-1]. The seed is
// evaluated once per invocation.
func (ks *Kernels[E]) Fill(out []E, start, end int) {
	ks.require(Fill)
	if start == end {
		return
	}
	z := ks.op.Seed()
	for i := start; i < end; i++ {
		out[i] = z
	}
}

package fold

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

type slot[E any] struct {
	value   E
	written bool
	_       cpu.CacheLinePad
}

// Partials is the scratch buffer that carries one partial result per
// stripe from Phase1 to Phase2. Slots are padded to separate cache lines,
// so workers writing neighboring slots do not contend.
//
// Each slot is written once by Phase1 and read once by Phase2, after all
// Phase1 workers of the same fold have terminated.
type Partials[E any] struct {
	slots []slot[E]
}

// NewPartials returns a buffer with one slot per stripe.
func NewPartials[E any](stripes int) *Partials[E] {
	if stripes < 0 {
		panic(fmt.Sprintf("invalid number of stripes: %v", stripes))
	}
	return &Partials[E]{make([]slot[E], stripes)}
}

// Len returns the number of stripes.
func (p *Partials[E]) Len() int {
	return len(p.slots)
}

func (p *Partials[E]) store(stripe int, x E) {
	if (stripe < 0) || (stripe >= len(p.slots)) {
		panic(fmt.Sprintf("stripe %v out of range for %v partial results", stripe, len(p.slots)))
	}
	s := &p.slots[stripe]
	if s.written {
		panic(fmt.Sprintf("partial result of stripe %v written twice", stripe))
	}
	s.value, s.written = x, true
}

// load is an Accessor over the stripe ids.
func (p *Partials[E]) load(stripe int) E {
	s := &p.slots[stripe]
	if !s.written {
		panic(fmt.Sprintf("partial result of stripe %v read before it was written", stripe))
	}
	return s.value
}

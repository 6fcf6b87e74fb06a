package fold

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Kind identifies one generated fold kernel.
type Kind int

const (
	// Segmented folds the innermost dimension, one output element per
	// segment, for outputs of rank > 0.
	Segmented Kind = iota
	// Sequential folds a whole range into a single scalar on one worker.
	Sequential
	// Phase1 folds one stripe, without seed, into its partial-result slot.
	Phase1
	// Phase2 folds the partial results, with seed if any, into the scalar.
	Phase2
	// Fill writes the seed to every output element.
	Fill
)

var kindTags = [...]string{
	Segmented:  "fold-segmented",
	Sequential: "foldall-sequential",
	Phase1:     "foldall-phase1",
	Phase2:     "foldall-phase2",
	Fill:       "fill",
}

// String returns the tag that addresses the kernel.
func (k Kind) String() string {
	if (k < 0) || (int(k) >= len(kindTags)) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTags[k]
}

// A Plan is the set of kernels generated for one combination of output
// rank and seed presence, in generation order.
type Plan struct {
	Rank   int
	Seeded bool
	Kinds  []Kind
}

// Has reports whether the plan includes kernel k.
func (p Plan) Has(k Kind) bool {
	for _, kind := range p.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Select decides which kernels to generate for a fold whose output has
// the given rank. Rank 0 yields the whole-array kernels Sequential,
// Phase1, and Phase2; higher ranks yield Segmented. A seed additionally
// yields Fill.
//
// Select is a pure function of its arguments.
func Select(rank int, seeded bool) (Plan, error) {
	if rank < 0 {
		return Plan{}, errors.Wrapf(ErrInvalidRank, "select kernels for rank %v", rank)
	}
	plan := Plan{Rank: rank, Seeded: seeded}
	if rank == 0 {
		plan.Kinds = []Kind{Sequential, Phase1, Phase2}
	} else {
		plan.Kinds = []Kind{Segmented}
	}
	if seeded {
		plan.Kinds = append(plan.Kinds, Fill)
	}
	return plan, nil
}

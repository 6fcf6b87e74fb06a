package fold

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	for _, tc := range []struct {
		rank   int
		seeded bool
		kinds  []Kind
	}{
		{0, false, []Kind{Sequential, Phase1, Phase2}},
		{0, true, []Kind{Sequential, Phase1, Phase2, Fill}},
		{1, false, []Kind{Segmented}},
		{3, true, []Kind{Segmented, Fill}},
	} {
		plan, err := Select(tc.rank, tc.seeded)
		require.NoError(t, err)
		assert.Equal(t, tc.kinds, plan.Kinds, "rank %v seeded %v", tc.rank, tc.seeded)
		assert.Equal(t, tc.rank, plan.Rank)
		assert.Equal(t, tc.seeded, plan.Seeded)
	}

	_, err := Select(-1, false)
	assert.True(t, errors.Is(err, ErrInvalidRank))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "foldall-phase1", Phase1.String())
	assert.Equal(t, "fill", Fill.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestMissingKernelPanics(t *testing.T) {
	plan, err := Select(1, false)
	require.NoError(t, err)
	ks := Generate(plan, Op[int]{Combine: func(x, y int) int { return x + y }}, func(i int) int { return i }, 2)
	assert.Panics(t, func() { ks.Sequential(make([]int, 1), 0, 2) })
	assert.Panics(t, func() { ks.Fill(make([]int, 1), 0, 1) })
	assert.Panics(t, func() {
		Generate(plan, Op[int]{Combine: func(x, y int) int { return x + y }, Seed: func() int { return 0 }}, nil, 2)
	})
}

package internal

import (
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNofStripes(t *testing.T) {
	assert.Equal(t, 0, ComputeNofStripes(3, 3, 4))
	assert.Equal(t, 4, ComputeNofStripes(0, 10, 4))
	assert.Equal(t, 3, ComputeNofStripes(2, 5, 8))
	assert.Equal(t, min(2*runtime.GOMAXPROCS(0), 1000), ComputeNofStripes(0, 1000, 0))
	assert.Panics(t, func() { ComputeNofStripes(0, 10, -1) })
	assert.Panics(t, func() { ComputeNofStripes(5, 4, 1) })
}

func TestStripeBoundsPartition(t *testing.T) {
	for _, tc := range []struct{ low, high, n int }{
		{0, 5, 2}, {0, 5, 5}, {3, 100, 7}, {0, 1, 1}, {10, 13, 3},
	} {
		next := tc.low
		for i := 0; i < tc.n; i++ {
			from, to := StripeBounds(tc.low, tc.high, tc.n, i)
			require.Equal(t, next, from, "stripe %d of %v", i, tc)
			require.Less(t, from, to, "stripe %d of %v is empty", i, tc)
			next = to
		}
		require.Equal(t, tc.high, next)
	}
	assert.Panics(t, func() { StripeBounds(0, 5, 2, 2) })
}

func TestWrapPanic(t *testing.T) {
	assert.Nil(t, WrapPanic(nil))

	cause := errors.New("combine failed")
	wrapped, ok := WrapPanic(cause).(error)
	require.True(t, ok)
	assert.Equal(t, cause, errors.Cause(wrapped))

	var rt runtime.Error
	func() {
		defer func() { rt, _ = recover().(runtime.Error) }()
		var s []int
		_ = s[1]
	}()
	require.NotNil(t, rt)
	wrappedRT, ok := WrapPanic(rt).(runtime.Error)
	require.True(t, ok)
	assert.Equal(t, rt, errors.Cause(wrappedRT))
	assert.True(t, errors.Is(wrappedRT, rt))

	s, ok := WrapPanic("boom").(string)
	require.True(t, ok)
	assert.Contains(t, s, "boom")
}

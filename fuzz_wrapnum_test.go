package wrapnum_test

import (
	"fmt"
	"testing"

	"github.com/jaredmtdev/wrapnum"
	"github.com/jaredmtdev/wrapnum/internal/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func RunFuzzAddStaysInRange(t *testing.T, lo, hi, start, delta int64) {
	t.Helper()
	if hi < lo {
		lo, hi = hi, lo
	}
	n := wrapnum.Must(wrapnum.NewRange(lo, hi)).At(start)
	require.GreaterOrEqual(t, n.Value(), lo)
	require.LessOrEqual(t, n.Value(), hi)

	added := n.Add(delta)
	assert.GreaterOrEqual(t, added.Value(), lo)
	assert.LessOrEqual(t, added.Value(), hi)

	subtracted := n.Sub(delta)
	assert.GreaterOrEqual(t, subtracted.Value(), lo)
	assert.LessOrEqual(t, subtracted.Value(), hi)

	// moving forward then back lands on the start
	assert.Equal(t, n.Value(), added.Sub(delta).Value())
	assert.Equal(t, n.Value(), subtracted.Add(delta).Value())
}

func FuzzAddStaysInRange(f *testing.F) {
	f.Add(int64(0), int64(4), int64(0), int64(6))
	f.Add(int64(0), int64(4), int64(2), int64(13))
	f.Add(int64(-10), int64(10), int64(-10), int64(-1))
	f.Add(int64(-1<<63), int64(1<<63-1), int64(0), int64(-1<<63))
	f.Add(int64(5), int64(5), int64(5), int64(1<<63-1))

	f.Fuzz(func(t *testing.T, lo, hi, start, delta int64) {
		t.Run(fmt.Sprintf("lo %v hi %v start %v delta %v", lo, hi, start, delta), func(t *testing.T) {
			RunFuzzAddStaysInRange(t, lo, hi, start, delta)
		})
	})
}

func FuzzMatchesPosMod(f *testing.F) {
	f.Add(0, 5, 6)
	f.Add(0, 5, -1)
	f.Add(-7, 3, 100)

	f.Fuzz(func(t *testing.T, lo, width, delta int) {
		// small ranges so that native int arithmetic cannot overflow
		lo = op.PosMod(lo, 2_000) - 1_000
		width = op.PosMod(width, 1_000) + 1
		delta = op.PosMod(delta, 1_000_000) - 500_000

		n := wrapnum.Must(wrapnum.NewRange(lo, lo+width-1))
		expected := lo + op.PosMod(delta, width)
		assert.Equal(t, expected, n.Add(delta).Value())
	})
}

// Package op - used for math operations
package op

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// PosMod - modulus operator that always returns positive number.
func PosMod[T constraints.Integer](x, m T) T {
	return (x%m + m) % m
}

// Width - number of values in the inclusive range [lo, hi].
// assumes lo <= hi. returns 0 when the range holds all 2^64 values.
func Width[T constraints.Integer](lo, hi T) uint64 {
	return uint64(hi) - uint64(lo) + 1
}

// Offset - exact distance from lo up to v. assumes lo <= v.
func Offset[T constraints.Integer](v, lo T) uint64 {
	return uint64(v) - uint64(lo)
}

// Reduce - euclidean d mod w, always in [0, w-1].
// w == 0 stands for 2^64, where reduction is the two's complement bit pattern of d.
func Reduce[T constraints.Integer](d T, w uint64) uint64 {
	if w == 0 {
		return uint64(d)
	}
	if d >= 0 {
		return uint64(d) % w
	}
	// -(d+1) never overflows, even for the smallest signed value
	r := uint64(-(d + 1)) % w
	return w - 1 - r
}

// Forward - (off + step) mod w. off and step must already be below w.
func Forward(off, step, w uint64) uint64 {
	sum, carry := bits.Add64(off, step, 0)
	if w == 0 {
		return sum
	}
	if carry != 0 || sum >= w {
		return sum - w
	}
	return sum
}

// Backward - (off - step) mod w. off and step must already be below w.
func Backward(off, step, w uint64) uint64 {
	diff, borrow := bits.Sub64(off, step, 0)
	if w == 0 || borrow == 0 {
		return diff
	}
	return diff + w
}

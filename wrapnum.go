// Package wrapnum - integers that wrap around an inclusive [min, max] range.
//
// A Num behaves like a plain integer for arithmetic, except every result is
// brought back into its range with floor modulo, so callers never have to
// apply % after each update:
//
//	hour := wrapnum.Must(wrapnum.New(24)).At(23)
//	hour = hour.Inc() // 0
//
// Arithmetic is constant time for any delta and never overflows, even when
// the range covers every value of the underlying type.
package wrapnum

import (
	"cmp"
	"fmt"
	"unsafe"

	"github.com/jaredmtdev/wrapnum/internal/op"
	"golang.org/x/exp/constraints"
)

// Bounds - inclusive range [Min, Max].
type Bounds[T constraints.Integer] struct {
	Min T
	Max T
}

// Num - integer value confined to an inclusive range.
//
// The zero value is a valid counter over [0, 0].
// Use Equal/Compare rather than == when bounds should be ignored.
type Num[T constraints.Integer] struct {
	value T
	min   T
	max   T
}

// New - counter over [0, n-1] starting at 0.
// n must be at least 1.
func New[T constraints.Integer](n T) (Num[T], error) {
	if n <= 0 {
		return Num[T]{}, newInvalidBoundError(n)
	}
	return build(0, n-1, 0), nil
}

// NewRange - counter over [lo, hi] starting at lo.
func NewRange[T constraints.Integer](lo, hi T) (Num[T], error) {
	if hi < lo {
		return Num[T]{}, newInvertedRangeError(lo, hi)
	}
	return build(lo, hi, lo), nil
}

// FromBounds - same as NewRange(b.Min, b.Max).
func FromBounds[T constraints.Integer](b Bounds[T]) (Num[T], error) {
	return NewRange(b.Min, b.Max)
}

// Full - counter over every value of T, starting at v.
// wraps exactly like native arithmetic on T.
func Full[T constraints.Integer](v T) Num[T] {
	lo, hi := limits[T]()
	return build(lo, hi, v)
}

// Must - panics if err is not nil.
//
//	n := wrapnum.Must(wrapnum.NewRange(1, 12))
func Must[T constraints.Integer](n Num[T], err error) Num[T] {
	if err != nil {
		panic(err)
	}
	return n
}

// build - all constructors end here. lo <= hi must already hold.
func build[T constraints.Integer](lo, hi, v T) Num[T] {
	n := Num[T]{value: lo, min: lo, max: hi}
	return n.At(v)
}

// limits - smallest and largest value of T.
func limits[T constraints.Integer]() (T, T) {
	var zero T
	hi := ^zero
	if hi > 0 {
		// unsigned: all bits set is the max
		return zero, hi
	}
	// signed: every bit but the sign bit
	hi = T(^uint64(0) >> (65 - 8*int(unsafe.Sizeof(zero))))
	return -hi - 1, hi
}

// At - same bounds with the value set to v, wrapped into range.
func (n Num[T]) At(v T) Num[T] {
	w := n.width()
	// offset of v from min, taken as a signed delta so values below min wrap too
	off := op.Reduce(v, w)
	base := op.Reduce(n.min, w)
	n.value = n.fromOffset(op.Backward(off, base, w))
	return n
}

// Add - value + d wrapped into range.
func (n Num[T]) Add(d T) Num[T] {
	w := n.width()
	n.value = n.fromOffset(op.Forward(n.offset(), op.Reduce(d, w), w))
	return n
}

// Sub - value - d wrapped into range.
func (n Num[T]) Sub(d T) Num[T] {
	w := n.width()
	n.value = n.fromOffset(op.Backward(n.offset(), op.Reduce(d, w), w))
	return n
}

// Inc - same as Add(1).
func (n Num[T]) Inc() Num[T] { return n.Add(1) }

// Dec - same as Sub(1).
func (n Num[T]) Dec() Num[T] { return n.Sub(1) }

// AddNum - adds the value of o. bounds of o are ignored.
func (n Num[T]) AddNum(o Num[T]) Num[T] { return n.Add(o.value) }

// SubNum - subtracts the value of o. bounds of o are ignored.
func (n Num[T]) SubNum(o Num[T]) Num[T] { return n.Sub(o.value) }

func (n Num[T]) Value() T { return n.value }

func (n Num[T]) Min() T { return n.min }

func (n Num[T]) Max() T { return n.max }

func (n Num[T]) Bounds() Bounds[T] { return Bounds[T]{Min: n.min, Max: n.max} }

// Int - value as an int, handy for indexing.
func (n Num[T]) Int() int { return int(n.value) }

// Equal - reports whether both values are equal. bounds are not compared.
func (n Num[T]) Equal(o Num[T]) bool { return n.value == o.value }

func (n Num[T]) Less(o Num[T]) bool { return n.value < o.value }

func (n Num[T]) Greater(o Num[T]) bool { return n.value > o.value }

// Compare - -1, 0 or +1 depending on the values, like cmp.Compare.
func (n Num[T]) Compare(o Num[T]) int { return cmp.Compare(n.value, o.value) }

// Cmp - compares the value against a plain integer, like cmp.Compare.
func (n Num[T]) Cmp(v T) int { return cmp.Compare(n.value, v) }

func (n Num[T]) String() string { return fmt.Sprint(n.value) }

func (n Num[T]) width() uint64 { return op.Width(n.min, n.max) }

func (n Num[T]) offset() uint64 { return op.Offset(n.value, n.min) }

func (n Num[T]) fromOffset(off uint64) T { return T(uint64(n.min) + off) }

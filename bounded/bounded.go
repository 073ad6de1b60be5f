// Package bounded provides unsigned scalar values paired with an inclusive
// [lower, upper] range, validated at construction. A live Value always
// satisfies lower <= value <= upper; "mutation" produces a new Value.
//
// Go has no compile-time-provable constructor, so Must is the constant
// construction path: it panics, and package-level register constants built
// with it fail at init rather than mid-operation. Literals known at compile
// time can additionally be pinned with a constant guard, which fails the
// build outright when the value overflows the range:
//
//	const _ uint8 = 7 - colorYellow // colorYellow must fit in 3 bits
package bounded

import (
	"golang.org/x/exp/constraints"
)

// Value is a scalar within an inclusive [lower, upper] range.
type Value[T constraints.Unsigned] struct {
	val   T
	lower T
	upper T
}

// New validates val against [lower, upper] and wraps it.
func New[T constraints.Unsigned](val, lower, upper T) (bv Value[T], err error) {
	if upper < lower {
		err = ErrBounds[T]{Lower: lower, Upper: upper}
		return
	}

	if val < lower || val > upper {
		err = ErrRange[T]{Value: val, Lower: lower, Upper: upper}
		return
	}

	bv = Value[T]{val: val, lower: lower, upper: upper}
	return
}

// Must is New for values that are supposed to be correct by construction,
// such as enumerated register constants. It panics on a range violation.
func Must[T constraints.Unsigned](val, lower, upper T) Value[T] {
	bv, err := New(val, lower, upper)
	if err != nil {
		panic(err)
	}

	return bv
}

// Val returns the wrapped scalar.
func (bv Value[T]) Val() T {
	return bv.val
}

// Lower returns the inclusive lower bound.
func (bv Value[T]) Lower() T {
	return bv.lower
}

// Upper returns the inclusive upper bound.
func (bv Value[T]) Upper() T {
	return bv.upper
}

// Set returns a new Value in the same range holding val.
func (bv Value[T]) Set(val T) (Value[T], error) {
	return New(val, bv.lower, bv.upper)
}

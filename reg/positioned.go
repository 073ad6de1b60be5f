package reg

import (
	"golang.org/x/exp/constraints"
)

// Positioned is anything that can report a mask and a value already shifted
// into its register position, ready to be folded into one write.
type Positioned[T constraints.Unsigned] interface {
	// Mask returns the covered bit positions.
	Mask() T
	// InPosition returns the value aligned to its bit position.
	InPosition() T
}

// Combined is the disjunction of several Positioned values, applied to a
// register as a single write. It is itself Positioned, so chains combine
// freely. Its value never carries bits outside its mask.
type Combined[T constraints.Unsigned] struct {
	mask  T
	value T
}

var _ Positioned[uint32] = Combined[uint32]{}

// Combine folds Positioned values into one Combined write. The fold is
// commutative and associative, so operand order and grouping do not matter.
// Operand masks must be pairwise disjoint; overlapping masks silently OR
// their bits together.
func Combine[T constraints.Unsigned](vals ...Positioned[T]) (c Combined[T]) {
	for _, val := range vals {
		c.mask |= val.Mask()
		c.value |= val.InPosition()
	}

	return
}

// With returns the combination of c and p.
func (c Combined[T]) With(p Positioned[T]) Combined[T] {
	return Combined[T]{
		mask:  c.mask | p.Mask(),
		value: c.value | p.InPosition(),
	}
}

// Mask returns the union of the combined masks.
func (c Combined[T]) Mask() T {
	return c.mask
}

// InPosition returns the union of the combined in-position values.
func (c Combined[T]) InPosition() T {
	return c.value
}

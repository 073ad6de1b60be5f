package reg

import (
	"github.com/ezrec/mmreg/bounded"

	"golang.org/x/exp/constraints"
)

// Field is a Descriptor plus a current, range-checked value. Fields are
// immutable; Set returns a fresh Field against the same descriptor.
type Field[T constraints.Unsigned] struct {
	desc Descriptor[T]
	val  bounded.Value[T]
}

var _ Positioned[uint32] = Field[uint32]{}

// Descriptor returns the field's layout.
func (fd Field[T]) Descriptor() Descriptor[T] {
	return fd.desc
}

// Val returns the raw, unshifted field value.
func (fd Field[T]) Val() T {
	return fd.val.Val()
}

// Set returns a new Field with the same descriptor and a freshly validated
// value.
func (fd Field[T]) Set(val T) (Field[T], error) {
	return fd.desc.Field(val)
}

// IsSet reports whether the field holds its maximum representable value.
// For one-bit fields this means the bit is one.
func (fd Field[T]) IsSet() bool {
	return fd.Val() == fd.desc.Max()
}

// Mask returns the field's mask.
func (fd Field[T]) Mask() T {
	return fd.desc.Mask()
}

// InPosition returns the value shifted to the field's bit position.
func (fd Field[T]) InPosition() T {
	return fd.Val() << fd.desc.Offset()
}

// Equal reports whether two Fields share a descriptor and hold the same raw
// value.
func (fd Field[T]) Equal(other Field[T]) bool {
	return fd.desc == other.desc && fd.Val() == other.Val()
}

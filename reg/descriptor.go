package reg

import (
	"math/bits"

	"github.com/ezrec/mmreg/bounded"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in the register scalar T.
func Width[T constraints.Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Descriptor locates one contiguous bit-field within a register of type T.
// It is derived once per field declaration and shared by every Field built
// from it.
type Descriptor[T constraints.Unsigned] struct {
	mask   T
	offset uint
	width  uint
}

// NewDescriptor derives the descriptor for a field of fieldWidth bits whose
// least-significant bit sits at fieldOffset. The field must have at least
// one bit and must fit within the register: fieldOffset+fieldWidth <=
// Width[T]().
func NewDescriptor[T constraints.Unsigned](fieldWidth, fieldOffset uint) (d Descriptor[T], err error) {
	if fieldWidth == 0 {
		err = ErrWidthZero
		return
	}

	if fieldOffset >= Width[T]() || fieldWidth > Width[T]()-fieldOffset {
		err = ErrFieldExtent
		return
	}

	var max T
	if fieldWidth == Width[T]() {
		max = ^T(0)
	} else {
		max = T(1)<<fieldWidth - 1
	}

	d = Descriptor[T]{
		mask:   max << fieldOffset,
		offset: fieldOffset,
		width:  fieldWidth,
	}
	return
}

// MustDescriptor is NewDescriptor for package-level register maps; it panics
// on a bad layout.
func MustDescriptor[T constraints.Unsigned](fieldWidth, fieldOffset uint) Descriptor[T] {
	d, err := NewDescriptor[T](fieldWidth, fieldOffset)
	if err != nil {
		panic(err)
	}

	return d
}

// Mask returns the bit pattern covering exactly the field's positions,
// ((1<<width)-1) << offset.
func (d Descriptor[T]) Mask() T {
	return d.mask
}

// Offset returns the bit position of the field's least-significant bit.
func (d Descriptor[T]) Offset() uint {
	return d.offset
}

// Width returns the field's width in bits.
func (d Descriptor[T]) Width() uint {
	return d.width
}

// Max returns the largest value representable in the field.
func (d Descriptor[T]) Max() T {
	return d.mask >> d.offset
}

// Field validates val against [0, 2^width-1] and binds it to the descriptor.
func (d Descriptor[T]) Field(val T) (fd Field[T], err error) {
	bv, err := bounded.New(val, 0, d.Max())
	if err != nil {
		return
	}

	fd = Field[T]{desc: d, val: bv}
	return
}

// MustField is Field for enumerated constants; it panics on a range
// violation.
func (d Descriptor[T]) MustField(val T) Field[T] {
	fd, err := d.Field(val)
	if err != nil {
		panic(err)
	}

	return fd
}

// Set returns the Field holding the field's maximum value (all bits one).
func (d Descriptor[T]) Set() Field[T] {
	return d.MustField(d.Max())
}

// Clear returns the Field holding zero.
func (d Descriptor[T]) Clear() Field[T] {
	return d.MustField(0)
}

// extract pulls the field's value out of a raw register image. The masked
// shift cannot leave the field's range, so extraction is total.
func (d Descriptor[T]) extract(raw T) Field[T] {
	return d.MustField((raw & d.mask) >> d.offset)
}

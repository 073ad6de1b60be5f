// Package decl consumes register-map declarations produced by an external
// description generator and compiles them into reg descriptors and named
// enumerated field constants. The declaration format is structural: decl
// does no text parsing.
package decl

import (
	"fmt"
	"iter"

	"github.com/ezrec/mmreg/internal"
	"github.com/ezrec/mmreg/reg"

	"golang.org/x/exp/constraints"
)

// Enum names one valid literal of an enumerated field.
type Enum struct {
	Name    string // Constant name, e.g. "Blue".
	Literal uint64 // Raw field value.
}

// Field declares one bit-field of a register.
type Field struct {
	Name   string // Field name, e.g. "Color".
	Width  uint   // Width in bits, >= 1.
	Offset uint   // Bit position of the least-significant bit.
	Values []Enum // Optional enumerated values.
}

// Register declares one register: its name, width in bits (8, 16, 32 or
// 64), access mode, and fields.
type Register struct {
	Name   string
	Width  uint
	Mode   reg.Mode
	Fields []Field
}

// Map is a compiled register declaration for scalar type T: descriptors by
// field name and pre-populated enumerated Fields by field and value name.
type Map[T constraints.Unsigned] struct {
	Name string
	Mode reg.Mode

	fields map[string]reg.Descriptor[T]
	values map[string]map[string]reg.Field[T]
}

// Compile checks a declaration against scalar type T and builds its Map.
// The declared width must equal the width of T; field layouts and
// enumerated literals are validated through the reg constructors.
func Compile[T constraints.Unsigned](r Register) (m *Map[T], err error) {
	if r.Width != reg.Width[T]() {
		err = &ErrRegister{Register: r.Name, Err: ErrWidthMismatch}
		return
	}

	m = &Map[T]{
		Name:   r.Name,
		Mode:   r.Mode,
		fields: map[string]reg.Descriptor[T]{},
		values: map[string]map[string]reg.Field[T]{},
	}

	for _, field := range r.Fields {
		if _, ok := m.fields[field.Name]; ok {
			err = &ErrField{Register: r.Name, Field: field.Name, Err: ErrFieldDuplicate}
			return
		}

		var d reg.Descriptor[T]
		d, err = reg.NewDescriptor[T](field.Width, field.Offset)
		if err != nil {
			err = &ErrField{Register: r.Name, Field: field.Name, Err: err}
			return
		}
		m.fields[field.Name] = d

		if len(field.Values) == 0 {
			continue
		}

		vals := map[string]reg.Field[T]{}
		for _, enum := range field.Values {
			if _, ok := vals[enum.Name]; ok {
				err = &ErrField{Register: r.Name, Field: field.Name, Err: ErrValueDuplicate}
				return
			}
			if enum.Literal > uint64(d.Max()) {
				err = &ErrField{Register: r.Name, Field: field.Name, Err: ErrValueRange(enum.Name)}
				return
			}

			var fd reg.Field[T]
			fd, err = d.Field(T(enum.Literal))
			if err != nil {
				err = &ErrField{Register: r.Name, Field: field.Name, Err: err}
				return
			}
			vals[enum.Name] = fd
		}
		m.values[field.Name] = vals
	}

	return
}

// MustCompile is Compile for package-level register maps; it panics on a bad
// declaration.
func MustCompile[T constraints.Unsigned](r Register) *Map[T] {
	m, err := Compile[T](r)
	if err != nil {
		panic(err)
	}

	return m
}

// Field returns the descriptor for a declared field name.
func (m *Map[T]) Field(name string) (d reg.Descriptor[T], ok bool) {
	d, ok = m.fields[name]
	return
}

// Value returns the pre-populated Field for an enumerated value of a
// declared field.
func (m *Map[T]) Value(field, name string) (fd reg.Field[T], ok bool) {
	vals, ok := m.values[field]
	if !ok {
		return
	}

	fd, ok = vals[name]
	return
}

// Fields returns an iterator over the declared field names and descriptors.
func (m *Map[T]) Fields() iter.Seq2[string, reg.Descriptor[T]] {
	return func(yield func(string, reg.Descriptor[T]) bool) {
		for name, d := range m.fields {
			if !yield(name, d) {
				return
			}
		}
	}
}

// Defines returns an iterator over NAME_MASK, NAME_OFFSET, and enumerated
// NAME_VALUE defines for every field, for handing to external tooling.
func (m *Map[T]) Defines() iter.Seq2[string, string] {
	seqs := []iter.Seq2[string, string]{}
	for name, d := range m.fields {
		seqs = append(seqs, m.fieldDefines(name, d))
	}

	return internal.IterSeq2Concat(seqs...)
}

func (m *Map[T]) fieldDefines(name string, d reg.Descriptor[T]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		prefix := m.Name + "_" + name
		if !yield(prefix+"_MASK", fmt.Sprintf("%#x", uint64(d.Mask()))) {
			return
		}
		if !yield(prefix+"_OFFSET", fmt.Sprintf("%v", d.Offset())) {
			return
		}
		for enum, fd := range m.values[name] {
			if !yield(prefix+"_"+enum, fmt.Sprintf("%#x", uint64(fd.Val()))) {
				return
			}
		}
	}
}

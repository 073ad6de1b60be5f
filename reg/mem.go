package reg

import (
	"golang.org/x/exp/constraints"
)

// Mem is one addressable register location of scalar type T. Implementations
// must perform exactly one access per call and must not cache, elide, or
// reorder accesses; the register types rely on that to keep their
// one-load-per-query guarantee meaningful.
type Mem[T constraints.Unsigned] interface {
	// Load reads the whole location.
	Load() T
	// Store writes the whole location.
	Store(val T)
}

// Buffer is an in-process Mem, the test double standing in for a hardware
// location.
type Buffer[T constraints.Unsigned] struct {
	val T
}

var _ Mem[uint8] = (*Buffer[uint8])(nil)

// Load returns the buffered value.
func (b *Buffer[T]) Load() T {
	return b.val
}

// Store replaces the buffered value.
func (b *Buffer[T]) Store(val T) {
	b.val = val
}

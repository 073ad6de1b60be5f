// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package mmio provides volatile backends for reg.Mem: raw pointer cells,
// /dev/mem-mapped regions on Linux, register-image files, and a
// runtime-checked address lease that enforces one live handle per location.
package mmio

import (
	"unsafe"

	"github.com/ezrec/mmreg/reg"

	"golang.org/x/exp/constraints"
)

// Pointer is one register location behind a raw pointer. Accesses are
// forced through noinline, nosplit helpers so the compiler cannot elide,
// cache, or reorder them.
type Pointer[T constraints.Unsigned] struct {
	ptr unsafe.Pointer
}

var _ reg.Mem[uint32] = (*Pointer[uint32])(nil)

// NewPointer wraps an already-mapped register location.
func NewPointer[T constraints.Unsigned](ptr unsafe.Pointer) *Pointer[T] {
	return &Pointer[T]{ptr: ptr}
}

// Load performs one volatile read of the location.
func (p *Pointer[T]) Load() T {
	return load[T](p.ptr)
}

// Store performs one volatile write of the location.
func (p *Pointer[T]) Store(val T) {
	store(p.ptr, val)
}

//go:noinline
//go:nosplit
func load[T constraints.Unsigned](ptr unsafe.Pointer) T {
	return *(*T)(ptr)
}

//go:noinline
//go:nosplit
func store[T constraints.Unsigned](ptr unsafe.Pointer, val T) {
	*(*T)(ptr) = val
}

package reg

import (
	"golang.org/x/exp/constraints"
)

// Reader is the query surface of a readable register. Every method performs
// exactly one load of the underlying location.
type Reader[T constraints.Unsigned] interface {
	// Read returns the whole register.
	Read() T
	// GetField extracts one field from a single load.
	GetField(d Descriptor[T]) Field[T]
	// IsSet reports whether the field holds its maximum value.
	IsSet(d Descriptor[T]) bool
	// MatchesAny reports whether any in-position bit of p is set.
	MatchesAny(p Positioned[T]) bool
	// MatchesAll reports whether every in-position bit of p is set.
	MatchesAll(p Positioned[T]) bool
	// Extract snapshots the register for hardware-free queries.
	Extract() Snapshot[T]
}

// Writer is the mutation surface of a writable register.
type Writer[T constraints.Unsigned] interface {
	// Write stores val as the whole register, bypassing field bookkeeping.
	Write(val T)
	// Modify applies a combined field write.
	Modify(p Positioned[T])
}

// ReadWriter is the full register surface.
type ReadWriter[T constraints.Unsigned] interface {
	Reader[T]
	Writer[T]
}

var (
	_ Reader[uint32]     = (*RO[uint32])(nil)
	_ Writer[uint32]     = (*WO[uint32])(nil)
	_ ReadWriter[uint32] = (*RW[uint32])(nil)
)

// RO is a read-only register.
type RO[T constraints.Unsigned] struct {
	mem Mem[T]
}

// NewRO binds a read-only register to a location.
func NewRO[T constraints.Unsigned](mem Mem[T]) *RO[T] {
	return &RO[T]{mem: mem}
}

func (r *RO[T]) Read() T {
	return r.mem.Load()
}

func (r *RO[T]) GetField(d Descriptor[T]) Field[T] {
	return d.extract(r.mem.Load())
}

func (r *RO[T]) IsSet(d Descriptor[T]) bool {
	return d.extract(r.mem.Load()).IsSet()
}

func (r *RO[T]) MatchesAny(p Positioned[T]) bool {
	return r.mem.Load()&p.InPosition() != 0
}

func (r *RO[T]) MatchesAll(p Positioned[T]) bool {
	want := p.InPosition()
	return r.mem.Load()&want == want
}

func (r *RO[T]) Extract() Snapshot[T] {
	return Snapshot[T]{raw: r.mem.Load()}
}

// WO is a write-only register.
type WO[T constraints.Unsigned] struct {
	mem Mem[T]
}

// NewWO binds a write-only register to a location, optionally seeding the
// whole register with an initial value.
func NewWO[T constraints.Unsigned](mem Mem[T], initial ...T) (w *WO[T]) {
	w = &WO[T]{mem: mem}
	if len(initial) > 0 {
		w.mem.Store(initial[0])
	}

	return
}

func (w *WO[T]) Write(val T) {
	w.mem.Store(val)
}

// Modify stores the combined fields as the whole register. A write-only
// location has no readback, so bits outside the combined mask are written
// as zero; callers needing cross-field read-modify-write must keep shadow
// state themselves.
func (w *WO[T]) Modify(p Positioned[T]) {
	w.mem.Store(p.InPosition())
}

// RW is a read-write register.
type RW[T constraints.Unsigned] struct {
	mem Mem[T]
}

// NewRW binds a read-write register to a location, optionally seeding the
// whole register with an initial value.
func NewRW[T constraints.Unsigned](mem Mem[T], initial ...T) (r *RW[T]) {
	r = &RW[T]{mem: mem}
	if len(initial) > 0 {
		r.mem.Store(initial[0])
	}

	return
}

func (r *RW[T]) Read() T {
	return r.mem.Load()
}

func (r *RW[T]) GetField(d Descriptor[T]) Field[T] {
	return d.extract(r.mem.Load())
}

func (r *RW[T]) IsSet(d Descriptor[T]) bool {
	return d.extract(r.mem.Load()).IsSet()
}

func (r *RW[T]) MatchesAny(p Positioned[T]) bool {
	return r.mem.Load()&p.InPosition() != 0
}

func (r *RW[T]) MatchesAll(p Positioned[T]) bool {
	want := p.InPosition()
	return r.mem.Load()&want == want
}

func (r *RW[T]) Extract() Snapshot[T] {
	return Snapshot[T]{raw: r.mem.Load()}
}

func (r *RW[T]) Write(val T) {
	r.mem.Store(val)
}

// Modify performs one load, merges the combined fields, and performs one
// store: (raw &^ mask) | value. Bits outside the mask are untouched. The
// load/store pair is not atomic; the caller must keep other accessors off
// the address for its duration.
func (r *RW[T]) Modify(p Positioned[T]) {
	raw := r.mem.Load()
	r.mem.Store((raw &^ p.Mask()) | p.InPosition())
}

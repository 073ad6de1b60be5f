package reg

import (
	"golang.org/x/exp/constraints"
)

// Snapshot is an immutable copy of one register load. It answers the same
// queries as a readable register without touching hardware again, and has no
// further relation to the live register.
type Snapshot[T constraints.Unsigned] struct {
	raw T
}

// Raw returns the captured register value.
func (s Snapshot[T]) Raw() T {
	return s.raw
}

// GetField extracts one field from the captured value.
func (s Snapshot[T]) GetField(d Descriptor[T]) Field[T] {
	return d.extract(s.raw)
}

// IsSet reports whether the field holds its maximum value in the capture.
func (s Snapshot[T]) IsSet(d Descriptor[T]) bool {
	return d.extract(s.raw).IsSet()
}

// MatchesAny reports whether any in-position bit of p is set in the capture.
func (s Snapshot[T]) MatchesAny(p Positioned[T]) bool {
	return s.raw&p.InPosition() != 0
}

// MatchesAll reports whether every in-position bit of p is set in the
// capture.
func (s Snapshot[T]) MatchesAll(p Positioned[T]) bool {
	want := p.InPosition()
	return s.raw&want == want
}

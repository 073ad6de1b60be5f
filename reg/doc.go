// Package reg models hardware control/status registers composed of sub-word
// bit-fields.
//
// A field is declared once as a Descriptor (mask, offset, bounds) and read or
// written through validated Field values. Several Fields combine into a
// single Combined write via the Positioned algebra, so one Modify touches
// many fields with exactly one load and one store. Registers come in three
// access modes, RO, WO, and RW, each exposing only the operations its mode
// permits through the Reader and Writer interfaces.
//
// The package never touches hardware itself; a register is bound to a Mem,
// which may be a raw memory-mapped location (see package mmio) or an
// in-process Buffer.
//
// A register wrapper must be the only live accessor of its location, and a
// RW Modify is a plain load followed by a plain store; callers sharing an
// address across threads or interrupt contexts must serialize around it.
package reg

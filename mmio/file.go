package mmio

import (
	"encoding/binary"
	"io"
	"log"

	"github.com/ezrec/mmreg/reg"

	"golang.org/x/exp/constraints"
)

// ReadWriterAt is the file surface FileMem needs.
type ReadWriterAt interface {
	io.ReaderAt
	io.WriterAt
}

// FileMem is a register location inside a little-endian register-image
// file, one whole-register access per Load or Store.
type FileMem[T constraints.Unsigned] struct {
	file   ReadWriterAt
	offset int64
}

var _ reg.Mem[uint32] = (*FileMem[uint32])(nil)

// NewFileMem binds a register location at a byte offset within an image
// file.
func NewFileMem[T constraints.Unsigned](file ReadWriterAt, offset int64) *FileMem[T] {
	return &FileMem[T]{file: file, offset: offset}
}

func (m *FileMem[T]) Load() T {
	var b [8]byte
	size := int(reg.Width[T]() / 8)
	if n, err := m.file.ReadAt(b[:size], m.offset); err != nil || n != size {
		log.Fatalf("mmreg: image read at %#x: %v", m.offset, err)
	}

	return T(binary.LittleEndian.Uint64(b[:]))
}

func (m *FileMem[T]) Store(val T) {
	var b [8]byte
	size := int(reg.Width[T]() / 8)
	binary.LittleEndian.PutUint64(b[:], uint64(val))
	if n, err := m.file.WriteAt(b[:size], m.offset); err != nil || n != size {
		log.Fatalf("mmreg: image write at %#x: %v", m.offset, err)
	}
}

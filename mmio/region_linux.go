package mmio

import (
	"os"
	"unsafe"

	"github.com/ezrec/mmreg/reg"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/unix"
)

// DevName is the physical memory device backing MapRegion.
var DevName = "/dev/mem"

// Region is a mapped window of physical address space.
type Region struct {
	name string
	base uintptr
	mem  []byte
}

// MapRegion maps size bytes of physical address space starting at hwaddr.
// A zero size maps one page; sizes round up to whole pages.
func MapRegion(name string, hwaddr uintptr, size int) (r *Region, err error) {
	if size == 0 {
		size = 4096
	}
	size += (-size) & 4095 // round up to whole pages

	file, err := os.OpenFile(DevName, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return
	}
	defer file.Close()

	mem, err := unix.Mmap(int(file.Fd()), int64(hwaddr), size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return
	}

	r = &Region{name: name, base: hwaddr, mem: mem}
	return
}

// Name returns the region's name.
func (r *Region) Name() string {
	return r.name
}

// Base returns the region's physical base address.
func (r *Region) Base() uintptr {
	return r.base
}

// Close unmaps the region. Pointers taken from it must not be used
// afterwards.
func (r *Region) Close() error {
	mem := r.mem
	r.mem = nil

	return unix.Munmap(mem)
}

// At returns the volatile register cell at a byte offset into the region.
// The offset must be aligned to the register width and inside the mapping.
func At[T constraints.Unsigned](r *Region, offset uintptr) (p *Pointer[T], err error) {
	size := uintptr(reg.Width[T]() / 8)
	if offset%size != 0 {
		err = ErrAlign
		return
	}
	if offset+size > uintptr(len(r.mem)) {
		err = ErrBounds
		return
	}

	p = NewPointer[T](unsafe.Pointer(&r.mem[offset]))
	return
}

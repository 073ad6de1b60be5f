package mmio

import (
	"sync"
	"unsafe"

	"github.com/ezrec/mmreg/reg"

	"golang.org/x/exp/constraints"
)

var (
	leaseMu sync.Mutex
	leases  = map[uintptr]struct{}{}
)

// Lease is a Pointer whose address is held in a process-wide claim table.
// While a Lease is open, no second Lease can be taken on the same address,
// which keeps the one-writer-per-register discipline checkable at runtime
// instead of resting on calling convention alone.
type Lease[T constraints.Unsigned] struct {
	Pointer[T]
	addr uintptr
}

// Claim takes the exclusive lease on an already-mapped register address.
// It fails with ErrAddressBusy while an earlier Lease on the address is
// still open.
func Claim[T constraints.Unsigned](addr uintptr) (l *Lease[T], err error) {
	if addr%uintptr(reg.Width[T]()/8) != 0 {
		err = ErrAlign
		return
	}

	leaseMu.Lock()
	defer leaseMu.Unlock()

	if _, ok := leases[addr]; ok {
		err = ErrAddressBusy
		return
	}
	leases[addr] = struct{}{}

	l = &Lease[T]{
		Pointer: Pointer[T]{ptr: unsafe.Pointer(addr)},
		addr:    addr,
	}
	return
}

// Close releases the lease. The Lease must not be used afterwards.
func (l *Lease[T]) Close() (err error) {
	leaseMu.Lock()
	defer leaseMu.Unlock()

	if _, ok := leases[l.addr]; !ok {
		err = ErrLeaseClosed
		return
	}
	delete(leases, l.addr)

	return
}

package mmio

import (
	"errors"

	"github.com/ezrec/mmreg/translate"
)

var f = translate.From

var (
	// Address errors
	ErrAlign  = errors.New(f("address not aligned to register width"))
	ErrBounds = errors.New(f("address outside mapped region"))

	// Lease errors
	ErrAddressBusy = errors.New(f("address already claimed"))
	ErrLeaseClosed = errors.New(f("lease already closed"))
)

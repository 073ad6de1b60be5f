package decl

import (
	"errors"

	"github.com/ezrec/mmreg/translate"
)

var f = translate.From

var (
	// Declaration errors
	ErrWidthMismatch  = errors.New(f("declared width does not match register type"))
	ErrFieldDuplicate = errors.New(f("field duplicated"))
	ErrValueDuplicate = errors.New(f("value duplicated"))
)

// ErrValueRange names an enumerated literal too wide for its field.
type ErrValueRange string

func (err ErrValueRange) Error() string {
	return f("value %v does not fit field", string(err))
}

// ErrRegister locates a declaration error by register.
type ErrRegister struct {
	Register string
	Err      error
}

func (err *ErrRegister) Error() string {
	return f("register %v: %v", err.Register, err.Err)
}

func (err *ErrRegister) Unwrap() error {
	return err.Err
}

// ErrField locates a declaration error by register and field.
type ErrField struct {
	Register string
	Field    string
	Err      error
}

func (err *ErrField) Error() string {
	return f("register %v field %v: %v", err.Register, err.Field, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}

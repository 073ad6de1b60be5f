package bounded

import (
	"github.com/ezrec/mmreg/translate"

	"golang.org/x/exp/constraints"
)

var f = translate.From

// ErrRange reports a value outside its [Lower, Upper] range.
type ErrRange[T constraints.Unsigned] struct {
	Value T
	Lower T
	Upper T
}

func (err ErrRange[T]) Error() string {
	return f("value %v not in range [%v, %v]", err.Value, err.Lower, err.Upper)
}

func (err ErrRange[T]) Is(target error) (ok bool) {
	_, ok = target.(ErrRange[T])
	return
}

// ErrBounds reports an inverted range.
type ErrBounds[T constraints.Unsigned] struct {
	Lower T
	Upper T
}

func (err ErrBounds[T]) Error() string {
	return f("range [%v, %v] is inverted", err.Lower, err.Upper)
}

func (err ErrBounds[T]) Is(target error) (ok bool) {
	_, ok = target.(ErrBounds[T])
	return
}

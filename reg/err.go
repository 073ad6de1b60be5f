package reg

import (
	"errors"

	"github.com/ezrec/mmreg/translate"
)

var f = translate.From

var (
	// Descriptor layout errors
	ErrWidthZero   = errors.New(f("field width is zero"))
	ErrFieldExtent = errors.New(f("field extends past register width"))
)

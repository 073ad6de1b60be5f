package main

import (
	"fmt"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mmreg/reg"
)

// pokeEnv binds script registers to backing memory.
type pokeEnv struct {
	verbose bool
	mem     func(offset int64) reg.Mem[uint32]
}

// fieldVal is a field descriptor exposed to the script.
type fieldVal struct {
	d reg.Descriptor[uint32]
}

var _ starlark.Value = fieldVal{}

func (fv fieldVal) String() string {
	return fmt.Sprintf("field(%v, %v)", fv.d.Width(), fv.d.Offset())
}
func (fv fieldVal) Type() string          { return "field" }
func (fv fieldVal) Freeze()               {}
func (fv fieldVal) Truth() starlark.Bool  { return starlark.True }
func (fv fieldVal) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: field") }

// regVal is a mode-limited register exposed to the script.
type regVal struct {
	offset int64
	mode   string
	rd     reg.Reader[uint32] // nil when write-only
	wr     reg.Writer[uint32] // nil when read-only
}

var _ starlark.Value = (*regVal)(nil)

func (rv *regVal) String() string {
	return fmt.Sprintf("reg(%#x, %q)", rv.offset, rv.mode)
}
func (rv *regVal) Type() string          { return "reg" }
func (rv *regVal) Freeze()               {}
func (rv *regVal) Truth() starlark.Bool  { return starlark.True }
func (rv *regVal) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: reg") }

// Run executes a script against the environment.
func (env *pokeEnv) Run(script string) (err error) {
	thread := &starlark.Thread{
		Name: "regpoke",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Println(msg)
		},
	}
	opts := &syntax.FileOptions{}

	globals := starlark.StringDict{
		"field":  starlark.NewBuiltin("field", env.fieldFn),
		"reg":    starlark.NewBuiltin("reg", env.regFn),
		"read":   starlark.NewBuiltin("read", env.readFn),
		"write":  starlark.NewBuiltin("write", env.writeFn),
		"modify": starlark.NewBuiltin("modify", env.modifyFn),
		"get":    starlark.NewBuiltin("get", env.getFn),
		"is_set": starlark.NewBuiltin("is_set", env.isSetFn),
	}

	_, err = starlark.ExecFileOptions(opts, thread, script, nil, globals)
	return
}

func (env *pokeEnv) fieldFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var width, offset uint
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "width", &width, "offset", &offset)
	if err != nil {
		return nil, err
	}

	d, err := reg.NewDescriptor[uint32](width, offset)
	if err != nil {
		return nil, err
	}

	return fieldVal{d: d}, nil
}

func (env *pokeEnv) regFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var offset int64
	mode := "rw"
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "offset", &offset, "mode?", &mode)
	if err != nil {
		return nil, err
	}

	mem := env.mem(offset)
	rv := &regVal{offset: offset, mode: mode}
	switch mode {
	case "ro":
		rv.rd = reg.NewRO(mem)
	case "wo":
		rv.wr = reg.NewWO(mem)
	case "rw":
		rw := reg.NewRW(mem)
		rv.rd = rw
		rv.wr = rw
	default:
		return nil, fmt.Errorf("%v: unknown mode %q", b.Name(), mode)
	}

	return rv, nil
}

func readable(name string, rv *regVal) (reg.Reader[uint32], error) {
	if rv.rd == nil {
		return nil, fmt.Errorf("%v: register %#x is write-only", name, rv.offset)
	}
	return rv.rd, nil
}

func writable(name string, rv *regVal) (reg.Writer[uint32], error) {
	if rv.wr == nil {
		return nil, fmt.Errorf("%v: register %#x is read-only", name, rv.offset)
	}
	return rv.wr, nil
}

func (env *pokeEnv) readFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var rv *regVal
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "reg", &rv)
	if err != nil {
		return nil, err
	}

	rd, err := readable(b.Name(), rv)
	if err != nil {
		return nil, err
	}

	val := rd.Read()
	if env.verbose {
		log.Printf("regpoke: read %#x -> %#x", rv.offset, val)
	}

	return starlark.MakeUint64(uint64(val)), nil
}

func (env *pokeEnv) writeFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var rv *regVal
	var val uint32
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "reg", &rv, "val", &val)
	if err != nil {
		return nil, err
	}

	wr, err := writable(b.Name(), rv)
	if err != nil {
		return nil, err
	}

	wr.Write(val)
	if env.verbose {
		log.Printf("regpoke: write %#x <- %#x", rv.offset, val)
	}

	return starlark.None, nil
}

// modifyFn folds (field, value) pairs into one combined write:
// modify(reg, f1, v1, f2, v2, ...).
func (env *pokeEnv) modifyFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
	if len(args) < 3 || len(args)%2 == 0 {
		return nil, fmt.Errorf("%v: want reg followed by field, value pairs", b.Name())
	}

	rv, ok := args[0].(*regVal)
	if !ok {
		return nil, fmt.Errorf("%v: want reg, got %v", b.Name(), args[0].Type())
	}
	wr, err := writable(b.Name(), rv)
	if err != nil {
		return nil, err
	}

	c := reg.Combine[uint32]()
	for n := 1; n < len(args); n += 2 {
		fv, ok := args[n].(fieldVal)
		if !ok {
			return nil, fmt.Errorf("%v: want field, got %v", b.Name(), args[n].Type())
		}

		var val uint32
		err = starlark.AsInt(args[n+1], &val)
		if err != nil {
			return nil, err
		}

		fd, err := fv.d.Field(val)
		if err != nil {
			return nil, err
		}
		c = c.With(fd)
	}

	wr.Modify(c)
	if env.verbose {
		log.Printf("regpoke: modify %#x mask %#x <- %#x", rv.offset, c.Mask(), c.InPosition())
	}

	return starlark.None, nil
}

func (env *pokeEnv) getFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var rv *regVal
	var fv fieldVal
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "reg", &rv, "field", &fv)
	if err != nil {
		return nil, err
	}

	rd, err := readable(b.Name(), rv)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(uint64(rd.GetField(fv.d).Val())), nil
}

func (env *pokeEnv) isSetFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var rv *regVal
	var fv fieldVal
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "reg", &rv, "field", &fv)
	if err != nil {
		return nil, err
	}

	rd, err := readable(b.Name(), rv)
	if err != nil {
		return nil, err
	}

	return starlark.Bool(rd.IsSet(fv.d)), nil
}

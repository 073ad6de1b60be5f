// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Regpoke runs a Starlark script against a register image file, or against
// a scratch register bank when no image is given. Scripts build fields and
// registers with the field() and reg() builtins and poke them with read(),
// write(), modify(), get(), and is_set().
package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/mmreg/mmio"
	"github.com/ezrec/mmreg/reg"
)

func main() {
	var image string
	var verbose bool

	flag.StringVar(&image, "f", "", "register image file (default: scratch bank)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: regpoke [-f image] [-v] script.star", os.Args[0])
	}
	script := flag.Arg(0)

	env := &pokeEnv{verbose: verbose}

	if len(image) != 0 {
		file, err := os.OpenFile(image, os.O_RDWR, 0)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer file.Close()

		env.mem = func(offset int64) reg.Mem[uint32] {
			return mmio.NewFileMem[uint32](file, offset)
		}
	} else {
		scratch := map[int64]*reg.Buffer[uint32]{}
		env.mem = func(offset int64) reg.Mem[uint32] {
			buf, ok := scratch[offset]
			if !ok {
				buf = &reg.Buffer[uint32]{}
				scratch[offset] = buf
			}
			return buf
		}
	}

	err := env.Run(script)
	if err != nil {
		log.Fatalf("%v: %v", script, err)
	}
}

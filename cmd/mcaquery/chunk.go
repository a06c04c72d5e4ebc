package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/bwkimmel/mcworld/position"
	"github.com/bwkimmel/mcworld/world"
)

type chunkCmd struct {
	dimension string
}

func (*chunkCmd) Name() string     { return "chunk" }
func (*chunkCmd) Synopsis() string { return "Print a chunk's status and section inventory." }
func (*chunkCmd) Usage() string {
	return `chunk <world> <x> <z>
Print the data version, status, and present sections of the chunk at
chunk coordinates (x, z).
`
}

func (c *chunkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dimension, "dimension", "overworld", "Dimension to query: overworld, nether, or end")
}

func (c *chunkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: chunk <world> <x> <z>")
		return subcommands.ExitUsageError
	}
	dim, ok := parseDimension(c.dimension)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid dimension %q\n", c.dimension)
		return subcommands.ExitUsageError
	}
	cx, err := strconv.ParseInt(f.Arg(1), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid x: %v\n", err)
		return subcommands.ExitUsageError
	}
	cz, err := strconv.ParseInt(f.Arg(2), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid z: %v\n", err)
		return subcommands.ExitUsageError
	}

	w, err := world.Load(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load world: %v\n", err)
		return subcommands.ExitFailure
	}

	ch, ok := w.GetChunkIn(dim, position.New(int32(cx)*16, 0, int32(cz)*16))
	if !ok {
		fmt.Println("(absent)")
		return subcommands.ExitSuccess
	}
	fmt.Printf("data_version=%d status=%s finished=%v\n", ch.DataVersion, ch.Status, ch.IsFinished())
	for i, s := range ch.Sections {
		if s == nil {
			continue
		}
		fmt.Printf("  section[%d]: palette_size=%d\n", i, len(s.Palette))
	}
	return subcommands.ExitSuccess
}

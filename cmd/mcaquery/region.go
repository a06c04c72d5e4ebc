package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/subcommands"

	"github.com/bwkimmel/mcworld/region"
	"github.com/bwkimmel/mcworld/world"
)

type regionCmd struct {
	dimension string
}

func (*regionCmd) Name() string     { return "region" }
func (*regionCmd) Synopsis() string { return "List the chunks present in a region file." }
func (*regionCmd) Usage() string {
	return `region <world> <rx> <rz>
List the chunk coordinates and status present in region (rx, rz).
`
}

func (c *regionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dimension, "dimension", "overworld", "Dimension to query: overworld, nether, or end")
}

func (c *regionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: region <world> <rx> <rz>")
		return subcommands.ExitUsageError
	}
	dim, ok := parseDimension(c.dimension)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid dimension %q\n", c.dimension)
		return subcommands.ExitUsageError
	}
	rx, err := strconv.ParseInt(f.Arg(1), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid rx: %v\n", err)
		return subcommands.ExitUsageError
	}
	rz, err := strconv.ParseInt(f.Arg(2), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid rz: %v\n", err)
		return subcommands.ExitUsageError
	}

	name := fmt.Sprintf("r.%d.%d.mca", rx, rz)
	full := filepath.Join(f.Arg(0), regionSubdir(dim), name)
	data, err := os.ReadFile(full)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read region file: %v\n", err)
		return subcommands.ExitFailure
	}
	r, err := region.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse region file: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, ch := range r.Chunks {
		fmt.Printf("(%d,%d) status=%s\n", ch.X, ch.Z, ch.Status)
	}
	return subcommands.ExitSuccess
}

func regionSubdir(dim world.Dimension) string {
	switch dim {
	case world.Nether:
		return "DIM-1/region"
	case world.TheEnd:
		return "DIM1/region"
	default:
		return "region"
	}
}

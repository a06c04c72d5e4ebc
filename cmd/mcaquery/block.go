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

type blockCmd struct {
	dimension string
}

func (*blockCmd) Name() string     { return "block" }
func (*blockCmd) Synopsis() string { return "Print the block at a world position." }
func (*blockCmd) Usage() string {
	return `block <world> <x> <y> <z>
Print the identifier and properties of the block at world position (x, y, z).
`
}

func (c *blockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dimension, "dimension", "overworld", "Dimension to query: overworld, nether, or end")
}

func (c *blockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "usage: block <world> <x> <y> <z>")
		return subcommands.ExitUsageError
	}
	dim, ok := parseDimension(c.dimension)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid dimension %q\n", c.dimension)
		return subcommands.ExitUsageError
	}
	x, y, z, err := parseXYZ(f.Arg(1), f.Arg(2), f.Arg(3))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	w, err := world.Load(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load world: %v\n", err)
		return subcommands.ExitFailure
	}

	b, ok := w.GetBlockIn(dim, position.New(x, y, z))
	if !ok {
		fmt.Println("(absent)")
		return subcommands.ExitSuccess
	}
	fmt.Println(b.String())
	return subcommands.ExitSuccess
}

func parseXYZ(xs, ys, zs string) (x, y, z int32, err error) {
	xi, err := strconv.ParseInt(xs, 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid x: %v", err)
	}
	yi, err := strconv.ParseInt(ys, 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid y: %v", err)
	}
	zi, err := strconv.ParseInt(zs, 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid z: %v", err)
	}
	return int32(xi), int32(yi), int32(zi), nil
}

func parseDimension(s string) (world.Dimension, bool) {
	switch s {
	case "overworld", "":
		return world.Overworld, true
	case "nether":
		return world.Nether, true
	case "end":
		return world.TheEnd, true
	default:
		return 0, false
	}
}

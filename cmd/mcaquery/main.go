// Command mcaquery answers read-only queries against a Minecraft Java
// Edition world directory: a single block, a chunk's summary, or a
// region's present-chunk inventory. It never writes to the world;
// mcstrings' patch and compact commands, which do, have no equivalent
// here.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&blockCmd{}, "")
	subcommands.Register(&chunkCmd{}, "")
	subcommands.Register(&regionCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

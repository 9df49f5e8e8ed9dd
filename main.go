package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lepinkainen/videoinfo/cmd"
	"github.com/lepinkainen/videoinfo/types"
)

var Version = "dev"

type CLI struct {
	Info    cmd.InfoCmd      `cmd:"" default:"withargs" help:"Collect video metadata and print a report"`
	Formats cmd.FormatsCmd   `cmd:"" help:"List the supported container formats"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("videoinfo"),
		kong.Description("Interactive video metadata collection and reporting"),
		kong.Vars{"version": Version},
	)

	if err := ctx.Run(&types.AppContext{Version: Version}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

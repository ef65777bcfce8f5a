package cmd

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rvform/rvgo/extract"
)

var DumpFlag = &cli.BoolFlag{
	Name:  "dump",
	Usage: "dump the full field catalog of every listed form",
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func Forms(ctx *cli.Context) error {
	names := ctx.Args().Slice()
	if len(names) == 0 {
		names = extract.Default().Names()
	}
	w := ctx.App.Writer
	for _, name := range names {
		x, err := extract.Lookup(name)
		if err != nil {
			return err
		}
		f := x.Form()
		fields := make([]string, 0, len(f.Fields()))
		for _, fld := range f.Fields() {
			fields = append(fields, fld.String())
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			x.Name(), f.Name(), f.Width(), x.ImmediateType(), strings.Join(fields, " ")); err != nil {
			return err
		}
		if ctx.Bool(DumpFlag.Name) {
			dumpConfig.Fdump(w, f.Fields())
		}
	}
	return nil
}

var FormsCommand = &cli.Command{
	Name:        "forms",
	Usage:       "List instruction forms and their fields",
	Description: "List the extractor of every form and xform, or only the named ones: name, form, width, immediate kind and fields.",
	ArgsUsage:   "[name...]",
	Action:      Forms,
	Flags: []cli.Flag{
		DumpFlag,
	},
}

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rvform/rvgo/inst"
)

var OutFilePerm = os.FileMode(0o755)

var (
	TableFlag = &cli.PathFlag{
		Name:      "table",
		Usage:     "path of a JSON instruction table. Defaults to the built-in RV64GCV + AndeStar table.",
		TakesFile: true,
	}
	XLENFlag = &cli.UintFlag{
		Name:  "xlen",
		Usage: "register width the table is built for, 32 or 64",
		Value: 64,
	}
	FormFlag = &cli.StringFlag{
		Name:  "form",
		Usage: "form or xform name. Decodes against that extractor only, without instruction metadata.",
	}
	MnemonicFlag = &cli.StringFlag{
		Name:  "mnemonic",
		Usage: "decode every opcode as this instruction instead of matching it against the table",
	}
	OutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "output JSON path, or '-' for stdout",
		Value:     "-",
		TakesFile: true,
	}
	PProfCPUFlag = &cli.BoolFlag{
		Name:  "pprof.cpu",
		Usage: "enable pprof cpu profiling",
	}
)

// loadTable returns the table selected by the table and xlen flags.
func loadTable(ctx *cli.Context) (*inst.Table, error) {
	xlen := ctx.Uint(XLENFlag.Name)
	if xlen != 32 && xlen != 64 {
		return nil, fmt.Errorf("unsupported xlen %d", xlen)
	}
	if path := ctx.Path(TableFlag.Name); path != "" {
		return inst.LoadTable(path, xlen)
	}
	if xlen == 64 {
		return inst.Default(), nil
	}
	recs, err := inst.DefaultRecords()
	if err != nil {
		return nil, err
	}
	return inst.NewTable(xlen, recs)
}

// parseOpcodes accepts hex with or without 0x, leading zeros allowed.
func parseOpcodes(args []string) ([]uint64, error) {
	ops := make([]uint64, 0, len(args))
	for _, a := range args {
		s := a
		if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
			s = s[2:]
		}
		v, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode %q: %w", a, err)
		}
		ops = append(ops, v)
	}
	return ops, nil
}

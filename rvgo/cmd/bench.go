package cmd

import (
	"fmt"
	"golang.org/x/exp/slog"
	"time"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
)

var IterationsFlag = &cli.UintFlag{
	Name:  "iterations",
	Usage: "number of passes over the table",
	Value: 1000,
}

// Bench decodes the canonical encoding of every table entry, repeatedly, and
// reports the decode rate. Canonical encodings that a more specific entry
// claims first are counted as shadowed.
func Bench(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
	l := Logger(ctx.App.ErrWriter, slog.LevelInfo)

	tbl, err := loadTable(ctx)
	if err != nil {
		return fmt.Errorf("failed to load instruction table: %w", err)
	}
	entries := tbl.Entries()
	shadowed := 0
	for _, e := range entries {
		in, err := tbl.Match(e.Match)
		if err != nil {
			return fmt.Errorf("canonical encoding of %s does not decode: %w", e.Meta.Mnemonic(), err)
		}
		if in.Mnemonic != e.Meta.Mnemonic() {
			shadowed++
			l.Debug("shadowed", "mnemonic", e.Meta.Mnemonic(), "by", in.Mnemonic, "insn", HexU32(e.Match))
		}
	}

	iterations := ctx.Uint(IterationsFlag.Name)
	start := time.Now()
	var decoded, dasmBytes uint64
	for i := uint(0); i < iterations; i++ {
		if i%100 == 0 {
			if err := ctx.Context.Err(); err != nil {
				return err
			}
		}
		for _, e := range entries {
			in, err := tbl.Match(e.Match)
			if err != nil {
				return err
			}
			dasmBytes += uint64(len(in.Dasm()))
			decoded++
		}
	}
	delta := time.Since(start)
	l.Info("done",
		"xlen", tbl.XLEN(),
		"entries", len(entries),
		"shadowed", shadowed,
		"decoded", decoded,
		"dasm-bytes", dasmBytes,
		"ips", float64(decoded)/(float64(delta)/float64(time.Second)),
	)
	return nil
}

var BenchCommand = &cli.Command{
	Name:        "bench",
	Usage:       "Measure decode and disassembly throughput",
	Description: "Decode and disassemble the canonical encoding of every table entry for a number of iterations, and log the rate.",
	Action:      Bench,
	Flags: []cli.Flag{
		TableFlag,
		XLENFlag,
		IterationsFlag,
		PProfCPUFlag,
	},
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum-optimism/rvform/rvgo/cmd"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rvform"
	app.Usage = "Inspect RISC-V instruction encodings"
	app.Description = "rvform resolves RISC-V opcodes (RV64GC, vector and AndeStar V5 custom) to their " +
		"form, reports register operands, immediates and control fields, and disassembles them. " +
		"The built-in instruction table can be replaced with a JSON table via --table."
	app.Commands = []*cli.Command{
		cmd.DecodeCommand,
		cmd.FormsCommand,
		cmd.BenchCommand,
	}
	return app
}

func main() {
	app := newApp()
	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			<-c
			cancel()
			fmt.Fprintln(os.Stderr, "\r\nInterrupted, stopping...")
		}
	}()

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			_, _ = fmt.Fprintf(os.Stderr, "rvform: interrupted\n")
			os.Exit(130)
		}
		_, _ = fmt.Fprintf(os.Stderr, "rvform: %v\n", err)
		os.Exit(1)
	}
}

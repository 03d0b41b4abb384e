// Package main implements the main entry point for a CHIP-8 virtual machine
package main

import (
	"errors"
	"os"

	"github.com/retroenv/chip8go/internal/cli"
	"github.com/retroenv/chip8go/internal/config"
	"github.com/retroenv/chip8go/internal/emulator"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Trace, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			emulator.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Trace, opts.Quiet)
	emulator.PrintBanner(logger, opts, version, commit, date)

	if err := emulator.Run(ctx, logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

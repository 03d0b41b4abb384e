// Package emulator wires the machine, its collaborators, and the ROM file
// loading into a runnable application.
package emulator

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/loader"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/chip8go/internal/terminal"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Run loads the ROM named by the options and drives the machine until the
// context is cancelled, the single-step input terminates the run, or the
// program fails.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	dialect, err := chip8.ParseDialect(opts.Dialect)
	if err != nil {
		return err
	}

	machine := chip8.NewWithDialect(logger, chip8.NewRandomSource(opts.Seed), dialect)

	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM file %s: %w", opts.Input, err)
	}
	if err := machine.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM into memory: %w", err)
	}

	PrintInfo(logger, opts, len(rom))

	runner := chip8.NewRunner(logger, machine, chip8.RunnerOptions{
		Stepping: opts.Stepping,
		Frames:   terminal.New(),
	})

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("running %s: %w", opts.Input, err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8go", log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the ROM being run.
func PrintInfo(logger *log.Logger, opts options.Program, romSize int) {
	if opts.Quiet {
		return
	}

	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("bytes", romSize),
		log.String("dialect", opts.Dialect))

	if opts.Stepping {
		logger.Info("Single-step mode enabled")
	}
}

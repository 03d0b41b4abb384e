// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: chip8go [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file to run as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if moreThanOneSet(opts.Quiet, opts.Debug, opts.Trace) {
		return &UsageError{
			msg: "The flags -q, -debug and -trace are mutually exclusive",
		}
	}

	// Validate dialect name
	if _, err := chip8.ParseDialect(opts.Dialect); err != nil {
		return err
	}
	return nil
}

func moreThanOneSet(values ...bool) bool {
	count := 0
	for _, set := range values {
		if set {
			count++
		}
	}
	return count > 1
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Dialect, "dialect", "original", "interpretation of the ambiguous legacy opcodes (original/extended)")
	flags.Uint64Var(&opts.Seed, "seed", chip8.DefaultSeed, "seed for the deterministic random number source")
	flags.BoolVar(&opts.Stepping, "step", false, "execute one cycle at a time, confirmed on the console")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Trace, "trace", false, "enable trace logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime/debug"

	"github.com/arceos-org/axrun/internal/axrun"
	"github.com/arceos-org/axrun/internal/sys"
)

const (
	name = "axrun"

	commandBuild = "build"
	commandRun   = "run"

	usageMessage = `Usage of 'axrun':
    axrun <command> [flags...]

Commands:
    build    build the kernel image for an architecture
    run      build the kernel image and boot it in QEMU

Run 'axrun <command> -h' for the flags of a command.
`
)

// Set on build.
var version = "dev"

type flags struct {
	command string
	spec    axrun.Spec

	root    string
	version bool
	debug   bool

	flagSet *flag.FlagSet
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		spec: axrun.Spec{Arch: sys.RISCV64},
	}

	if len(args) < 1 {
		return nil, failUsage(output, "no command given")
	}

	switch args[0] {
	case commandBuild, commandRun:
		flags.command = args[0]
	case "-h", "-help", "--help":
		fmt.Fprint(output, usageMessage)
		return nil, &ParseArgsError{msg: "help requested", err: flag.ErrHelp}
	default:
		return nil, failUsage(output, "unknown command: "+args[0])
	}

	flags.initFlagSet(output)

	err := flags.flagSet.Parse(args[1:])
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non
	// error exit code.
	if flags.version {
		flags.printVersionInformation()
		return nil, &ParseArgsError{msg: "version requested", err: flag.ErrHelp}
	}

	if flags.flagSet.NArg() > 0 {
		return nil, flags.fail(
			"unexpected argument: "+flags.flagSet.Arg(0), nil,
		)
	}

	// The project root is resolved once here. All derived paths are
	// anchored to it for the rest of the execution.
	root, err := filepath.Abs(flags.root)
	if err != nil {
		return nil, flags.fail("resolve project root", err)
	}

	flags.spec.Root = root

	return flags, nil
}

func (f *flags) initFlagSet(output io.Writer) {
	fs := flag.NewFlagSet(name+" "+f.command, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.TextVar(
		&f.spec.Arch,
		"arch",
		f.spec.Arch,
		"target architecture: riscv64, aarch64, x86_64, loongarch64",
	)

	fs.StringVar(
		&f.root,
		"root",
		".",
		"project root containing configs/ and Cargo.toml",
	)

	fs.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = fs
}

// failUsage reports a bad command invocation: the error line first, then
// the global usage.
func failUsage(output io.Writer, msg string) error {
	err := &ParseArgsError{msg: msg}
	fmt.Fprintln(output, err.Error())
	fmt.Fprint(output, usageMessage)

	return err
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() {
	out := f.flagSet.Output()

	fmt.Fprintf(out, "%s: %s\n", name, version)

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintln(out, buildInfo.Main.Version)
	}
}

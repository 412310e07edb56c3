// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/arceos-org/axrun/internal/axrun"
	"github.com/arceos-org/axrun/internal/qemu"
)

// IO provides the standard streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (f *flags) run(ctx context.Context, cfg IO) error {
	switch f.command {
	case commandBuild:
		return axrun.Build(ctx, &f.spec, cfg.Stdout, cfg.Stderr)
	case commandRun:
		return axrun.Run(ctx, &f.spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	default:
		// parseArgs only yields known commands.
		return fmt.Errorf("unknown command: %s", f.command)
	}
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help or version is requested. Exit
	// without error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// Parse errors are already printed along with the usage, so only
	// other errors need to be reported here.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 1
}

func handleRunError(err error) int {
	exitCode := 1

	var qemuErr *qemu.CommandError
	if errors.As(err, &qemuErr) && qemuErr.ExitCode != 0 {
		exitCode = qemuErr.ExitCode
	}

	var toolErr *axrun.ToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode != 0 {
		exitCode = toolErr.ExitCode
	}

	slog.Error(err.Error())

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = flags.run(ctx, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

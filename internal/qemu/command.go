// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"
	"strings"
)

// Command is a single QEMU command that can be run.
type Command struct {
	name string
	args []string
}

// NewCommand compiles the QEMU command line for the given spec.
func NewCommand(spec CommandSpec) (*Command, error) {
	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, fmt.Errorf("build arguments: %w", err)
	}

	cmd := &Command{
		name: spec.Executable,
		args: args,
	}

	return cmd, nil
}

// String returns the full command line.
func (c *Command) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

// Args returns the compiled argument strings without the binary name.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

// Run executes QEMU and waits for it to exit.
//
// The guest is interactive, so the given standard streams are wired to the
// child directly and its output is never captured. Any failure is returned
// as a [CommandError] carrying the exit code to propagate.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	exitCode := 1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		exitCode = exitErr.ExitCode()
	}

	return &CommandError{
		Err:      fmt.Errorf("%s: %w", c.name, err),
		ExitCode: exitCode,
	}
}

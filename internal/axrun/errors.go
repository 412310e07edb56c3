// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun

import (
	"errors"
	"os/exec"
)

// ErrConfigNotFound is returned if the per-arch kernel config does not
// exist in the project's configs directory.
var ErrConfigNotFound = errors.New("config file not found")

// ToolError wraps a failed external tool invocation.
type ToolError struct {
	// Tool names the failed step for diagnostics.
	Tool string

	Err error

	// ExitCode is the code to terminate with. It is the tool's own exit
	// code if it ran and failed, or 1 if it could not be spawned.
	ExitCode int
}

// Error implements the [error] interface.
func (e *ToolError) Error() string {
	return e.Tool + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ToolError) Is(other error) bool {
	_, ok := other.(*ToolError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ToolError) Unwrap() error {
	return e.Err
}

func newToolError(tool string, err error) *ToolError {
	exitCode := 1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		exitCode = exitErr.ExitCode()
	}

	return &ToolError{
		Tool:     tool,
		Err:      err,
		ExitCode: exitCode,
	}
}

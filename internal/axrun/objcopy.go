// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/arceos-org/axrun/internal/sys"
)

const (
	objcopyBin         = "rust-objcopy"
	objcopyInstallHint = "install with: cargo install cargo-binutils"
)

// objcopy strips the built ELF into a flat binary image that firmware can
// load directly.
func objcopy(
	ctx context.Context,
	paths Paths,
	spec sys.Spec,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, objcopyBin,
		"--binary-architecture="+spec.ObjcopyArch,
		paths.ELF,
		"--strip-all",
		"-O", "binary",
		paths.Bin,
	)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	slog.Debug("Running objcopy", slog.String("command", cmd.String()))

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// A spawn failure means the tool is not installed, which deserves a
	// hint. Everything else is the tool's own failure.
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return &ToolError{
			Tool:     objcopyBin,
			Err:      fmt.Errorf("%w (%s)", err, objcopyInstallHint),
			ExitCode: 1,
		}
	}

	return newToolError(objcopyBin, err)
}

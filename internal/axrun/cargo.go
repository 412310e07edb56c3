// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun

import (
	"context"
	"io"
	"log/slog"
	"os/exec"

	"github.com/arceos-org/axrun/internal/sys"
)

const (
	cargoBin     = "cargo"
	cargoFeature = "axstd"
)

// cargoBuild compiles the kernel image for the given target in release
// profile. The child inherits the given standard streams; its output is
// neither captured nor parsed.
func cargoBuild(
	ctx context.Context,
	paths Paths,
	spec sys.Spec,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, cargoBin,
		"build",
		"--release",
		"--target", spec.Target,
		"--features", cargoFeature,
		"--manifest-path", paths.Manifest,
	)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	slog.Debug("Running cargo", slog.String("command", cmd.String()))

	err := cmd.Run()
	if err != nil {
		return newToolError("cargo build", err)
	}

	return nil
}

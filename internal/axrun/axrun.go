// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/arceos-org/axrun/internal/diskimg"
	"github.com/arceos-org/axrun/internal/qemu"
	"github.com/arceos-org/axrun/internal/sys"
)

// Spec describes a single build or run.
type Spec struct {
	// Arch selects the guest architecture. It parameterizes every step of
	// the workflow.
	Arch sys.Arch

	// Root is the absolute path of the project root that contains the
	// configs directory and the cargo manifest.
	Root string
}

func (s *Spec) resolve() (sys.Spec, Paths, error) {
	archSpec, err := sys.SpecFor(s.Arch)
	if err != nil {
		return sys.Spec{}, Paths{}, err
	}

	paths := NewPaths(s.Root, s.Arch, archSpec)

	slog.Debug("Resolved project paths",
		slog.String("root", s.Root),
		slog.String("target", archSpec.Target))

	return archSpec, paths, nil
}

// Build installs the architecture config and compiles the kernel image.
func Build(
	ctx context.Context,
	spec *Spec,
	stdout, stderr io.Writer,
) error {
	archSpec, paths, err := spec.resolve()
	if err != nil {
		return err
	}

	err = InstallConfig(paths, stdout)
	if err != nil {
		return err
	}

	err = cargoBuild(ctx, paths, archSpec, stdout, stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout,
		"Build complete for %s (%s)\n",
		spec.Arch, archSpec.Target,
	)

	return nil
}

// Run builds the kernel image and boots it in QEMU with the fabricated
// disk image attached.
func Run(
	ctx context.Context,
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	archSpec, paths, err := spec.resolve()
	if err != nil {
		return err
	}

	err = InstallConfig(paths, stdout)
	if err != nil {
		return err
	}

	err = cargoBuild(ctx, paths, archSpec, stdout, stderr)
	if err != nil {
		return err
	}

	err = diskimg.Create(paths.DiskImage)
	if err != nil {
		return fmt.Errorf("disk image: %w", err)
	}

	fmt.Fprintf(stdout,
		"Created disk image: %s (%dMB)\n",
		paths.DiskImage, diskimg.Size/(1<<20),
	)

	// The x86_64 q35 machine boots the ELF directly, no conversion needed.
	if spec.Arch != sys.X86_64 {
		err = objcopy(ctx, paths, archSpec, stdout, stderr)
		if err != nil {
			return err
		}
	}

	qemuSpec, err := qemu.CommandSpecFor(
		spec.Arch, paths.ELF, paths.Bin, paths.DiskImage,
	)
	if err != nil {
		return err
	}

	cmd, err := qemu.NewCommand(qemuSpec)
	if err != nil {
		return fmt.Errorf("qemu command: %w", err)
	}

	fmt.Fprintln(stdout, "Running: "+cmd.String())

	return cmd.Run(ctx, stdin, stdout, stderr)
}

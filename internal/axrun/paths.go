// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun

import (
	"path/filepath"

	"github.com/arceos-org/axrun/internal/sys"
)

const (
	configDirName  = "configs"
	configFileName = ".axconfig.toml"
	manifestName   = "Cargo.toml"
	targetDirName  = "target"
	imageName      = "arceos-readblk"
	diskImageName  = "disk.img"
)

// Paths holds all artifact locations derived from the project root and the
// selected architecture.
type Paths struct {
	// ConfigSrc is the per-arch kernel config shipped with the project.
	ConfigSrc string

	// ConfigDst is the well-known config name the kernel build reads.
	ConfigDst string

	// Manifest is the cargo manifest of the kernel crate.
	Manifest string

	// ELF is the image produced by cargo.
	ELF string

	// Bin is the flat binary produced by objcopy.
	Bin string

	// DiskImage is the fabricated virtio disk image.
	DiskImage string
}

// NewPaths derives the artifact paths for arch below root. Root must be
// absolute.
func NewPaths(root string, arch sys.Arch, spec sys.Spec) Paths {
	releaseDir := filepath.Join(root, targetDirName, spec.Target, "release")

	return Paths{
		ConfigSrc: filepath.Join(root, configDirName, string(arch)+".toml"),
		ConfigDst: filepath.Join(root, configFileName),
		Manifest:  filepath.Join(root, manifestName),
		ELF:       filepath.Join(releaseDir, imageName),
		Bin:       filepath.Join(releaseDir, imageName+".bin"),
		DiskImage: filepath.Join(root, targetDirName, diskImageName),
	}
}

// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arceos-org/axrun/internal/axrun"
	"github.com/arceos-org/axrun/internal/sys"
)

func TestNewPaths(t *testing.T) {
	archSpec, err := sys.SpecFor(sys.RISCV64)
	require.NoError(t, err)

	paths := axrun.NewPaths("/proj", sys.RISCV64, archSpec)

	assert.Equal(t, "/proj/configs/riscv64.toml", paths.ConfigSrc)
	assert.Equal(t, "/proj/.axconfig.toml", paths.ConfigDst)
	assert.Equal(t, "/proj/Cargo.toml", paths.Manifest)
	assert.Equal(t,
		"/proj/target/riscv64gc-unknown-none-elf/release/arceos-readblk",
		paths.ELF)
	assert.Equal(t,
		"/proj/target/riscv64gc-unknown-none-elf/release/arceos-readblk.bin",
		paths.Bin)
	assert.Equal(t, "/proj/target/disk.img", paths.DiskImage)
}

func TestNewPathsPerArchTarget(t *testing.T) {
	for _, arch := range sys.Supported() {
		t.Run(string(arch), func(t *testing.T) {
			archSpec, err := sys.SpecFor(arch)
			require.NoError(t, err)

			paths := axrun.NewPaths("/proj", arch, archSpec)

			assert.Contains(t, paths.ELF, archSpec.Target)
			assert.Contains(t, paths.ConfigSrc, string(arch))
		})
	}
}

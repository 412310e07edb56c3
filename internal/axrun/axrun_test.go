// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arceos-org/axrun/internal/axrun"
	"github.com/arceos-org/axrun/internal/sys"
)

func TestBuildMissingConfig(t *testing.T) {
	spec := &axrun.Spec{
		Arch: sys.AARCH64,
		Root: t.TempDir(),
	}

	var stdout, stderr bytes.Buffer

	// The config check fails before any external tool is spawned.
	err := axrun.Build(context.Background(), spec, &stdout, &stderr)
	require.ErrorIs(t, err, axrun.ErrConfigNotFound)
	assert.Contains(t, err.Error(), "aarch64.toml")
}

func TestBuildUnknownArch(t *testing.T) {
	spec := &axrun.Spec{
		Arch: "mips",
		Root: t.TempDir(),
	}

	var stdout, stderr bytes.Buffer

	err := axrun.Build(context.Background(), spec, &stdout, &stderr)
	require.ErrorIs(t, err, sys.ErrArchNotSupported)
}

func TestRunMissingConfig(t *testing.T) {
	spec := &axrun.Spec{
		Arch: sys.LOONGARCH64,
		Root: t.TempDir(),
	}

	var stdin, stdout, stderr bytes.Buffer

	err := axrun.Run(context.Background(), spec, &stdin, &stdout, &stderr)
	require.ErrorIs(t, err, axrun.ErrConfigNotFound)
}

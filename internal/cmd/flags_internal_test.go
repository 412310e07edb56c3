// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arceos-org/axrun/internal/sys"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedCmd  string
		expectedArch sys.Arch
		errMsg       string
	}{
		{
			name:         "build default arch",
			args:         []string{"build"},
			expectedCmd:  commandBuild,
			expectedArch: sys.RISCV64,
		},
		{
			name:         "run with arch",
			args:         []string{"run", "-arch", "aarch64"},
			expectedCmd:  commandRun,
			expectedArch: sys.AARCH64,
		},
		{
			name:         "run with double dash arch",
			args:         []string{"run", "--arch", "loongarch64"},
			expectedCmd:  commandRun,
			expectedArch: sys.LOONGARCH64,
		},
		{
			name:   "no command",
			args:   []string{},
			errMsg: "no command given",
		},
		{
			name:   "unknown command",
			args:   []string{"clean"},
			errMsg: "unknown command",
		},
		{
			name:   "unknown flag",
			args:   []string{"build", "-frobnicate"},
			errMsg: "flag parse",
		},
		{
			name:   "unknown arch",
			args:   []string{"build", "-arch", "mips"},
			errMsg: "flag parse",
		},
		{
			name:   "stray positional argument",
			args:   []string{"build", "stray"},
			errMsg: "unexpected argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output strings.Builder

			flags, err := parseArgs(tt.args, &output)
			if tt.errMsg != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, &ParseArgsError{})
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCmd, flags.command)
			assert.Equal(t, tt.expectedArch, flags.spec.Arch)
		})
	}
}

func TestParseArgsUnknownArchListsSupported(t *testing.T) {
	var output strings.Builder

	_, err := parseArgs([]string{"build", "-arch", "mips"}, &output)
	require.Error(t, err)

	for _, arch := range sys.Supported() {
		assert.Contains(t, output.String(), string(arch))
	}
}

func TestParseArgsRoot(t *testing.T) {
	t.Run("defaults to working directory", func(t *testing.T) {
		var output strings.Builder

		flags, err := parseArgs([]string{"build"}, &output)
		require.NoError(t, err)

		assert.True(t, filepath.IsAbs(flags.spec.Root))
	})

	t.Run("explicit root is made absolute", func(t *testing.T) {
		var output strings.Builder

		dir := t.TempDir()

		flags, err := parseArgs([]string{"run", "-root", dir}, &output)
		require.NoError(t, err)

		assert.Equal(t, dir, flags.spec.Root)
	})
}

func TestParseArgsVersion(t *testing.T) {
	var output strings.Builder

	_, err := parseArgs([]string{"build", "-version"}, &output)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, output.String(), name)
}

func TestParseArgsHelp(t *testing.T) {
	var output strings.Builder

	_, err := parseArgs([]string{"-h"}, &output)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, output.String(), "Usage")
}

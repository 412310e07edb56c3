// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package axrun

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// InstallConfig copies the per-arch kernel config into place as
// .axconfig.toml below the project root, replacing any previous content.
// The copy does not need to be atomic, the build reads it only afterwards.
func InstallConfig(paths Paths, stdout io.Writer) error {
	src, err := os.Open(paths.ConfigSrc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, paths.ConfigSrc)
		}

		return fmt.Errorf("open config: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(paths.ConfigDst)
	if err != nil {
		return fmt.Errorf("create %s: %w", paths.ConfigDst, err)
	}

	_, err = io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy %s: %w", paths.ConfigSrc, err)
	}

	err = dst.Close()
	if err != nil {
		return fmt.Errorf("close %s: %w", paths.ConfigDst, err)
	}

	fmt.Fprintf(stdout,
		"Installed config: %s -> %s\n",
		paths.ConfigSrc, configFileName,
	)

	return nil
}

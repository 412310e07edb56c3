// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package axrun drives the build-and-run workflow for the arceos-readblk
// kernel image: install the architecture config, run cargo, fabricate the
// disk image, convert the ELF and boot the result in QEMU.
package axrun

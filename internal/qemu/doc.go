// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package qemu assembles and runs qemu-system commands for booting the
// kernel image with a virtio block device attached.
package qemu

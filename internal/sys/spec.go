// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package sys

import "fmt"

// Spec holds the toolchain parameters for building and running the kernel
// image on a single architecture.
type Spec struct {
	// Target is the code generation target triple passed to cargo.
	Target string

	// Platform is the ArceOS platform the architecture config is written
	// for.
	Platform string

	// ObjcopyArch selects the objcopy binary architecture when converting
	// the ELF into a flat binary.
	ObjcopyArch string
}

var specs = map[Arch]Spec{
	RISCV64: {
		Target:      "riscv64gc-unknown-none-elf",
		Platform:    "riscv64-qemu-virt",
		ObjcopyArch: "riscv64",
	},
	AARCH64: {
		Target:      "aarch64-unknown-none-softfloat",
		Platform:    "aarch64-qemu-virt",
		ObjcopyArch: "aarch64",
	},
	X86_64: {
		Target:      "x86_64-unknown-none",
		Platform:    "x86-pc",
		ObjcopyArch: "x86_64",
	},
	LOONGARCH64: {
		Target:      "loongarch64-unknown-none",
		Platform:    "loongarch64-qemu-virt",
		ObjcopyArch: "loongarch64",
	},
}

// SpecFor returns the build parameters for arch.
func SpecFor(arch Arch) (Spec, error) {
	spec, exists := specs[arch]
	if !exists {
		return Spec{}, fmt.Errorf(
			"%w: %s (supported: %s)",
			ErrArchNotSupported, arch, supportedNames(),
		)
	}

	return spec, nil
}

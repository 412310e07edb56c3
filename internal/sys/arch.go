// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package sys

import (
	"errors"
	"fmt"
	"strings"
)

// Arch identifies a guest CPU architecture the kernel image can be built
// for. It matches the suffix of the qemu-system binary for that guest.
type Arch string

// Supported guest architectures.
const (
	RISCV64     Arch = "riscv64"
	AARCH64     Arch = "aarch64"
	X86_64      Arch = "x86_64"
	LOONGARCH64 Arch = "loongarch64"
)

var supported = []Arch{RISCV64, AARCH64, X86_64, LOONGARCH64}

var ErrArchNotSupported = errors.New("architecture not supported")

// Supported returns all architectures known to the tool.
func Supported() []Arch {
	return supported
}

func supportedNames() string {
	names := make([]string, len(supported))
	for idx, arch := range supported {
		names[idx] = string(arch)
	}

	return strings.Join(names, ", ")
}

// String implements [flag.Value].
func (a *Arch) String() string {
	return string(*a)
}

// Set implements [flag.Value]. It rejects unknown architectures with an
// error that lists the supported set.
func (a *Arch) Set(s string) error {
	switch Arch(s) {
	case RISCV64, AARCH64, X86_64, LOONGARCH64:
		*a = Arch(s)
	default:
		return fmt.Errorf(
			"%w: %s (supported: %s)",
			ErrArchNotSupported, s, supportedNames(),
		)
	}

	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (a Arch) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Arch) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

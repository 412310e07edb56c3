// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

package qemu

import (
	"fmt"
	"strconv"

	"github.com/arceos-org/axrun/internal/sys"
)

const (
	machineTypeQ35  = "q35"
	machineTypeVirt = "virt"

	// Guest memory in MiB and number of guest CPUs. The kernel under test
	// is single core and does not need more.
	memorySizeMiB = 128
	numCPUs       = 1

	diskDeviceID = "disk0"
)

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Kernel image to boot. Either an ELF or a flat binary, depending on
	// what the machine's firmware can load.
	Kernel string

	// QEMU machine type to use.
	Machine string

	// CPU model to use. Empty leaves the machine default.
	CPU string

	// BIOS selects the boot firmware. Empty omits the -bios argument.
	BIOS string

	// Memory for the machine in MiB.
	Memory uint64

	// Number of CPUs for the guest.
	SMP uint64

	// DiskImage is attached to the guest as a virtio-blk-pci device.
	DiskImage string
}

// CommandSpecFor returns the spec for booting the kernel image on arch with
// the disk image attached.
//
// The riscv64 virt machine boots the flat binary via the default OpenSBI
// firmware. The aarch64 and loongarch64 virt machines load the flat binary
// directly. Only the x86_64 q35 machine consumes the ELF, so elfPath is
// ignored for all other architectures and binPath for x86_64.
func CommandSpecFor(
	arch sys.Arch,
	elfPath, binPath, diskPath string,
) (CommandSpec, error) {
	spec := CommandSpec{
		Executable: "qemu-system-" + string(arch),
		Kernel:     binPath,
		Machine:    machineTypeVirt,
		Memory:     memorySizeMiB,
		SMP:        numCPUs,
		DiskImage:  diskPath,
	}

	switch arch {
	case sys.RISCV64:
		spec.BIOS = "default"
	case sys.AARCH64:
		spec.CPU = "cortex-a72"
	case sys.X86_64:
		spec.Machine = machineTypeQ35
		spec.Kernel = elfPath
	case sys.LOONGARCH64:
	default:
		return CommandSpec{}, fmt.Errorf(
			"%w: %s", sys.ErrArchNotSupported, arch,
		)
	}

	return spec, nil
}

// arguments compiles the argument list for the QEMU command. The disk
// attachment always comes last, after the architecture specific block.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		UniqueArg("m", strconv.FormatUint(s.Memory, 10)+"M"),
		UniqueArg("smp", strconv.FormatUint(s.SMP, 10)),
		UniqueArg("nographic"),
	}

	if s.CPU != "" {
		args = append(args, UniqueArg("cpu", s.CPU))
	}

	if s.Machine != "" {
		args = append(args, UniqueArg("machine", s.Machine))
	}

	if s.BIOS != "" {
		args = append(args, UniqueArg("bios", s.BIOS))
	}

	args = append(args, UniqueArg("kernel", s.Kernel))

	args = append(args,
		RepeatableArg("drive",
			"file="+s.DiskImage,
			"format=raw",
			"if=none",
			"id="+diskDeviceID,
		),
		RepeatableArg("device", "virtio-blk-pci", "drive="+diskDeviceID),
	)

	return args
}

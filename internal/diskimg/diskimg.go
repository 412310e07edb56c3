// SPDX-FileCopyrightText: 2025 ArceOS Contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package diskimg fabricates the virtio test disk image.
//
// The image does not contain a filesystem. Its first sector mimics a FAT
// boot sector just closely enough that the kernel under test can read the
// OEM ID at bytes 3..11 to verify block I/O, and common tooling recognizes
// the file as a FAT-ish volume.
package diskimg

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	// Size is the total image size in bytes.
	Size = 0x0400_0000

	// SectorSize is the size of the signed boot sector.
	SectorSize = 512

	// oemID is the 8 byte OEM ID field at offset 3 of the boot sector. The
	// kernel parses it as UTF-8 text.
	oemID = "mkfs.fat"

	bytesPerSector = 512
)

// BootSector returns the signed first sector of the image.
//
// Bytes 0..3 are the x86 boot jump (JMP SHORT 0x3C; NOP), bytes 3..11 the
// OEM ID and bytes 11..13 the little-endian bytes-per-sector field. All
// other BPB fields stay zero.
func BootSector() [SectorSize]byte {
	var sector [SectorSize]byte

	sector[0] = 0xeb
	sector[1] = 0x3c
	sector[2] = 0x90

	copy(sector[3:11], oemID)

	binary.LittleEndian.PutUint16(sector[11:13], bytesPerSector)

	return sector
}

// Create writes a fresh image to path, truncating any existing file.
//
// Only the boot sector is written. The file is then extended to [Size], so
// the filesystem may back the tail sparsely.
func Create(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	sector := BootSector()

	_, err = file.Write(sector[:])
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write boot sector: %w", err)
	}

	err = file.Truncate(Size)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("extend to %d bytes: %w", Size, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

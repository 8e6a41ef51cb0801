// internal/region/map_unix.go
//go:build unix

package region

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map exposes size bytes at offset of path as a region.
//
// On a Linux target path is usually /dev/mem and offset the physical
// address of a RAM carve-out that the kernel leaves untouched across a
// warm reboot. Any regular file works too (development, tests).
// The returned closer unmaps the memory.
func Map(path string, offset int64, size int, wordSize int) (*Region, func() error, error) {
	if path == "" {
		return nil, nil, errors.New("region: map path required")
	}
	if size <= 0 {
		return nil, nil, fmt.Errorf("region: invalid map size %d", size)
	}
	if offset < 0 {
		return nil, nil, fmt.Errorf("region: invalid map offset %d", offset)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("region: open %s: %w", path, err)
	}
	// The mapping outlives the descriptor.
	defer f.Close()

	// mmap offsets must be page aligned; map from the page start and
	// slice the requested window back out.
	page := int64(os.Getpagesize())
	base := offset &^ (page - 1)
	delta := int(offset - base)

	mem, err := unix.Mmap(
		int(f.Fd()),
		base,
		delta+size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("region: mmap %s@%#x+%d: %w", path, offset, size, err)
	}

	r, err := New(mem[delta:delta+size], wordSize)
	if err != nil {
		_ = unix.Munmap(mem)
		return nil, nil, err
	}

	unmap := func() error {
		return unix.Munmap(mem)
	}

	return r, unmap, nil
}

//go:build unix

package mem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MapRegion reserves size bytes of anonymous memory-mapped storage.
func MapRegion(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: region size must be positive, got %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mem: mmap %d bytes: %w", size, err)
	}
	return &Region{data: data}, nil
}

func (r *Region) release() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	return unix.Munmap(data)
}

//go:build !unix

package mem

import "fmt"

// MapRegion reserves size bytes of storage. On platforms without anonymous
// mmap the region falls back to an ordinary heap buffer.
func MapRegion(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: region size must be positive, got %d", size)
	}
	return &Region{data: make([]byte, size)}, nil
}

func (r *Region) release() error {
	r.data = nil
	return nil
}

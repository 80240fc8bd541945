//go:build unix

package vbpool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

const offHeapSupported = true

// mmapAllocator allocates slabs in anonymous private mappings outside of the Go heap.
// Records contain no Go pointers, so the GC never needs to see this memory.
type mmapAllocator struct {
	// regions maps each slab to the mapping it lives in.
	// Munmap requires the exact slice returned by Mmap.
	regions map[*slab][]byte
}

func newOffHeapAllocator() slabAllocator {
	return &mmapAllocator{regions: make(map[*slab][]byte)}
}

func (a *mmapAllocator) alloc() *slab {
	size := int(unsafe.Sizeof(slab{}))
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		panic(fmt.Errorf("cannot allocate %d bytes via mmap for record slab: %w", size, err))
	}
	s := (*slab)(unsafe.Pointer(&data[0]))
	a.regions[s] = data
	return s
}

func (a *mmapAllocator) free(s *slab) error {
	data, ok := a.regions[s]
	if !ok {
		return fmt.Errorf("unmap record slab %p: %w", s, ErrForeignSlab)
	}
	delete(a.regions, s)
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("unmap record slab %p: %w", s, err)
	}
	return nil
}

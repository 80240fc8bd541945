package vbpool

// SlabSize is the number of records in a slab, the unit of pool growth.
const SlabSize = 10

// slab is a fixed-length block of records allocated as one unit.
type slab = [SlabSize]VertexBufferInfo

// slabAllocator allocates and releases slabs for a pool.
type slabAllocator interface {
	alloc() *slab
	free(s *slab) error
}

// heapAllocator allocates slabs on the Go heap.
// The Go GC never moves heap objects, so record addresses stay stable
// for as long as the pool references the slab.
type heapAllocator struct{}

func (heapAllocator) alloc() *slab {
	return new(slab)
}

func (heapAllocator) free(*slab) error {
	return nil
}

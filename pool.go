// Package vbpool implements a pool of reusable, pointer-stable vertex buffer records.
// Records are carved out of fixed-size slabs that are owned by the pool for its
// entire lifetime, so acquiring and releasing a record never allocates in steady state.
package vbpool

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	ErrClosed      = errors.New("pool is closed")
	ErrForeignSlab = errors.New("slab is not owned by this allocator")
)

// Pooler defines the contract for a pool of vertex buffer records.
type Pooler interface {
	Acquire() *VertexBufferInfo  // Acquire borrows a record with stale content.
	Release(v *VertexBufferInfo) // Release returns a borrowed record to the pool.
	Stats() Stats                // Stats returns a snapshot of the pool counters.
}

// Stats represents pool stats.
type Stats struct {
	Slabs    int    // Number of slabs owned by the pool.
	Capacity int    // Total number of records, Slabs * SlabSize.
	Free     int    // Number of records available for Acquire.
	InUse    int    // Number of records currently borrowed.
	Grows    uint64 // Number of slabs allocated by Acquire on an empty free list.
}

// Pool hands out pointers to fixed-size records stored in slabs.
//
// The returned record is not zeroed: it holds whatever its previous user
// wrote, and callers must overwrite every field (or call Reset) before reading it.
// A record must not be used after it is released.
//
// A Pool is not safe for concurrent use. Wrap it with NewLocked when records
// are acquired or released from multiple goroutines.
type Pool struct {
	allocator slabAllocator
	logger    *slog.Logger

	// free contains the records available for Acquire, popped from the end.
	// Its capacity is kept at or above the pool capacity, so Release never allocates.
	free []*VertexBufferInfo

	// slabs contains every slab allocated by the pool, in allocation order.
	slabs []*slab

	grows  uint64
	closed bool
}

var _ Pooler = (*Pool)(nil)

// New creates a new pool with the default config.
func New() *Pool {
	p, err := Custom(DefaultConfig())
	if err != nil {
		// Unrecoverable programmer error.
		panic(fmt.Errorf("internal error: %w", err))
	}
	return p
}

// Custom creates a new pool with a custom config.
func Custom(config Config) (*Pool, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	var allocator slabAllocator = heapAllocator{}
	if config.OffHeap {
		allocator = newOffHeapAllocator()
	}
	return newPool(allocator, config), nil
}

func newPool(allocator slabAllocator, config Config) *Pool {
	p := &Pool{
		allocator: allocator,
		logger:    config.Logger,
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	for range config.InitialSlabs {
		p.addSlab()
	}
	return p
}

// Acquire retrieves a record from the pool, allocating a new slab if none are free.
// It will panic if the pool is closed or the slab cannot be allocated.
func (p *Pool) Acquire() *VertexBufferInfo {
	if len(p.free) == 0 {
		p.grow()
	}
	n := len(p.free) - 1
	v := p.free[n]
	p.free = p.free[:n]
	return v
}

// Release returns a record to the pool. Its content is left as is.
//
// The record must have been returned by Acquire on the same pool and not
// already released. It will panic if a violation is detected.
func (p *Pool) Release(v *VertexBufferInfo) {
	if v == nil {
		panic(errors.New("invariant violation: release of nil record"))
	}
	if len(p.free) >= p.capacity() {
		if p.closed {
			panic(fmt.Errorf("release of record %p: %w", v, ErrClosed))
		}
		panic(fmt.Errorf(
			"invariant violation: release of record %p would exceed pool capacity %d",
			v,
			p.capacity(),
		))
	}
	p.free = append(p.free, v)
}

// Close releases the memory of all slabs. It is a no-op if the pool is already closed.
//
// Every acquired record must have been released before Close is called;
// an outstanding record is an invariant violation and will panic.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	if len(p.free) != p.capacity() {
		panic(fmt.Errorf(
			"invariant violation: free records %d mismatch with pool capacity %d (%d slabs)",
			len(p.free),
			p.capacity(),
			len(p.slabs),
		))
	}

	var errs []error
	for _, s := range p.slabs {
		if err := p.allocator.free(s); err != nil {
			p.logger.Error("failed to release record slab", "error", err)
			errs = append(errs, err)
		}
	}
	p.free = nil
	p.slabs = nil
	p.closed = true
	return errors.Join(errs...)
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Slabs:    len(p.slabs),
		Capacity: p.capacity(),
		Free:     len(p.free),
		InUse:    p.capacity() - len(p.free),
		Grows:    p.grows,
	}
}

func (p *Pool) capacity() int {
	return len(p.slabs) * SlabSize
}

// grow adds a slab to an exhausted pool.
func (p *Pool) grow() {
	if p.closed {
		panic(fmt.Errorf("acquire: %w", ErrClosed))
	}
	p.addSlab()
	p.grows++
	p.logger.Debug("grew record pool", "slabs", len(p.slabs), "capacity", p.capacity())
}

// addSlab allocates a slab and appends all of its records to the free list.
func (p *Pool) addSlab() {
	s := p.allocator.alloc()
	p.slabs = append(p.slabs, s)
	p.free = slices.Grow(p.free, p.capacity()-len(p.free))

	// Push in reverse so records are handed out in address order.
	for i := len(s) - 1; i >= 0; i-- {
		p.free = append(p.free, &s[i])
	}
}

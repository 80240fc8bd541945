package vbpool

import "sync"

// LockedPool wraps a Pool with a mutex so it can be shared between goroutines.
// The wrapped pool must not be used directly while the LockedPool is in use.
type LockedPool struct {
	mu   sync.Mutex
	pool *Pool
}

var _ Pooler = (*LockedPool)(nil)

// NewLocked creates a thread-safe wrapper around pool.
func NewLocked(pool *Pool) *LockedPool {
	return &LockedPool{pool: pool}
}

func (p *LockedPool) Acquire() *VertexBufferInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool.Acquire()
}

func (p *LockedPool) Release(v *VertexBufferInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pool.Release(v)
}

func (p *LockedPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool.Close()
}

func (p *LockedPool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool.Stats()
}

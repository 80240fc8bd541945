package vbpool

import (
	"sync"
	"testing"
)

func TestLockedPoolConcurrent(t *testing.T) {
	p := NewLocked(New())

	const (
		workers    = 8
		iterations = 1000
		batch      = 7
	)
	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			held := make([]*VertexBufferInfo, 0, batch)
			for i := range iterations {
				for range batch {
					v := p.Acquire()
					// Tag the record so a record shared with another worker is detected.
					v.Buffers[0] = BufferHandle(w)
					v.Offsets[0] = DeviceSize(i)
					held = append(held, v)
				}
				for _, v := range held {
					if v.Buffers[0] != BufferHandle(w) || v.Offsets[0] != DeviceSize(i) {
						errs <- "record was issued to more than one worker"
						return
					}
					p.Release(v)
				}
				held = held[:0]
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}

	s := p.Stats()
	if s.InUse != 0 {
		t.Errorf("expected no records in use, got %d", s.InUse)
	}
	if s.Capacity > workers*batch+SlabSize {
		t.Errorf("expected capacity to be bounded by peak demand, got %d", s.Capacity)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
}

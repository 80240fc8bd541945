package vbpool

import (
	"errors"
	"fmt"
	"log/slog"
)

type Config struct {
	// InitialSlabs is the number of slabs allocated when the pool is created.
	// A value of 0 defers the first allocation until the first Acquire.
	InitialSlabs int

	// OffHeap allocates slabs with mmap outside of the Go heap, so they do not
	// count towards the GC heap goal. Off-heap slabs are only released by Close.
	// Only supported on unix platforms.
	OffHeap bool

	Logger *slog.Logger // Defaults to slog.Default() when nil.
}

func DefaultConfig() Config {
	return Config{
		InitialSlabs: 1, // Pre-warm one slab.
		OffHeap:      false,
		Logger:       slog.Default(),
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.InitialSlabs < 0 {
		errs = append(errs, fmt.Errorf("invalid config: initial slabs %d must not be negative", c.InitialSlabs))
	}
	if c.OffHeap && !offHeapSupported {
		errs = append(errs, errors.New("invalid config: off-heap slabs are not supported on this platform"))
	}
	return errors.Join(errs...)
}

//go:build !unix

package vbpool

const offHeapSupported = false

func newOffHeapAllocator() slabAllocator {
	// Unreachable; Config.Validate rejects OffHeap on this platform.
	return heapAllocator{}
}

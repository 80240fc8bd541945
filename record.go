package vbpool

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/cespare/xxhash/v2"
)

// MaxVertexAttributeCount is the maximum number of vertex attributes and
// buffer bindings a single record can describe.
const MaxVertexAttributeCount = 16

func init() {
	// Runtime assertion.
	if MaxVertexAttributeCount > math.MaxUint8 {
		panic(errors.New("vertex attribute count must fit in a uint8 index"))
	}
}

// BufferHandle is an opaque, non-dispatchable handle to a backend vertex buffer.
type BufferHandle uint64

// NullBuffer is the zero buffer handle.
const NullBuffer BufferHandle = 0

// DeviceSize is a byte offset or size in device memory.
type DeviceSize uint64

// Format identifies the data format of a vertex attribute.
type Format uint32

// InputRate identifies whether a binding advances per vertex or per instance.
type InputRate uint32

const (
	InputRateVertex InputRate = iota
	InputRateInstance
)

// VertexAttribute describes a single vertex input attribute.
type VertexAttribute struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// VertexBinding describes a single vertex input buffer binding.
type VertexBinding struct {
	Binding   uint32
	Stride    uint32
	InputRate InputRate
}

// VertexArray is the active vertex input layout.
// Only the first AttributeCount attributes and BindingCount bindings are meaningful.
type VertexArray struct {
	Attributes     [MaxVertexAttributeCount]VertexAttribute
	Bindings       [MaxVertexAttributeCount]VertexBinding
	AttributeCount uint8
	BindingCount   uint8
}

// VertexBufferInfo is a cacheable snapshot of the vertex input configuration
// consumed by a draw.
//
// Buffers and Offsets are indexed by binding, AttribToBufferIndex by attribute.
// The type must remain free of Go pointers, since slabs may live outside the Go heap.
type VertexBufferInfo struct {
	VArray              VertexArray
	Buffers             [MaxVertexAttributeCount]BufferHandle
	Offsets             [MaxVertexAttributeCount]DeviceSize
	AttribToBufferIndex [MaxVertexAttributeCount]uint8
}

// hashBufSize is the maximum encoded size of the active portion of a record.
const hashBufSize = 2 + // Counts.
	MaxVertexAttributeCount*(16+1) + // Attributes and attribute buffer indices.
	MaxVertexAttributeCount*(12+8+8) // Bindings, buffers and offsets.

// Reset zeroes the record.
func (v *VertexBufferInfo) Reset() {
	*v = VertexBufferInfo{}
}

// Hash returns a 64-bit hash of the active portion of the record.
// Entries beyond AttributeCount and BindingCount do not contribute,
// so stale data left from a previous use does not affect the result.
func (v *VertexBufferInfo) Hash() uint64 {
	var buf [hashBufSize]byte
	n := v.encode(buf[:])
	return xxhash.Sum64(buf[:n])
}

// Equal reports whether both records describe the same active configuration.
func (v *VertexBufferInfo) Equal(other *VertexBufferInfo) bool {
	if v == other {
		return true
	}
	if other == nil || v == nil {
		return false
	}
	na, nb := v.counts()
	if oa, ob := other.counts(); na != oa || nb != ob {
		return false
	}
	for i := range na {
		if v.VArray.Attributes[i] != other.VArray.Attributes[i] ||
			v.AttribToBufferIndex[i] != other.AttribToBufferIndex[i] {
			return false
		}
	}
	for i := range nb {
		if v.VArray.Bindings[i] != other.VArray.Bindings[i] ||
			v.Buffers[i] != other.Buffers[i] ||
			v.Offsets[i] != other.Offsets[i] {
			return false
		}
	}
	return true
}

// counts returns the attribute and binding counts clamped to the array bounds.
func (v *VertexBufferInfo) counts() (attributes, bindings int) {
	return min(int(v.VArray.AttributeCount), MaxVertexAttributeCount),
		min(int(v.VArray.BindingCount), MaxVertexAttributeCount)
}

// encode writes the active portion of the record to buf in little-endian order
// and returns the number of bytes written. buf must be at least hashBufSize long.
func (v *VertexBufferInfo) encode(buf []byte) int {
	na, nb := v.counts()
	buf[0] = uint8(na)
	buf[1] = uint8(nb)
	off := 2
	for i := range na {
		a := &v.VArray.Attributes[i]
		binary.LittleEndian.PutUint32(buf[off:], a.Location)
		binary.LittleEndian.PutUint32(buf[off+4:], a.Binding)
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(a.Format))
		binary.LittleEndian.PutUint32(buf[off+12:], a.Offset)
		buf[off+16] = v.AttribToBufferIndex[i]
		off += 17
	}
	for i := range nb {
		b := &v.VArray.Bindings[i]
		binary.LittleEndian.PutUint32(buf[off:], b.Binding)
		binary.LittleEndian.PutUint32(buf[off+4:], b.Stride)
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(b.InputRate))
		binary.LittleEndian.PutUint64(buf[off+12:], uint64(v.Buffers[i]))
		binary.LittleEndian.PutUint64(buf[off+20:], uint64(v.Offsets[i]))
		off += 28
	}
	return off
}

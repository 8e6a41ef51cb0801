// internal/region/region.go
package region

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"
)

// Bounds is an externally supplied [Start, End) address pair,
// typically two linker symbols around a reserved RAM section.
type Bounds struct {
	Start uintptr
	End   uintptr
}

// Region is the only handle through which the reserved memory is touched.
// It never reads or writes outside buf.
type Region struct {
	buf      []byte
	wordSize int
}

// New wraps an existing byte slice as a region.
func New(buf []byte, wordSize int) (*Region, error) {
	if err := checkWordSize(wordSize); err != nil {
		return nil, err
	}
	if len(buf) < HeaderWords*wordSize {
		return nil, fmt.Errorf(
			"region: size %d smaller than header (%d bytes)",
			len(buf),
			HeaderWords*wordSize,
		)
	}
	return &Region{buf: buf, wordSize: wordSize}, nil
}

// FromBounds builds a region directly over raw memory.
//
// This is the single unchecked boundary of the module: the caller vouches
// that [Start, End) is mapped, writable, and excluded from startup
// zero-initialization.
func FromBounds(b Bounds, wordSize int) (*Region, error) {
	if b.Start == 0 {
		return nil, errors.New("region: start address required")
	}
	if b.End < b.Start {
		return nil, fmt.Errorf("region: end %#x before start %#x", b.End, b.Start)
	}
	size := int(b.End - b.Start)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(b.Start)), size)
	return New(buf, wordSize)
}

func checkWordSize(n int) error {
	switch n {
	case WordSize32, WordSize64:
		return nil
	default:
		return fmt.Errorf("region: unsupported word size %d (want 4 or 8)", n)
	}
}

// ---- geometry ----

// Size is the full region size in bytes, header included.
func (r *Region) Size() int { return len(r.buf) }

// WordSize is the width of one header field.
func (r *Region) WordSize() int { return r.wordSize }

// HeaderSize is the number of bytes in front of the payload.
func (r *Region) HeaderSize() int { return HeaderWords * r.wordSize }

// Capacity is the maximum payload length: (end - start) - 2*word.
func (r *Region) Capacity() int { return len(r.buf) - r.HeaderSize() }

// ---- header fields ----

// Magic returns the sentinel word.
func (r *Region) Magic() uint64 { return r.word(SlotMagic) }

// SetMagic stores the sentinel word.
func (r *Region) SetMagic(v uint64) { r.putWord(SlotMagic, v) }

// Length returns the stored payload byte count. It is untrusted.
func (r *Region) Length() uint64 { return r.word(SlotLength) }

// SetLength stores the payload byte count.
func (r *Region) SetLength(v uint64) { r.putWord(SlotLength, v) }

// ---- byte views ----

// Payload is the area following the header. It aliases the region.
func (r *Region) Payload() []byte { return r.buf[r.HeaderSize():] }

// Raw is the whole region, header included. It aliases the region.
func (r *Region) Raw() []byte { return r.buf }

// ---- word access (native width, native order) ----

func (r *Region) word(slot int) uint64 {
	off := slot * r.wordSize
	if r.wordSize == WordSize32 {
		return uint64(binary.NativeEndian.Uint32(r.buf[off : off+WordSize32]))
	}
	return binary.NativeEndian.Uint64(r.buf[off : off+WordSize64])
}

func (r *Region) putWord(slot int, v uint64) {
	off := slot * r.wordSize
	if r.wordSize == WordSize32 {
		binary.NativeEndian.PutUint32(r.buf[off:off+WordSize32], uint32(v))
		return
	}
	binary.NativeEndian.PutUint64(r.buf[off:off+WordSize64], v)
}

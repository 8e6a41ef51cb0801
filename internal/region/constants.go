// internal/region/constants.go
package region

import "unsafe"

// Region layout constants.
// These values define the on-memory protocol and MUST NOT be configurable.
//
// offset 0          : magic   (word)
// offset word       : length  (word)
// offset 2*word     : payload (up to region end)

// ---- SENTINEL ----

// Magic marks the region as holding a message.
// Any other value (including zero) means "no message".
const Magic uint64 = 0x0FACADE0

// ---- WORD GEOMETRY ----

// NativeWordSize is the width of a header field on the running target.
const NativeWordSize = int(unsafe.Sizeof(uintptr(0)))

// Supported header word widths.
const (
	WordSize32 = 4
	WordSize64 = 8
)

// ---- FIELD SLOTS (in words) ----

// SlotMagic is the header word holding the sentinel.
const SlotMagic = 0

// SlotLength is the header word holding the payload byte count.
const SlotLength = 1

// HeaderWords is the number of words preceding the payload.
const HeaderWords = 2

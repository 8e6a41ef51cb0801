// internal/status/encode.go
package status

import (
	"unicode/utf8"

	"github.com/tamzrod/crash-persist/internal/persist"
)

// BlockSlots returns the block size in registers for maxChars of text.
func BlockSlots(maxChars int) int {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if maxChars > MaxChars {
		maxChars = MaxChars
	}
	return HeaderSlots + (maxChars+1)/2
}

// Encode converts a Report into a full crash report block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(r Report, maxChars int) []uint16 {
	regs := make([]uint16, BlockSlots(maxChars))
	textSlots := len(regs) - HeaderSlots

	if !r.Present {
		regs[SlotPresent] = ReportAbsent
		return regs
	}

	msg := r.Message
	truncated := false
	if len(msg) > textSlots*2 {
		msg = msg[:textSlots*2]
		truncated = true

		// text messages never end mid-character on the wire
		if utf8.Valid(r.Message) {
			msg = persist.ValidPrefix(msg)
		}
	}

	regs[SlotPresent] = ReportPresent
	regs[SlotByteLength] = uint16(len(msg))
	if truncated {
		regs[SlotTruncated] = 1
	}

	for i := 0; i < len(msg); i += 2 {
		var hi, lo byte
		hi = msg[i]
		if i+1 < len(msg) {
			lo = msg[i+1]
		}
		regs[SlotTextStart+i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return regs
}

// Decode is the inverse of Encode. It returns the message bytes held
// by a block; ok is false for an absent or malformed block.
func Decode(regs []uint16) (msg []byte, truncated bool, ok bool) {
	if len(regs) < HeaderSlots || regs[SlotPresent] != ReportPresent {
		return nil, false, false
	}

	n := int(regs[SlotByteLength])
	if n > (len(regs)-HeaderSlots)*2 {
		return nil, false, false
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		r := regs[SlotTextStart+i/2]
		if i%2 == 0 {
			out[i] = byte(r >> 8)
		} else {
			out[i] = byte(r)
		}
	}

	return out, regs[SlotTruncated] == 1, true
}

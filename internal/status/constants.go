// internal/status/constants.go
package status

// Crash Report Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- SLOT INDICES ----

// SlotPresent holds ReportPresent when a message was recovered this boot.
const SlotPresent = 0

// SlotByteLength holds the number of message bytes stored in the text slots.
const SlotByteLength = 1

// SlotTruncated holds 1 when the message did not fit the text slots.
const SlotTruncated = 2

// ---- RESERVED RANGE ----

// Slots 3–7 are reserved for future use.
const SlotReservedStart = 3
const SlotReservedEnd = 7

// ---- TEXT ----

// SlotTextStart is the first slot of the message text.
// Each slot holds two bytes, big-endian (first byte in the high half).
const SlotTextStart = 8

// HeaderSlots is the number of slots in front of the text.
const HeaderSlots = SlotTextStart

// ---- LIMITS ----

// DefaultMaxChars is the text size used when none is configured.
const DefaultMaxChars = 128

// MaxChars is the largest text a block may carry.
// 125 registers is the Modbus limit for one write; the header takes 8.
const MaxChars = (125 - HeaderSlots) * 2

// ---- FLAGS ----

// ReportAbsent marks a block with no recovered message.
const ReportAbsent uint16 = 0

// ReportPresent marks a block with a recovered message.
const ReportPresent uint16 = 0xCADE

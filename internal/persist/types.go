// internal/persist/types.go
package persist

// Framing selects how a message is laid out inside the region.
type Framing uint8

const (
	// FramingHeader: magic word, length word, payload.
	FramingHeader Framing = iota

	// FramingRaw: one marker byte, then a NUL-terminated payload.
	// No length field; the message ends at the first NUL or the region end.
	FramingRaw
)

// RawMarker flags a raw-framed region as holding a message.
const RawMarker byte = 0xE0

// Retrieval selects what Store.Take hands back.
type Retrieval uint8

const (
	// RetrievalText trims a trailing partial UTF-8 sequence.
	RetrievalText Retrieval = iota

	// RetrievalBytes returns the stored bytes verbatim.
	RetrievalBytes
)

// Termination selects how the capture path ends.
type Termination uint8

const (
	TerminationReset Termination = iota
	TerminationHalt
)

// Config is the complete set of behavior switches.
type Config struct {
	Framing     Framing
	Retrieval   Retrieval
	Termination Termination

	// Minimal writes only the panic location instead of the panic value.
	Minimal bool
}

// Platform supplies the primitives the capture path needs.
// Reset and Halt must not return.
type Platform interface {
	DisableInterrupts()
	Reset()
	Halt()
}

// ---- inspection ----

// State is the result of a non-consuming look at the region.
type State uint8

const (
	StateAbsent State = iota
	StatePresent
	StateCorrupt
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresent:
		return "present"
	case StateCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Record describes what a Take call would find.
type Record struct {
	State    State
	Length   uint64 // as stored; untrusted when State is StateCorrupt
	Capacity int
}

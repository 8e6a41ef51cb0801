// internal/persist/reader.go
package persist

import (
	"bytes"

	"github.com/tamzrod/crash-persist/internal/region"
)

// TakeMessageBytes returns the message left by the previous boot, once.
//
// The marker is cleared before the payload is validated: a corrupt record
// is discarded for good, never retried. Absent and corrupt records both
// yield (nil, false); use Peek to tell them apart.
//
// The returned slice aliases the region. It stays valid until something
// writes into the region again.
func TakeMessageBytes(r *region.Region, f Framing) ([]byte, bool) {
	if r == nil {
		return nil, false
	}
	if f == FramingRaw {
		return takeRaw(r)
	}

	if r.Magic() != region.Magic {
		return nil, false
	}

	// consume-once: invalidate before trusting anything else
	r.SetMagic(0)

	length := r.Length()
	if length > uint64(r.Capacity()) {
		return nil, false
	}

	return r.Payload()[:length], true
}

func takeRaw(r *region.Region) ([]byte, bool) {
	raw := r.Raw()
	if raw[0] != RawMarker {
		return nil, false
	}

	raw[0] = 0

	body := rawBody(raw)
	if len(body) == 0 {
		return nil, false
	}
	return body, true
}

// rawBody is the payload up to the first NUL or the region end.
func rawBody(raw []byte) []byte {
	body := raw[1:]
	if i := bytes.IndexByte(body, 0); i >= 0 {
		body = body[:i]
	}
	return body
}

// Peek reports what TakeMessageBytes would find, without consuming it.
func Peek(r *region.Region, f Framing) Record {
	if r == nil {
		return Record{State: StateAbsent}
	}

	if f == FramingRaw {
		rec := Record{State: StateAbsent, Capacity: rawCapacity(r)}
		raw := r.Raw()
		if raw[0] != RawMarker {
			return rec
		}
		// an empty raw message cannot be told apart from none
		body := rawBody(raw)
		if len(body) == 0 {
			return rec
		}
		rec.State = StatePresent
		rec.Length = uint64(len(body))
		return rec
	}

	rec := Record{State: StateAbsent, Capacity: r.Capacity()}
	if r.Magic() != region.Magic {
		return rec
	}

	rec.Length = r.Length()
	if rec.Length > uint64(rec.Capacity) {
		rec.State = StateCorrupt
		return rec
	}

	rec.State = StatePresent
	return rec
}

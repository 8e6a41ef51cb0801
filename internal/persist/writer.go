// internal/persist/writer.go
package persist

import "github.com/tamzrod/crash-persist/internal/region"

// Writer appends a message into the region.
//
// It never fails: anything past capacity is dropped. It never reads
// region memory, so a half-written region from a previous boot is
// simply overwritten.
type Writer struct {
	r       *region.Region
	framing Framing
	offset  int
}

// NewWriter returns a writer positioned at the start of the payload.
func NewWriter(r *region.Region, f Framing) *Writer {
	return &Writer{r: r, framing: f}
}

// Len is the number of payload bytes written so far.
func (w *Writer) Len() int { return w.offset }

// Append copies as much of b as still fits and restamps the header.
func (w *Writer) Append(b []byte) {
	dst := w.claim(len(b))
	if dst == nil {
		return
	}
	w.commit(copy(dst, b))
}

// Write implements io.Writer. Truncation is not reported so that
// fmt.Fprint* keeps going.
func (w *Writer) Write(p []byte) (int, error) {
	w.Append(p)
	return len(p), nil
}

// WriteString implements io.StringWriter with the same policy as Write.
func (w *Writer) WriteString(s string) (int, error) {
	if dst := w.claim(len(s)); dst != nil {
		w.commit(copy(dst, s))
	}
	return len(s), nil
}

// claim stamps the marker and returns the payload window for the next
// min(capacity-offset, n) bytes. nil means the message is full.
func (w *Writer) claim(n int) []byte {
	if w == nil || w.r == nil {
		return nil
	}

	capacity := w.capacity()
	if w.offset >= capacity {
		return nil
	}
	n = min(capacity-w.offset, n)

	if w.framing == FramingRaw {
		w.r.Raw()[0] = RawMarker
		start := 1 + w.offset
		return w.r.Raw()[start : start+n]
	}

	w.r.SetMagic(region.Magic)
	return w.r.Payload()[w.offset : w.offset+n]
}

// commit advances the offset and publishes it.
func (w *Writer) commit(n int) {
	w.offset += n

	if w.framing == FramingRaw {
		// terminator only if it fits; a full region ends at its end
		if w.offset < w.capacity() {
			w.r.Raw()[1+w.offset] = 0
		}
		return
	}

	w.r.SetLength(uint64(w.offset))
}

func (w *Writer) capacity() int {
	if w.framing == FramingRaw {
		return rawCapacity(w.r)
	}
	return w.r.Capacity()
}

// rawCapacity: everything after the marker byte.
func rawCapacity(r *region.Region) int {
	return r.Size() - 1
}

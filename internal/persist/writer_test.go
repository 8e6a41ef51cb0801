// internal/persist/writer_test.go
package persist

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/tamzrod/crash-persist/internal/region"
)

// helper: 32-bit header region with the given payload capacity
func newRegion(t *testing.T, capacity int) *region.Region {
	t.Helper()
	r, err := region.New(make([]byte, 2*region.WordSize32+capacity), region.WordSize32)
	if err != nil {
		t.Fatalf("region.New err=%v", err)
	}
	return r
}

// ---- tests ----

func TestAppend_StampsHeader(t *testing.T) {
	r := newRegion(t, 100)
	w := NewWriter(r, FramingHeader)

	w.Append([]byte("oops"))

	if r.Magic() != region.Magic {
		t.Fatalf("magic not stamped: got=%#x", r.Magic())
	}
	if r.Length() != 4 {
		t.Fatalf("length: got=%d want=4", r.Length())
	}
	if string(r.Payload()[:4]) != "oops" {
		t.Fatalf("payload: got=%q", r.Payload()[:4])
	}
}

func TestAppend_MultipleFragmentsGrowLength(t *testing.T) {
	r := newRegion(t, 100)
	w := NewWriter(r, FramingHeader)

	w.Append([]byte("panicked: "))
	w.Append([]byte("index out of range"))
	_, _ = fmt.Fprintf(w, " [%d]", 7)

	want := "panicked: index out of range [7]"
	if int(r.Length()) != len(want) || w.Len() != len(want) {
		t.Fatalf("length: header=%d writer=%d want=%d", r.Length(), w.Len(), len(want))
	}
	if got := string(r.Payload()[:r.Length()]); got != want {
		t.Fatalf("payload: got=%q want=%q", got, want)
	}
}

func TestAppend_BoundsSafety(t *testing.T) {
	for _, capacity := range []int{0, 1, 7, 20, 64} {
		for _, size := range []int{0, 1, capacity, capacity + 1, 3 * capacity} {
			header := 2 * region.WordSize32
			backing := bytes.Repeat([]byte{0xAA}, header+capacity+16)

			r, err := region.New(backing[:header+capacity], region.WordSize32)
			if err != nil {
				t.Fatalf("region.New err=%v", err)
			}

			w := NewWriter(r, FramingHeader)
			w.Append(bytes.Repeat([]byte{'x'}, size))
			w.Append(bytes.Repeat([]byte{'y'}, size))

			want := min(capacity, 2*size)
			if w.Len() != want {
				t.Fatalf("cap=%d size=%d: wrote %d want %d", capacity, size, w.Len(), want)
			}

			guard := backing[header+capacity:]
			for i, b := range guard {
				if b != 0xAA {
					t.Fatalf("cap=%d size=%d: write past region end at +%d", capacity, size, i)
				}
			}
		}
	}
}

func TestAppend_NoOpWhenFull(t *testing.T) {
	r := newRegion(t, 4)
	w := NewWriter(r, FramingHeader)

	w.Append([]byte("abcd"))
	before := append([]byte(nil), r.Raw()...)

	w.Append([]byte("efgh"))
	_, _ = w.WriteString("ijkl")

	if !bytes.Equal(before, r.Raw()) {
		t.Fatalf("region changed after capacity reached")
	}
	if r.Length() != 4 {
		t.Fatalf("length changed: got=%d", r.Length())
	}
}

func TestWrite_ReportsFullLengthOnTruncation(t *testing.T) {
	r := newRegion(t, 3)
	w := NewWriter(r, FramingHeader)

	n, err := w.Write([]byte("longer than three"))
	if err != nil || n != len("longer than three") {
		t.Fatalf("Write: n=%d err=%v", n, err)
	}
	if w.Len() != 3 {
		t.Fatalf("stored %d bytes, want 3", w.Len())
	}
}

func TestAppend_EmptyStampsEmptyMessage(t *testing.T) {
	r := newRegion(t, 8)
	NewWriter(r, FramingHeader).Append(nil)

	if r.Magic() != region.Magic || r.Length() != 0 {
		t.Fatalf("empty append: magic=%#x length=%d", r.Magic(), r.Length())
	}
}

func TestAppendRaw_TerminatesAndTruncates(t *testing.T) {
	r, err := region.New(make([]byte, 12), region.WordSize32)
	if err != nil {
		t.Fatalf("region.New err=%v", err)
	}
	raw := r.Raw()
	for i := range raw {
		raw[i] = 0xFF
	}

	w := NewWriter(r, FramingRaw)
	w.Append([]byte("boom"))

	if raw[0] != RawMarker {
		t.Fatalf("raw marker: got=%#x", raw[0])
	}
	if string(raw[1:5]) != "boom" || raw[5] != 0 {
		t.Fatalf("raw body: %q terminator=%#x", raw[1:5], raw[5])
	}

	w.Append([]byte("-and-more"))
	if w.Len() != 11 {
		t.Fatalf("raw capacity: wrote %d want 11", w.Len())
	}
	if string(raw[1:]) != "boom-and-mo" {
		t.Fatalf("raw truncated body: %q", raw[1:])
	}
}

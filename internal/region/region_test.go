// internal/region/region_test.go
package region

import (
	"encoding/binary"
	"runtime"
	"testing"
	"unsafe"
)

func TestNew_RejectsBadGeometry(t *testing.T) {
	if _, err := New(make([]byte, 64), 3); err == nil {
		t.Fatalf("expected word size error, got nil")
	}
	if _, err := New(make([]byte, 7), WordSize32); err == nil {
		t.Fatalf("expected size error for region smaller than header")
	}
	if _, err := New(make([]byte, 8), WordSize32); err != nil {
		t.Fatalf("header-only region must be accepted: %v", err)
	}
}

func TestCapacity(t *testing.T) {
	cases := []struct {
		size, word, want int
	}{
		{8, WordSize32, 0},
		{28, WordSize32, 20},
		{1024, WordSize32, 1016},
		{1024, WordSize64, 1008},
	}

	for _, c := range cases {
		r, err := New(make([]byte, c.size), c.word)
		if err != nil {
			t.Fatalf("New(%d,%d) err=%v", c.size, c.word, err)
		}
		if got := r.Capacity(); got != c.want {
			t.Fatalf("Capacity(%d,%d): got=%d want=%d", c.size, c.word, got, c.want)
		}
		if len(r.Payload()) != c.want {
			t.Fatalf("payload view length: got=%d want=%d", len(r.Payload()), c.want)
		}
	}
}

func TestHeaderFields_Layout32(t *testing.T) {
	buf := make([]byte, 32)
	r, err := New(buf, WordSize32)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	r.SetMagic(Magic)
	r.SetLength(17)

	if got := binary.NativeEndian.Uint32(buf[0:4]); uint64(got) != Magic {
		t.Fatalf("magic at offset 0: got=%#x want=%#x", got, Magic)
	}
	if got := binary.NativeEndian.Uint32(buf[4:8]); got != 17 {
		t.Fatalf("length at offset 4: got=%d want=17", got)
	}
	if r.Magic() != Magic || r.Length() != 17 {
		t.Fatalf("read back mismatch: magic=%#x length=%d", r.Magic(), r.Length())
	}
}

func TestHeaderFields_Layout64(t *testing.T) {
	buf := make([]byte, 32)
	r, err := New(buf, WordSize64)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	r.SetMagic(Magic)
	r.SetLength(5)

	if got := binary.NativeEndian.Uint64(buf[0:8]); got != Magic {
		t.Fatalf("magic at offset 0: got=%#x want=%#x", got, Magic)
	}
	if got := binary.NativeEndian.Uint64(buf[8:16]); got != 5 {
		t.Fatalf("length at offset 8: got=%d want=5", got)
	}
	if r.HeaderSize() != 16 {
		t.Fatalf("header size: got=%d want=16", r.HeaderSize())
	}
}

func TestFromBounds(t *testing.T) {
	backing := make([]byte, 64)
	start := uintptr(unsafe.Pointer(&backing[0]))

	r, err := FromBounds(Bounds{Start: start, End: start + 64}, WordSize32)
	if err != nil {
		t.Fatalf("FromBounds err=%v", err)
	}

	r.SetMagic(Magic)
	if uint64(binary.NativeEndian.Uint32(backing[0:4])) != Magic {
		t.Fatalf("region does not alias the bounded memory")
	}
	if r.Capacity() != 56 {
		t.Fatalf("capacity: got=%d want=56", r.Capacity())
	}

	runtime.KeepAlive(backing)
}

func TestFromBounds_Rejects(t *testing.T) {
	if _, err := FromBounds(Bounds{Start: 0, End: 64}, WordSize32); err == nil {
		t.Fatalf("expected error for nil start")
	}
	if _, err := FromBounds(Bounds{Start: 0x2000_0010, End: 0x2000_0000}, WordSize32); err == nil {
		t.Fatalf("expected error for end before start")
	}
}

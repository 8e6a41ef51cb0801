// internal/platform/platform_test.go
package platform

import "testing"

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"host":   KindHost,
		" Exit ": KindExit,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q): got=%q err=%v", in, got, err)
		}
	}

	if _, err := ParseKind("jtag"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestNew(t *testing.T) {
	if p, err := New(KindHost); err != nil || p == nil {
		t.Fatalf("New(host): p=%v err=%v", p, err)
	}
	if p, err := New(KindExit); err != nil || p == nil {
		t.Fatalf("New(exit): p=%v err=%v", p, err)
	}
	if _, err := New("other"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestExit_UsesCode(t *testing.T) {
	var got []int
	e := &Exit{Code: 3, exit: func(c int) { got = append(got, c) }}

	e.Reset()
	e.Halt()

	if len(got) != 2 || got[0] != 3 || got[1] != 3 {
		t.Fatalf("exit codes: %v", got)
	}
}

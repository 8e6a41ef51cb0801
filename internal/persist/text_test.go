// internal/persist/text_test.go
package persist

import "testing"

func TestTakeText_DropsPartialCharacter(t *testing.T) {
	// "héllo": 'é' is 0xC3 0xA9; capacity 2 cuts it after 0xC3
	r := newRegion(t, 2)
	NewWriter(r, FramingHeader).Append([]byte("héllo"))

	got, ok := TakeMessageText(r, FramingHeader)
	if !ok || got != "h" {
		t.Fatalf("text take: ok=%v got=%q want=%q", ok, got, "h")
	}
}

func TestTakeText_BoundaryOnCharacter(t *testing.T) {
	r := newRegion(t, 5)
	NewWriter(r, FramingHeader).Append([]byte("héllo"))

	got, ok := TakeMessageText(r, FramingHeader)
	if !ok || got != "héll" {
		t.Fatalf("text take: ok=%v got=%q want=%q", ok, got, "héll")
	}
}

func TestTakeBytes_KeepsPartialCharacter(t *testing.T) {
	r := newRegion(t, 2)
	NewWriter(r, FramingHeader).Append([]byte("héllo"))

	got, ok := TakeMessageBytes(r, FramingHeader)
	if !ok || string(got) != "h\xc3" {
		t.Fatalf("bytes take: ok=%v got=%q", ok, got)
	}
}

func TestTakeText_NoValidPrefix(t *testing.T) {
	r := newRegion(t, 4)
	NewWriter(r, FramingHeader).Append([]byte{0xFF, 'a', 'b'})

	if got, ok := TakeMessageText(r, FramingHeader); ok {
		t.Fatalf("expected no message, got %q", got)
	}
}

func TestValidPrefix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"ok\xe2\x82", "ok"}, // '€' cut after 2 of 3 bytes
		{"€uro", "€uro"},
		{"a\xffb", "a"},
	}

	for _, c := range cases {
		if got := string(ValidPrefix([]byte(c.in))); got != c.want {
			t.Fatalf("ValidPrefix(%q): got=%q want=%q", c.in, got, c.want)
		}
	}
}

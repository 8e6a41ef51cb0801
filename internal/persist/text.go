// internal/persist/text.go
package persist

import (
	"unicode/utf8"

	"github.com/tamzrod/crash-persist/internal/region"
)

// TakeMessageText is TakeMessageBytes followed by a UTF-8 safety pass.
// A message cut mid-character by truncation loses the partial character.
func TakeMessageText(r *region.Region, f Framing) (string, bool) {
	b, ok := takeTextBytes(r, f)
	if !ok {
		return "", false
	}
	return string(b), true
}

// takeTextBytes is the allocation-free form of TakeMessageText.
func takeTextBytes(r *region.Region, f Framing) ([]byte, bool) {
	b, ok := TakeMessageBytes(r, f)
	if !ok {
		return nil, false
	}
	if utf8.Valid(b) {
		return b, true
	}

	p := ValidPrefix(b)
	if len(p) == 0 {
		return nil, false
	}
	return p, true
}

// ValidPrefix returns the longest prefix of b that is valid UTF-8.
func ValidPrefix(b []byte) []byte {
	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		i += size
	}
	return b[:i]
}

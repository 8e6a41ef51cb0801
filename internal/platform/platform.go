// internal/platform/platform.go
package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/tamzrod/crash-persist/internal/persist"
)

// Kind names a platform implementation in configuration.
type Kind string

const (
	KindHost Kind = "host"
	KindExit Kind = "exit"
)

// ParseKind accepts the configuration spelling of a platform.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHost, KindExit:
		return k, nil
	default:
		return "", fmt.Errorf("platform: unknown kind %q (want host or exit)", s)
	}
}

// New returns the platform for kind.
func New(kind Kind) (persist.Platform, error) {
	switch kind {
	case KindHost:
		return &Host{}, nil
	case KindExit:
		return &Exit{Code: 2}, nil
	default:
		return nil, fmt.Errorf("platform: unknown kind %q", kind)
	}
}

// ---- exit (development) ----

// Exit ends the process instead of the machine. The region keeps the
// message as long as its backing memory (file, /dev/mem) survives.
type Exit struct {
	Code int

	// exit is swapped by tests
	exit func(int)
}

func (e *Exit) DisableInterrupts() { ignoreSignals() }

func (e *Exit) Reset() { e.doExit() }

func (e *Exit) Halt() { e.doExit() }

func (e *Exit) doExit() {
	if e.exit != nil {
		e.exit(e.Code)
		return
	}
	os.Exit(e.Code)
}

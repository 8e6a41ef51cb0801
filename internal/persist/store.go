// internal/persist/store.go
package persist

import (
	"sync/atomic"

	"github.com/tamzrod/crash-persist/internal/region"
)

// Store binds one region to its configuration and platform.
//
// Lifecycle:
//   - write phase: Capture / Report during failure handling, ends at reset
//   - read phase: Take on the next boot, ends at the first successful take
//
// The two phases never overlap, so the store has no locking.
type Store struct {
	region   *region.Region
	cfg      Config
	platform Platform
}

// NewStore builds a store. p may be nil for read-only use; Capture then
// writes the message and re-panics with the original value.
func NewStore(r *region.Region, cfg Config, p Platform) *Store {
	return &Store{region: r, cfg: cfg, platform: p}
}

// Config returns the store configuration.
func (s *Store) Config() Config { return s.cfg }

// Region returns the bound region.
func (s *Store) Region() *region.Region { return s.region }

// ---- write phase ----

// Capture is the failure entry point.
// Order is fixed: interrupts off, message written, reset or halt.
func (s *Store) Capture(v any) {
	if s.platform != nil {
		s.platform.DisableInterrupts()
	}

	w := NewWriter(s.region, s.cfg.Framing)
	if s.cfg.Minimal {
		writeLocation(w)
	} else {
		writePanic(w, v)
	}

	if s.platform == nil {
		panic(v)
	}
	s.terminate()
}

// Recover captures an in-flight panic. Use as: defer store.Recover()
func (s *Store) Recover() {
	if v := recover(); v != nil {
		s.Capture(v)
	}
}

// Report persists text without terminating.
func (s *Store) Report(text string) {
	Report(s.region, s.cfg.Framing, text)
}

func (s *Store) terminate() {
	if s.cfg.Termination == TerminationHalt {
		s.platform.Halt()
		return
	}
	s.platform.Reset()
}

// ---- read phase ----

// Take returns the previous boot's message once, shaped by Retrieval.
func (s *Store) Take() ([]byte, bool) {
	if s.cfg.Retrieval == RetrievalBytes {
		return TakeMessageBytes(s.region, s.cfg.Framing)
	}
	return takeTextBytes(s.region, s.cfg.Framing)
}

// Peek inspects the region without consuming it.
func (s *Store) Peek() Record {
	return Peek(s.region, s.cfg.Framing)
}

// ---- process-wide store ----

var installed atomic.Pointer[Store]

// Install makes s the process-wide store used by the package functions.
func Install(s *Store) { installed.Store(s) }

// Default returns the installed store, or nil.
func Default() *Store { return installed.Load() }

// Capture hands v to the installed store. Without one, v is re-panicked
// so the failure is not silently swallowed.
func Capture(v any) {
	s := Default()
	if s == nil {
		panic(v)
	}
	s.Capture(v)
}

// Recover is the package-level form of (*Store).Recover.
func Recover() {
	if v := recover(); v != nil {
		Capture(v)
	}
}

// Take reads the installed store. (nil, false) without one.
func Take() ([]byte, bool) {
	s := Default()
	if s == nil {
		return nil, false
	}
	return s.Take()
}

// internal/platform/host_other.go
//go:build !linux

package platform

import (
	"os"
	"os/signal"
	"time"
)

// Host cannot reboot outside Linux; Reset degrades to Halt.
type Host struct {
	halt func()
}

func (h *Host) DisableInterrupts() { ignoreSignals() }

func (h *Host) Reset() { h.Halt() }

func (h *Host) Halt() {
	if h.halt != nil {
		h.halt()
		return
	}
	for {
		time.Sleep(time.Hour)
	}
}

func ignoreSignals() {
	signal.Ignore(os.Interrupt)
}

// internal/platform/host_linux.go
//go:build linux

package platform

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Host reboots a Linux device. A warm restart keeps RAM contents, which
// is what carries the message to the next boot.
// Requires CAP_SYS_BOOT.
type Host struct {
	// reboot and halt are swapped by tests
	reboot func(cmd int) error
	halt   func()
}

// DisableInterrupts is the user-space analogue: stop async signals from
// interrupting the capture path.
func (h *Host) DisableInterrupts() { ignoreSignals() }

// Reset flushes filesystems and restarts the machine. If the restart is
// refused the process halts instead; it never returns to the caller.
func (h *Host) Reset() {
	unix.Sync()

	reboot := h.reboot
	if reboot == nil {
		reboot = unix.Reboot
	}
	_ = reboot(unix.LINUX_REBOOT_CMD_RESTART)

	h.Halt()
}

// Halt parks the process forever.
func (h *Host) Halt() {
	if h.halt != nil {
		h.halt()
		return
	}
	for {
		_ = unix.Pause()
	}
}

func ignoreSignals() {
	signal.Ignore(os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
}

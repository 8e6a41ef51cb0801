// internal/sink/register.go
package sink

import (
	"fmt"

	"github.com/tamzrod/crash-persist/internal/status"
)

// registerClient is the exact contract the register sink uses.
type registerClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
	Close() error
}

// registerSink publishes the message as a crash report block in
// holding registers of a Modbus server.
type registerSink struct {
	cli      registerClient
	endpoint string
	unitID   uint8
	addr     uint16
	maxChars int
}

func (r *registerSink) Name() string { return "modbus" }

// Deliver writes the full block in one request so a reader never sees a
// new length with old text.
func (r *registerSink) Deliver(msg []byte) error {
	if r.cli == nil {
		return fmt.Errorf("missing client for endpoint %s", r.endpoint)
	}

	regs := status.Encode(status.Report{Present: true, Message: msg}, r.maxChars)

	if err := r.cli.WriteRegisters(r.unitID, r.addr, regs); err != nil {
		return fmt.Errorf("ep=%s unit=%d addr=%d qty=%d err=%w",
			r.endpoint, r.unitID, r.addr, len(regs), err)
	}
	return nil
}

// Clear resets the block to "no report". Used at boot when nothing was
// recovered so a stale report from an earlier boot is not shown.
func (r *registerSink) Clear() error {
	if r.cli == nil {
		return fmt.Errorf("missing client for endpoint %s", r.endpoint)
	}
	regs := status.Encode(status.Report{}, r.maxChars)
	return r.cli.WriteRegisters(r.unitID, r.addr, regs)
}

func (r *registerSink) Close() error {
	if r.cli == nil {
		return nil
	}
	return r.cli.Close()
}

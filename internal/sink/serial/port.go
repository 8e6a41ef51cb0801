// internal/sink/serial/port.go
package serial

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// Port writes recovered messages to a UART console.
type Port struct {
	w       io.WriteCloser
	address string
}

type Config struct {
	Address  string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
	Timeout  time.Duration
}

// Open opens the serial device described by cfg.
func Open(cfg Config) (*Port, error) {
	if cfg.Address == "" {
		return nil, errors.New("sink serial: address required")
	}

	p, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("sink serial: open %s: %w", cfg.Address, err)
	}

	return &Port{w: p, address: cfg.Address}, nil
}

// Close closes the device.
func (p *Port) Close() error {
	return p.w.Close()
}

// WriteMessage writes msg as console lines (CRLF terminated).
func (p *Port) WriteMessage(msg []byte) error {
	if _, err := p.w.Write(consoleLines(msg)); err != nil {
		return fmt.Errorf("sink serial: write %s: %w", p.address, err)
	}
	return nil
}

// consoleLines converts LF to CRLF and guarantees a final line ending.
func consoleLines(msg []byte) []byte {
	msg = bytes.TrimRight(msg, "\r\n")
	out := bytes.ReplaceAll(msg, []byte("\r\n"), []byte("\n"))
	out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	return append(out, '\r', '\n')
}

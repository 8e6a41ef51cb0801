// internal/sink/modbus/client_test.go
package modbus

import (
	"bytes"
	"testing"
)

func TestPackRegisters(t *testing.T) {
	got := packRegisters([]uint16{0x4142, 0x0043})
	want := []byte{0x41, 0x42, 0x00, 0x43}

	if !bytes.Equal(got, want) {
		t.Fatalf("packRegisters: got=% x want=% x", got, want)
	}
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}

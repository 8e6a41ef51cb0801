// internal/sink/builder.go
package sink

import (
	"time"

	cfg "github.com/tamzrod/crash-persist/internal/config"
	"github.com/tamzrod/crash-persist/internal/sink/ingest"
	smodbus "github.com/tamzrod/crash-persist/internal/sink/modbus"
	"github.com/tamzrod/crash-persist/internal/sink/serial"
)

// Build creates one sink per configured block.
// Assumes config has already passed Validate and Normalize.
// On failure every sink built so far is closed.
func Build(s cfg.SinksConfig) ([]Sink, func() error, error) {
	var sinks []Sink

	fail := func(err error) ([]Sink, func() error, error) {
		for _, sk := range sinks {
			_ = sk.Close()
		}
		return nil, nil, err
	}

	if s.File != nil {
		sinks = append(sinks, newFileSink(s.File.Path))
	}

	if s.Serial != nil {
		p, err := serial.Open(serial.Config{
			Address:  s.Serial.Address,
			BaudRate: s.Serial.BaudRate,
			DataBits: s.Serial.DataBits,
			StopBits: s.Serial.StopBits,
			Parity:   s.Serial.Parity,
			Timeout:  time.Duration(s.Serial.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, &serialSink{port: p})
	}

	if s.Modbus != nil {
		c, err := smodbus.NewEndpointClient(smodbus.Config{
			Endpoint: s.Modbus.Endpoint,
			Timeout:  time.Duration(s.Modbus.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, &registerSink{
			cli:      c,
			endpoint: s.Modbus.Endpoint,
			unitID:   s.Modbus.UnitID,
			addr:     s.Modbus.Address,
			maxChars: s.Modbus.MaxChars,
		})
	}

	if s.Ingest != nil {
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: s.Ingest.Endpoint,
			DeviceID: s.Ingest.DeviceID,
			Timeout:  time.Duration(s.Ingest.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return fail(err)
		}
		sinks = append(sinks, &ingestSink{cli: c})
	}

	closeAll := func() error {
		var last error
		for _, sk := range sinks {
			if err := sk.Close(); err != nil {
				last = err
			}
		}
		return last
	}

	return sinks, closeAll, nil
}

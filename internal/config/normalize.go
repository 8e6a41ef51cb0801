// internal/config/normalize.go
package config

import (
	"github.com/tamzrod/crash-persist/internal/platform"
	"github.com/tamzrod/crash-persist/internal/region"
	"github.com/tamzrod/crash-persist/internal/status"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	c := &cfg.CrashPersist

	if c.Region.WordSize == 0 {
		c.Region.WordSize = region.NativeWordSize
	}

	if c.Mode.Framing == "" {
		c.Mode.Framing = FramingHeader
	}
	if c.Mode.Retrieval == "" {
		c.Mode.Retrieval = RetrievalText
	}
	if c.Mode.Termination == "" {
		c.Mode.Termination = TerminationReset
	}
	if c.Platform == "" {
		c.Platform = string(platform.KindHost)
	}

	// ---- serial: 8N1 @ 115200 ----
	if s := c.Sinks.Serial; s != nil {
		if s.BaudRate == 0 {
			s.BaudRate = 115200
		}
		if s.DataBits == 0 {
			s.DataBits = 8
		}
		if s.StopBits == 0 {
			s.StopBits = 1
		}
		if s.Parity == "" {
			s.Parity = "N"
		}
		if s.TimeoutMs == 0 {
			s.TimeoutMs = 1000
		}
	}

	if m := c.Sinks.Modbus; m != nil {
		if m.MaxChars == 0 {
			m.MaxChars = status.DefaultMaxChars
		}
		if m.TimeoutMs == 0 {
			m.TimeoutMs = 1000
		}
	}

	if i := c.Sinks.Ingest; i != nil && i.TimeoutMs == 0 {
		i.TimeoutMs = 2000
	}
}

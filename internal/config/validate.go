// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/crash-persist/internal/platform"
	"github.com/tamzrod/crash-persist/internal/region"
	"github.com/tamzrod/crash-persist/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}
	c := cfg.CrashPersist

	// ------------------------------------------------------------
	// REGION GEOMETRY
	// ------------------------------------------------------------

	if c.Region.Path == "" {
		return errors.New("region: path is required")
	}
	if c.Region.Offset < 0 {
		return fmt.Errorf("region: offset %d must not be negative", c.Region.Offset)
	}

	word := c.Region.WordSize
	switch word {
	case 0:
		word = region.NativeWordSize
	case region.WordSize32, region.WordSize64:
	default:
		return fmt.Errorf("region: word_size %d must be 4 or 8", c.Region.WordSize)
	}

	// end >= start + header
	if c.Region.Size < region.HeaderWords*word {
		return fmt.Errorf(
			"region: size %d smaller than header (%d bytes)",
			c.Region.Size,
			region.HeaderWords*word,
		)
	}

	// ------------------------------------------------------------
	// MODE
	// ------------------------------------------------------------

	if _, err := parseFraming(c.Mode.Framing); err != nil {
		return err
	}
	if _, err := parseRetrieval(c.Mode.Retrieval); err != nil {
		return err
	}
	if _, err := parseTermination(c.Mode.Termination); err != nil {
		return err
	}
	if c.Platform != "" {
		if _, err := platform.ParseKind(c.Platform); err != nil {
			return err
		}
	}

	// ------------------------------------------------------------
	// SINKS (each opt-in)
	// ------------------------------------------------------------

	s := c.Sinks

	if s.File != nil && s.File.Path == "" {
		return errors.New("sinks.file: path is required")
	}

	if s.Serial != nil {
		if s.Serial.Address == "" {
			return errors.New("sinks.serial: address is required")
		}
		switch s.Serial.Parity {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("sinks.serial: parity %q must be N, E or O", s.Serial.Parity)
		}
		if s.Serial.BaudRate < 0 || s.Serial.TimeoutMs < 0 {
			return errors.New("sinks.serial: baud_rate and timeout_ms must not be negative")
		}
	}

	if s.Modbus != nil {
		if s.Modbus.Endpoint == "" {
			return errors.New("sinks.modbus: endpoint is required")
		}
		if s.Modbus.MaxChars < 0 || s.Modbus.MaxChars > status.MaxChars {
			return fmt.Errorf(
				"sinks.modbus: max_chars %d out of range 0-%d",
				s.Modbus.MaxChars,
				status.MaxChars,
			)
		}
		// block must fit the 16-bit register space
		end := int(s.Modbus.Address) + status.BlockSlots(s.Modbus.MaxChars) - 1
		if end > 0xFFFF {
			return fmt.Errorf(
				"sinks.modbus: block %d-%d exceeds register space",
				s.Modbus.Address,
				end,
			)
		}
	}

	if s.Ingest != nil && s.Ingest.Endpoint == "" {
		return errors.New("sinks.ingest: endpoint is required")
	}

	return nil
}

// internal/config/mode.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/crash-persist/internal/persist"
)

// Mode spellings.
const (
	FramingHeader = "header"
	FramingRaw    = "raw"

	RetrievalText  = "text"
	RetrievalBytes = "bytes"

	TerminationReset = "reset"
	TerminationHalt  = "halt"
)

// PersistConfig converts the normalized mode block.
func (c *Config) PersistConfig() (persist.Config, error) {
	m := c.CrashPersist.Mode

	f, err := parseFraming(m.Framing)
	if err != nil {
		return persist.Config{}, err
	}
	r, err := parseRetrieval(m.Retrieval)
	if err != nil {
		return persist.Config{}, err
	}
	t, err := parseTermination(m.Termination)
	if err != nil {
		return persist.Config{}, err
	}

	return persist.Config{
		Framing:     f,
		Retrieval:   r,
		Termination: t,
		Minimal:     m.Minimal,
	}, nil
}

// empty strings map to the defaults so Validate can run before Normalize

func parseFraming(s string) (persist.Framing, error) {
	switch strings.ToLower(s) {
	case "", FramingHeader:
		return persist.FramingHeader, nil
	case FramingRaw:
		return persist.FramingRaw, nil
	default:
		return 0, fmt.Errorf("mode: framing %q must be header or raw", s)
	}
}

func parseRetrieval(s string) (persist.Retrieval, error) {
	switch strings.ToLower(s) {
	case "", RetrievalText:
		return persist.RetrievalText, nil
	case RetrievalBytes:
		return persist.RetrievalBytes, nil
	default:
		return 0, fmt.Errorf("mode: retrieval %q must be text or bytes", s)
	}
}

func parseTermination(s string) (persist.Termination, error) {
	switch strings.ToLower(s) {
	case "", TerminationReset:
		return persist.TerminationReset, nil
	case TerminationHalt:
		return persist.TerminationHalt, nil
	default:
		return 0, fmt.Errorf("mode: termination %q must be reset or halt", s)
	}
}

// internal/sink/sink.go
package sink

import (
	"errors"
	"fmt"
	"strings"
)

// Sink delivers a recovered message somewhere a human can read it.
// Delivery happens on a normal boot, outside the failure path, so sinks
// may do IO and return errors.
type Sink interface {
	Name() string
	Deliver(msg []byte) error
	Close() error
}

// DeliverAll hands msg to every sink. One failing sink does not stop
// the others; all failures are reported together.
func DeliverAll(sinks []Sink, msg []byte) error {
	var errs []string

	for _, s := range sinks {
		if err := s.Deliver(msg); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", s.Name(), err))
		}
	}

	if len(errs) > 0 {
		return errors.New("sink: " + strings.Join(errs, " | "))
	}
	return nil
}

// Clearer is implemented by sinks whose output other systems keep
// reading (register blocks). They are reset when nothing was recovered.
type Clearer interface {
	Clear() error
}

// ClearAll resets every sink that implements Clearer.
func ClearAll(sinks []Sink) error {
	var errs []string

	for _, s := range sinks {
		c, ok := s.(Clearer)
		if !ok {
			continue
		}
		if err := c.Clear(); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", s.Name(), err))
		}
	}

	if len(errs) > 0 {
		return errors.New("sink: " + strings.Join(errs, " | "))
	}
	return nil
}

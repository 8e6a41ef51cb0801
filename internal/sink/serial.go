// internal/sink/serial.go
package sink

// consoleWriter is the contract the serial sink uses.
type consoleWriter interface {
	WriteMessage(msg []byte) error
	Close() error
}

type serialSink struct {
	port consoleWriter
}

func (s *serialSink) Name() string { return "serial" }

func (s *serialSink) Deliver(msg []byte) error { return s.port.WriteMessage(msg) }

func (s *serialSink) Close() error { return s.port.Close() }

// internal/sink/ingest.go
package sink

// packetSender is the contract the ingest sink uses.
type packetSender interface {
	Send(msg []byte) error
	Close() error
}

type ingestSink struct {
	cli packetSender
}

func (s *ingestSink) Name() string { return "ingest" }

func (s *ingestSink) Deliver(msg []byte) error { return s.cli.Send(msg) }

func (s *ingestSink) Close() error { return s.cli.Close() }

// internal/sink/ingest/client.go
package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

const (
	magicHi byte = 0x43 // 'C'
	magicLo byte = 0x52 // 'R'

	versionV1 byte = 0x01

	respOK       byte = 0x00
	respRejected byte = 0x01
)

// HeaderSize is the fixed packet header length.
const HeaderSize = 8

// MaxPayload bounds one packet; longer messages are cut.
const MaxPayload = 64 * 1024

// Crash Report v1 client (stateless, 1 packet = 1 connection)
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
	deviceID uint16
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
	DeviceID uint16
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("sink ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &EndpointClient{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		deviceID: cfg.DeviceID,
	}, nil
}

func (c *EndpointClient) Close() error { return nil }

// Send delivers one recovered message and waits for the 1-byte verdict.
func (c *EndpointClient) Send(msg []byte) error {
	pkt := buildPacketV1(c.deviceID, msg)

	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return fmt.Errorf("sink ingest: dial: %w", err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(c.timeout))
	if err := writeAll(conn, pkt); err != nil {
		return fmt.Errorf("sink ingest: write: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(c.timeout))
	var resp [1]byte
	if _, err := io.ReadFull(conn, resp[:]); err != nil {
		return fmt.Errorf("sink ingest: read status: %w", err)
	}

	switch resp[0] {
	case respOK:
		return nil
	case respRejected:
		return errors.New("sink ingest: rejected")
	default:
		return fmt.Errorf("sink ingest: unknown status 0x%02x", resp[0])
	}
}

//
// ---- Crash Report v1 packet builder (LOCKED) ----
//
// Layout (8 bytes header):
// 0–1  Magic "CR"
// 2    Version (0x01)
// 3    Reserved (0)
// 4–5  DeviceID
// 6–7  Length
// 8+   Payload
//

func buildPacketV1(deviceID uint16, msg []byte) []byte {
	if len(msg) > MaxPayload-1 {
		msg = msg[:MaxPayload-1]
	}

	pkt := make([]byte, HeaderSize, HeaderSize+len(msg))

	pkt[0] = magicHi
	pkt[1] = magicLo
	pkt[2] = versionV1
	pkt[3] = 0

	binary.BigEndian.PutUint16(pkt[4:6], deviceID)
	binary.BigEndian.PutUint16(pkt[6:8], uint16(len(msg)))

	return append(pkt, msg...)
}

// ParsePacketV1 is the receiving side of buildPacketV1.
func ParsePacketV1(pkt []byte) (deviceID uint16, msg []byte, err error) {
	if len(pkt) < HeaderSize {
		return 0, nil, errors.New("ingest: short packet")
	}
	if pkt[0] != magicHi || pkt[1] != magicLo {
		return 0, nil, errors.New("ingest: bad magic")
	}
	if pkt[2] != versionV1 {
		return 0, nil, fmt.Errorf("ingest: unsupported version %d", pkt[2])
	}

	deviceID = binary.BigEndian.Uint16(pkt[4:6])
	n := int(binary.BigEndian.Uint16(pkt[6:8]))
	if len(pkt)-HeaderSize < n {
		return 0, nil, errors.New("ingest: payload shorter than length")
	}

	return deviceID, pkt[HeaderSize : HeaderSize+n], nil
}

//
// ---- helpers ----
//

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// internal/sink/file.go
package sink

import (
	"fmt"
	"os"
	"time"
)

// fileSink appends one record per recovered message to a log file.
type fileSink struct {
	path string
	now  func() time.Time
}

func newFileSink(path string) *fileSink {
	return &fileSink{path: path, now: time.Now}
}

func (f *fileSink) Name() string { return "file" }

func (f *fileSink) Deliver(msg []byte) error {
	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}

	// one record: "<RFC3339> <message>" with the message's own newlines kept
	line := fmt.Sprintf("%s %s", f.now().UTC().Format(time.RFC3339), msg)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		line += "\n"
	}

	if _, err := fh.WriteString(line); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := fh.Sync(); err != nil {
		_ = fh.Close()
		return fmt.Errorf("sync %s: %w", f.path, err)
	}
	return fh.Close()
}

func (f *fileSink) Close() error { return nil }

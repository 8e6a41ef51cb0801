// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tamzrod/crash-persist/internal/persist"
)

const sample = `
crashpersist:
  region:
    path: /dev/mem
    offset: 0x2000FC00
    size: 1024
    word_size: 4
  mode:
    framing: header
    retrieval: bytes
    termination: halt
    minimal: true
  platform: exit
  sinks:
    file:
      path: /var/log/crash.log
    modbus:
      endpoint: 10.0.0.2:502
      unit_id: 3
      address: 100
      max_chars: 64
`

func TestLoad_Sample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crashpersist.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}

	cp := cfg.CrashPersist
	if cp.Region.Offset != 0x2000FC00 || cp.Region.Size != 1024 || cp.Region.WordSize != 4 {
		t.Fatalf("region: %+v", cp.Region)
	}
	if cp.Sinks.Modbus == nil || cp.Sinks.Modbus.UnitID != 3 || cp.Sinks.Modbus.Address != 100 {
		t.Fatalf("modbus sink: %+v", cp.Sinks.Modbus)
	}
	if cp.Sinks.Serial != nil {
		t.Fatalf("serial sink must stay disabled")
	}

	pc, err := cfg.PersistConfig()
	if err != nil {
		t.Fatalf("PersistConfig err=%v", err)
	}
	want := persist.Config{
		Framing:     persist.FramingHeader,
		Retrieval:   persist.RetrievalBytes,
		Termination: persist.TerminationHalt,
		Minimal:     true,
	}
	if pc != want {
		t.Fatalf("persist config: got=%+v want=%+v", pc, want)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	raw := []byte("crashpersist:\n  region:\n    path: x\n    colour: red\n")

	if _, err := Parse(raw); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

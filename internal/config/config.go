// internal/config/config.go
package config

type Config struct {
	CrashPersist CrashPersistConfig `yaml:"crashpersist"`
}

type CrashPersistConfig struct {
	Region   RegionConfig `yaml:"region"`
	Mode     ModeConfig   `yaml:"mode"`
	Platform string       `yaml:"platform"` // host | exit
	Sinks    SinksConfig  `yaml:"sinks"`
}

// ---- REGION ----

type RegionConfig struct {
	Path     string `yaml:"path"`      // /dev/mem or a backing file
	Offset   int64  `yaml:"offset"`    // physical start address / file offset
	Size     int    `yaml:"size"`      // bytes, header included
	WordSize int    `yaml:"word_size"` // 4 or 8; 0 => native
}

// ---- MODE ----

type ModeConfig struct {
	Framing     string `yaml:"framing"`     // header | raw
	Retrieval   string `yaml:"retrieval"`   // text | bytes
	Termination string `yaml:"termination"` // reset | halt
	Minimal     bool   `yaml:"minimal"`
}

// ---- SINKS ----

type SinksConfig struct {
	File   *FileSinkConfig   `yaml:"file"`
	Serial *SerialSinkConfig `yaml:"serial"`
	Modbus *ModbusSinkConfig `yaml:"modbus"`
	Ingest *IngestSinkConfig `yaml:"ingest"`
}

type FileSinkConfig struct {
	Path string `yaml:"path"`
}

type SerialSinkConfig struct {
	Address   string `yaml:"address"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"` // N | E | O
	TimeoutMs int    `yaml:"timeout_ms"`
}

type ModbusSinkConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"`   // first holding register of the block
	MaxChars  int    `yaml:"max_chars"` // text bytes carried by the block
	TimeoutMs int    `yaml:"timeout_ms"`
}

type IngestSinkConfig struct {
	Endpoint  string `yaml:"endpoint"`
	DeviceID  uint16 `yaml:"device_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

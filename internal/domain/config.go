package domain

// Config mirrors ~/.rotcipher/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Cipher              CipherSettings  `yaml:"cipher"`
	History             HistorySettings `yaml:"history"`
	UI                  UISettings      `yaml:"ui"`
}

// CipherSettings holds the shift a session starts with.
type CipherSettings struct {
	DefaultShift int `yaml:"default_shift"`
}

// HistorySettings selects where operations are logged.
type HistorySettings struct {
	Backend   HistoryBackend `yaml:"backend"`
	Path      string         `yaml:"path"`
	ViewLimit int            `yaml:"view_limit"`
}

// UISettings controls presentation only.
type UISettings struct {
	Color     bool `yaml:"color"`
	Animation bool `yaml:"animation"`
}

// HistoryBackend names a history store implementation.
type HistoryBackend string

const (
	HistoryBackendFile   HistoryBackend = "file"
	HistoryBackendSQLite HistoryBackend = "sqlite"
)

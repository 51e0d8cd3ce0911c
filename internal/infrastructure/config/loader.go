package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/splo1t/rotcipher/assets"
	configapp "github.com/splo1t/rotcipher/internal/application/config"
	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/pkg/filesystem"
	"github.com/splo1t/rotcipher/internal/ports"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "ROTCIPHER_CONFIG"
	// EnvHistoryPath overrides history.path.
	EnvHistoryPath = "ROTCIPHER_HISTORY"
	// EnvDotFile is the optional dotenv file read from the working directory.
	EnvDotFile = ".env"
)

// FileLoader loads YAML configuration from ~/.rotcipher/config.yaml (overridable via ROTCIPHER_CONFIG).
type FileLoader struct {
	overridePath string
	dotenvPath   string
}

// NewFileLoader builds a new loader. An empty path means the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, dotenvPath: EnvDotFile}
}

// WithDotenv changes the dotenv file consulted before environment lookups.
func (l *FileLoader) WithDotenv(path string) *FileLoader {
	l.dotenvPath = path
	return l
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	if err := l.loadDotenv(); err != nil {
		return domain.Config{}, err
	}

	cfg, err := defaultConfig()
	if err != nil {
		return domain.Config{}, err
	}

	path := l.Path()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run convenience only; an unwritable home still gets defaults.
		_ = writeDefault(path)
	case err != nil:
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg = hydrateDefaults(cfg)
	if err := configapp.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config file location this loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(BaseDir(), "config.yaml")
}

// BaseDir is the per-user state directory.
func BaseDir() string {
	return filepath.Join(filesystem.UserHomeDir(), ".rotcipher")
}

func (l *FileLoader) loadDotenv() error {
	if l.dotenvPath == "" {
		return nil
	}
	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(l.dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", l.dotenvPath, err)
	}
	return nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Cipher.DefaultShift == 0 {
		cfg.Cipher.DefaultShift = domain.DefaultShift
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendFile
	}
	if custom := os.Getenv(EnvHistoryPath); custom != "" {
		cfg.History.Path = custom
	}
	if cfg.History.Path == "" {
		name := domain.DefaultHistoryFileName
		if cfg.History.Backend == domain.HistoryBackendSQLite {
			name = domain.DefaultHistoryDBName
		}
		cfg.History.Path = filepath.Join(BaseDir(), name)
	}
	cfg.History.Path = filesystem.ExpandPath(cfg.History.Path)
	if cfg.History.ViewLimit <= 0 {
		cfg.History.ViewLimit = domain.DefaultHistoryViewLimit
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.Color = false
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)

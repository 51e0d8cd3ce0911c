// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The cipher engine in the domain package is pure and
// needs no port; everything with I/O (configuration, the history log, logging)
// is reached through the interfaces declared here.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., HistoryRepository, ConfigProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/splo1t/rotcipher/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.rotcipher/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryRepository is the append-only operation log.
// Records are never rewritten or removed through this interface.
type HistoryRepository interface {
	// Append durably stores one entry after any previously appended ones.
	Append(ctx context.Context, entry domain.LogEntry) error
	// Recent returns the last n entries, oldest first. A missing or empty
	// store yields no entries and no error. n <= 0 returns everything.
	Recent(ctx context.Context, n int) ([]domain.LogEntry, error)
	// Path reports where the log lives.
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

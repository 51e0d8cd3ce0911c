package history

import (
	"context"
	"fmt"
	"io"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/ports"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the repository selected by backend. The closer must be
// called once the session ends.
func Open(ctx context.Context, backend domain.HistoryBackend, path string) (ports.HistoryRepository, io.Closer, error) {
	switch backend {
	case domain.HistoryBackendFile, "":
		return NewFileStore(path), nopCloser{}, nil
	case domain.HistoryBackendSQLite:
		store, err := OpenSQLiteStore(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

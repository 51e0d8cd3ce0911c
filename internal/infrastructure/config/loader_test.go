package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splo1t/rotcipher/assets"
	"github.com/splo1t/rotcipher/internal/domain"
)

// isolateEnv points HOME at a temp dir and clears variables the loader reads.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvConfigPath, EnvHistoryPath, "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	home := isolateEnv(t)
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")

	cfg, err := NewFileLoader(path).WithDotenv("").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 13, cfg.Cipher.DefaultShift)
	assert.Equal(t, domain.HistoryBackendFile, cfg.History.Backend)
	assert.Equal(t, filepath.Join(home, ".rotcipher", domain.DefaultHistoryFileName), cfg.History.Path)
	assert.Equal(t, 5, cfg.History.ViewLimit)
	assert.True(t, cfg.UI.Color)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, assets.DefaultConfigYAML, written)
}

func TestLoadMergesPartialFileOverDefaults(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cipher:\n  default_shift: 3\nhistory:\n  backend: sqlite\n"), 0o600))

	cfg, err := NewFileLoader(path).WithDotenv("").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Cipher.DefaultShift)
	assert.Equal(t, domain.HistoryBackendSQLite, cfg.History.Backend)
	assert.Equal(t, domain.DefaultHistoryDBName, filepath.Base(cfg.History.Path))
	assert.True(t, cfg.UI.Animation, "untouched keys keep embedded defaults")
}

func TestLoadRejectsOutOfRangeShift(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cipher:\n  default_shift: 26\n"), 0o600))

	_, err := NewFileLoader(path).WithDotenv("").Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrShiftOutOfRange)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  backend: redis\n"), 0o600))

	_, err := NewFileLoader(path).WithDotenv("").Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cipher: [unterminated"), 0o600))

	_, err := NewFileLoader(path).WithDotenv("").Load(context.Background())
	assert.Error(t, err)
}

func TestLoadReadsDotenvAndNoColor(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	historyPath := filepath.Join(dir, "custom.txt")
	require.NoError(t, os.WriteFile(dotenv, []byte("ROTCIPHER_HISTORY="+historyPath+"\nNO_COLOR=1\n"), 0o600))

	cfg, err := NewFileLoader(filepath.Join(dir, "config.yaml")).WithDotenv(dotenv).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, historyPath, cfg.History.Path)
	assert.False(t, cfg.UI.Color)
}

func TestPathHonoursEnvOverride(t *testing.T) {
	isolateEnv(t)
	custom := filepath.Join(t.TempDir(), "elsewhere.yaml")
	t.Setenv(EnvConfigPath, custom)

	assert.Equal(t, custom, NewFileLoader("").Path())
	assert.Equal(t, "/explicit.yaml", NewFileLoader("/explicit.yaml").Path())
}

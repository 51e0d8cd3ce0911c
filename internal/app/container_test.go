package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/infrastructure/history"
)

func TestBuildContainerAppliesOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "ops.txt")

	c, err := BuildContainer(context.Background(), Options{
		ConfigPath:  filepath.Join(dir, "config.yaml"),
		HistoryPath: historyPath,
		Shift:       3,
		NoColor:     true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, 3, c.SessionService.Shift().Int())
	assert.Equal(t, historyPath, c.HistoryStore.Path())
	assert.False(t, c.Config.UI.Color)
	assert.NotEmpty(t, c.SessionID)
	assert.IsType(t, &history.FileStore{}, c.HistoryStore)

	out, err := c.SessionService.Encode(context.Background(), "Hello, World!")
	require.NoError(t, err)
	require.NoError(t, out.LogErr)
	assert.Equal(t, "Khoor, Zruog!", out.Entry.Result)

	_, err = os.Stat(historyPath)
	assert.NoError(t, err)
}

func TestBuildContainerRejectsBadShiftOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	_, err := BuildContainer(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "config.yaml"),
		Shift:      40,
	})
	assert.ErrorIs(t, err, domain.ErrShiftOutOfRange)
}

func TestBuildContainerSQLiteBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("history:\n  backend: sqlite\n  path: "+filepath.Join(dir, "h.db")+"\n"), 0o600))

	c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &history.SQLiteStore{}, c.HistoryStore)
	assert.Equal(t, 13, c.SessionService.Shift().Int())
}

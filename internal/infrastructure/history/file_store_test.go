package history

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splo1t/rotcipher/internal/domain"
)

func fixedTime(sec int) time.Time {
	return time.Date(2024, 5, 17, 10, 30, sec, 0, time.Local)
}

func TestFileStoreAppendThenRecentOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "history.txt"))

	entry := domain.LogEntry{
		Timestamp: fixedTime(0),
		Operation: domain.Encode,
		Shift:     3,
		Original:  "Hello, World!",
		Result:    "Khoor, Zruog!",
	}
	require.NoError(t, store.Append(ctx, entry))

	got, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(entry, got[0]); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreRecordLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.txt")
	store := NewFileStore(path)

	require.NoError(t, store.Append(ctx, domain.LogEntry{
		Timestamp: fixedTime(5),
		Operation: domain.Decode,
		Shift:     13,
		Original:  "Uryyb",
		Result:    "Hello",
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "[2024-05-17 10:30:05] DECODE (ROT13)\n" +
		"Original: Uryyb\n" +
		"Result:   Hello\n" +
		strings.Repeat("-", 50) + "\n"
	assert.Equal(t, want, string(raw))
}

func TestFileStoreRecentReturnsLastNChronologically(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "history.txt"))

	for i := 0; i < 7; i++ {
		require.NoError(t, store.Append(ctx, domain.LogEntry{
			Timestamp: fixedTime(i),
			Operation: domain.Encode,
			Shift:     i + 1,
			Original:  strings.Repeat("a", i+1),
			Result:    domain.EncodeText(strings.Repeat("a", i+1), i+1),
		}))
	}

	got, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{5, 6, 7}, []int{got[0].Shift, got[1].Shift, got[2].Shift})

	all, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	more, err := store.Recent(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, more, 7)
}

func TestFileStoreMissingOrEmptyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.txt")
	store := NewFileStore(path)

	got, err := store.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	got, err = store.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreEscapesSeparatorAndNewlines(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "history.txt"))

	tricky := "line one\n" + Separator + "\nC:\\new\\path\r\nend"
	entry := domain.LogEntry{
		Timestamp: fixedTime(9),
		Operation: domain.Encode,
		Shift:     4,
		Original:  tricky,
		Result:    domain.EncodeText(tricky, 4),
	}
	require.NoError(t, store.Append(ctx, entry))
	require.NoError(t, store.Append(ctx, domain.LogEntry{
		Timestamp: fixedTime(10),
		Operation: domain.Decode,
		Shift:     4,
		Original:  "x",
		Result:    "t",
	}))

	got, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	if diff := cmp.Diff(entry, got[0]); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, domain.Decode, got[1].Operation)
}

func TestParseRecordsSkipsMalformedBlocks(t *testing.T) {
	log := strings.Join([]string{
		"[2024-05-17 10:30:00] ENCODE (ROT3)",
		"Original: abc",
		"Result:   def",
		Separator,
		"garbage without header",
		Separator,
		"[not a time] ENCODE (ROT3)",
		"Original: abc",
		"Result:   def",
		Separator,
		"[2024-05-17 10:30:01] DECODE (ROT1)",
		"Original: b",
		"Result:   a",
		Separator,
		"",
	}, "\n")

	got, err := ParseRecords(bufio.NewScanner(strings.NewReader(log)))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "def", got[0].Result)
	assert.Equal(t, domain.Decode, got[1].Operation)
	assert.Equal(t, 1, got[1].Shift)
}

func TestFileStoreAppendFailsWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	err := store.Append(context.Background(), domain.LogEntry{Timestamp: fixedTime(0), Operation: domain.Encode, Shift: 1})
	assert.Error(t, err)
}

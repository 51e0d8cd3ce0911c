package history

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/ports"
)

// Separator terminates every record in the text log.
var Separator = strings.Repeat("-", 50)

const (
	originalPrefix = "Original: "
	resultPrefix   = "Result:   "
)

// FileStore appends history records to a plain text log, four lines per
// record followed by Separator. Field values are escaped so embedded
// newlines can never produce a stray separator line.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append implements ports.HistoryRepository.
func (f *FileStore) Append(ctx context.Context, entry domain.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(FormatRecord(entry)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return file.Sync()
}

// Recent implements ports.HistoryRepository.
func (f *FileStore) Recent(ctx context.Context, n int) ([]domain.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer file.Close()

	entries, err := ParseRecords(bufio.NewScanner(file))
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// FormatRecord renders one entry including its trailing separator.
func FormatRecord(entry domain.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s (ROT%d)\n", entry.Timestamp.Format(domain.LogTimestampFormat), entry.Operation, entry.Shift)
	b.WriteString(originalPrefix + escapeField(entry.Original) + "\n")
	b.WriteString(resultPrefix + escapeField(entry.Result) + "\n")
	b.WriteString(Separator + "\n")
	return b.String()
}

// ParseRecords splits the log on Separator and decodes every well-formed
// record. Malformed records are skipped.
func ParseRecords(sc *bufio.Scanner) ([]domain.LogEntry, error) {
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var (
		entries []domain.LogEntry
		block   []string
	)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == Separator {
			if entry, ok := parseBlock(block); ok {
				entries = append(entries, entry)
			}
			block = block[:0]
			continue
		}
		block = append(block, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseBlock(lines []string) (domain.LogEntry, bool) {
	var (
		entry             domain.LogEntry
		header, orig, res bool
	)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "["):
			e, ok := parseHeader(line)
			if !ok {
				return domain.LogEntry{}, false
			}
			entry.Timestamp, entry.Operation, entry.Shift = e.Timestamp, e.Operation, e.Shift
			header = true
		case strings.HasPrefix(line, originalPrefix):
			entry.Original = unescapeField(strings.TrimPrefix(line, originalPrefix))
			orig = true
		case strings.HasPrefix(line, resultPrefix):
			entry.Result = unescapeField(strings.TrimPrefix(line, resultPrefix))
			res = true
		}
	}
	return entry, header && orig && res
}

// parseHeader reads "[2006-01-02 15:04:05] ENCODE (ROT13)".
func parseHeader(line string) (domain.LogEntry, bool) {
	end := strings.Index(line, "] ")
	if end < 0 {
		return domain.LogEntry{}, false
	}
	ts, err := time.ParseInLocation(domain.LogTimestampFormat, line[1:end], time.Local)
	if err != nil {
		return domain.LogEntry{}, false
	}
	op, rot, ok := strings.Cut(line[end+2:], " (ROT")
	if !ok || !strings.HasSuffix(rot, ")") {
		return domain.LogEntry{}, false
	}
	dir, err := domain.ParseDirection(op)
	if err != nil {
		return domain.LogEntry{}, false
	}
	shift, err := strconv.Atoi(strings.TrimSuffix(rot, ")"))
	if err != nil {
		return domain.LogEntry{}, false
	}
	return domain.LogEntry{Timestamp: ts, Operation: dir, Shift: shift}, true
}

var (
	fieldEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	fieldUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

func escapeField(s string) string {
	return fieldEscaper.Replace(s)
}

func unescapeField(s string) string {
	return fieldUnescaper.Replace(s)
}

var _ ports.HistoryRepository = (*FileStore)(nil)

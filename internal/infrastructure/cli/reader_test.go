package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReaderStripsTerminators(t *testing.T) {
	r := NewLineReader(strings.NewReader("one\r\ntwo\nthree"))
	defer r.Close()
	ctx := context.Background()

	for _, want := range []string{"one", "two", "three"} {
		got, err := r.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
	_, err = r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReaderCancelledContext(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewLineReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInterrupted)

	r.Close()
	require.NoError(t, pw.Close())
}

func TestLineReaderSurfacesReadErrors(t *testing.T) {
	boom := errors.New("tty gone")
	r := NewLineReader(io.MultiReader(strings.NewReader("ok\n"), errReader{boom}))
	defer r.Close()

	got, err := r.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	_, err = r.ReadLine(context.Background())
	assert.ErrorIs(t, err, boom)
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInterrupted is returned by LineReader.ReadLine when the context is
// cancelled while waiting for input, e.g. on Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

type lineResult struct {
	line string
	err  error
}

// LineReader reads newline-terminated input. A single pump goroutine owns
// the underlying reader so a blocked read can be abandoned on cancellation.
type LineReader struct {
	src   *bufio.Reader
	lines chan lineResult
	done  chan struct{}
	start sync.Once
	stop  sync.Once
}

// NewLineReader wraps in.
func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		src:   bufio.NewReader(in),
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

// ReadLine blocks for the next line, without its line terminator.
// It returns io.EOF once input is exhausted and ErrInterrupted when ctx ends.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}
	r.start.Do(func() { go r.pump() })
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// Close stops the pump once its current read returns.
func (r *LineReader) Close() {
	r.stop.Do(func() { close(r.done) })
}

func (r *LineReader) pump() {
	defer close(r.lines)
	for {
		line, err := r.src.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil {
			if line != "" && errors.Is(err, io.EOF) {
				if !r.send(lineResult{line: line}) {
					return
				}
			} else if !errors.Is(err, io.EOF) {
				r.send(lineResult{err: err})
			}
			return
		}
		if !r.send(lineResult{line: line}) {
			return
		}
	}
}

func (r *LineReader) send(res lineResult) bool {
	select {
	case r.lines <- res:
		return true
	case <-r.done:
		return false
	}
}

// Package file adapts the pipeline to local files and the terminal: it reads
// observation logs line by line and writes reports to files or stdout.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/meteoraid/internal/pipeline"
)

const maxLineBytes = 1 << 20

// LineReader implements pipeline.LineExtractor over an io.Reader.
type LineReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// NewLineReader reads lines from r. Trailing carriage returns are dropped.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lr := &LineReader{scanner: sc}
	if c, ok := r.(io.Closer); ok {
		lr.closer = c
	}
	return lr
}

// Open opens the observation log at path.
func Open(path string) (*LineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open observation log: %w", err)
	}
	return NewLineReader(f), nil
}

// Extract returns the next line, or io.EOF once the input is exhausted.
func (r *LineReader) Extract(ctx context.Context) (pipeline.Line, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.Line{}, err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return pipeline.Line{}, fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		return pipeline.Line{}, io.EOF
	}
	r.line++
	return pipeline.Line{Number: r.line, Text: r.scanner.Text()}, nil
}

// Close releases the underlying reader when it is closable.
func (r *LineReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

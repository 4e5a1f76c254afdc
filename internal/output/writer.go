package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer streams records as NDJSON, one JSON object per line. It is safe
// for concurrent use.
type Writer struct {
	mu      sync.Mutex
	enc     *json.Encoder
	written int
}

// NewWriter returns an NDJSON writer on w. HTML characters in titles and
// bodies are written as is.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write encodes record on its own line.
func (w *Writer) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.enc.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	w.written++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Close is a no-op; records are written as they arrive.
func (w *Writer) Close() error {
	return nil
}

// Open returns the writer for format on path. An empty path or "-"
// writes to stdout. Closing the returned writer closes the file.
func Open(format, path string, stdout io.Writer) (OutputWriter, error) {
	if path == "" || path == "-" {
		return New(format, stdout)
	}

	file, err := os.Create(path) // #nosec G304 - path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	w, err := New(format, file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &fileOutput{OutputWriter: w, file: file}, nil
}

type fileOutput struct {
	OutputWriter
	file *os.File
}

func (f *fileOutput) Close() error {
	werr := f.OutputWriter.Close()
	if err := f.file.Close(); err != nil && werr == nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return werr
}

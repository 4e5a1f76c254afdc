// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/olekukonko/tablewriter"
)

// TableWriter renders Row records as a text table. Rows are buffered and
// the table is drawn on Close, with the header taken from the first row.
type TableWriter struct {
	mu      sync.Mutex
	output  io.Writer
	columns []string
	rows    [][]string
	closed  bool
}

// NewTableWriter creates a table writer that renders to w.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{output: w}
}

// Write buffers one row. record must implement Row.
func (t *TableWriter) Write(record interface{}) error {
	row, ok := record.(Row)
	if !ok {
		return fmt.Errorf("failed to write record: %T cannot be shown as a table row", record)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("failed to write record: table already rendered")
	}
	if t.columns == nil {
		t.columns = row.Columns()
	}
	t.rows = append(t.rows, row.Values())
	return nil
}

// Count returns the number of rows buffered.
func (t *TableWriter) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// Close renders the table. An empty table renders nothing.
func (t *TableWriter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || len(t.rows) == 0 {
		t.closed = true
		return nil
	}
	t.closed = true

	table := tablewriter.NewWriter(t.output)
	header := make([]any, len(t.columns))
	for i, c := range t.columns {
		header[i] = c
	}
	table.Header(header...)

	for _, row := range t.rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// New returns the writer for format, "ndjson" or "table".
func New(format string, w io.Writer) (OutputWriter, error) {
	switch format {
	case "ndjson", "json":
		return NewWriter(w), nil
	case "table", "":
		return NewTableWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want ndjson or table)", format)
	}
}

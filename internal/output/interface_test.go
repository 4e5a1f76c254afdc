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
	"bytes"
	"testing"
)

// Compile-time checks that both writers implement OutputWriter
var (
	_ OutputWriter = (*Writer)(nil)
	_ OutputWriter = (*TableWriter)(nil)
)

// Compile-time checks that the records render as table rows
var (
	_ Row = IssueRecord{}
	_ Row = ReportRecord{}
	_ Row = CheckRecord{}
)

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "ndjson", want: "*output.Writer"},
		{format: "json", want: "*output.Writer"},
		{format: "table", want: "*output.TableWriter"},
		{format: "", want: "*output.TableWriter"},
		{format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w, err := New(tt.format, &bytes.Buffer{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unsupported format")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := typeName(w); got != tt.want {
				t.Errorf("New(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(w OutputWriter) string {
	switch w.(type) {
	case *Writer:
		return "*output.Writer"
	case *TableWriter:
		return "*output.TableWriter"
	default:
		return "unknown"
	}
}

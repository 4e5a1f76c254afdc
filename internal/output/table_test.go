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
	"strings"
	"testing"
)

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf)

	records := []IssueRecord{
		{Repository: "Demo", Title: "Demo had a ValueError error with the compute function", State: "OPEN", Generated: true},
		{Repository: "Demo", Title: "Flaky login", State: "OPEN"},
	}
	for _, r := range records {
		if err := tw.Write(r); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("table rendered before Close")
	}
	if tw.Count() != 2 {
		t.Errorf("Count() = %d, want 2", tw.Count())
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"REPOSITORY", "TITLE", "GENERATED", "Flaky login", "OPEN"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if err := tw.Write(records[0]); err == nil {
		t.Error("expected error writing after Close")
	}
}

func TestTableWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf)
	if err := tw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestTableWriter_RejectsNonRow(t *testing.T) {
	tw := NewTableWriter(&bytes.Buffer{})
	if err := tw.Write(map[string]string{"title": "t"}); err == nil {
		t.Error("expected error for record without columns")
	}
}

func TestRecordValues(t *testing.T) {
	r := ReportRecord{ID: "r1", Repository: "Demo", Outcome: "skipped", Title: "t"}
	if got := r.Values(); got[4] != "" {
		t.Errorf("Number column = %q, want empty", got[4])
	}

	c := CheckRecord{Repository: "Demo", Organization: "octo-org", TestMode: true, Status: "ok"}
	if got := strings.Join(c.Values(), "|"); got != "Demo|octo-org|true|ok|" {
		t.Errorf("Values() = %s", got)
	}
}

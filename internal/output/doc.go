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

// Package output renders issue listings and report results for the
// sirseer-bugreport CLI, either as NDJSON (one JSON object per line) for
// scripts or as a text table for people.
//
// Both writers implement OutputWriter. The NDJSON Writer streams each
// record as it is written; the TableWriter collects rows and renders them
// on Close. Open picks one by format name and writes to a file or stdout.
//
// Example usage:
//
//	w, err := output.Open("ndjson", "issues.ndjson", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	for _, issue := range issues {
//	    if err := w.Write(output.IssueRecord{Repository: "Demo", Title: issue.Title, State: issue.State}); err != nil {
//	        return err
//	    }
//	}
//	return w.Close()
package output

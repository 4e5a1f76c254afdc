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

import "strconv"

// IssueRecord is one open issue from a duplicate-detection listing.
type IssueRecord struct {
	Repository string `json:"repository"`
	Title      string `json:"title"`
	State      string `json:"state"`
	// Generated is set when the title has the shape of an automatic report.
	Generated bool `json:"generated"`
}

// Columns implements Row.
func (IssueRecord) Columns() []string {
	return []string{"Repository", "Title", "State", "Generated"}
}

// Values implements Row.
func (r IssueRecord) Values() []string {
	return []string{r.Repository, r.Title, r.State, strconv.FormatBool(r.Generated)}
}

// ReportRecord is the result of one manual report.
type ReportRecord struct {
	ID         string `json:"id"`
	Repository string `json:"repository"`
	Outcome    string `json:"outcome"`
	Title      string `json:"title"`
	Number     int    `json:"number,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Columns implements Row.
func (ReportRecord) Columns() []string {
	return []string{"ID", "Repository", "Outcome", "Title", "Number", "URL"}
}

// Values implements Row.
func (r ReportRecord) Values() []string {
	number := ""
	if r.Number > 0 {
		number = strconv.Itoa(r.Number)
	}
	return []string{r.ID, r.Repository, r.Outcome, r.Title, number, r.URL}
}

// CheckRecord is the result of checking one configured repository.
type CheckRecord struct {
	Repository   string `json:"repository"`
	Organization string `json:"organization"`
	TestMode     bool   `json:"test_mode"`
	Status       string `json:"status"`
	Detail       string `json:"detail,omitempty"`
}

// Columns implements Row.
func (CheckRecord) Columns() []string {
	return []string{"Repository", "Organization", "Test Mode", "Status", "Detail"}
}

// Values implements Row.
func (r CheckRecord) Values() []string {
	return []string{r.Repository, r.Organization, strconv.FormatBool(r.TestMode), r.Status, r.Detail}
}

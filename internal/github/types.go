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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

// Issue is an open issue as returned by the label listing query.
// Only the fields needed for duplicate detection are fetched.
type Issue struct {
	Title string `json:"title"`
	State string `json:"state"`
}

// IssueListOptions configures the open issue listing.
type IssueListOptions struct {
	// Label restricts the listing to issues carrying this label name.
	Label string

	// First caps the number of issues returned. Defaults to 10.
	// Only the first page is ever fetched.
	First int
}

// CreateIssueRequest describes a new issue.
type CreateIssueRequest struct {
	RepositoryID string
	Title        string
	Body         string
	LabelIDs     []string
}

// CreatedIssue is the issue echoed back by the createIssue mutation.
type CreatedIssue struct {
	Number     int      `json:"number"`
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Repository string   `json:"repository"`
	Labels     []string `json:"labels"`
}

// Default values for issue listing
const (
	defaultIssuePageSize = 10
	maxIssuePageSize     = 100
)

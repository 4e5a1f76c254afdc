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

package github

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mockclient.gen.go -package=github

// Client defines the interface for the issue tracker operations used by the
// reporter. This interface allows for easy mocking in tests.
type Client interface {
	// GetRepositoryID resolves the opaque GraphQL node ID of owner/repo.
	// The ID is required by the createIssue mutation.
	GetRepositoryID(ctx context.Context, owner, repo string) (string, error)

	// ListOpenIssues returns the first page of open issues in owner/repo
	// carrying opts.Label, in the order GitHub returns them.
	ListOpenIssues(ctx context.Context, owner, repo string, opts IssueListOptions) ([]Issue, error)

	// CreateIssue submits the createIssue mutation.
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreatedIssue, error)
}

// LabelResolver looks up label node IDs by name.
type LabelResolver interface {
	LabelID(ctx context.Context, owner, repo, name string) (string, error)
}

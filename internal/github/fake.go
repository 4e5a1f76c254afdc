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

import (
	"context"
	"fmt"
	"sync"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
)

// FakeClient is an in-memory Client for tests. It keeps the issues it is
// seeded with plus every issue created through it, and records each call.
type FakeClient struct {
	mu sync.Mutex

	// RepositoryID returned by GetRepositoryID.
	RepositoryID string

	// Issues visible to ListOpenIssues. CreateIssue appends to it.
	Issues []Issue

	// Error to return from every call
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool
	ShouldFailCreate   bool

	// Track calls for verification
	Calls        []string
	LastOwner    string
	LastRepo     string
	LastListOpts IssueListOptions
	Created      []CreateIssueRequest
}

// NewFakeClient returns a fake with a fixed repository ID and no issues.
func NewFakeClient(opts ...FakeClientOption) *FakeClient {
	f := &FakeClient{
		RepositoryID: "R_kgDOFake",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FakeClientOption configures a FakeClient.
type FakeClientOption func(*FakeClient)

// WithIssues seeds the open issue list.
func WithIssues(issues ...Issue) FakeClientOption {
	return func(f *FakeClient) {
		f.Issues = append(f.Issues, issues...)
	}
}

// WithError makes every call fail with err.
func WithError(err error) FakeClientOption {
	return func(f *FakeClient) {
		f.Error = err
	}
}

// WithAuthFailure makes every call fail authentication.
func WithAuthFailure() FakeClientOption {
	return func(f *FakeClient) {
		f.ShouldFailAuth = true
	}
}

// WithNotFound makes every call fail as if the repository did not exist.
func WithNotFound() FakeClientOption {
	return func(f *FakeClient) {
		f.ShouldFailNotFound = true
	}
}

// WithNetworkFailure makes every call fail with a network error.
func WithNetworkFailure() FakeClientOption {
	return func(f *FakeClient) {
		f.ShouldFailNetwork = true
	}
}

// CallCount returns how many times method was invoked.
func (f *FakeClient) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *FakeClient) record(ctx context.Context, method, owner, repo string) error {
	f.Calls = append(f.Calls, method)
	if owner != "" {
		f.LastOwner = owner
		f.LastRepo = repo
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if f.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", bugerrors.ErrInvalidToken)
	}
	if f.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", bugerrors.ErrNetworkFailure)
	}
	if f.ShouldFailNotFound {
		return fmt.Errorf("repository not found: %w", bugerrors.ErrRepoNotFound)
	}
	return f.Error
}

// GetRepositoryID implements Client.
func (f *FakeClient) GetRepositoryID(ctx context.Context, owner, repo string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record(ctx, "GetRepositoryID", owner, repo); err != nil {
		return "", err
	}
	return f.RepositoryID, nil
}

// ListOpenIssues implements Client.
func (f *FakeClient) ListOpenIssues(ctx context.Context, owner, repo string, opts IssueListOptions) ([]Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.LastListOpts = opts
	if err := f.record(ctx, "ListOpenIssues", owner, repo); err != nil {
		return nil, err
	}

	first := opts.First
	if first <= 0 {
		first = defaultIssuePageSize
	}
	out := make([]Issue, 0, first)
	for _, issue := range f.Issues {
		if len(out) == first {
			break
		}
		out = append(out, issue)
	}
	return out, nil
}

// CreateIssue implements Client.
func (f *FakeClient) CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreatedIssue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record(ctx, "CreateIssue", "", ""); err != nil {
		return nil, err
	}
	if f.ShouldFailCreate {
		return nil, fmt.Errorf("create issue: %w", bugerrors.ErrNetworkFailure)
	}

	f.Created = append(f.Created, req)
	f.Issues = append(f.Issues, Issue{Title: req.Title, State: "OPEN"})

	return &CreatedIssue{
		Number:     len(f.Created),
		Title:      req.Title,
		Body:       req.Body,
		Repository: f.LastRepo,
		Labels:     append([]string(nil), req.LabelIDs...),
	}, nil
}

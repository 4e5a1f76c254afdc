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

package bugreport

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirseerhq/sirseer-bugreport/internal/github"
)

// IssueRegistry answers whether an open, auto-generated issue with a given
// title already exists in the reporting repository.
type IssueRegistry struct {
	client github.Client
	owner  string
	repo   string
}

// Exists scans the first page of open issues labelled AutoLabel for an
// exact title match. Issues beyond the first page are not seen.
func (r *IssueRegistry) Exists(ctx context.Context, title string) (bool, error) {
	issues, err := r.client.ListOpenIssues(ctx, r.owner, r.repo, github.IssueListOptions{
		Label: AutoLabel,
		First: issuePageSize,
	})
	if err != nil {
		return false, fmt.Errorf("check for duplicate issue: %w", err)
	}

	for _, issue := range issues {
		if issue.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// IssuePublisher files new issues in the reporting repository.
type IssuePublisher struct {
	client github.Client
	labels github.LabelResolver
	owner  string
	repo   string

	mu sync.Mutex
	// labelIDs holds the node IDs of BugLabel and AutoLabel, in that
	// order. Empty entries are resolved by name on first use.
	labelIDs [2]string
}

// Publish looks up the repository ID and then creates the issue with the
// bug and auto-generated labels attached.
func (p *IssuePublisher) Publish(ctx context.Context, draft IssueDraft) (*github.CreatedIssue, error) {
	repoID, err := p.client.GetRepositoryID(ctx, p.owner, p.repo)
	if err != nil {
		return nil, fmt.Errorf("publish issue: %w", err)
	}

	labelIDs, err := p.resolveLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish issue: %w", err)
	}

	created, err := p.client.CreateIssue(ctx, github.CreateIssueRequest{
		RepositoryID: repoID,
		Title:        draft.Title,
		Body:         draft.Body,
		LabelIDs:     labelIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("publish issue: %w", err)
	}
	return created, nil
}

// resolveLabels returns the label node IDs. A failed lookup is retried on
// the next report.
func (p *IssuePublisher) resolveLabels(ctx context.Context) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := [2]string{BugLabel, AutoLabel}
	for i, id := range p.labelIDs {
		if id != "" {
			continue
		}
		if p.labels == nil {
			return nil, fmt.Errorf("no ID configured for label %q: %w", names[i], ErrInvalidConfig)
		}
		id, err := p.labels.LabelID(ctx, p.owner, p.repo, names[i])
		if err != nil {
			return nil, fmt.Errorf("resolve label %q: %w", names[i], err)
		}
		p.labelIDs[i] = id
	}
	return []string{p.labelIDs[0], p.labelIDs[1]}, nil
}

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
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/giterror"
)

// DefaultGraphQLEndpoint is the public GitHub GraphQL API.
const DefaultGraphQLEndpoint = "https://api.github.com/graphql"

// GraphQLClient implements the Client interface using the GitHub GraphQL API.
type GraphQLClient struct {
	client    *graphql.Client
	token     string
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// Every request carries the token as a bearer credential and the
// sirseer-bugreport User-Agent, and responses are capped at 10MB.
// An empty endpoint selects DefaultGraphQLEndpoint.
func NewGraphQLClient(token string, endpoint string) *GraphQLClient {
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}
	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, NewHTTPClient(token)),
		token:     token,
		inspector: giterror.NewInspector(),
	}
}

// NewHTTPClient returns an *http.Client that authenticates every request
// with token. Reports are rare, so the pool is kept small.
func NewHTTPClient(token string) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        2,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}
}

// GetRepositoryID resolves the node ID of owner/repo.
func (c *GraphQLClient) GetRepositoryID(ctx context.Context, owner, repo string) (string, error) {
	var query struct {
		Repository struct {
			ID graphql.String
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"name":  graphql.String(repo),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return "", c.mapError(err, "resolve repository id", owner, repo)
	}

	id := string(query.Repository.ID)
	if id == "" {
		return "", fmt.Errorf("repository '%s/%s' returned no id: %w", owner, repo, bugerrors.ErrRepoNotFound)
	}
	return id, nil
}

// ListOpenIssues fetches one page of open issues carrying opts.Label.
// The query goes through organization(login:), so owner must be an
// organization rather than a user account.
func (c *GraphQLClient) ListOpenIssues(ctx context.Context, owner, repo string, opts IssueListOptions) ([]Issue, error) {
	first := opts.First
	if first <= 0 {
		first = defaultIssuePageSize
	}
	if first > maxIssuePageSize {
		first = maxIssuePageSize
	}

	var query struct {
		Organization struct {
			Repository struct {
				Issues struct {
					Nodes []struct {
						Title graphql.String
						State graphql.String
					}
				} `graphql:"issues(labels: $labels, first: $first, states: [OPEN])"`
			} `graphql:"repository(name: $name)"`
		} `graphql:"organization(login: $login)"`
	}

	variables := map[string]interface{}{
		"login":  graphql.String(owner),
		"name":   graphql.String(repo),
		"labels": []graphql.String{graphql.String(opts.Label)},
		"first":  graphql.Int(int32(first)), // #nosec G115 - first is capped at 100
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, "list open issues", owner, repo)
	}

	nodes := query.Organization.Repository.Issues.Nodes
	issues := make([]Issue, 0, len(nodes))
	for _, n := range nodes {
		issues = append(issues, Issue{
			Title: string(n.Title),
			State: string(n.State),
		})
	}
	return issues, nil
}

// CreateIssueInput mirrors the GraphQL input object of the same name.
// The type name is significant: the client derives the variable type
// ($input: CreateIssueInput!) from it.
type CreateIssueInput struct {
	RepositoryID graphql.ID     `json:"repositoryId"`
	Title        graphql.String `json:"title"`
	Body         graphql.String `json:"body,omitempty"`
	LabelIDs     []graphql.ID   `json:"labelIds,omitempty"`
}

// CreateIssue submits the createIssue mutation.
func (c *GraphQLClient) CreateIssue(ctx context.Context, req CreateIssueRequest) (*CreatedIssue, error) {
	var mutation struct {
		CreateIssue struct {
			Issue struct {
				Number     graphql.Int
				URL        graphql.String
				Title      graphql.String
				Body       graphql.String
				Repository struct {
					Name graphql.String
				}
				Labels struct {
					Nodes []struct {
						Name graphql.String
					}
				} `graphql:"labels(first: 10)"`
			}
		} `graphql:"createIssue(input: $input)"`
	}

	input := CreateIssueInput{
		RepositoryID: graphql.ID(req.RepositoryID),
		Title:        graphql.String(req.Title),
		Body:         graphql.String(req.Body),
	}
	for _, id := range req.LabelIDs {
		input.LabelIDs = append(input.LabelIDs, graphql.ID(id))
	}

	variables := map[string]interface{}{
		"input": input,
	}

	if err := c.client.Mutate(ctx, &mutation, variables); err != nil {
		return nil, c.mapError(err, "create issue", "", "")
	}

	issue := mutation.CreateIssue.Issue
	created := &CreatedIssue{
		Number:     int(issue.Number),
		URL:        string(issue.URL),
		Title:      string(issue.Title),
		Body:       string(issue.Body),
		Repository: string(issue.Repository.Name),
		Labels:     make([]string, 0, len(issue.Labels.Nodes)),
	}
	for _, l := range issue.Labels.Nodes {
		created.Labels = append(created.Labels, string(l.Name))
	}
	return created, nil
}

// mapError maps GraphQL errors to our domain errors with actionable messages
func (c *GraphQLClient) mapError(err error, op, owner, repo string) error {
	if err == nil {
		return nil
	}

	switch c.inspector.Classify(err) {
	case giterror.KindRateLimit:
		return fmt.Errorf("%s: GitHub API rate limit exceeded: %w", op, bugerrors.ErrRateLimit)
	case giterror.KindAuth:
		return fmt.Errorf("%s: GitHub API authentication failed, check the configured token: %w", op, bugerrors.ErrInvalidToken)
	case giterror.KindPermission:
		return fmt.Errorf("%s: token lacks permission to write issues (%v): %w", op, err, bugerrors.ErrInvalidToken)
	case giterror.KindNotFound:
		if owner != "" {
			return fmt.Errorf("%s: repository '%s/%s' not found, check the organization and repository names: %w", op, owner, repo, bugerrors.ErrRepoNotFound)
		}
		return fmt.Errorf("%s: %v: %w", op, err, bugerrors.ErrRepoNotFound)
	case giterror.KindNetwork:
		return fmt.Errorf("%s: network error connecting to GitHub API (%v): %w", op, err, bugerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("%s: %w", op, err)
}

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
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/giterror"
)

// DefaultAPIEndpoint is the public GitHub REST API.
const DefaultAPIEndpoint = "https://api.github.com/"

// RESTLabelResolver resolves label node IDs through the REST labels endpoint.
// GraphQL has no direct label-by-name lookup on a repository without
// paging, while GET /repos/{owner}/{repo}/labels/{name} returns node_id.
type RESTLabelResolver struct {
	client    *gogithub.Client
	inspector giterror.Inspector
}

// NewRESTLabelResolver creates a resolver against the REST API at baseURL.
// An empty baseURL selects DefaultAPIEndpoint.
func NewRESTLabelResolver(token, baseURL string) (*RESTLabelResolver, error) {
	return newRESTLabelResolver(NewHTTPClient(token), baseURL)
}

func newRESTLabelResolver(httpClient *http.Client, baseURL string) (*RESTLabelResolver, error) {
	client := gogithub.NewClient(httpClient)

	if baseURL != "" && baseURL != DefaultAPIEndpoint {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API endpoint %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &RESTLabelResolver{
		client:    client,
		inspector: giterror.NewInspector(),
	}, nil
}

// LabelID returns the node ID of the label called name in owner/repo.
func (r *RESTLabelResolver) LabelID(ctx context.Context, owner, repo, name string) (string, error) {
	label, resp, err := r.client.Issues.GetLabel(ctx, owner, repo, name)
	if err != nil {
		return "", r.mapError(err, resp, owner, repo, name)
	}

	id := label.GetNodeID()
	if id == "" {
		return "", fmt.Errorf("label %q in %s/%s has no node id: %w", name, owner, repo, bugerrors.ErrLabelNotFound)
	}
	return id, nil
}

// mapError prefers the typed go-github errors and the response status; the
// message-based inspector is only consulted for transport failures.
func (r *RESTLabelResolver) mapError(err error, resp *gogithub.Response, owner, repo, name string) error {
	var rateErr *gogithub.RateLimitError
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("label %q: %w", name, bugerrors.ErrRateLimit)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("label %q in %s/%s: %w", name, owner, repo, bugerrors.ErrLabelNotFound)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("label %q: GitHub API authentication failed: %w", name, bugerrors.ErrInvalidToken)
		}
	}

	if r.inspector.IsNetworkError(err) {
		return fmt.Errorf("label %q: %v: %w", name, err, bugerrors.ErrNetworkFailure)
	}
	return fmt.Errorf("failed to fetch label %q: %w", name, err)
}

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

package testutil

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/github"
)

func TestGitHubServer_RoundTrip(t *testing.T) {
	server := NewGitHubServer(t, "octo-org", "Demo")
	server.AddIssue("Demo had a KeyError error with the load function", "bug", "auto generated")
	server.AddIssue("Manual bug", "bug")

	client := github.NewGraphQLClient("test-token", server.GraphQLURL())
	ctx := context.Background()

	issues, err := client.ListOpenIssues(ctx, "octo-org", "Demo", github.IssueListOptions{Label: "auto generated"})
	if err != nil {
		t.Fatalf("ListOpenIssues failed: %v", err)
	}
	if len(issues) != 1 || issues[0].Title != "Demo had a KeyError error with the load function" {
		t.Errorf("unexpected issues: %+v", issues)
	}

	id, err := client.GetRepositoryID(ctx, "octo-org", "Demo")
	if err != nil {
		t.Fatalf("GetRepositoryID failed: %v", err)
	}

	created, err := client.CreateIssue(ctx, github.CreateIssueRequest{
		RepositoryID: id,
		Title:        "Demo had a ValueError error with the compute function",
		Body:         "Type: ValueError",
		LabelIDs:     []string{"LA_bug", "LA_auto"},
	})
	if err != nil {
		t.Fatalf("CreateIssue failed: %v", err)
	}
	if created.Number != 3 || created.URL != "https://github.com/octo-org/Demo/issues/3" {
		t.Errorf("unexpected created issue: %+v", created)
	}
	if !reflect.DeepEqual(created.Labels, []string{"bug", "auto generated"}) {
		t.Errorf("labels = %v", created.Labels)
	}

	want := []string{RequestListIssues, RequestRepository, RequestCreateIssue}
	if got := server.Requests(); !reflect.DeepEqual(got, want) {
		t.Errorf("Requests() = %v, want %v", got, want)
	}
	if n := len(server.Issues()); n != 3 {
		t.Errorf("server holds %d issues, want 3", n)
	}
}

func TestGitHubServer_UnknownRepository(t *testing.T) {
	server := NewGitHubServer(t, "octo-org", "Demo")
	client := github.NewGraphQLClient("test-token", server.GraphQLURL())

	_, err := client.GetRepositoryID(context.Background(), "octo-org", "Missing")
	if !errors.Is(err, bugerrors.ErrRepoNotFound) {
		t.Fatalf("expected ErrRepoNotFound, got %v", err)
	}
}

func TestGitHubServer_Labels(t *testing.T) {
	server := NewGitHubServer(t, "octo-org", "Demo")
	resolver, err := github.NewRESTLabelResolver("test-token", server.APIURL())
	if err != nil {
		t.Fatalf("NewRESTLabelResolver failed: %v", err)
	}

	id, err := resolver.LabelID(context.Background(), "octo-org", "Demo", "auto generated")
	if err != nil {
		t.Fatalf("LabelID failed: %v", err)
	}
	if id != "LA_auto" {
		t.Errorf("id = %q, want LA_auto", id)
	}

	_, err = resolver.LabelID(context.Background(), "octo-org", "Demo", "wontfix")
	if !errors.Is(err, bugerrors.ErrLabelNotFound) {
		t.Errorf("expected ErrLabelNotFound, got %v", err)
	}
}

func TestGitHubServer_FailWith(t *testing.T) {
	server := NewGitHubServer(t, "octo-org", "Demo")
	server.FailWith(http.StatusUnauthorized, "Bad credentials")
	client := github.NewGraphQLClient("bad-token", server.GraphQLURL())

	_, err := client.GetRepositoryID(context.Background(), "octo-org", "Demo")
	if !errors.Is(err, bugerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

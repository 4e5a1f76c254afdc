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

// Package testutil provides a fake GitHub API for sirseer-bugreport tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Issue is an issue held by a GitHubServer.
type Issue struct {
	Number int
	Title  string
	Body   string
	State  string
	Labels []string
}

// Request names recorded by GitHubServer.Requests.
const (
	RequestRepository  = "repository"
	RequestListIssues  = "listIssues"
	RequestCreateIssue = "createIssue"
	RequestLabel       = "label"
)

// GitHubServer is an in-memory GitHub serving the GraphQL queries the
// reporter issues at /graphql and label lookups at
// /repos/{owner}/{repo}/labels/{name}.
type GitHubServer struct {
	*httptest.Server

	Owner        string
	Repo         string
	RepositoryID string

	mu       sync.Mutex
	labels   map[string]string
	issues   []Issue
	requests []string
	failCode int
	failMsg  string
}

// NewGitHubServer starts a server hosting owner/repo with the "bug" and
// "auto generated" labels. It is closed when the test ends.
func NewGitHubServer(t *testing.T, owner, repo string) *GitHubServer {
	t.Helper()

	s := &GitHubServer{
		Owner:        owner,
		Repo:         repo,
		RepositoryID: "R_kgDOTest",
		labels: map[string]string{
			"bug":            "LA_bug",
			"auto generated": "LA_auto",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", s.handleGraphQL)
	mux.HandleFunc("/repos/", s.handleLabel)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// GraphQLURL returns the GraphQL endpoint.
func (s *GitHubServer) GraphQLURL() string {
	return s.URL + "/graphql"
}

// APIURL returns the REST base URL.
func (s *GitHubServer) APIURL() string {
	return s.URL + "/"
}

// AddIssue adds an open issue.
func (s *GitHubServer) AddIssue(title string, labels ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issues = append(s.issues, Issue{
		Number: len(s.issues) + 1,
		Title:  title,
		State:  "OPEN",
		Labels: labels,
	})
}

// Issues returns a copy of every issue on the server.
func (s *GitHubServer) Issues() []Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Issue(nil), s.issues...)
}

// Requests returns the names of the requests served, in order.
func (s *GitHubServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// FailWith makes every later request fail with status code and message.
func (s *GitHubServer) FailWith(code int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCode = code
	s.failMsg = message
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func (s *GitHubServer) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"message": "method not allowed"})
		return
	}

	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Problems parsing JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case strings.HasPrefix(req.Query, "mutation") && strings.Contains(req.Query, "createIssue"):
		s.requests = append(s.requests, RequestCreateIssue)
		if s.fail(w) {
			return
		}
		s.createIssue(w, req.Variables)
	case strings.Contains(req.Query, "organization(login: $login)"):
		s.requests = append(s.requests, RequestListIssues)
		if s.fail(w) {
			return
		}
		s.listIssues(w, req.Variables)
	case strings.Contains(req.Query, "repository(owner: $owner, name: $name)"):
		s.requests = append(s.requests, RequestRepository)
		if s.fail(w) {
			return
		}
		s.repository(w, req.Variables)
	default:
		writeJSON(w, http.StatusOK, graphQLError("INTERNAL", "unsupported query"))
	}
}

func (s *GitHubServer) fail(w http.ResponseWriter) bool {
	if s.failCode == 0 {
		return false
	}
	writeJSON(w, s.failCode, map[string]interface{}{"message": s.failMsg})
	return true
}

func (s *GitHubServer) repository(w http.ResponseWriter, vars map[string]interface{}) {
	if vars["owner"] != s.Owner || vars["name"] != s.Repo {
		writeJSON(w, http.StatusOK, graphQLError("NOT_FOUND",
			fmt.Sprintf("Could not resolve to a Repository with the name '%v/%v'.", vars["owner"], vars["name"])))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"repository": map[string]interface{}{"id": s.RepositoryID},
		},
	})
}

func (s *GitHubServer) listIssues(w http.ResponseWriter, vars map[string]interface{}) {
	if vars["login"] != s.Owner || vars["name"] != s.Repo {
		writeJSON(w, http.StatusOK, graphQLError("NOT_FOUND",
			fmt.Sprintf("Could not resolve to an Organization with the login of '%v'.", vars["login"])))
		return
	}

	var want []string
	if labels, ok := vars["labels"].([]interface{}); ok {
		for _, l := range labels {
			want = append(want, fmt.Sprint(l))
		}
	}
	first := 10
	if f, ok := vars["first"].(float64); ok {
		first = int(f)
	}

	nodes := []interface{}{}
	for _, issue := range s.issues {
		if len(nodes) == first {
			break
		}
		if issue.State != "OPEN" || !hasLabels(issue.Labels, want) {
			continue
		}
		nodes = append(nodes, map[string]interface{}{"title": issue.Title, "state": issue.State})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"organization": map[string]interface{}{
				"repository": map[string]interface{}{
					"issues": map[string]interface{}{"nodes": nodes},
				},
			},
		},
	})
}

func (s *GitHubServer) createIssue(w http.ResponseWriter, vars map[string]interface{}) {
	input, _ := vars["input"].(map[string]interface{})
	if input["repositoryId"] != s.RepositoryID {
		writeJSON(w, http.StatusOK, graphQLError("NOT_FOUND",
			fmt.Sprintf("Could not resolve to a node with the global id of '%v'", input["repositoryId"])))
		return
	}

	names := make(map[string]string, len(s.labels))
	for name, id := range s.labels {
		names[id] = name
	}
	var labels []string
	if ids, ok := input["labelIds"].([]interface{}); ok {
		for _, id := range ids {
			labels = append(labels, names[fmt.Sprint(id)])
		}
	}

	title, _ := input["title"].(string)
	body, _ := input["body"].(string)
	issue := Issue{
		Number: len(s.issues) + 1,
		Title:  title,
		Body:   body,
		State:  "OPEN",
		Labels: labels,
	}
	s.issues = append(s.issues, issue)

	labelNodes := make([]interface{}, 0, len(labels))
	for _, l := range labels {
		labelNodes = append(labelNodes, map[string]interface{}{"name": l})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"createIssue": map[string]interface{}{
				"issue": map[string]interface{}{
					"number":     issue.Number,
					"url":        fmt.Sprintf("https://github.com/%s/%s/issues/%d", s.Owner, s.Repo, issue.Number),
					"title":      issue.Title,
					"body":       issue.Body,
					"repository": map[string]interface{}{"name": s.Repo},
					"labels":     map[string]interface{}{"nodes": labelNodes},
				},
			},
		},
	})
}

func (s *GitHubServer) handleLabel(w http.ResponseWriter, r *http.Request) {
	prefix := fmt.Sprintf("/repos/%s/%s/labels/", s.Owner, s.Repo)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, RequestLabel)
	if s.fail(w) {
		return
	}

	name, ok := strings.CutPrefix(r.URL.Path, prefix)
	id, found := s.labels[name]
	if !ok || !found {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"message":           "Not Found",
			"documentation_url": "https://docs.github.com/rest/issues/labels#get-a-label",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":      len(name),
		"node_id": id,
		"name":    name,
	})
}

func hasLabels(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func graphQLError(kind, message string) map[string]interface{} {
	return map[string]interface{}{
		"data": nil,
		"errors": []interface{}{
			map[string]interface{}{"type": kind, "message": message},
		},
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

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

// Package github provides the issue tracker client used by the bug reporter.
// It wraps GitHub's GraphQL API for the three operations a report needs and
// the REST API for resolving label node IDs by name.
//
// The package includes:
//   - A Client interface covering repository ID lookup, open issue listing
//     and issue creation
//   - A GraphQL implementation using the shurcooL/graphql library
//   - A LabelResolver backed by go-github
//   - FakeClient, an in-memory tracker, and a generated gomock MockClient
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	issues, err := client.ListOpenIssues(ctx, "my-org", "my-repo", github.IssueListOptions{
//	    Label: "auto generated",
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, issue := range issues {
//	    // Compare titles
//	}
package github

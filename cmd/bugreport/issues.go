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

package main

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/github"
	"github.com/sirseerhq/sirseer-bugreport/internal/output"
	"github.com/sirseerhq/sirseer-bugreport/pkg/bugreport"
)

type issuesOptions struct {
	token   string
	label   string
	limit   int
	format  string
	output  string
	timeout time.Duration
}

func newIssuesCommand(global *globalOptions) *cobra.Command {
	opts := &issuesOptions{}

	cmd := &cobra.Command{
		Use:   "issues <org>/<repo>",
		Short: "List the open issues used for duplicate detection",
		Long: `List the open issues carrying the "auto generated" label, the same page
the reporter scans before filing a new issue. A report whose title matches one
of these is treated as a duplicate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			return runIssues(ctx, global, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides the configured token variable)")
	cmd.Flags().StringVar(&opts.label, "label", bugreport.AutoLabel, "Label to filter on")
	cmd.Flags().IntVar(&opts.limit, "limit", 10, "Number of issues to fetch (max 100)")
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table or ndjson")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the listing to a file instead of stdout")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Time allowed for the listing")

	return cmd
}

// runIssues executes the issues command
func runIssues(ctx context.Context, global *globalOptions, repoArg string, opts *issuesOptions, stdout io.Writer) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, err := global.loadConfig()
	if err != nil {
		return err
	}

	tokenEnv := cfg.GitHub.TokenEnv
	if rc, ok := cfg.Repositories[repo]; ok && rc.TokenEnv != "" {
		tokenEnv = rc.TokenEnv
	}
	token := getToken(opts.token, tokenEnv)
	if token == "" {
		return fmt.Errorf("GitHub token not found. Set %s or use --token flag: %w", tokenEnv, bugerrors.ErrInvalidToken)
	}

	client := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint)
	issues, err := client.ListOpenIssues(ctx, owner, repo, github.IssueListOptions{
		Label: opts.label,
		First: opts.limit,
	})
	if err != nil {
		return err
	}

	writer, err := output.Open(opts.format, opts.output, stdout)
	if err != nil {
		return err
	}
	defer writer.Close()

	generated := generatedTitle(repo)
	for _, issue := range issues {
		if err := writer.Write(output.IssueRecord{
			Repository: fmt.Sprintf("%s/%s", owner, repo),
			Title:      issue.Title,
			State:      issue.State,
			Generated:  generated.MatchString(issue.Title),
		}); err != nil {
			return err
		}
	}
	return writer.Close()
}

// generatedTitle matches titles produced for captured failures in repo.
func generatedTitle(repo string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(repo) + ` had a \S+ error with the \S+ function$`)
}

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
	"os"
	"time"

	"github.com/spf13/cobra"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/config"
	"github.com/sirseerhq/sirseer-bugreport/internal/output"
	"github.com/sirseerhq/sirseer-bugreport/pkg/bugreport"
)

type reportOptions struct {
	token    string
	title    string
	body     string
	bodyFile string
	format   string
	timeout  time.Duration
}

func newReportCommand(global *globalOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report <org>/<repo>",
		Short: "File a bug report by hand",
		Long: `File a bug report with the given title and body.

The report goes through the same pipeline as captured failures: if an open
issue labelled "auto generated" already has the title, nothing is created.
In test mode the report is printed and not sent.

Settings for the repository (labels, team, token variable) are taken from the
configuration file when the repository is listed there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			body, err := readBody(cmd.InOrStdin(), opts.body, opts.bodyFile)
			if err != nil {
				return err
			}
			opts.body = body

			return runReport(ctx, global, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides the configured token variable)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Issue title, used for duplicate detection")
	cmd.Flags().StringVar(&opts.body, "body", "", "Issue body")
	cmd.Flags().StringVar(&opts.bodyFile, "body-file", "", "Read the issue body from a file (- for stdin)")
	cmd.Flags().StringVar(&opts.format, "format", "table", "Result format: table or ndjson")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Time allowed for the report")
	_ = cmd.MarkFlagRequired("title")
	cmd.MarkFlagsMutuallyExclusive("body", "body-file")

	return cmd
}

func readBody(stdin io.Reader, body, bodyFile string) (string, error) {
	switch bodyFile {
	case "":
		return body, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read body from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(bodyFile) // #nosec G304 - path is chosen by the operator
		if err != nil {
			return "", fmt.Errorf("failed to read body file: %w", err)
		}
		return string(data), nil
	}
}

// runReport executes the report command
func runReport(ctx context.Context, global *globalOptions, repoArg string, opts *reportOptions, stdout, stderr io.Writer) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	writer, err := output.New(opts.format, stdout)
	if err != nil {
		return err
	}

	cfg, err := global.loadConfig()
	if err != nil {
		return err
	}

	rc, err := reporterConfig(cfg, owner, repo, opts.token)
	if err != nil {
		return err
	}

	// The report text goes to stderr so stdout carries only the result.
	registry := bugreport.NewRegistry()
	if _, err := registry.Register(rc,
		bugreport.WithOutput(stderr),
		bugreport.WithLogger(global.logger(stderr)),
	); err != nil {
		return err
	}

	res, err := registry.Report(ctx, repo, opts.title, opts.body)
	if err != nil {
		return err
	}

	if err := writer.Write(output.ReportRecord{
		ID:         res.ID,
		Repository: fmt.Sprintf("%s/%s", owner, repo),
		Outcome:    string(res.Outcome),
		Title:      res.Title,
		Number:     res.Number,
		URL:        res.URL,
	}); err != nil {
		return err
	}
	return writer.Close()
}

// reporterConfig builds the reporter settings for owner/repo, starting from
// the configuration file entry when there is one.
func reporterConfig(cfg *config.Config, owner, repo, tokenFlag string) (bugreport.Config, error) {
	if _, ok := cfg.Repositories[repo]; ok {
		rc, err := cfg.ReporterConfig(repo)
		if err != nil {
			return bugreport.Config{}, err
		}
		if rc.Organization != owner {
			return bugreport.Config{}, fmt.Errorf("repository %s is configured for organization %s, not %s: %w",
				repo, rc.Organization, owner, bugerrors.ErrInvalidConfig)
		}
		if tokenFlag != "" {
			rc.Token = tokenFlag
		}
		return rc, nil
	}

	return bugreport.Config{
		Token:        getToken(tokenFlag, cfg.GitHub.TokenEnv),
		Repository:   repo,
		Organization: owner,
		TestMode:     cfg.Defaults.TestMode,
		Endpoint:     cfg.GitHub.GraphQLEndpoint,
		APIEndpoint:  cfg.GitHub.APIEndpoint,
		Team:         cfg.Defaults.Team,
	}, nil
}

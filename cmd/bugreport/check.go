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
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/github"
	"github.com/sirseerhq/sirseer-bugreport/internal/output"
	"github.com/sirseerhq/sirseer-bugreport/pkg/bugreport"
)

// Check statuses.
const (
	checkOK       = "ok"
	checkTestMode = "test mode"
	checkFailed   = "failed"
)

type checkOptions struct {
	format  string
	timeout time.Duration
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [repo...]",
		Short: "Check configured repositories",
		Long: `Check that each configured repository (or only those named) has a token,
resolves on GitHub and has the "bug" and "auto generated" labels.

Repositories in test mode are listed but not contacted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			return runCheck(ctx, global, args, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table or ndjson")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "Time allowed for all checks")

	return cmd
}

// runCheck executes the check command
func runCheck(ctx context.Context, global *globalOptions, repos []string, opts *checkOptions, stdout io.Writer) error {
	writer, err := output.New(opts.format, stdout)
	if err != nil {
		return err
	}

	cfg, err := global.loadConfig()
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		repos = cfg.RepositoryNames()
	}
	if len(repos) == 0 {
		return fmt.Errorf("no repositories configured: %w", bugerrors.ErrNotConfigured)
	}

	var failures []error
	for _, name := range repos {
		record := output.CheckRecord{Repository: name, Status: checkOK}

		rc, err := cfg.ReporterConfig(name)
		if err == nil {
			record.Organization = rc.Organization
			record.TestMode = rc.TestMode
			err = checkRepository(ctx, rc)
		}

		switch {
		case err != nil:
			record.Status = checkFailed
			record.Detail = err.Error()
			failures = append(failures, err)
		case rc.TestMode:
			record.Status = checkTestMode
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d repositories failed checks: %w", len(failures), len(repos), errors.Join(failures...))
	}
	return nil
}

// checkRepository verifies rc without filing anything. Test mode
// repositories are only validated.
func checkRepository(ctx context.Context, rc bugreport.Config) error {
	if err := rc.Validate(); err != nil {
		return err
	}
	if rc.TestMode {
		return nil
	}

	client := github.NewGraphQLClient(rc.Token, rc.Endpoint)
	if _, err := client.GetRepositoryID(ctx, rc.Organization, rc.Repository); err != nil {
		return err
	}

	resolver, err := github.NewRESTLabelResolver(rc.Token, rc.APIEndpoint)
	if err != nil {
		return fmt.Errorf("%v: %w", err, bugerrors.ErrInvalidConfig)
	}
	labels := map[string]string{
		bugreport.BugLabel:  rc.BugLabelID,
		bugreport.AutoLabel: rc.AutoLabelID,
	}
	for _, name := range []string{bugreport.BugLabel, bugreport.AutoLabel} {
		id, err := resolver.LabelID(ctx, rc.Organization, rc.Repository, name)
		if err != nil {
			return err
		}
		if want := labels[name]; want != "" && want != id {
			return fmt.Errorf("label %q has node id %s, configuration says %s: %w", name, id, want, bugerrors.ErrInvalidConfig)
		}
	}
	return nil
}

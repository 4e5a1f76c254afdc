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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/config"
	"github.com/sirseerhq/sirseer-bugreport/pkg/version"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	testMode   bool
	verbose    bool
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "sirseer-bugreport",
		Short: "File deduplicated GitHub issues for application failures",
		Long: `SirSeer Bug Report files GitHub issues for failures in wrapped functions.
Each failure becomes an issue titled after the repository, the failure kind and
the function it came from. An open issue with the same title suppresses the new
one, so a recurring failure is reported once.

This command files reports by hand, lists the issues used for duplicate
detection and checks repository configuration.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to configuration file (default: .sirseer-bugreport.yaml or ~/.sirseer/bugreport.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.testMode, "test", false, "Test mode: print reports without sending them")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline events to stderr")

	rootCmd.AddCommand(
		newReportCommand(opts),
		newIssuesCommand(opts),
		newCheckCommand(opts),
	)
	return rootCmd
}

// loadConfig loads the configuration file and applies the --test flag.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, bugerrors.ErrInvalidConfig)
	}
	if o.testMode {
		cfg.SetTestMode(true)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *globalOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseRepository parses an org/repo string into owner and repo components
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <org>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <org>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

// getToken returns the GitHub token from the flag, or from the environment
// variable named by envName.
func getToken(flagToken, envName string) string {
	if flagToken != "" {
		return flagToken
	}
	if envName == "" {
		envName = "GITHUB_TOKEN"
	}
	return os.Getenv(envName)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, bugerrors.ErrInvalidToken) ||
		errors.Is(err, bugerrors.ErrRepoNotFound) ||
		errors.Is(err, bugerrors.ErrLabelNotFound) ||
		errors.Is(err, bugerrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, bugerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	if errors.Is(err, bugerrors.ErrInvalidConfig) ||
		errors.Is(err, bugerrors.ErrNotConfigured) {
		return 4 // Configuration errors
	}

	return 1 // General error
}

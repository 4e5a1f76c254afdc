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

// Package config loads sirseer-bugreport settings and turns them into
// reporter configurations.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Repository-specific configuration
//  4. Global defaults in the configuration file
//  5. Built-in defaults
//
// Tokens are never stored in the file. Each repository names the
// environment variable its token is read from, falling back to
// github.token_env.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/pkg/bugreport"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .sirseer-bugreport.yaml (current directory)
//   - .sirseer-bugreport.yml (current directory)
//   - ~/.sirseer/bugreport.yaml
//   - ~/.sirseer/bugreport.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(expandPath(configPath), cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		home := homeDir()
		defaultPaths := []string{
			".sirseer-bugreport.yaml",
			".sirseer-bugreport.yml",
			filepath.Join(home, ".sirseer", "bugreport.yaml"),
			filepath.Join(home, ".sirseer", "bugreport.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if cfg.Repositories == nil {
		cfg.Repositories = make(map[string]RepoConfig)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 - path is chosen by the operator
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	// GitHub endpoints
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}

	// Test mode from the environment wins over per-repository settings
	if testMode := os.Getenv("BUGREPORT_TEST_MODE"); testMode != "" {
		v := parseBool(testMode)
		cfg.Defaults.TestMode = v
		cfg.forceTestMode = &v
	}
	if team := os.Getenv("BUGREPORT_TEAM"); team != "" {
		cfg.Defaults.Team = team
		cfg.forceTeam = team
	}
}

// SetTestMode forces test mode on or off for every repository, as the
// --test flag does.
func (c *Config) SetTestMode(v bool) {
	c.Defaults.TestMode = v
	c.forceTestMode = &v
}

// RepositoryNames returns the configured repository names in sorted order.
func (c *Config) RepositoryNames() []string {
	names := make([]string, 0, len(c.Repositories))
	for name := range c.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReporterConfig builds the reporter configuration for repo. The token is
// read from the environment variable named by the repository's token_env,
// or github.token_env when the repository does not set one.
func (c *Config) ReporterConfig(repo string) (bugreport.Config, error) {
	rc, ok := c.Repositories[repo]
	if !ok {
		return bugreport.Config{}, fmt.Errorf("repository %q is not in the configuration: %w", repo, bugerrors.ErrNotConfigured)
	}

	testMode := c.Defaults.TestMode
	if rc.TestMode != nil {
		testMode = *rc.TestMode
	}
	if c.forceTestMode != nil {
		testMode = *c.forceTestMode
	}

	tokenEnv := rc.TokenEnv
	if tokenEnv == "" {
		tokenEnv = c.GitHub.TokenEnv
	}

	team := rc.Team
	if team == "" {
		team = c.Defaults.Team
	}
	if c.forceTeam != "" {
		team = c.forceTeam
	}

	var extra map[string]string
	if len(rc.Extra) > 0 {
		extra = make(map[string]string, len(rc.Extra))
		for k, v := range rc.Extra {
			extra[k] = v
		}
	}

	return bugreport.Config{
		Token:        os.Getenv(tokenEnv),
		Repository:   repo,
		Organization: rc.Organization,
		TestMode:     testMode,
		Extra:        extra,
		Endpoint:     c.GitHub.GraphQLEndpoint,
		APIEndpoint:  c.GitHub.APIEndpoint,
		BugLabelID:   rc.BugLabelID,
		AutoLabelID:  rc.AutoLabelID,
		Team:         team,
	}, nil
}

// Validate checks if the configuration contains valid values. Endpoints
// must be set and every repository needs an organization. Tokens are not
// checked here since they live in the environment.
func (c *Config) Validate() error {
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty: %w", bugerrors.ErrInvalidConfig)
	}
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty: %w", bugerrors.ErrInvalidConfig)
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("github.token_env cannot be empty: %w", bugerrors.ErrInvalidConfig)
	}
	for _, name := range c.RepositoryNames() {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("repository name cannot be empty: %w", bugerrors.ErrInvalidConfig)
		}
		if c.Repositories[name].Organization == "" {
			return fmt.Errorf("repository %q has no organization: %w", name, bugerrors.ErrInvalidConfig)
		}
	}
	return nil
}

func homeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE") // Windows
	}
	return home
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir(), path[2:])
	}
	return os.ExpandEnv(path)
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

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

// Package config types define the configuration structures used by the
// sirseer-bugreport CLI. These types represent settings that can be loaded
// from YAML configuration files, environment variables, or command-line flags.

package config

// Config represents the complete configuration for sirseer-bugreport.
type Config struct {
	GitHub       GitHubConfig          `yaml:"github"`
	Defaults     DefaultsConfig        `yaml:"defaults"`
	Repositories map[string]RepoConfig `yaml:"repositories"`

	// forceTestMode is set by BUGREPORT_TEST_MODE or SetTestMode and wins
	// over every per-repository setting.
	forceTestMode *bool

	// forceTeam is set by BUGREPORT_TEAM and wins over repository teams.
	forceTeam string
}

// GitHubConfig contains GitHub-specific settings including API endpoints
// and the environment variable the token is read from. Custom endpoints
// allow GitHub Enterprise deployments.
type GitHubConfig struct {
	APIEndpoint     string `yaml:"api_endpoint"`
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
}

// DefaultsConfig applies to every repository unless overridden.
type DefaultsConfig struct {
	TestMode bool   `yaml:"test_mode"`
	Team     string `yaml:"team"`
}

// RepoConfig holds the settings of one reporting repository, keyed by
// repository name in Config.Repositories.
type RepoConfig struct {
	Organization string `yaml:"organization"`

	// TokenEnv overrides GitHubConfig.TokenEnv for this repository.
	TokenEnv string `yaml:"token_env"`

	// Label node IDs. When empty they are resolved by name at report time.
	BugLabelID  string `yaml:"bug_label_id"`
	AutoLabelID string `yaml:"auto_label_id"`

	// TestMode overrides DefaultsConfig.TestMode when set.
	TestMode *bool `yaml:"test_mode"`

	Team  string            `yaml:"team"`
	Extra map[string]string `yaml:"extra"`
}

// DefaultConfig returns a Config targeting public GitHub.com.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint:     "https://api.github.com/",
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
		},
		Defaults: DefaultsConfig{
			TestMode: false,
		},
		Repositories: make(map[string]RepoConfig),
	}
}

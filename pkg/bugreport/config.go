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

package bugreport

import (
	"fmt"
	"maps"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
	"github.com/sirseerhq/sirseer-bugreport/internal/github"
)

// Label names attached to every report. AutoLabel is also the filter used
// for duplicate detection.
const (
	BugLabel  = "bug"
	AutoLabel = "auto generated"
)

// issuePageSize is the number of open issues scanned for a duplicate.
// Pagination beyond the first page is not attempted.
const issuePageSize = 10

// Config holds the credentials and identity of one reporting repository.
// It is copied on registration and never mutated afterwards.
type Config struct {
	// Token is the GitHub credential sent as a bearer token.
	Token string

	// Repository and Organization name the target repository.
	// Repository also keys the reporter in a Registry.
	Repository   string
	Organization string

	// TestMode suppresses every network call. Reports are still composed
	// and printed, and the original failure still propagates.
	TestMode bool

	// Extra is appended to the "Extra Info" section of every report from a
	// decorator with extra info enabled.
	Extra map[string]string

	// Endpoint is the GraphQL URL. Defaults to https://api.github.com/graphql.
	Endpoint string

	// APIEndpoint is the REST base URL used to resolve label IDs by name.
	// Defaults to https://api.github.com/.
	APIEndpoint string

	// BugLabelID and AutoLabelID are the node IDs of the "bug" and
	// "auto generated" labels. Missing IDs are looked up by name once.
	BugLabelID  string
	AutoLabelID string

	// Team is named in the console line printed after a report is filed.
	Team string
}

// Validate reports whether c has the fields a reporter needs. Token and
// Organization may be empty in test mode since nothing is sent.
func (c Config) Validate() error {
	if c.Repository == "" {
		return fmt.Errorf("repository name is required: %w", bugerrors.ErrInvalidConfig)
	}
	if c.TestMode {
		return nil
	}
	if c.Organization == "" {
		return fmt.Errorf("organization is required for repository %q: %w", c.Repository, bugerrors.ErrInvalidConfig)
	}
	if c.Token == "" {
		return fmt.Errorf("token is required for repository %q: %w", c.Repository, bugerrors.ErrInvalidConfig)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = github.DefaultGraphQLEndpoint
	}
	if c.APIEndpoint == "" {
		c.APIEndpoint = github.DefaultAPIEndpoint
	}
	c.Extra = maps.Clone(c.Extra)
	return c
}

func (c Config) labelsConfigured() bool {
	return c.BugLabelID != "" && c.AutoLabelID != ""
}

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

// Package errors defines sentinel errors for consistent error handling across
// the reporter and the CLI. The CLI maps them to exit codes for scripting.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidToken indicates GitHub authentication failed.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrRepoNotFound indicates the configured repository does not exist or is not accessible.
	// Maps to exit code 2.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrNotConfigured indicates a report was requested for a repository
	// that was never registered.
	// Maps to exit code 4.
	ErrNotConfigured = errors.New("repository not configured for bug reports")

	// ErrInvalidConfig indicates a reporter configuration is missing required fields.
	// Maps to exit code 4.
	ErrInvalidConfig = errors.New("invalid reporter configuration")

	// ErrLabelNotFound indicates one of the issue labels does not exist in the repository.
	// Maps to exit code 2.
	ErrLabelNotFound = errors.New("issue label not found")
)

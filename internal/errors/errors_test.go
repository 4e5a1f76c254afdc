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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

var sentinels = []error{
	ErrInvalidToken,
	ErrRepoNotFound,
	ErrNetworkFailure,
	ErrRateLimit,
	ErrNotConfigured,
	ErrInvalidConfig,
	ErrLabelNotFound,
}

func TestSentinelsAreDistinct(t *testing.T) {
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%q matches %q", a, b)
			}
		}
	}
}

// The reporter wraps client errors once per pipeline stage, so sentinels
// must survive several layers.
func TestSentinelsSurviveStageWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "duplicate check auth failure",
			err:      fmt.Errorf("check for duplicate issue: %w", fmt.Errorf("list open issues: bad credentials: %w", ErrInvalidToken)),
			sentinel: ErrInvalidToken,
		},
		{
			name:     "publish network failure",
			err:      fmt.Errorf("publish issue: %w", fmt.Errorf("create issue: %w", ErrNetworkFailure)),
			sentinel: ErrNetworkFailure,
		},
		{
			name:     "label lookup",
			err:      fmt.Errorf("publish issue: %w", fmt.Errorf("resolve label %q: %w", "bug", ErrLabelNotFound)),
			sentinel: ErrLabelNotFound,
		},
		{
			name:     "unregistered repository",
			err:      fmt.Errorf("repository %q: %w", "Demo", ErrNotConfigured),
			sentinel: ErrNotConfigured,
		},
		{
			name:     "joined check failures",
			err:      errors.Join(fmt.Errorf("Demo: %w", ErrRepoNotFound), fmt.Errorf("Other: %w", ErrRateLimit)),
			sentinel: ErrRateLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
		})
	}
}

func TestNilIsNoSentinel(t *testing.T) {
	for _, s := range sentinels {
		if errors.Is(nil, s) {
			t.Errorf("nil matches %q", s)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidToken, "invalid github token"},
		{ErrRepoNotFound, "repository not found"},
		{ErrNetworkFailure, "network connection failed"},
		{ErrRateLimit, "github rate limit exceeded"},
		{ErrNotConfigured, "repository not configured for bug reports"},
		{ErrInvalidConfig, "invalid reporter configuration"},
		{ErrLabelNotFound, "issue label not found"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

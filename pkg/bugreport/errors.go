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

import bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"

// Errors returned by reporters. Reporting errors are never returned from a
// decorated call; they surface from Report and in the reporter's log.
var (
	ErrNotConfigured  = bugerrors.ErrNotConfigured
	ErrInvalidConfig  = bugerrors.ErrInvalidConfig
	ErrInvalidToken   = bugerrors.ErrInvalidToken
	ErrRepoNotFound   = bugerrors.ErrRepoNotFound
	ErrLabelNotFound  = bugerrors.ErrLabelNotFound
	ErrNetworkFailure = bugerrors.ErrNetworkFailure
	ErrRateLimit      = bugerrors.ErrRateLimit
)

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

// Package bugreport turns failures of wrapped functions into GitHub issues.
//
// A Reporter is configured once per repository with a token, the owning
// organization and an optional test mode. Calls are wrapped with Do, Wrap,
// Wrap0 or Run through a Decorator. When a wrapped call returns an error or
// panics, the failure is composed into an issue titled
//
//	<repository> had a <kind> error with the <function> function
//
// and a body carrying the error text, stack, arguments and optional extra
// context. The title is the deduplication key: if an open issue labelled
// "auto generated" already has it, nothing is created. Otherwise the issue
// is created through the GitHub GraphQL API with the "bug" and
// "auto generated" labels.
//
// The caller always sees the original failure. Errors are returned
// unchanged and panics are re-raised with the same value. Problems while
// reporting are logged through log/slog, counted in Prometheus and recorded
// on the OpenTelemetry span, and never replace the original failure.
//
// Basic usage:
//
//	reporter, err := bugreport.Setup(token, "Demo", "octo-org", false)
//	if err != nil {
//		return err
//	}
//	safeCompute := bugreport.Wrap(reporter.Decorate(false, nil), compute)
//	result, err := safeCompute(ctx, input)
//
// In test mode reports are printed but never sent and no network call is
// made.
package bugreport

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

// Package main implements the sirseer-bugreport command-line interface.
// It files bug reports by hand through the same pipeline the library uses
// for captured failures, lists the open auto-generated issues used for
// duplicate detection, and checks that configured repositories are
// reachable with their tokens.
//
// Usage:
//
//	sirseer-bugreport report <org>/<repo> --title <title> [--body <text> | --body-file <path>]
//	sirseer-bugreport issues <org>/<repo> [--format table|ndjson]
//	sirseer-bugreport check [repo...]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	sirseer-bugreport report octo-org/Demo --title "Demo had a ValueError error with the compute function" --body-file trace.txt
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
//   - 4: Configuration error
package main

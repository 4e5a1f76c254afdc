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
	"sort"
	"strings"
)

// ExceptionContext is everything captured about one failure.
type ExceptionContext struct {
	// Kind names the failure type, e.g. "ValueError" or "PathError".
	Kind string

	// Function is the short name of the function the failure came from.
	Function string

	// Message is the error text or the formatted panic value.
	Message string

	// Stack is the goroutine stack at the point the failure was observed.
	Stack string

	Args      []any
	NamedArgs map[string]any

	// Extra is the supplementary context configured on the reporter and
	// the decorator.
	Extra map[string]any

	// Panicked is set when the failure was a panic rather than a returned error.
	Panicked bool
}

// IssueDraft is a composed report ready for duplicate detection.
type IssueDraft struct {
	// Title is the deduplication key.
	Title  string
	Body   string
	Labels []string
}

// Title formats the issue title for a failure of kind in function. It
// depends on nothing else, so repeated failures map to the same issue.
func Title(repository, kind, function string) string {
	return fmt.Sprintf("%s had a %s error with the %s function", repository, kind, function)
}

// Compose builds the issue draft for ec. The extra info section is only
// written when extraInfo is set.
func Compose(repository string, ec ExceptionContext, extraInfo bool) IssueDraft {
	var b strings.Builder

	fmt.Fprintf(&b, "Type: %s\n", ec.Kind)
	fmt.Fprintf(&b, "Error text: %s\n", ec.Message)
	fmt.Fprintf(&b, "Function Name: %s\n", ec.Function)
	if ec.Stack != "" {
		b.WriteString(ec.Stack)
		if !strings.HasSuffix(ec.Stack, "\n") {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "Arguments: %s\n", formatArgs(ec.Args))
	fmt.Fprintf(&b, "Named Arguments: %s", formatMap(ec.NamedArgs))
	if extraInfo {
		fmt.Fprintf(&b, "\nExtra Info: %s", formatMap(ec.Extra))
	}

	return IssueDraft{
		Title:  Title(repository, ec.Kind, ec.Function),
		Body:   b.String(),
		Labels: []string{BugLabel, AutoLabel},
	}
}

func formatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%#v", a))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatMap renders m with sorted keys.
func formatMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %#v", k, m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

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
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// Kinder lets an error name its own kind in report titles.
type Kinder interface {
	Kind() string
}

// KindOf names the kind of err. An error in the chain implementing Kinder
// wins. Otherwise the concrete type name of the outermost error that is not
// a plain wrapper is used, and bare errors.New or fmt.Errorf values report
// as "error".
func KindOf(err error) string {
	if err == nil {
		return "error"
	}

	var k Kinder
	if errors.As(err, &k) {
		if kind := k.Kind(); kind != "" {
			return kind
		}
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if name := typeName(e); name != "" {
			return name
		}
	}
	return "error"
}

func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.PkgPath() {
	case "errors", "fmt":
		return ""
	}
	return t.Name()
}

// panicKind names the kind of a recovered panic value.
func panicKind(v any) string {
	if k, ok := v.(Kinder); ok && k.Kind() != "" {
		return k.Kind()
	}
	switch e := v.(type) {
	case runtime.Error:
		return "RuntimeError"
	case error:
		return KindOf(e)
	default:
		return "panic"
	}
}

func panicMessage(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}

// describeError returns the kind and message of a returned error. Kind and
// Error are user code; if either panics the kind falls back to "error" and
// the message to the dynamic type.
func describeError(err error) (kind, message string) {
	kind, message = "error", fmt.Sprintf("%T", err)
	defer func() {
		_ = recover()
	}()

	kind = KindOf(err)
	message = err.Error()
	return kind, message
}

// describePanic is describeError for a recovered panic value, falling back
// to "panic".
func describePanic(v any) (kind, message string) {
	kind, message = "panic", fmt.Sprintf("%T", v)
	defer func() {
		_ = recover()
	}()

	kind = panicKind(v)
	message = panicMessage(v)
	return kind, message
}

var closureSegment = regexp.MustCompile(`^(func|gowrap)\d+$|^\d+$`)

// shortFuncName reduces a runtime function name to the bare function or
// method name: "example.com/app.compute" becomes "compute" and
// "example.com/app.(*Service).Handle-fm" becomes "Handle". Closures report
// as their enclosing function.
func shortFuncName(full string) string {
	name := full
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = stripTypeParams(name)
	name = strings.TrimSuffix(name, "-fm")

	segments := strings.Split(name, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" || closureSegment.MatchString(seg) || strings.HasPrefix(seg, "(") {
			continue
		}
		return seg
	}
	return name
}

func stripTypeParams(name string) string {
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// funcName returns the short name of fn, or "" if fn is not a function.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return shortFuncName(f.Name())
}

// panicOrigin returns the short name of the function that panicked. It
// must be called from the deferred function that recovered.
func panicOrigin() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	sawPanic := false
	for {
		frame, more := frames.Next()
		switch {
		case frame.Function == "runtime.gopanic":
			sawPanic = true
		case sawPanic && !strings.HasPrefix(frame.Function, "runtime."):
			return shortFuncName(frame.Function)
		}
		if !more {
			return ""
		}
	}
}

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
	"context"
	"fmt"
	"log/slog"
	"maps"
	"runtime/debug"
)

// Invocation carries the arguments a decorated call was made with so they
// can be written into the report.
type Invocation struct {
	// Function overrides the function name used in the report title.
	Function string

	Args      []any
	NamedArgs map[string]any

	// fallback names the wrapped function when neither Function nor the
	// panicking frame is known.
	fallback string
}

// Decorator reports failures of the calls it wraps. The zero value is not
// usable; obtain one from Reporter.Decorate, Registry.Decorate or Decorate.
type Decorator struct {
	resolve   func() (*Reporter, error)
	extraInfo bool
	extra     map[string]any
}

// Decorate returns a Decorator bound to r. With extraInfo set, reports
// carry an "Extra Info" section built from the reporter's Config.Extra
// and extra.
func (r *Reporter) Decorate(extraInfo bool, extra map[string]any) *Decorator {
	return &Decorator{
		resolve:   func() (*Reporter, error) { return r, nil },
		extraInfo: extraInfo,
		extra:     maps.Clone(extra),
	}
}

// Do runs fn. A returned error is reported and then returned unchanged. A
// panic is reported and then re-raised with the same value. A successful
// result passes through untouched. Reporting never replaces the original
// failure: its own errors are logged and dropped.
func Do[T any](ctx context.Context, d *Decorator, inv Invocation, fn func(context.Context) (T, error)) (result T, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		function := inv.Function
		if function == "" {
			function = panicOrigin()
		}
		if function == "" {
			function = inv.name(fn)
		}

		kind, message := describePanic(v)
		d.handle(ctx, ExceptionContext{
			Kind:      kind,
			Function:  function,
			Message:   message,
			Stack:     string(debug.Stack()),
			Args:      inv.Args,
			NamedArgs: inv.NamedArgs,
			Panicked:  true,
		})
		panic(v)
	}()

	result, err = fn(ctx)
	if err != nil {
		function := inv.Function
		if function == "" {
			function = inv.name(fn)
		}

		kind, message := describeError(err)
		d.handle(ctx, ExceptionContext{
			Kind:      kind,
			Function:  function,
			Message:   message,
			Stack:     string(debug.Stack()),
			Args:      inv.Args,
			NamedArgs: inv.NamedArgs,
		})
	}
	return result, err
}

// Wrap decorates a one-argument function. The argument is recorded as the
// call's only positional argument. Returned errors are titled with the
// wrapped function's name and panics with the function that panicked.
func Wrap[A, T any](d *Decorator, fn func(context.Context, A) (T, error)) func(context.Context, A) (T, error) {
	name := funcName(fn)
	return func(ctx context.Context, arg A) (T, error) {
		inv := Invocation{Args: []any{arg}, fallback: name}
		return Do(ctx, d, inv, func(ctx context.Context) (T, error) {
			return fn(ctx, arg)
		})
	}
}

// Wrap0 decorates a function that takes no arguments besides the context.
func Wrap0[T any](d *Decorator, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	name := funcName(fn)
	return func(ctx context.Context) (T, error) {
		return Do(ctx, d, Invocation{fallback: name}, fn)
	}
}

// Run decorates a call with no result.
func Run(ctx context.Context, d *Decorator, inv Invocation, fn func(context.Context) error) error {
	if inv.fallback == "" {
		inv.fallback = funcName(fn)
	}
	_, err := Do(ctx, d, inv, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (inv Invocation) name(fn any) string {
	if inv.fallback != "" {
		return inv.fallback
	}
	return funcName(fn)
}

// handle files the report for ec. Nothing it does escapes to the caller.
func (d *Decorator) handle(ctx context.Context, ec ExceptionContext) {
	logger := slog.Default()
	defer func() {
		if v := recover(); v != nil {
			logger.Error("bug report panicked", "panic", fmt.Sprint(v), "kind", ec.Kind, "function", ec.Function)
		}
	}()

	r, err := d.resolve()
	if err != nil {
		logger.Error("failure not reported", "error", err, "kind", ec.Kind, "function", ec.Function)
		return
	}
	logger = r.logger

	if d.extraInfo {
		ec.Extra = make(map[string]any, len(r.cfg.Extra)+len(d.extra))
		for k, v := range r.cfg.Extra {
			ec.Extra[k] = v
		}
		maps.Copy(ec.Extra, d.extra)
	}

	// The failure may be the cancellation itself; the report still goes out.
	ctx = context.WithoutCancel(ctx)
	if _, err := r.reportFailure(ctx, ec, d.extraInfo); err != nil {
		logger.Warn("failure captured but not reported", "error", err, "kind", ec.Kind, "function", ec.Function)
	}
}

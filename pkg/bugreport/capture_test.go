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
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ValueError struct {
	msg string
}

func (e *ValueError) Error() string { return e.msg }

type codedError struct {
	code string
}

func (e codedError) Error() string { return "failed with " + e.code }
func (e codedError) Kind() string  { return e.code }

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: "error"},
		{name: "errors.New", err: errors.New("boom"), want: "error"},
		{name: "fmt.Errorf", err: fmt.Errorf("boom %d", 1), want: "error"},
		{name: "typed error", err: &ValueError{msg: "bad"}, want: "ValueError"},
		{name: "wrapped typed error", err: fmt.Errorf("compute: %w", &ValueError{msg: "bad"}), want: "ValueError"},
		{name: "path error", err: &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, want: "PathError"},
		{name: "kinder", err: codedError{code: "QuotaExceeded"}, want: "QuotaExceeded"},
		{name: "wrapped kinder", err: fmt.Errorf("upload: %w", codedError{code: "QuotaExceeded"}), want: "QuotaExceeded"},
		{name: "joined", err: errors.Join(errors.New("a"), errors.New("b")), want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestPanicKind(t *testing.T) {
	var runtimeErr any
	func() {
		defer func() { runtimeErr = recover() }()
		var m map[string]int
		m["x"] = 1
	}()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "boom", want: "panic"},
		{name: "int", value: 42, want: "panic"},
		{name: "error", value: &ValueError{msg: "bad"}, want: "ValueError"},
		{name: "kinder", value: codedError{code: "Timeout"}, want: "Timeout"},
		{name: "runtime error", value: runtimeErr, want: "RuntimeError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, panicKind(tt.value))
		})
	}
}

func TestPanicMessage(t *testing.T) {
	assert.Equal(t, "boom", panicMessage("boom"))
	assert.Equal(t, "bad", panicMessage(&ValueError{msg: "bad"}))
	assert.Equal(t, "42", panicMessage(42))
}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		full string
		want string
	}{
		{"main.compute", "compute"},
		{"github.com/acme/app/internal/jobs.compute", "compute"},
		{"github.com/acme/app/internal/jobs.compute.func1", "compute"},
		{"github.com/acme/app/internal/jobs.compute.func1.2", "compute"},
		{"github.com/acme/app/internal/jobs.(*Service).Handle", "Handle"},
		{"github.com/acme/app/internal/jobs.(*Service).Handle-fm", "Handle"},
		{"github.com/acme/app/internal/jobs.Service.Handle", "Handle"},
		{"github.com/acme/app/internal/jobs.Map[...]", "Map"},
		{"github.com/acme/app/internal/jobs.(*Box[...]).Get", "Get"},
		{"compute", "compute"},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			assert.Equal(t, tt.want, shortFuncName(tt.full))
		})
	}
}

func TestFuncName(t *testing.T) {
	assert.Equal(t, "compute", funcName(compute))
	assert.Equal(t, "", funcName(nil))
	assert.Equal(t, "", funcName(42))
}

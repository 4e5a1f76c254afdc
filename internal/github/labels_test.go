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

package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	bugerrors "github.com/sirseerhq/sirseer-bugreport/internal/errors"
)

func newLabelServer(t *testing.T, labels map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo-org/Demo/labels/", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
			return
		}

		name := r.URL.Path[len("/repos/octo-org/Demo/labels/"):]
		id, ok := labels[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      1,
			"node_id": id,
			"name":    name,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRESTLabelResolver_LabelID(t *testing.T) {
	server := newLabelServer(t, map[string]string{
		"bug":            "LA_kwDOJ3JPj88AAAABU1q15w",
		"auto generated": "LA_kwDOJ3JPj88AAAABU1q2DA",
	})

	resolver, err := NewRESTLabelResolver("test-token", server.URL)
	if err != nil {
		t.Fatalf("NewRESTLabelResolver: %v", err)
	}

	tests := []struct {
		name    string
		label   string
		wantID  string
		wantErr error
	}{
		{name: "bug label", label: "bug", wantID: "LA_kwDOJ3JPj88AAAABU1q15w"},
		{name: "label with space", label: "auto generated", wantID: "LA_kwDOJ3JPj88AAAABU1q2DA"},
		{name: "missing label", label: "triage", wantErr: bugerrors.ErrLabelNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := resolver.LabelID(context.Background(), "octo-org", "Demo", tt.label)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("LabelID() = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestRESTLabelResolver_BadToken(t *testing.T) {
	server := newLabelServer(t, map[string]string{"bug": "LA_1"})

	resolver, err := NewRESTLabelResolver("wrong-token", server.URL)
	if err != nil {
		t.Fatalf("NewRESTLabelResolver: %v", err)
	}

	_, err = resolver.LabelID(context.Background(), "octo-org", "Demo", "bug")
	if !errors.Is(err, bugerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewRESTLabelResolver_InvalidEndpoint(t *testing.T) {
	if _, err := NewRESTLabelResolver("t", "://bad"); err == nil {
		t.Fatal("expected error for malformed endpoint")
	}
}

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

package bugreport_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	"github.com/sirseerhq/sirseer-bugreport/pkg/bugreport"
	"github.com/sirseerhq/sirseer-bugreport/test/testutil"
)

type ValueError struct{ msg string }

func (e *ValueError) Error() string { return e.msg }

func compute(_ context.Context, x int) (int, error) {
	if x < 0 {
		return 0, &ValueError{msg: "x must be positive"}
	}
	return x, nil
}

func newServerReporter(t *testing.T, server *testutil.GitHubServer) (*bugreport.Reporter, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	r, err := bugreport.New(bugreport.Config{
		Token:        "test-token",
		Repository:   "Demo",
		Organization: "octo-org",
		Endpoint:     server.GraphQLURL(),
		APIEndpoint:  server.APIURL(),
		Team:         "Tree Growth",
	},
		bugreport.WithOutput(out),
		bugreport.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r, out
}

func TestEndToEnd_ReportThenDuplicate(t *testing.T) {
	server := testutil.NewGitHubServer(t, "octo-org", "Demo")
	r, out := newServerReporter(t, server)
	decorated := bugreport.Wrap(r.Decorate(false, nil), compute)

	_, err := decorated(context.Background(), -1)
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("expected the original ValueError, got %v", err)
	}

	issues := server.Issues()
	if len(issues) != 1 {
		t.Fatalf("server holds %d issues, want 1", len(issues))
	}
	if issues[0].Title != "Demo had a ValueError error with the compute function" {
		t.Errorf("title = %q", issues[0].Title)
	}
	if !reflect.DeepEqual(issues[0].Labels, []string{"bug", "auto generated"}) {
		t.Errorf("labels = %v", issues[0].Labels)
	}
	if !bytes.Contains(out.Bytes(), []byte("This error has been reported to the Tree Growth team.")) {
		t.Errorf("missing reported line in output:\n%s", out.String())
	}

	_, err = decorated(context.Background(), -2)
	if !errors.As(err, &ve) {
		t.Fatalf("expected the original ValueError, got %v", err)
	}
	if n := len(server.Issues()); n != 1 {
		t.Errorf("duplicate created a new issue, server holds %d", n)
	}

	want := []string{
		testutil.RequestListIssues,
		testutil.RequestRepository,
		testutil.RequestLabel,
		testutil.RequestLabel,
		testutil.RequestCreateIssue,
		testutil.RequestListIssues,
	}
	if got := server.Requests(); !reflect.DeepEqual(got, want) {
		t.Errorf("requests = %v, want %v", got, want)
	}
}

func TestEndToEnd_ServerErrorDoesNotMask(t *testing.T) {
	server := testutil.NewGitHubServer(t, "octo-org", "Demo")
	server.FailWith(http.StatusUnauthorized, "Bad credentials")
	r, _ := newServerReporter(t, server)

	_, err := bugreport.Wrap(r.Decorate(false, nil), compute)(context.Background(), -1)
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("expected the original ValueError, got %v", err)
	}

	_, err = r.Report(context.Background(), "manual", "body")
	if !errors.Is(err, bugreport.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken from manual report, got %v", err)
	}
}

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
	"io"
	"log/slog"
	"maps"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sirseerhq/sirseer-bugreport/internal/github"
	"github.com/sirseerhq/sirseer-bugreport/internal/metrics"
)

const tracerName = "github.com/sirseerhq/sirseer-bugreport/pkg/bugreport"

// Outcome is how a report ended.
type Outcome string

const (
	// OutcomeReported means a new issue was created.
	OutcomeReported Outcome = metrics.OutcomeReported
	// OutcomeDuplicate means an open issue with the same title exists.
	OutcomeDuplicate Outcome = metrics.OutcomeDuplicate
	// OutcomeSkipped means test mode suppressed the report.
	OutcomeSkipped Outcome = metrics.OutcomeSkipped
)

// Result describes one report.
type Result struct {
	// ID identifies the report in logs and traces.
	ID      string
	Outcome Outcome
	Title   string

	// Number and URL are set when a new issue was created.
	Number int
	URL    string
}

// Reporter files bug reports for one repository. It is safe for
// concurrent use.
type Reporter struct {
	cfg Config

	client     github.Client
	labels     github.LabelResolver
	logger     *slog.Logger
	out        io.Writer
	registerer prometheus.Registerer
	timeout    time.Duration

	outMu     sync.Mutex
	metrics   *metrics.Collector
	tracer    trace.Tracer
	issues    *IssueRegistry
	publisher *IssuePublisher
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithClient replaces the GraphQL client.
func WithClient(client github.Client) Option {
	return func(r *Reporter) {
		r.client = client
	}
}

// WithLabelResolver replaces the resolver used for label IDs missing from
// the Config.
func WithLabelResolver(labels github.LabelResolver) Option {
	return func(r *Reporter) {
		r.labels = labels
	}
}

// WithLogger sets the logger for pipeline events. The default logs
// warnings and errors to stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithOutput sets where the report text and status lines are printed.
// Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		r.out = w
	}
}

// WithMetrics registers the reporter counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Reporter) {
		r.registerer = reg
	}
}

// WithTracerProvider sets the provider spans are created from. Defaults to
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Reporter) {
		r.tracer = tp.Tracer(tracerName)
	}
}

// WithReportTimeout bounds the network work of a single report.
// Zero means no bound.
func WithReportTimeout(d time.Duration) Option {
	return func(r *Reporter) {
		r.timeout = d
	}
}

// New creates a Reporter for cfg.
func New(cfg Config, opts ...Option) (*Reporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	r := &Reporter{
		cfg: cfg,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
		out:    os.Stdout,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("repository", cfg.Repository)

	if r.client == nil {
		r.client = github.NewGraphQLClient(cfg.Token, cfg.Endpoint)
	}
	if r.labels == nil && !cfg.labelsConfigured() && !cfg.TestMode {
		resolver, err := github.NewRESTLabelResolver(cfg.Token, cfg.APIEndpoint)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
		}
		r.labels = resolver
	}

	m, err := metrics.New(r.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	r.metrics = m

	r.issues = &IssueRegistry{
		client: r.client,
		owner:  cfg.Organization,
		repo:   cfg.Repository,
	}
	r.publisher = &IssuePublisher{
		client:   r.client,
		labels:   r.labels,
		owner:    cfg.Organization,
		repo:     cfg.Repository,
		labelIDs: [2]string{cfg.BugLabelID, cfg.AutoLabelID},
	}
	return r, nil
}

// Config returns a copy of the reporter's configuration.
func (r *Reporter) Config() Config {
	c := r.cfg
	c.Extra = maps.Clone(r.cfg.Extra)
	return c
}

// Issues returns the duplicate detector for the reporting repository.
func (r *Reporter) Issues() *IssueRegistry {
	return r.issues
}

// Publisher returns the issue publisher for the reporting repository.
func (r *Reporter) Publisher() *IssuePublisher {
	return r.publisher
}

// Report files an issue with a caller-supplied title and body through the
// same pipeline as captured failures, including duplicate detection and
// test mode.
func (r *Reporter) Report(ctx context.Context, title, body string) (Result, error) {
	draft := IssueDraft{
		Title:  title,
		Body:   body,
		Labels: []string{BugLabel, AutoLabel},
	}
	return r.submit(ctx, draft, attribute.Bool("report.manual", true))
}

// reportFailure composes and submits the report for a captured failure.
func (r *Reporter) reportFailure(ctx context.Context, ec ExceptionContext, extraInfo bool) (Result, error) {
	r.metrics.Failure(r.cfg.Repository, ec.Kind)

	draft := Compose(r.cfg.Repository, ec, extraInfo)
	return r.submit(ctx, draft,
		attribute.String("failure.kind", ec.Kind),
		attribute.String("failure.function", ec.Function),
		attribute.Bool("failure.panic", ec.Panicked),
	)
}

func (r *Reporter) submit(ctx context.Context, draft IssueDraft, attrs ...attribute.KeyValue) (res Result, err error) {
	res = Result{ID: uuid.NewString(), Title: draft.Title}
	repo := r.cfg.Repository

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	attrs = append(attrs,
		attribute.String("report.id", res.ID),
		attribute.String("repository", repo),
		attribute.String("issue.title", draft.Title),
	)
	ctx, span := r.tracer.Start(ctx, "bugreport.report", trace.WithAttributes(attrs...))
	defer func() {
		if err != nil {
			r.metrics.Outcome(repo, metrics.OutcomeFailed)
			span.RecordError(err)
			span.SetStatus(codes.Error, "report failed")
		} else {
			r.metrics.Outcome(repo, string(res.Outcome))
			span.SetAttributes(attribute.String("report.outcome", string(res.Outcome)))
		}
		span.End()
	}()

	logger := r.logger.With("report_id", res.ID, "title", draft.Title)

	var console strings.Builder
	defer r.writeConsole(&console)
	fmt.Fprintf(&console, "%s\n%s\n", draft.Title, draft.Body)

	if r.cfg.TestMode {
		res.Outcome = OutcomeSkipped
		logger.Info("test mode enabled, report not sent")
		return res, nil
	}

	exists, err := r.checkDuplicate(ctx, draft.Title)
	if err != nil {
		r.metrics.ReportError(repo, metrics.StageDuplicateCheck)
		logger.Error("duplicate check failed", "error", err)
		return res, err
	}
	if exists {
		res.Outcome = OutcomeDuplicate
		console.WriteString("\nOur team is already aware of this issue.\n\n")
		logger.Info("issue already open")
		return res, nil
	}

	issue, err := r.publish(ctx, draft)
	if err != nil {
		r.metrics.ReportError(repo, metrics.StagePublish)
		logger.Error("failed to publish issue", "error", err)
		return res, err
	}

	res.Outcome = OutcomeReported
	res.Number = issue.Number
	res.URL = issue.URL
	if r.cfg.Team != "" {
		fmt.Fprintf(&console, "\nThis error has been reported to the %s team.\n\n", r.cfg.Team)
	} else {
		console.WriteString("\nThis error has been reported.\n\n")
	}
	logger.Info("issue created", "number", issue.Number, "url", issue.URL)
	return res, nil
}

func (r *Reporter) checkDuplicate(ctx context.Context, title string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "bugreport.duplicate_check")
	defer span.End()

	exists, err := r.issues.Exists(ctx, title)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "duplicate check failed")
		return false, err
	}
	span.SetAttributes(attribute.Bool("issue.exists", exists))
	return exists, nil
}

func (r *Reporter) publish(ctx context.Context, draft IssueDraft) (*github.CreatedIssue, error) {
	ctx, span := r.tracer.Start(ctx, "bugreport.publish")
	defer span.End()

	issue, err := r.publisher.Publish(ctx, draft)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("issue.number", issue.Number))
	return issue, nil
}

// writeConsole writes one report's console text in a single call so concurrent
// reports on a Reporter never interleave.
func (r *Reporter) writeConsole(text *strings.Builder) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	_, _ = io.WriteString(r.out, text.String())
}

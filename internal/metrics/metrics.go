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

// Package metrics exposes Prometheus counters for captured failures and
// the outcome of each bug report.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome and stage label values.
const (
	OutcomeReported  = "reported"
	OutcomeDuplicate = "duplicate"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"

	StageDuplicateCheck = "duplicate_check"
	StagePublish        = "publish"
)

// Collector holds the reporter counters.
type Collector struct {
	failures     *prometheus.CounterVec
	reports      *prometheus.CounterVec
	reportErrors *prometheus.CounterVec
}

// New registers the counters with reg. A nil reg gets a private registry so
// that reporters built without metrics never touch the global one.
// Counters already registered by another Collector are shared.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bugreport_failures_total",
				Help: "Failures captured by decorated functions",
			},
			[]string{"repository", "kind"},
		),
		reports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bugreport_reports_total",
				Help: "Bug reports by outcome",
			},
			[]string{"repository", "outcome"},
		),
		reportErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bugreport_report_errors_total",
				Help: "Errors raised while filing bug reports, by pipeline stage",
			},
			[]string{"repository", "stage"},
		),
	}

	var err error
	if c.failures, err = register(reg, c.failures); err != nil {
		return nil, err
	}
	if c.reports, err = register(reg, c.reports); err != nil {
		return nil, err
	}
	if c.reportErrors, err = register(reg, c.reportErrors); err != nil {
		return nil, err
	}
	return c, nil
}

func register(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}

// Failure counts one captured failure.
func (c *Collector) Failure(repository, kind string) {
	c.failures.WithLabelValues(repository, kind).Inc()
}

// Outcome counts one finished report.
func (c *Collector) Outcome(repository, outcome string) {
	c.reports.WithLabelValues(repository, outcome).Inc()
}

// ReportError counts an error at stage of the reporting pipeline.
func (c *Collector) ReportError(repository, stage string) {
	c.reportErrors.WithLabelValues(repository, stage).Inc()
}

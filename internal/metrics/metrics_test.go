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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.Failure("Demo", "ValueError")
	c.Failure("Demo", "ValueError")
	c.Outcome("Demo", OutcomeReported)
	c.ReportError("Demo", StagePublish)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.failures.WithLabelValues("Demo", "ValueError")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reports.WithLabelValues("Demo", OutcomeReported)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reportErrors.WithLabelValues("Demo", StagePublish)))
}

func TestNew_SharesRegisteredCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.Outcome("Demo", OutcomeDuplicate)
	second.Outcome("Demo", OutcomeDuplicate)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.reports.WithLabelValues("Demo", OutcomeDuplicate)))
}

func TestNew_NilRegisterer(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	c.Outcome("Demo", OutcomeSkipped)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reports.WithLabelValues("Demo", OutcomeSkipped)))
}

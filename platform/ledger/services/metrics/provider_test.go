/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullPkgName(t *testing.T) {
	ns, ss := parseFullPkgName("github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/updates", Replacers())
	assert.Equal(t, "dlg_ledger_core", ns)
	assert.Equal(t, "updates", ss)

	ns, ss = parseFullPkgName("example.com/app", nil)
	assert.Equal(t, "example_com", ns)
	assert.Equal(t, "app", ss)
}

func TestProviderReusesCollectors(t *testing.T) {
	reg := prom.NewPedanticRegistry()
	p := NewProvider(reg)

	first := p.NewCounter(CounterOpts{Name: "calls", Help: "calls", LabelNames: []string{"method"}})
	second := p.NewCounter(CounterOpts{Name: "calls", Help: "calls", LabelNames: []string{"method"}})
	first.With("method", "GetUpdates").Add(1)
	second.With("method", "GetUpdates").Add(2)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP dlg_ledger_services_metrics_calls calls
# TYPE dlg_ledger_services_metrics_calls counter
dlg_ledger_services_metrics_calls{method="GetUpdates"} 3
`)))
}

func TestHistogram(t *testing.T) {
	reg := prom.NewPedanticRegistry()
	p := NewProvider(reg)

	h := p.NewHistogram(HistogramOpts{Name: "duration", Help: "duration", Buckets: []float64{1, 10}, LabelNames: []string{"method"}})
	h.With("method", "GetUpdates").Observe(0.5)
	h.With("method", "GetUpdates").Observe(5)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP dlg_ledger_services_metrics_duration duration
# TYPE dlg_ledger_services_metrics_duration histogram
dlg_ledger_services_metrics_duration_bucket{method="GetUpdates",le="1"} 1
dlg_ledger_services_metrics_duration_bucket{method="GetUpdates",le="10"} 2
dlg_ledger_services_metrics_duration_bucket{method="GetUpdates",le="+Inf"} 2
dlg_ledger_services_metrics_duration_sum{method="GetUpdates"} 5.5
dlg_ledger_services_metrics_duration_count{method="GetUpdates"} 2
`)))
}

func TestProviderPanicsOnConflict(t *testing.T) {
	p := &Provider{Registerer: prom.NewRegistry()}
	p.NewHistogram(HistogramOpts{Name: "duration", Help: "duration"})
	assert.Panics(t, func() {
		p.NewHistogram(HistogramOpts{Name: "duration", Help: "duration"})
	})
}

func TestDurationBuckets(t *testing.T) {
	buckets := DurationBuckets(time.Second, 5)
	require.Len(t, buckets, 5)
	assert.Equal(t, 0.0, buckets[0])
	assert.InDelta(t, 0.001, buckets[1], 1e-9)
	assert.InDelta(t, 1, buckets[4], 1e-9)
	assert.IsIncreasing(t, buckets)

	assert.Equal(t, []float64{0, 1}, DurationBuckets(time.Second, 2))
}

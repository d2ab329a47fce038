/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import (
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/metrics"
)

type Metrics struct {
	Calls    kitmetrics.Counter
	Received kitmetrics.Counter
	Duration kitmetrics.Histogram
}

func NewMetrics(p *metrics.Provider) *Metrics {
	return &Metrics{
		Calls: p.NewCounter(metrics.CounterOpts{
			Name:       "calls",
			Help:       "Calls to the update service, by method and status code",
			LabelNames: []string{"method", "code"},
		}),
		Received: p.NewCounter(metrics.CounterOpts{
			Name:       "received_transactions",
			Help:       "Transactions received, by method",
			LabelNames: []string{"method"},
		}),
		Duration: p.NewHistogram(metrics.HistogramOpts{
			Name:       "call_duration",
			Help:       "Duration of the calls to the update service, streams included",
			Buckets:    metrics.DurationBuckets(10*time.Minute, 20),
			LabelNames: []string{"method"},
		}),
	}
}

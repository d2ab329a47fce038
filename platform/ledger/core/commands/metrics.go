/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

import (
	"time"

	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/metrics"
)

type Metrics struct {
	Submissions kitmetrics.Counter
	Duration    kitmetrics.Histogram
}

func NewMetrics(p *metrics.Provider) *Metrics {
	return &Metrics{
		Submissions: p.NewCounter(metrics.CounterOpts{
			Name:       "submissions",
			Help:       "Submissions to the command service, by method and status code",
			LabelNames: []string{"method", "code"},
		}),
		Duration: p.NewHistogram(metrics.HistogramOpts{
			Name:       "submission_duration",
			Help:       "Time from submission to completion, by method",
			Buckets:    metrics.DurationBuckets(2*time.Minute, 20),
			LabelNames: []string{"method"},
		}),
	}
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// DurationBuckets returns count histogram buckets in seconds: zero, then growing exponentially
// from one millisecond to max
func DurationBuckets(max time.Duration, count int) []float64 {
	if count < 3 || max <= time.Millisecond {
		return []float64{0, max.Seconds()}
	}
	return append([]float64{0}, prom.ExponentialBucketsRange(time.Millisecond.Seconds(), max.Seconds(), count-1)...)
}

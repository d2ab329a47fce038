/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proto

import (
	"time"

	//lint:ignore SA1019 Dependency to be updated to google.golang.org/protobuf/proto
	protoV1 "github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*
This package delegates the protobuf/proto functionality to the deprecated package. This way, we:
- temporarily handle the linting warnings, and
- allow for an easier update of the dependency by updating this single package

The ledger API messages in ledgerpb are encoded field by field; the well-known types they
embed (timestamps, durations) and the standard messages the codec carries (e.g. health checks) go through here.
*/

type Message = protoV1.Message

func Unmarshal(b []byte, m Message) error {
	return protoV1.Unmarshal(b, m)
}

func Marshal(m Message) ([]byte, error) {
	return protoV1.Marshal(m)
}

// ToTimestamp converts t into its wire representation.
// The zero time maps to nil, so that an unset field stays unset.
func ToTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// FromTimestamp converts ts into a UTC time. A nil timestamp maps to the zero time.
func FromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// ToDuration maps zero to nil
func ToDuration(d time.Duration) *durationpb.Duration {
	if d == 0 {
		return nil
	}
	return durationpb.New(d)
}

func FromDuration(d *durationpb.Duration) time.Duration {
	if d == nil {
		return 0
	}
	return d.AsDuration()
}

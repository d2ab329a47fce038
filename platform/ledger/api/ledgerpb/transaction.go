/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import (
	"slices"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Transaction is a flat transaction. TraceContext is kept raw.
type Transaction struct {
	UpdateId       string
	CommandId      string
	WorkflowId     string
	EffectiveAt    *timestamppb.Timestamp
	Events         []*Event
	Offset         int64
	SynchronizerId string
	TraceContext   []byte
	RecordTime     *timestamppb.Timestamp
}

func (x *Transaction) GetUpdateId() string {
	if x == nil {
		return ""
	}
	return x.UpdateId
}

func (x *Transaction) GetOffset() int64 {
	if x == nil {
		return 0
	}
	return x.Offset
}

func (x *Transaction) Marshal() ([]byte, error) { return marshal(x) }

func (x *Transaction) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *Transaction) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.UpdateId)
	b = appendString(b, 2, x.CommandId)
	b = appendString(b, 3, x.WorkflowId)
	b = appendTimestamp(b, 4, x.EffectiveAt)
	for _, e := range x.Events {
		b = appendMessage(b, 5, e)
	}
	b = appendInt64(b, 6, x.Offset)
	b = appendString(b, 7, x.SynchronizerId)
	b = appendRaw(b, 8, x.TraceContext)
	b = appendTimestamp(b, 9, x.RecordTime)
	return b
}

func (x *Transaction) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.UpdateId, n, err = consumeString(num, typ, b)
	case 2:
		x.CommandId, n, err = consumeString(num, typ, b)
	case 3:
		x.WorkflowId, n, err = consumeString(num, typ, b)
	case 4:
		x.EffectiveAt, n, err = consumeTimestamp(num, typ, b)
	case 5:
		e := &Event{}
		if n, err = consumeMessage(num, typ, b, e); err == nil {
			x.Events = append(x.Events, e)
		}
	case 6:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 7:
		x.SynchronizerId, n, err = consumeString(num, typ, b)
	case 8:
		x.TraceContext, n, err = consumeBytes(num, typ, b)
	case 9:
		x.RecordTime, n, err = consumeTimestamp(num, typ, b)
	}
	return
}

// TransactionTree is the legacy tree shaped transaction, events are indexed by node id
type TransactionTree struct {
	UpdateId       string
	CommandId      string
	WorkflowId     string
	EffectiveAt    *timestamppb.Timestamp
	Offset         int64
	EventsById     map[int32]*TreeEvent
	SynchronizerId string
	TraceContext   []byte
	RecordTime     *timestamppb.Timestamp
}

func (x *TransactionTree) GetUpdateId() string {
	if x == nil {
		return ""
	}
	return x.UpdateId
}

func (x *TransactionTree) Marshal() ([]byte, error) { return marshal(x) }

func (x *TransactionTree) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *TransactionTree) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.UpdateId)
	b = appendString(b, 2, x.CommandId)
	b = appendString(b, 3, x.WorkflowId)
	b = appendTimestamp(b, 4, x.EffectiveAt)
	b = appendInt64(b, 5, x.Offset)
	ids := collections.Keys(x.EventsById)
	slices.Sort(ids)
	for _, id := range ids {
		b = appendMessage(b, 6, &treeEventEntry{key: id, value: x.EventsById[id]})
	}
	b = appendString(b, 7, x.SynchronizerId)
	b = appendRaw(b, 8, x.TraceContext)
	b = appendTimestamp(b, 9, x.RecordTime)
	return b
}

func (x *TransactionTree) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.UpdateId, n, err = consumeString(num, typ, b)
	case 2:
		x.CommandId, n, err = consumeString(num, typ, b)
	case 3:
		x.WorkflowId, n, err = consumeString(num, typ, b)
	case 4:
		x.EffectiveAt, n, err = consumeTimestamp(num, typ, b)
	case 5:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 6:
		e := &treeEventEntry{}
		if n, err = consumeMessage(num, typ, b, e); err == nil {
			if x.EventsById == nil {
				x.EventsById = map[int32]*TreeEvent{}
			}
			if e.value == nil {
				e.value = &TreeEvent{}
			}
			x.EventsById[e.key] = e.value
		}
	case 7:
		x.SynchronizerId, n, err = consumeString(num, typ, b)
	case 8:
		x.TraceContext, n, err = consumeBytes(num, typ, b)
	case 9:
		x.RecordTime, n, err = consumeTimestamp(num, typ, b)
	}
	return
}

type treeEventEntry struct {
	key   int32
	value *TreeEvent
}

func (e *treeEventEntry) appendFields(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(int64(e.key)))
	v := e.value
	if v == nil {
		v = &TreeEvent{}
	}
	return appendMessage(b, 2, v)
}

func (e *treeEventEntry) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		e.key, n, err = consumeInt32(num, typ, b)
	case 2:
		e.value = &TreeEvent{}
		n, err = consumeMessage(num, typ, b, e.value)
	}
	return
}

type SynchronizerTime struct {
	SynchronizerId string
	RecordTime     *timestamppb.Timestamp
}

func (x *SynchronizerTime) Marshal() ([]byte, error) { return marshal(x) }

func (x *SynchronizerTime) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *SynchronizerTime) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.SynchronizerId)
	return appendTimestamp(b, 2, x.RecordTime)
}

func (x *SynchronizerTime) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.SynchronizerId, n, err = consumeString(num, typ, b)
	case 2:
		x.RecordTime, n, err = consumeTimestamp(num, typ, b)
	}
	return
}

// OffsetCheckpoint tells that the ledger end moved without a visible update
type OffsetCheckpoint struct {
	Offset            int64
	SynchronizerTimes []*SynchronizerTime
}

func (x *OffsetCheckpoint) Marshal() ([]byte, error) { return marshal(x) }

func (x *OffsetCheckpoint) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *OffsetCheckpoint) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.Offset)
	for _, t := range x.SynchronizerTimes {
		b = appendMessage(b, 2, t)
	}
	return b
}

func (x *OffsetCheckpoint) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 2:
		t := &SynchronizerTime{}
		if n, err = consumeMessage(num, typ, b, t); err == nil {
			x.SynchronizerTimes = append(x.SynchronizerTimes, t)
		}
	}
	return
}

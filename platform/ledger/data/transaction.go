/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package data

import (
	"slices"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/proto"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
)

// Transaction is a committed transaction as seen by the requesting parties.
// TraceContext holds the encoded W3C trace context of the submission, if any.
type Transaction struct {
	UpdateID       string
	CommandID      string
	WorkflowID     string
	EffectiveAt    time.Time
	Events         []Event
	Offset         int64
	SynchronizerID string
	TraceContext   []byte
	RecordTime     time.Time
}

func (t *Transaction) ToProto() *ledgerpb.Transaction {
	out := &ledgerpb.Transaction{
		UpdateId:       t.UpdateID,
		CommandId:      t.CommandID,
		WorkflowId:     t.WorkflowID,
		EffectiveAt:    proto.ToTimestamp(t.EffectiveAt),
		Offset:         t.Offset,
		SynchronizerId: t.SynchronizerID,
		TraceContext:   slices.Clone(t.TraceContext),
		RecordTime:     proto.ToTimestamp(t.RecordTime),
	}
	for _, e := range t.Events {
		if pe := EventToProto(e); pe != nil {
			out.Events = append(out.Events, pe)
		}
	}
	return out
}

// TransactionFromProto keeps the order of the events.
// An event of a type this client does not know fails the conversion.
func TransactionFromProto(t *ledgerpb.Transaction) (*Transaction, error) {
	out := &Transaction{
		UpdateID:       t.UpdateId,
		CommandID:      t.CommandId,
		WorkflowID:     t.WorkflowId,
		EffectiveAt:    proto.FromTimestamp(t.EffectiveAt),
		Offset:         t.Offset,
		SynchronizerID: t.SynchronizerId,
		TraceContext:   slices.Clone(t.TraceContext),
		RecordTime:     proto.FromTimestamp(t.RecordTime),
	}
	for i, e := range t.Events {
		de, err := EventFromProto(e)
		if err != nil {
			return nil, errors.WithMessagef(err, "event %d of update [%s]", i, t.UpdateId)
		}
		out.Events = append(out.Events, de)
	}
	return out, nil
}

// TransactionTree is a transaction whose events are indexed by node id.
//
// Deprecated: use Transaction with TransactionShapeLedgerEffects.
type TransactionTree struct {
	UpdateID       string
	CommandID      string
	WorkflowID     string
	EffectiveAt    time.Time
	Offset         int64
	EventsByID     map[int32]TreeEvent
	SynchronizerID string
	TraceContext   []byte
	RecordTime     time.Time
}

func (t *TransactionTree) ToProto() *ledgerpb.TransactionTree {
	out := &ledgerpb.TransactionTree{
		UpdateId:       t.UpdateID,
		CommandId:      t.CommandID,
		WorkflowId:     t.WorkflowID,
		EffectiveAt:    proto.ToTimestamp(t.EffectiveAt),
		Offset:         t.Offset,
		SynchronizerId: t.SynchronizerID,
		TraceContext:   slices.Clone(t.TraceContext),
		RecordTime:     proto.ToTimestamp(t.RecordTime),
	}
	if len(t.EventsByID) > 0 {
		out.EventsById = make(map[int32]*ledgerpb.TreeEvent, len(t.EventsByID))
		for id, e := range t.EventsByID {
			if pe := TreeEventToProto(e); pe != nil {
				out.EventsById[id] = pe
			}
		}
	}
	return out
}

func TransactionTreeFromProto(t *ledgerpb.TransactionTree) (*TransactionTree, error) {
	out := &TransactionTree{
		UpdateID:       t.UpdateId,
		CommandID:      t.CommandId,
		WorkflowID:     t.WorkflowId,
		EffectiveAt:    proto.FromTimestamp(t.EffectiveAt),
		Offset:         t.Offset,
		SynchronizerID: t.SynchronizerId,
		TraceContext:   slices.Clone(t.TraceContext),
		RecordTime:     proto.FromTimestamp(t.RecordTime),
	}
	if len(t.EventsById) > 0 {
		out.EventsByID = make(map[int32]TreeEvent, len(t.EventsById))
		for id, e := range t.EventsById {
			de, err := TreeEventFromProto(e)
			if err != nil {
				return nil, errors.WithMessagef(err, "node %d of update [%s]", id, t.UpdateId)
			}
			out.EventsByID[id] = de
		}
	}
	return out, nil
}

// RootNodeIDs returns, in ascending order, the nodes that no exercised event of the tree has
// as a descendant. The descendants of an exercised event are the nodes in (NodeID, LastDescendantNodeID].
func (t *TransactionTree) RootNodeIDs() []int32 {
	ids := collections.Keys(t.EventsByID)
	slices.Sort(ids)
	var roots []int32
	covered := int32(-1)
	for _, id := range ids {
		if id <= covered {
			continue
		}
		roots = append(roots, id)
		if ex, ok := t.EventsByID[id].(*ExercisedEvent); ok && ex.LastDescendantNodeID > covered {
			covered = ex.LastDescendantNodeID
		}
	}
	return roots
}

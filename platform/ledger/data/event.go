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
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
)

// Event is one of *CreatedEvent, *ArchivedEvent, *ExercisedEvent
type Event interface {
	isEvent()
}

// TreeEvent is one of *CreatedEvent, *ExercisedEvent
type TreeEvent interface {
	isTreeEvent()
}

// CreatedEvent records the creation of a contract.
// ContractKey, CreateArguments and InterfaceViews hold encoded Daml values.
// A nil ContractKey means the template has no key.
type CreatedEvent struct {
	Offset           int64
	NodeID           int32
	ContractID       string
	TemplateID       Identifier
	PackageName      string
	ContractKey      []byte
	CreateArguments  []byte
	CreatedEventBlob []byte
	InterfaceViews   [][]byte
	WitnessParties   []string
	Signatories      []string
	Observers        []string
	CreatedAt        time.Time
}

func (*CreatedEvent) isEvent()     {}
func (*CreatedEvent) isTreeEvent() {}

func (e *CreatedEvent) ToProto() *ledgerpb.CreatedEvent {
	return &ledgerpb.CreatedEvent{
		Offset:           e.Offset,
		NodeId:           e.NodeID,
		ContractId:       e.ContractID,
		TemplateId:       e.TemplateID.ToProto(),
		ContractKey:      slices.Clone(e.ContractKey),
		CreateArguments:  slices.Clone(e.CreateArguments),
		CreatedEventBlob: slices.Clone(e.CreatedEventBlob),
		InterfaceViews:   cloneRaw(e.InterfaceViews),
		WitnessParties:   slices.Clone(e.WitnessParties),
		Signatories:      slices.Clone(e.Signatories),
		Observers:        slices.Clone(e.Observers),
		CreatedAt:        proto.ToTimestamp(e.CreatedAt),
		PackageName:      e.PackageName,
	}
}

func CreatedEventFromProto(e *ledgerpb.CreatedEvent) *CreatedEvent {
	return &CreatedEvent{
		Offset:           e.Offset,
		NodeID:           e.NodeId,
		ContractID:       e.ContractId,
		TemplateID:       IdentifierFromProto(e.TemplateId),
		PackageName:      e.PackageName,
		ContractKey:      slices.Clone(e.ContractKey),
		CreateArguments:  slices.Clone(e.CreateArguments),
		CreatedEventBlob: emptyToNil(e.CreatedEventBlob),
		InterfaceViews:   cloneRaw(e.InterfaceViews),
		WitnessParties:   slices.Clone(e.WitnessParties),
		Signatories:      slices.Clone(e.Signatories),
		Observers:        slices.Clone(e.Observers),
		CreatedAt:        proto.FromTimestamp(e.CreatedAt),
	}
}

// ArchivedEvent records the archival of a contract
type ArchivedEvent struct {
	Offset                int64
	NodeID                int32
	EventID               string
	ContractID            string
	TemplateID            Identifier
	PackageName           string
	WitnessParties        []string
	ImplementedInterfaces []Identifier
}

func (*ArchivedEvent) isEvent() {}

func (e *ArchivedEvent) ToProto() *ledgerpb.ArchivedEvent {
	return &ledgerpb.ArchivedEvent{
		Offset:                e.Offset,
		NodeId:                e.NodeID,
		ContractId:            e.ContractID,
		TemplateId:            e.TemplateID.ToProto(),
		WitnessParties:        slices.Clone(e.WitnessParties),
		PackageName:           e.PackageName,
		ImplementedInterfaces: identifiersToProto(e.ImplementedInterfaces),
		EventId:               e.EventID,
	}
}

func ArchivedEventFromProto(e *ledgerpb.ArchivedEvent) *ArchivedEvent {
	return &ArchivedEvent{
		Offset:                e.Offset,
		NodeID:                e.NodeId,
		EventID:               e.EventId,
		ContractID:            e.ContractId,
		TemplateID:            IdentifierFromProto(e.TemplateId),
		PackageName:           e.PackageName,
		WitnessParties:        slices.Clone(e.WitnessParties),
		ImplementedInterfaces: identifiersFromProto(e.ImplementedInterfaces),
	}
}

// ExercisedEvent records the exercise of a choice.
// ChoiceArgument and ExerciseResult hold encoded Daml values.
type ExercisedEvent struct {
	Offset                int64
	NodeID                int32
	ContractID            string
	TemplateID            Identifier
	InterfaceID           *Identifier
	PackageName           string
	Choice                string
	ChoiceArgument        []byte
	ActingParties         []string
	Consuming             bool
	WitnessParties        []string
	LastDescendantNodeID  int32
	ExerciseResult        []byte
	ImplementedInterfaces []Identifier
}

func (*ExercisedEvent) isEvent()     {}
func (*ExercisedEvent) isTreeEvent() {}

func (e *ExercisedEvent) ToProto() *ledgerpb.ExercisedEvent {
	return &ledgerpb.ExercisedEvent{
		Offset:                e.Offset,
		NodeId:                e.NodeID,
		ContractId:            e.ContractID,
		TemplateId:            e.TemplateID.ToProto(),
		InterfaceId:           optionalIdentifierToProto(e.InterfaceID),
		Choice:                e.Choice,
		ChoiceArgument:        slices.Clone(e.ChoiceArgument),
		ActingParties:         slices.Clone(e.ActingParties),
		Consuming:             e.Consuming,
		WitnessParties:        slices.Clone(e.WitnessParties),
		LastDescendantNodeId:  e.LastDescendantNodeID,
		ExerciseResult:        slices.Clone(e.ExerciseResult),
		PackageName:           e.PackageName,
		ImplementedInterfaces: identifiersToProto(e.ImplementedInterfaces),
	}
}

func ExercisedEventFromProto(e *ledgerpb.ExercisedEvent) *ExercisedEvent {
	return &ExercisedEvent{
		Offset:                e.Offset,
		NodeID:                e.NodeId,
		ContractID:            e.ContractId,
		TemplateID:            IdentifierFromProto(e.TemplateId),
		InterfaceID:           optionalIdentifierFromProto(e.InterfaceId),
		PackageName:           e.PackageName,
		Choice:                e.Choice,
		ChoiceArgument:        slices.Clone(e.ChoiceArgument),
		ActingParties:         slices.Clone(e.ActingParties),
		Consuming:             e.Consuming,
		WitnessParties:        slices.Clone(e.WitnessParties),
		LastDescendantNodeID:  e.LastDescendantNodeId,
		ExerciseResult:        slices.Clone(e.ExerciseResult),
		ImplementedInterfaces: identifiersFromProto(e.ImplementedInterfaces),
	}
}

// EventToProto wraps e into its wire variant. Events of unknown types give nil.
func EventToProto(e Event) *ledgerpb.Event {
	switch e := e.(type) {
	case *CreatedEvent:
		return &ledgerpb.Event{Created: e.ToProto()}
	case *ArchivedEvent:
		return &ledgerpb.Event{Archived: e.ToProto()}
	case *ExercisedEvent:
		return &ledgerpb.Event{Exercised: e.ToProto()}
	default:
		return nil
	}
}

// EventFromProto fails with a ledgerpb.ErrDecode cause on an event holding no known variant
func EventFromProto(e *ledgerpb.Event) (Event, error) {
	switch {
	case e == nil:
		return nil, errors.Wrapf(ledgerpb.ErrDecode, "missing event")
	case e.Created != nil:
		return CreatedEventFromProto(e.Created), nil
	case e.Archived != nil:
		return ArchivedEventFromProto(e.Archived), nil
	case e.Exercised != nil:
		return ExercisedEventFromProto(e.Exercised), nil
	default:
		return nil, errors.Wrapf(ledgerpb.ErrDecode, "event of unknown type")
	}
}

func TreeEventToProto(e TreeEvent) *ledgerpb.TreeEvent {
	switch e := e.(type) {
	case *CreatedEvent:
		return &ledgerpb.TreeEvent{Created: e.ToProto()}
	case *ExercisedEvent:
		return &ledgerpb.TreeEvent{Exercised: e.ToProto()}
	default:
		return nil
	}
}

func TreeEventFromProto(e *ledgerpb.TreeEvent) (TreeEvent, error) {
	switch {
	case e == nil:
		return nil, errors.Wrapf(ledgerpb.ErrDecode, "missing tree event")
	case e.Created != nil:
		return CreatedEventFromProto(e.Created), nil
	case e.Exercised != nil:
		return ExercisedEventFromProto(e.Exercised), nil
	default:
		return nil, errors.Wrapf(ledgerpb.ErrDecode, "tree event of unknown type")
	}
}

func cloneRaw(vs [][]byte) [][]byte {
	if len(vs) == 0 {
		return nil
	}
	out := make([][]byte, len(vs))
	for i, v := range vs {
		out[i] = slices.Clone(v)
	}
	return out
}

// emptyToNil is for bytes fields where absent and empty cannot be told apart on the wire
func emptyToNil(v []byte) []byte {
	if len(v) == 0 {
		return nil
	}
	return slices.Clone(v)
}

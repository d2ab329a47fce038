/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CreatedEvent records the creation of a contract.
// ContractKey, CreateArguments and InterfaceViews are raw Daml values.
type CreatedEvent struct {
	Offset           int64
	NodeId           int32
	ContractId       string
	TemplateId       *Identifier
	ContractKey      []byte
	CreateArguments  []byte
	CreatedEventBlob []byte
	InterfaceViews   [][]byte
	WitnessParties   []string
	Signatories      []string
	Observers        []string
	CreatedAt        *timestamppb.Timestamp
	PackageName      string
}

func (x *CreatedEvent) Marshal() ([]byte, error) { return marshal(x) }

func (x *CreatedEvent) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *CreatedEvent) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.Offset)
	b = appendInt32(b, 2, x.NodeId)
	b = appendString(b, 3, x.ContractId)
	if x.TemplateId != nil {
		b = appendMessage(b, 4, x.TemplateId)
	}
	b = appendRaw(b, 5, x.ContractKey)
	b = appendRaw(b, 6, x.CreateArguments)
	b = appendBytes(b, 7, x.CreatedEventBlob)
	b = appendRepeatedRaw(b, 8, x.InterfaceViews)
	b = appendRepeatedString(b, 9, x.WitnessParties)
	b = appendRepeatedString(b, 10, x.Signatories)
	b = appendRepeatedString(b, 11, x.Observers)
	b = appendTimestamp(b, 12, x.CreatedAt)
	b = appendString(b, 13, x.PackageName)
	return b
}

func (x *CreatedEvent) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	var s string
	var raw []byte
	switch num {
	case 1:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 2:
		x.NodeId, n, err = consumeInt32(num, typ, b)
	case 3:
		x.ContractId, n, err = consumeString(num, typ, b)
	case 4:
		x.TemplateId = &Identifier{}
		n, err = consumeMessage(num, typ, b, x.TemplateId)
	case 5:
		x.ContractKey, n, err = consumeBytes(num, typ, b)
	case 6:
		x.CreateArguments, n, err = consumeBytes(num, typ, b)
	case 7:
		x.CreatedEventBlob, n, err = consumeBytes(num, typ, b)
	case 8:
		if raw, n, err = consumeBytes(num, typ, b); err == nil {
			x.InterfaceViews = append(x.InterfaceViews, raw)
		}
	case 9:
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.WitnessParties = append(x.WitnessParties, s)
		}
	case 10:
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.Signatories = append(x.Signatories, s)
		}
	case 11:
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.Observers = append(x.Observers, s)
		}
	case 12:
		x.CreatedAt, n, err = consumeTimestamp(num, typ, b)
	case 13:
		x.PackageName, n, err = consumeString(num, typ, b)
	}
	return
}

// ArchivedEvent records the archival of a contract
type ArchivedEvent struct {
	Offset                int64
	NodeId                int32
	ContractId            string
	TemplateId            *Identifier
	WitnessParties        []string
	PackageName           string
	ImplementedInterfaces []*Identifier
	EventId               string
}

func (x *ArchivedEvent) Marshal() ([]byte, error) { return marshal(x) }

func (x *ArchivedEvent) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *ArchivedEvent) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.Offset)
	b = appendInt32(b, 2, x.NodeId)
	b = appendString(b, 3, x.ContractId)
	if x.TemplateId != nil {
		b = appendMessage(b, 4, x.TemplateId)
	}
	b = appendRepeatedString(b, 5, x.WitnessParties)
	b = appendString(b, 6, x.PackageName)
	for _, id := range x.ImplementedInterfaces {
		b = appendMessage(b, 7, id)
	}
	b = appendString(b, 8, x.EventId)
	return b
}

func (x *ArchivedEvent) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 2:
		x.NodeId, n, err = consumeInt32(num, typ, b)
	case 3:
		x.ContractId, n, err = consumeString(num, typ, b)
	case 4:
		x.TemplateId = &Identifier{}
		n, err = consumeMessage(num, typ, b, x.TemplateId)
	case 5:
		var s string
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.WitnessParties = append(x.WitnessParties, s)
		}
	case 6:
		x.PackageName, n, err = consumeString(num, typ, b)
	case 7:
		id := &Identifier{}
		if n, err = consumeMessage(num, typ, b, id); err == nil {
			x.ImplementedInterfaces = append(x.ImplementedInterfaces, id)
		}
	case 8:
		x.EventId, n, err = consumeString(num, typ, b)
	}
	return
}

// ExercisedEvent records the exercise of a choice.
// ChoiceArgument and ExerciseResult are raw Daml values.
type ExercisedEvent struct {
	Offset                int64
	NodeId                int32
	ContractId            string
	TemplateId            *Identifier
	InterfaceId           *Identifier
	Choice                string
	ChoiceArgument        []byte
	ActingParties         []string
	Consuming             bool
	WitnessParties        []string
	LastDescendantNodeId  int32
	ExerciseResult        []byte
	PackageName           string
	ImplementedInterfaces []*Identifier
}

func (x *ExercisedEvent) Marshal() ([]byte, error) { return marshal(x) }

func (x *ExercisedEvent) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *ExercisedEvent) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.Offset)
	b = appendInt32(b, 2, x.NodeId)
	b = appendString(b, 3, x.ContractId)
	if x.TemplateId != nil {
		b = appendMessage(b, 4, x.TemplateId)
	}
	if x.InterfaceId != nil {
		b = appendMessage(b, 5, x.InterfaceId)
	}
	b = appendString(b, 6, x.Choice)
	b = appendRaw(b, 7, x.ChoiceArgument)
	b = appendRepeatedString(b, 8, x.ActingParties)
	b = appendBool(b, 9, x.Consuming)
	b = appendRepeatedString(b, 10, x.WitnessParties)
	b = appendInt32(b, 11, x.LastDescendantNodeId)
	b = appendRaw(b, 12, x.ExerciseResult)
	b = appendString(b, 13, x.PackageName)
	for _, id := range x.ImplementedInterfaces {
		b = appendMessage(b, 14, id)
	}
	return b
}

func (x *ExercisedEvent) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	var s string
	switch num {
	case 1:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 2:
		x.NodeId, n, err = consumeInt32(num, typ, b)
	case 3:
		x.ContractId, n, err = consumeString(num, typ, b)
	case 4:
		x.TemplateId = &Identifier{}
		n, err = consumeMessage(num, typ, b, x.TemplateId)
	case 5:
		x.InterfaceId = &Identifier{}
		n, err = consumeMessage(num, typ, b, x.InterfaceId)
	case 6:
		x.Choice, n, err = consumeString(num, typ, b)
	case 7:
		x.ChoiceArgument, n, err = consumeBytes(num, typ, b)
	case 8:
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.ActingParties = append(x.ActingParties, s)
		}
	case 9:
		x.Consuming, n, err = consumeBool(num, typ, b)
	case 10:
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.WitnessParties = append(x.WitnessParties, s)
		}
	case 11:
		x.LastDescendantNodeId, n, err = consumeInt32(num, typ, b)
	case 12:
		x.ExerciseResult, n, err = consumeBytes(num, typ, b)
	case 13:
		x.PackageName, n, err = consumeString(num, typ, b)
	case 14:
		id := &Identifier{}
		if n, err = consumeMessage(num, typ, b, id); err == nil {
			x.ImplementedInterfaces = append(x.ImplementedInterfaces, id)
		}
	}
	return
}

// Event holds exactly one of its variants
type Event struct {
	Created   *CreatedEvent
	Archived  *ArchivedEvent
	Exercised *ExercisedEvent
}

func (x *Event) Marshal() ([]byte, error) { return marshal(x) }

func (x *Event) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *Event) appendFields(b []byte) []byte {
	switch {
	case x.Created != nil:
		b = appendMessage(b, 1, x.Created)
	case x.Archived != nil:
		b = appendMessage(b, 2, x.Archived)
	case x.Exercised != nil:
		b = appendMessage(b, 3, x.Exercised)
	}
	return b
}

func (x *Event) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		*x = Event{Created: &CreatedEvent{}}
		n, err = consumeMessage(num, typ, b, x.Created)
	case 2:
		*x = Event{Archived: &ArchivedEvent{}}
		n, err = consumeMessage(num, typ, b, x.Archived)
	case 3:
		*x = Event{Exercised: &ExercisedEvent{}}
		n, err = consumeMessage(num, typ, b, x.Exercised)
	}
	return
}

// TreeEvent holds exactly one of its variants
type TreeEvent struct {
	Created   *CreatedEvent
	Exercised *ExercisedEvent
}

func (x *TreeEvent) Marshal() ([]byte, error) { return marshal(x) }

func (x *TreeEvent) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *TreeEvent) appendFields(b []byte) []byte {
	switch {
	case x.Created != nil:
		b = appendMessage(b, 1, x.Created)
	case x.Exercised != nil:
		b = appendMessage(b, 2, x.Exercised)
	}
	return b
}

func (x *TreeEvent) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		*x = TreeEvent{Created: &CreatedEvent{}}
		n, err = consumeMessage(num, typ, b, x.Created)
	case 2:
		*x = TreeEvent{Exercised: &ExercisedEvent{}}
		n, err = consumeMessage(num, typ, b, x.Exercised)
	}
	return
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import (
	"slices"
	"strconv"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections"
	"google.golang.org/protobuf/encoding/protowire"
)

type WildcardFilter struct {
	IncludeCreatedEventBlob bool
}

func (x *WildcardFilter) Marshal() ([]byte, error) { return marshal(x) }

func (x *WildcardFilter) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *WildcardFilter) appendFields(b []byte) []byte {
	return appendBool(b, 1, x.IncludeCreatedEventBlob)
}

func (x *WildcardFilter) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.IncludeCreatedEventBlob, n, err = consumeBool(num, typ, b)
	}
	return
}

type InterfaceFilter struct {
	InterfaceId             *Identifier
	IncludeInterfaceView    bool
	IncludeCreatedEventBlob bool
}

func (x *InterfaceFilter) Marshal() ([]byte, error) { return marshal(x) }

func (x *InterfaceFilter) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *InterfaceFilter) appendFields(b []byte) []byte {
	if x.InterfaceId != nil {
		b = appendMessage(b, 1, x.InterfaceId)
	}
	b = appendBool(b, 2, x.IncludeInterfaceView)
	b = appendBool(b, 3, x.IncludeCreatedEventBlob)
	return b
}

func (x *InterfaceFilter) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.InterfaceId = &Identifier{}
		n, err = consumeMessage(num, typ, b, x.InterfaceId)
	case 2:
		x.IncludeInterfaceView, n, err = consumeBool(num, typ, b)
	case 3:
		x.IncludeCreatedEventBlob, n, err = consumeBool(num, typ, b)
	}
	return
}

type TemplateFilter struct {
	TemplateId              *Identifier
	IncludeCreatedEventBlob bool
}

func (x *TemplateFilter) Marshal() ([]byte, error) { return marshal(x) }

func (x *TemplateFilter) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *TemplateFilter) appendFields(b []byte) []byte {
	if x.TemplateId != nil {
		b = appendMessage(b, 1, x.TemplateId)
	}
	return appendBool(b, 2, x.IncludeCreatedEventBlob)
}

func (x *TemplateFilter) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.TemplateId = &Identifier{}
		n, err = consumeMessage(num, typ, b, x.TemplateId)
	case 2:
		x.IncludeCreatedEventBlob, n, err = consumeBool(num, typ, b)
	}
	return
}

// CumulativeFilter holds exactly one of its filters
type CumulativeFilter struct {
	WildcardFilter  *WildcardFilter
	InterfaceFilter *InterfaceFilter
	TemplateFilter  *TemplateFilter
}

func (x *CumulativeFilter) Marshal() ([]byte, error) { return marshal(x) }

func (x *CumulativeFilter) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *CumulativeFilter) appendFields(b []byte) []byte {
	switch {
	case x.WildcardFilter != nil:
		b = appendMessage(b, 1, x.WildcardFilter)
	case x.InterfaceFilter != nil:
		b = appendMessage(b, 2, x.InterfaceFilter)
	case x.TemplateFilter != nil:
		b = appendMessage(b, 3, x.TemplateFilter)
	}
	return b
}

func (x *CumulativeFilter) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		*x = CumulativeFilter{WildcardFilter: &WildcardFilter{}}
		n, err = consumeMessage(num, typ, b, x.WildcardFilter)
	case 2:
		*x = CumulativeFilter{InterfaceFilter: &InterfaceFilter{}}
		n, err = consumeMessage(num, typ, b, x.InterfaceFilter)
	case 3:
		*x = CumulativeFilter{TemplateFilter: &TemplateFilter{}}
		n, err = consumeMessage(num, typ, b, x.TemplateFilter)
	}
	return
}

type Filters struct {
	Cumulative []*CumulativeFilter
}

func (x *Filters) Marshal() ([]byte, error) { return marshal(x) }

func (x *Filters) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *Filters) appendFields(b []byte) []byte {
	for _, c := range x.Cumulative {
		b = appendMessage(b, 1, c)
	}
	return b
}

func (x *Filters) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		c := &CumulativeFilter{}
		if n, err = consumeMessage(num, typ, b, c); err == nil {
			x.Cumulative = append(x.Cumulative, c)
		}
	}
	return
}

// partyFilters is the map<string, Filters> shared by TransactionFilter and EventFormat.
// Entries are written in key order so that equal maps encode to equal bytes.
type partyFilters map[string]*Filters

func (m partyFilters) append(b []byte, num protowire.Number) []byte {
	keys := collections.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		b = appendMessage(b, num, &partyFilterEntry{key: k, value: m[k]})
	}
	return b
}

func consumePartyFilter(num protowire.Number, typ protowire.Type, b []byte, m *map[string]*Filters) (int, error) {
	e := &partyFilterEntry{}
	n, err := consumeMessage(num, typ, b, e)
	if err != nil {
		return 0, err
	}
	if *m == nil {
		*m = map[string]*Filters{}
	}
	if e.value == nil {
		e.value = &Filters{}
	}
	(*m)[e.key] = e.value
	return n, nil
}

type partyFilterEntry struct {
	key   string
	value *Filters
}

// appendFields always writes both key and value, as map entries do
func (e *partyFilterEntry) appendFields(b []byte) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, e.key)
	v := e.value
	if v == nil {
		v = &Filters{}
	}
	return appendMessage(b, 2, v)
}

func (e *partyFilterEntry) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		e.key, n, err = consumeString(num, typ, b)
	case 2:
		e.value = &Filters{}
		n, err = consumeMessage(num, typ, b, e.value)
	}
	return
}

// TransactionFilter is the filter of the legacy update request shape
type TransactionFilter struct {
	FiltersByParty     map[string]*Filters
	FiltersForAnyParty *Filters
}

func (x *TransactionFilter) Marshal() ([]byte, error) { return marshal(x) }

func (x *TransactionFilter) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *TransactionFilter) appendFields(b []byte) []byte {
	b = partyFilters(x.FiltersByParty).append(b, 1)
	if x.FiltersForAnyParty != nil {
		b = appendMessage(b, 2, x.FiltersForAnyParty)
	}
	return b
}

func (x *TransactionFilter) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		n, err = consumePartyFilter(num, typ, b, &x.FiltersByParty)
	case 2:
		x.FiltersForAnyParty = &Filters{}
		n, err = consumeMessage(num, typ, b, x.FiltersForAnyParty)
	}
	return
}

type EventFormat struct {
	FiltersByParty     map[string]*Filters
	FiltersForAnyParty *Filters
	Verbose            bool
}

func (x *EventFormat) Marshal() ([]byte, error) { return marshal(x) }

func (x *EventFormat) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *EventFormat) appendFields(b []byte) []byte {
	b = partyFilters(x.FiltersByParty).append(b, 1)
	if x.FiltersForAnyParty != nil {
		b = appendMessage(b, 2, x.FiltersForAnyParty)
	}
	return appendBool(b, 3, x.Verbose)
}

func (x *EventFormat) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		n, err = consumePartyFilter(num, typ, b, &x.FiltersByParty)
	case 2:
		x.FiltersForAnyParty = &Filters{}
		n, err = consumeMessage(num, typ, b, x.FiltersForAnyParty)
	case 3:
		x.Verbose, n, err = consumeBool(num, typ, b)
	}
	return
}

// TransactionShape is an open enum, values this client does not know are kept as they are
type TransactionShape int32

const (
	TransactionShape_TRANSACTION_SHAPE_UNSPECIFIED    TransactionShape = 0
	TransactionShape_TRANSACTION_SHAPE_ACS_DELTA      TransactionShape = 1
	TransactionShape_TRANSACTION_SHAPE_LEDGER_EFFECTS TransactionShape = 2
)

var TransactionShape_name = map[int32]string{
	0: "TRANSACTION_SHAPE_UNSPECIFIED",
	1: "TRANSACTION_SHAPE_ACS_DELTA",
	2: "TRANSACTION_SHAPE_LEDGER_EFFECTS",
}

func (s TransactionShape) String() string {
	if n, ok := TransactionShape_name[int32(s)]; ok {
		return n
	}
	return strconv.Itoa(int(s))
}

type TransactionFormat struct {
	EventFormat      *EventFormat
	TransactionShape TransactionShape
}

func (x *TransactionFormat) GetEventFormat() *EventFormat {
	if x == nil {
		return nil
	}
	return x.EventFormat
}

func (x *TransactionFormat) Marshal() ([]byte, error) { return marshal(x) }

func (x *TransactionFormat) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *TransactionFormat) appendFields(b []byte) []byte {
	if x.EventFormat != nil {
		b = appendMessage(b, 1, x.EventFormat)
	}
	return appendInt32(b, 2, int32(x.TransactionShape))
}

func (x *TransactionFormat) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.EventFormat = &EventFormat{}
		n, err = consumeMessage(num, typ, b, x.EventFormat)
	case 2:
		var v int32
		v, n, err = consumeInt32(num, typ, b)
		x.TransactionShape = TransactionShape(v)
	}
	return
}

type ParticipantAuthorizationTopologyFormat struct {
	Parties []string
}

func (x *ParticipantAuthorizationTopologyFormat) Marshal() ([]byte, error) { return marshal(x) }

func (x *ParticipantAuthorizationTopologyFormat) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *ParticipantAuthorizationTopologyFormat) appendFields(b []byte) []byte {
	return appendRepeatedString(b, 1, x.Parties)
}

func (x *ParticipantAuthorizationTopologyFormat) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		var p string
		if p, n, err = consumeString(num, typ, b); err == nil {
			x.Parties = append(x.Parties, p)
		}
	}
	return
}

type TopologyFormat struct {
	IncludeParticipantAuthorizationEvents *ParticipantAuthorizationTopologyFormat
}

func (x *TopologyFormat) Marshal() ([]byte, error) { return marshal(x) }

func (x *TopologyFormat) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *TopologyFormat) appendFields(b []byte) []byte {
	if x.IncludeParticipantAuthorizationEvents != nil {
		b = appendMessage(b, 1, x.IncludeParticipantAuthorizationEvents)
	}
	return b
}

func (x *TopologyFormat) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.IncludeParticipantAuthorizationEvents = &ParticipantAuthorizationTopologyFormat{}
		n, err = consumeMessage(num, typ, b, x.IncludeParticipantAuthorizationEvents)
	}
	return
}

type UpdateFormat struct {
	IncludeTransactions   *TransactionFormat
	IncludeReassignments  *EventFormat
	IncludeTopologyEvents *TopologyFormat
}

func (x *UpdateFormat) GetIncludeTransactions() *TransactionFormat {
	if x == nil {
		return nil
	}
	return x.IncludeTransactions
}

func (x *UpdateFormat) Marshal() ([]byte, error) { return marshal(x) }

func (x *UpdateFormat) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *UpdateFormat) appendFields(b []byte) []byte {
	if x.IncludeTransactions != nil {
		b = appendMessage(b, 1, x.IncludeTransactions)
	}
	if x.IncludeReassignments != nil {
		b = appendMessage(b, 2, x.IncludeReassignments)
	}
	if x.IncludeTopologyEvents != nil {
		b = appendMessage(b, 3, x.IncludeTopologyEvents)
	}
	return b
}

func (x *UpdateFormat) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.IncludeTransactions = &TransactionFormat{}
		n, err = consumeMessage(num, typ, b, x.IncludeTransactions)
	case 2:
		x.IncludeReassignments = &EventFormat{}
		n, err = consumeMessage(num, typ, b, x.IncludeReassignments)
	case 3:
		x.IncludeTopologyEvents = &TopologyFormat{}
		n, err = consumeMessage(num, typ, b, x.IncludeTopologyEvents)
	}
	return
}

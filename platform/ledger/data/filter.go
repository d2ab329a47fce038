/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package data

import (
	"slices"

	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
)

// WildcardFilter selects the contracts of every template
type WildcardFilter struct {
	IncludeCreatedEventBlob bool
}

var (
	// HideCreatedEventBlob is the wildcard filter that keeps created events lean
	HideCreatedEventBlob = WildcardFilter{IncludeCreatedEventBlob: false}
	// IncludeCreatedEventBlob is the wildcard filter that asks for the created event blob
	IncludeCreatedEventBlob = WildcardFilter{IncludeCreatedEventBlob: true}
)

type TemplateFilter struct {
	TemplateID              Identifier
	IncludeCreatedEventBlob bool
}

type InterfaceFilter struct {
	InterfaceID             Identifier
	IncludeInterfaceView    bool
	IncludeCreatedEventBlob bool
}

// CumulativeFilter is the union of its filters.
// On the wire interface filters come first, then template filters, then the wildcard.
type CumulativeFilter struct {
	Interfaces []InterfaceFilter
	Templates  []TemplateFilter
	Wildcard   *WildcardFilter
}

func (f CumulativeFilter) ToProto() *ledgerpb.Filters {
	out := &ledgerpb.Filters{}
	for _, i := range f.Interfaces {
		out.Cumulative = append(out.Cumulative, &ledgerpb.CumulativeFilter{InterfaceFilter: &ledgerpb.InterfaceFilter{
			InterfaceId:             i.InterfaceID.ToProto(),
			IncludeInterfaceView:    i.IncludeInterfaceView,
			IncludeCreatedEventBlob: i.IncludeCreatedEventBlob,
		}})
	}
	for _, t := range f.Templates {
		out.Cumulative = append(out.Cumulative, &ledgerpb.CumulativeFilter{TemplateFilter: &ledgerpb.TemplateFilter{
			TemplateId:              t.TemplateID.ToProto(),
			IncludeCreatedEventBlob: t.IncludeCreatedEventBlob,
		}})
	}
	if f.Wildcard != nil {
		out.Cumulative = append(out.Cumulative, &ledgerpb.CumulativeFilter{WildcardFilter: &ledgerpb.WildcardFilter{
			IncludeCreatedEventBlob: f.Wildcard.IncludeCreatedEventBlob,
		}})
	}
	return out
}

// CumulativeFilterFromProto groups the filters by kind. Filters holding no variant are dropped.
// When the wildcard is repeated the last one wins.
func CumulativeFilterFromProto(f *ledgerpb.Filters) CumulativeFilter {
	var out CumulativeFilter
	if f == nil {
		return out
	}
	for _, c := range f.Cumulative {
		switch {
		case c.InterfaceFilter != nil:
			out.Interfaces = append(out.Interfaces, InterfaceFilter{
				InterfaceID:             IdentifierFromProto(c.InterfaceFilter.InterfaceId),
				IncludeInterfaceView:    c.InterfaceFilter.IncludeInterfaceView,
				IncludeCreatedEventBlob: c.InterfaceFilter.IncludeCreatedEventBlob,
			})
		case c.TemplateFilter != nil:
			out.Templates = append(out.Templates, TemplateFilter{
				TemplateID:              IdentifierFromProto(c.TemplateFilter.TemplateId),
				IncludeCreatedEventBlob: c.TemplateFilter.IncludeCreatedEventBlob,
			})
		case c.WildcardFilter != nil:
			out.Wildcard = &WildcardFilter{IncludeCreatedEventBlob: c.WildcardFilter.IncludeCreatedEventBlob}
		}
	}
	return out
}

func partyFiltersToProto(m map[string]CumulativeFilter) map[string]*ledgerpb.Filters {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]*ledgerpb.Filters, len(m))
	for party, f := range m {
		out[party] = f.ToProto()
	}
	return out
}

func partyFiltersFromProto(m map[string]*ledgerpb.Filters) map[string]CumulativeFilter {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]CumulativeFilter, len(m))
	for party, f := range m {
		out[party] = CumulativeFilterFromProto(f)
	}
	return out
}

func anyPartyToProto(f *CumulativeFilter) *ledgerpb.Filters {
	if f == nil {
		return nil
	}
	return f.ToProto()
}

func anyPartyFromProto(f *ledgerpb.Filters) *CumulativeFilter {
	if f == nil {
		return nil
	}
	c := CumulativeFilterFromProto(f)
	return &c
}

// TransactionFilter is the filter of the legacy request shape.
//
// Deprecated: use TransactionFormat.
type TransactionFilter struct {
	FiltersByParty     map[string]CumulativeFilter
	FiltersForAnyParty *CumulativeFilter
}

func (f TransactionFilter) ToProto() *ledgerpb.TransactionFilter {
	return &ledgerpb.TransactionFilter{
		FiltersByParty:     partyFiltersToProto(f.FiltersByParty),
		FiltersForAnyParty: anyPartyToProto(f.FiltersForAnyParty),
	}
}

func TransactionFilterFromProto(f *ledgerpb.TransactionFilter) TransactionFilter {
	if f == nil {
		return TransactionFilter{}
	}
	return TransactionFilter{
		FiltersByParty:     partyFiltersFromProto(f.FiltersByParty),
		FiltersForAnyParty: anyPartyFromProto(f.FiltersForAnyParty),
	}
}

type EventFormat struct {
	FiltersByParty     map[string]CumulativeFilter
	FiltersForAnyParty *CumulativeFilter
	Verbose            bool
}

func (f EventFormat) ToProto() *ledgerpb.EventFormat {
	return &ledgerpb.EventFormat{
		FiltersByParty:     partyFiltersToProto(f.FiltersByParty),
		FiltersForAnyParty: anyPartyToProto(f.FiltersForAnyParty),
		Verbose:            f.Verbose,
	}
}

func EventFormatFromProto(f *ledgerpb.EventFormat) EventFormat {
	if f == nil {
		return EventFormat{}
	}
	return EventFormat{
		FiltersByParty:     partyFiltersFromProto(f.FiltersByParty),
		FiltersForAnyParty: anyPartyFromProto(f.FiltersForAnyParty),
		Verbose:            f.Verbose,
	}
}

// TransactionFilter returns the legacy filter selecting the same events, and the verbose flag
func (f EventFormat) TransactionFilter() (TransactionFilter, bool) {
	return TransactionFilter{FiltersByParty: f.FiltersByParty, FiltersForAnyParty: f.FiltersForAnyParty}, f.Verbose
}

type TransactionFormat struct {
	EventFormat      EventFormat
	TransactionShape TransactionShape
}

func (f TransactionFormat) ToProto() *ledgerpb.TransactionFormat {
	return &ledgerpb.TransactionFormat{
		EventFormat:      f.EventFormat.ToProto(),
		TransactionShape: f.TransactionShape.ToProto(),
	}
}

func TransactionFormatFromProto(f *ledgerpb.TransactionFormat) TransactionFormat {
	if f == nil {
		return TransactionFormat{}
	}
	return TransactionFormat{
		EventFormat:      EventFormatFromProto(f.EventFormat),
		TransactionShape: TransactionShapeFromProto(f.TransactionShape),
	}
}

// UpdateFormat wraps the transaction format into the format of an update request
func (f TransactionFormat) UpdateFormat() UpdateFormat {
	return UpdateFormat{IncludeTransactions: &f}
}

// DefaultTransactionFormat is the format used when only the requesting parties are known:
// every party reads all templates without the created event blob, verbose, as an ACS delta.
func DefaultTransactionFormat(parties []string) TransactionFormat {
	byParty := make(map[string]CumulativeFilter, len(parties))
	for _, p := range parties {
		wildcard := HideCreatedEventBlob
		byParty[p] = CumulativeFilter{Wildcard: &wildcard}
	}
	return TransactionFormat{
		EventFormat: EventFormat{
			FiltersByParty: byParty,
			Verbose:        true,
		},
		TransactionShape: TransactionShapeAcsDelta,
	}
}

type ParticipantAuthorizationTopologyFormat struct {
	Parties []string
}

type TopologyFormat struct {
	IncludeParticipantAuthorizationEvents *ParticipantAuthorizationTopologyFormat
}

// UpdateFormat selects the kinds of updates a request returns. A nil member excludes that kind.
type UpdateFormat struct {
	IncludeTransactions   *TransactionFormat
	IncludeReassignments  *EventFormat
	IncludeTopologyEvents *TopologyFormat
}

func (f UpdateFormat) ToProto() *ledgerpb.UpdateFormat {
	out := &ledgerpb.UpdateFormat{}
	if f.IncludeTransactions != nil {
		out.IncludeTransactions = f.IncludeTransactions.ToProto()
	}
	if f.IncludeReassignments != nil {
		out.IncludeReassignments = f.IncludeReassignments.ToProto()
	}
	if t := f.IncludeTopologyEvents; t != nil {
		out.IncludeTopologyEvents = &ledgerpb.TopologyFormat{}
		if pa := t.IncludeParticipantAuthorizationEvents; pa != nil {
			out.IncludeTopologyEvents.IncludeParticipantAuthorizationEvents = &ledgerpb.ParticipantAuthorizationTopologyFormat{
				Parties: slices.Clone(pa.Parties),
			}
		}
	}
	return out
}

func UpdateFormatFromProto(f *ledgerpb.UpdateFormat) UpdateFormat {
	var out UpdateFormat
	if f == nil {
		return out
	}
	if f.IncludeTransactions != nil {
		tf := TransactionFormatFromProto(f.IncludeTransactions)
		out.IncludeTransactions = &tf
	}
	if f.IncludeReassignments != nil {
		ef := EventFormatFromProto(f.IncludeReassignments)
		out.IncludeReassignments = &ef
	}
	if t := f.IncludeTopologyEvents; t != nil {
		out.IncludeTopologyEvents = &TopologyFormat{}
		if pa := t.IncludeParticipantAuthorizationEvents; pa != nil {
			out.IncludeTopologyEvents.IncludeParticipantAuthorizationEvents = &ParticipantAuthorizationTopologyFormat{
				Parties: slices.Clone(pa.Parties),
			}
		}
	}
	return out
}

// ContractFilter selects the contracts of some templates and interfaces
type ContractFilter struct {
	Templates               []Identifier
	Interfaces              []Identifier
	IncludeCreatedEventBlob bool
	Verbose                 bool
}

func (f ContractFilter) WithVerbose(verbose bool) ContractFilter {
	f.Verbose = verbose
	return f
}

func (f ContractFilter) WithIncludeCreatedEventBlob(include bool) ContractFilter {
	f.IncludeCreatedEventBlob = include
	return f
}

func (f ContractFilter) cumulative() CumulativeFilter {
	var c CumulativeFilter
	for _, id := range f.Interfaces {
		c.Interfaces = append(c.Interfaces, InterfaceFilter{
			InterfaceID:             id,
			IncludeInterfaceView:    true,
			IncludeCreatedEventBlob: f.IncludeCreatedEventBlob,
		})
	}
	for _, id := range f.Templates {
		c.Templates = append(c.Templates, TemplateFilter{
			TemplateID:              id,
			IncludeCreatedEventBlob: f.IncludeCreatedEventBlob,
		})
	}
	return c
}

// TransactionFormat reads the selected contracts as each of parties.
// Without parties the filter applies to any party.
func (f ContractFilter) TransactionFormat(parties []string) TransactionFormat {
	ef := EventFormat{Verbose: f.Verbose}
	if len(parties) == 0 {
		c := f.cumulative()
		ef.FiltersForAnyParty = &c
	} else {
		ef.FiltersByParty = make(map[string]CumulativeFilter, len(parties))
		for _, p := range parties {
			ef.FiltersByParty[p] = f.cumulative()
		}
	}
	return TransactionFormat{EventFormat: ef, TransactionShape: TransactionShapeAcsDelta}
}

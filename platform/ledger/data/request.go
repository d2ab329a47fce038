/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package data

import (
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
)

// GetUpdatesRequest describes an update stream: the offsets in (BeginExclusive, EndInclusive],
// or from BeginExclusive on when EndInclusive is nil, selected either by the legacy Filter and
// Verbose pair or by UpdateFormat.
type GetUpdatesRequest struct {
	BeginExclusive int64
	EndInclusive   *int64
	Filter         *TransactionFilter
	Verbose        bool
	UpdateFormat   *UpdateFormat
}

func (r *GetUpdatesRequest) Validate() error {
	if r.EndInclusive != nil && *r.EndInclusive < r.BeginExclusive {
		return errors.Wrapf(ErrInvalidRange, "begin [%d], end [%d]", r.BeginExclusive, *r.EndInclusive)
	}
	if r.Filter != nil && r.UpdateFormat != nil {
		return ErrConflictingFilter
	}
	if r.Filter == nil && r.UpdateFormat == nil {
		return ErrMissingFilter
	}
	return nil
}

// ToProto encodes the request with an update format.
// A legacy filter becomes the format of the transactions it selects, as an ACS delta.
func (r *GetUpdatesRequest) ToProto() *ledgerpb.GetUpdatesRequest {
	out := &ledgerpb.GetUpdatesRequest{
		BeginExclusive: r.BeginExclusive,
		EndInclusive:   cloneOffset(r.EndInclusive),
	}
	switch {
	case r.UpdateFormat != nil:
		out.UpdateFormat = r.UpdateFormat.ToProto()
	case r.Filter != nil:
		out.UpdateFormat = TransactionFormat{
			EventFormat: EventFormat{
				FiltersByParty:     r.Filter.FiltersByParty,
				FiltersForAnyParty: r.Filter.FiltersForAnyParty,
				Verbose:            r.Verbose,
			},
			TransactionShape: TransactionShapeAcsDelta,
		}.UpdateFormat().ToProto()
	}
	return out
}

// ToProtoLegacy encodes the request with a transaction filter and the verbose flag, as the tree
// stream expects. An update format contributes the event format of its transactions.
func (r *GetUpdatesRequest) ToProtoLegacy() *ledgerpb.GetUpdatesRequest {
	out := &ledgerpb.GetUpdatesRequest{
		BeginExclusive: r.BeginExclusive,
		EndInclusive:   cloneOffset(r.EndInclusive),
	}
	switch {
	case r.Filter != nil:
		out.Filter = r.Filter.ToProto()
		out.Verbose = r.Verbose
	case r.UpdateFormat != nil && r.UpdateFormat.IncludeTransactions != nil:
		filter, verbose := r.UpdateFormat.IncludeTransactions.EventFormat.TransactionFilter()
		out.Filter = filter.ToProto()
		out.Verbose = verbose
	}
	return out
}

// GetUpdatesRequestFromProto decodes both request shapes
func GetUpdatesRequestFromProto(r *ledgerpb.GetUpdatesRequest) *GetUpdatesRequest {
	out := &GetUpdatesRequest{
		BeginExclusive: r.BeginExclusive,
		EndInclusive:   cloneOffset(r.EndInclusive),
		Verbose:        r.Verbose,
	}
	if r.Filter != nil {
		f := TransactionFilterFromProto(r.Filter)
		out.Filter = &f
	}
	if r.UpdateFormat != nil {
		f := UpdateFormatFromProto(r.UpdateFormat)
		out.UpdateFormat = &f
	}
	return out
}

func cloneOffset(o *int64) *int64 {
	if o == nil {
		return nil
	}
	v := *o
	return &v
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"

// Selector chooses the transactions a request returns
type Selector func(r *data.GetUpdatesRequest)

// ForParties reads as each of parties with the default transaction format
func ForParties(parties ...string) Selector {
	return WithFormat(data.DefaultTransactionFormat(parties))
}

// ForContracts reads the contracts selected by filter as each of parties, or as any party when
// no party is given
func ForContracts(filter data.ContractFilter, verbose bool, parties ...string) Selector {
	return WithFormat(filter.WithVerbose(verbose).TransactionFormat(parties))
}

// WithFormat passes format through unchanged
func WithFormat(format data.TransactionFormat) Selector {
	return func(r *data.GetUpdatesRequest) {
		f := format.UpdateFormat()
		r.UpdateFormat = &f
	}
}

func WithUpdateFormat(format data.UpdateFormat) Selector {
	return func(r *data.GetUpdatesRequest) {
		r.UpdateFormat = &format
	}
}

// WithFilter selects with the legacy filter.
//
// Deprecated: use WithFormat.
func WithFilter(filter data.TransactionFilter, verbose bool) Selector {
	return func(r *data.GetUpdatesRequest) {
		r.Filter = &filter
		r.Verbose = verbose
	}
}

// NewRequest builds the request for the offsets in (begin, end], or from begin on when end is nil.
// Selecting with both a filter and a format is an error, as is selecting nothing.
func NewRequest(begin int64, end *int64, selectors ...Selector) (*data.GetUpdatesRequest, error) {
	r := &data.GetUpdatesRequest{BeginExclusive: begin}
	if end != nil {
		e := *end
		r.EndInclusive = &e
	}
	for _, s := range selectors {
		s(r)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

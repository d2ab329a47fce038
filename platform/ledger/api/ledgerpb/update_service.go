/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import "google.golang.org/protobuf/encoding/protowire"

// GetUpdatesRequest opens an update stream.
// Filter and Verbose are the legacy shape, UpdateFormat the current one; servers reject both at once.
type GetUpdatesRequest struct {
	BeginExclusive int64
	EndInclusive   *int64
	Filter         *TransactionFilter
	Verbose        bool
	UpdateFormat   *UpdateFormat
}

func (x *GetUpdatesRequest) GetUpdateFormat() *UpdateFormat {
	if x == nil {
		return nil
	}
	return x.UpdateFormat
}

func (x *GetUpdatesRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetUpdatesRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetUpdatesRequest) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.BeginExclusive)
	b = appendOptionalInt64(b, 2, x.EndInclusive)
	if x.Filter != nil {
		b = appendMessage(b, 3, x.Filter)
	}
	b = appendBool(b, 4, x.Verbose)
	if x.UpdateFormat != nil {
		b = appendMessage(b, 5, x.UpdateFormat)
	}
	return b
}

func (x *GetUpdatesRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.BeginExclusive, n, err = consumeInt64(num, typ, b)
	case 2:
		var v int64
		if v, n, err = consumeInt64(num, typ, b); err == nil {
			x.EndInclusive = &v
		}
	case 3:
		x.Filter = &TransactionFilter{}
		n, err = consumeMessage(num, typ, b, x.Filter)
	case 4:
		x.Verbose, n, err = consumeBool(num, typ, b)
	case 5:
		x.UpdateFormat = &UpdateFormat{}
		n, err = consumeMessage(num, typ, b, x.UpdateFormat)
	}
	return
}

// GetUpdatesResponse carries one update. Only Transaction and OffsetCheckpoint are decoded.
type GetUpdatesResponse struct {
	Transaction         *Transaction
	Reassignment        []byte
	OffsetCheckpoint    *OffsetCheckpoint
	TopologyTransaction []byte
}

func (x *GetUpdatesResponse) GetTransaction() *Transaction {
	if x == nil {
		return nil
	}
	return x.Transaction
}

func (x *GetUpdatesResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetUpdatesResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetUpdatesResponse) appendFields(b []byte) []byte {
	switch {
	case x.Transaction != nil:
		b = appendMessage(b, 1, x.Transaction)
	case x.Reassignment != nil:
		b = appendRaw(b, 2, x.Reassignment)
	case x.OffsetCheckpoint != nil:
		b = appendMessage(b, 3, x.OffsetCheckpoint)
	case x.TopologyTransaction != nil:
		b = appendRaw(b, 4, x.TopologyTransaction)
	}
	return b
}

func (x *GetUpdatesResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		*x = GetUpdatesResponse{Transaction: &Transaction{}}
		n, err = consumeMessage(num, typ, b, x.Transaction)
	case 2:
		*x = GetUpdatesResponse{}
		x.Reassignment, n, err = consumeBytes(num, typ, b)
	case 3:
		*x = GetUpdatesResponse{OffsetCheckpoint: &OffsetCheckpoint{}}
		n, err = consumeMessage(num, typ, b, x.OffsetCheckpoint)
	case 4:
		*x = GetUpdatesResponse{}
		x.TopologyTransaction, n, err = consumeBytes(num, typ, b)
	}
	return
}

type GetUpdateTreesResponse struct {
	TransactionTree  *TransactionTree
	Reassignment     []byte
	OffsetCheckpoint *OffsetCheckpoint
}

func (x *GetUpdateTreesResponse) GetTransactionTree() *TransactionTree {
	if x == nil {
		return nil
	}
	return x.TransactionTree
}

func (x *GetUpdateTreesResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetUpdateTreesResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetUpdateTreesResponse) appendFields(b []byte) []byte {
	switch {
	case x.TransactionTree != nil:
		b = appendMessage(b, 1, x.TransactionTree)
	case x.Reassignment != nil:
		b = appendRaw(b, 2, x.Reassignment)
	case x.OffsetCheckpoint != nil:
		b = appendMessage(b, 3, x.OffsetCheckpoint)
	}
	return b
}

func (x *GetUpdateTreesResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		*x = GetUpdateTreesResponse{TransactionTree: &TransactionTree{}}
		n, err = consumeMessage(num, typ, b, x.TransactionTree)
	case 2:
		*x = GetUpdateTreesResponse{}
		x.Reassignment, n, err = consumeBytes(num, typ, b)
	case 3:
		*x = GetUpdateTreesResponse{OffsetCheckpoint: &OffsetCheckpoint{}}
		n, err = consumeMessage(num, typ, b, x.OffsetCheckpoint)
	}
	return
}

// GetTransactionByOffsetRequest is the legacy lookup request, used for trees
type GetTransactionByOffsetRequest struct {
	Offset            int64
	RequestingParties []string
}

func (x *GetTransactionByOffsetRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetTransactionByOffsetRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetTransactionByOffsetRequest) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.Offset)
	return appendRepeatedString(b, 2, x.RequestingParties)
}

func (x *GetTransactionByOffsetRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 2:
		var s string
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.RequestingParties = append(x.RequestingParties, s)
		}
	}
	return
}

type GetTransactionByIdRequest struct {
	UpdateId          string
	RequestingParties []string
}

func (x *GetTransactionByIdRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetTransactionByIdRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetTransactionByIdRequest) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.UpdateId)
	return appendRepeatedString(b, 2, x.RequestingParties)
}

func (x *GetTransactionByIdRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.UpdateId, n, err = consumeString(num, typ, b)
	case 2:
		var s string
		if s, n, err = consumeString(num, typ, b); err == nil {
			x.RequestingParties = append(x.RequestingParties, s)
		}
	}
	return
}

type GetTransactionTreeResponse struct {
	Transaction *TransactionTree
}

func (x *GetTransactionTreeResponse) GetTransaction() *TransactionTree {
	if x == nil {
		return nil
	}
	return x.Transaction
}

func (x *GetTransactionTreeResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetTransactionTreeResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetTransactionTreeResponse) appendFields(b []byte) []byte {
	if x.Transaction != nil {
		b = appendMessage(b, 1, x.Transaction)
	}
	return b
}

func (x *GetTransactionTreeResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.Transaction = &TransactionTree{}
		n, err = consumeMessage(num, typ, b, x.Transaction)
	}
	return
}

type GetUpdateByOffsetRequest struct {
	Offset       int64
	UpdateFormat *UpdateFormat
}

func (x *GetUpdateByOffsetRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetUpdateByOffsetRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetUpdateByOffsetRequest) appendFields(b []byte) []byte {
	b = appendInt64(b, 1, x.Offset)
	if x.UpdateFormat != nil {
		b = appendMessage(b, 2, x.UpdateFormat)
	}
	return b
}

func (x *GetUpdateByOffsetRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.Offset, n, err = consumeInt64(num, typ, b)
	case 2:
		x.UpdateFormat = &UpdateFormat{}
		n, err = consumeMessage(num, typ, b, x.UpdateFormat)
	}
	return
}

type GetUpdateByIdRequest struct {
	UpdateId     string
	UpdateFormat *UpdateFormat
}

func (x *GetUpdateByIdRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetUpdateByIdRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetUpdateByIdRequest) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.UpdateId)
	if x.UpdateFormat != nil {
		b = appendMessage(b, 2, x.UpdateFormat)
	}
	return b
}

func (x *GetUpdateByIdRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.UpdateId, n, err = consumeString(num, typ, b)
	case 2:
		x.UpdateFormat = &UpdateFormat{}
		n, err = consumeMessage(num, typ, b, x.UpdateFormat)
	}
	return
}

// GetUpdateResponse carries the update found by a lookup
type GetUpdateResponse struct {
	Transaction         *Transaction
	Reassignment        []byte
	TopologyTransaction []byte
}

func (x *GetUpdateResponse) GetTransaction() *Transaction {
	if x == nil {
		return nil
	}
	return x.Transaction
}

func (x *GetUpdateResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetUpdateResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetUpdateResponse) appendFields(b []byte) []byte {
	switch {
	case x.Transaction != nil:
		b = appendMessage(b, 1, x.Transaction)
	case x.Reassignment != nil:
		b = appendRaw(b, 2, x.Reassignment)
	case x.TopologyTransaction != nil:
		b = appendRaw(b, 3, x.TopologyTransaction)
	}
	return b
}

func (x *GetUpdateResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		*x = GetUpdateResponse{Transaction: &Transaction{}}
		n, err = consumeMessage(num, typ, b, x.Transaction)
	case 2:
		*x = GetUpdateResponse{}
		x.Reassignment, n, err = consumeBytes(num, typ, b)
	case 3:
		*x = GetUpdateResponse{}
		x.TopologyTransaction, n, err = consumeBytes(num, typ, b)
	}
	return
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import (
	"context"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections/iterators"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
)

var logger = logging.MustGetLogger()

const (
	methodGetUpdates                 = "GetUpdates"
	methodGetUpdateTrees             = "GetUpdateTrees"
	methodGetUpdateByOffset          = "GetUpdateByOffset"
	methodGetUpdateByID              = "GetUpdateById"
	methodGetTransactionTreeByOffset = "GetTransactionTreeByOffset"
	methodGetTransactionTreeByID     = "GetTransactionTreeById"
)

// Client reads transactions off the update service.
// It holds no state besides its configuration and can be shared.
type Client struct {
	service ledgerpb.UpdateServiceClient
	token   string
	tracer  trace.Tracer
	metrics *Metrics
}

func NewClient(cc grpc.ClientConnInterface, opts ...Option) *Client {
	c := &Client{
		service: ledgerpb.NewUpdateServiceClient(cc),
		tracer:  noop.NewTracerProvider().Tracer("ledger_updates"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Updates streams the transactions selected by a prebuilt request
func (c *Client) Updates(ctx context.Context, req *data.GetUpdatesRequest, opts ...CallOption) (*Stream[data.Transaction], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.transactions(ctx, req, opts), nil
}

// GetTransactions streams the transactions in (begin, end] shaped by format.
// A nil end streams from begin on, following the ledger end.
func (c *Client) GetTransactions(ctx context.Context, begin int64, end *int64, format data.TransactionFormat, opts ...CallOption) (*Stream[data.Transaction], error) {
	req, err := NewRequest(begin, end, WithFormat(format))
	if err != nil {
		return nil, err
	}
	return c.transactions(ctx, req, opts), nil
}

// GetTransactionsForParties streams the transactions visible to parties, with DefaultTransactionFormat
func (c *Client) GetTransactionsForParties(ctx context.Context, begin int64, end *int64, parties []string, opts ...CallOption) (*Stream[data.Transaction], error) {
	req, err := NewRequest(begin, end, ForParties(parties...))
	if err != nil {
		return nil, err
	}
	return c.transactions(ctx, req, opts), nil
}

// GetTransactionsForContracts streams the transactions touching the contracts selected by filter
func (c *Client) GetTransactionsForContracts(ctx context.Context, filter data.ContractFilter, begin int64, end *int64, parties []string, verbose bool, opts ...CallOption) (*Stream[data.Transaction], error) {
	req, err := NewRequest(begin, end, ForContracts(filter, verbose, parties...))
	if err != nil {
		return nil, err
	}
	return c.transactions(ctx, req, opts), nil
}

// GetTransactionsWithFilter streams the transactions selected by a legacy filter.
//
// Deprecated: use GetTransactions.
func (c *Client) GetTransactionsWithFilter(ctx context.Context, begin int64, end *int64, filter data.TransactionFilter, verbose bool, opts ...CallOption) (*Stream[data.Transaction], error) {
	req, err := NewRequest(begin, end, WithFilter(filter, verbose))
	if err != nil {
		return nil, err
	}
	return c.transactions(ctx, req, opts), nil
}

// GetTransactionTrees streams transaction trees.
//
// Deprecated: use GetTransactions with data.TransactionShapeLedgerEffects.
func (c *Client) GetTransactionTrees(ctx context.Context, begin int64, end *int64, filter data.TransactionFilter, verbose bool, opts ...CallOption) (*Stream[data.TransactionTree], error) {
	req, err := NewRequest(begin, end, WithFilter(filter, verbose))
	if err != nil {
		return nil, err
	}
	wire := req.ToProtoLegacy()
	return newStream(ctx, c, methodGetUpdateTrees, c.callOptions(opts), func(ctx context.Context, callOpts []grpc.CallOption) (iterators.Iterator[*data.TransactionTree], error) {
		cli, err := c.service.GetUpdateTrees(ctx, wire, callOpts...)
		if err != nil {
			return nil, err
		}
		return iterators.FlattenOptional(iterators.Stream[*ledgerpb.GetUpdateTreesResponse](cli, nil), extractTree), nil
	}), nil
}

func (c *Client) transactions(ctx context.Context, req *data.GetUpdatesRequest, opts []CallOption) *Stream[data.Transaction] {
	wire := req.ToProto()
	return newStream(ctx, c, methodGetUpdates, c.callOptions(opts), func(ctx context.Context, callOpts []grpc.CallOption) (iterators.Iterator[*data.Transaction], error) {
		cli, err := c.service.GetUpdates(ctx, wire, callOpts...)
		if err != nil {
			return nil, err
		}
		return iterators.FlattenOptional(iterators.Stream[*ledgerpb.GetUpdatesResponse](cli, nil), extractTransaction), nil
	})
}

func extractTransaction(r *ledgerpb.GetUpdatesResponse) (*data.Transaction, bool, error) {
	if tx := r.GetTransaction(); tx != nil {
		out, err := data.TransactionFromProto(tx)
		return out, err == nil, err
	}
	return nil, false, nil
}

func extractTree(r *ledgerpb.GetUpdateTreesResponse) (*data.TransactionTree, bool, error) {
	if tree := r.GetTransactionTree(); tree != nil {
		out, err := data.TransactionTreeFromProto(tree)
		return out, err == nil, err
	}
	return nil, false, nil
}

// GetTransactionByOffset looks up the transaction at offset as seen by parties, with DefaultTransactionFormat
func (c *Client) GetTransactionByOffset(ctx context.Context, offset int64, parties []string, opts ...CallOption) (*data.Transaction, error) {
	return c.GetTransactionByOffsetWithFormat(ctx, offset, data.DefaultTransactionFormat(parties), opts...)
}

func (c *Client) GetTransactionByOffsetWithFormat(ctx context.Context, offset int64, format data.TransactionFormat, opts ...CallOption) (*data.Transaction, error) {
	logger.Debugf("looking up offset [%d] for parties [%s]", offset, logging.Keys(format.EventFormat.FiltersByParty))
	req := &ledgerpb.GetUpdateByOffsetRequest{Offset: offset, UpdateFormat: format.UpdateFormat().ToProto()}
	resp, err := unary(ctx, c, methodGetUpdateByOffset, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.GetUpdateResponse, error) {
		return c.service.GetUpdateByOffset(ctx, req, callOpts...)
	}, attribute.Int64("offset", offset))
	if err != nil {
		return nil, err
	}
	return transactionOf(resp, "offset [%d]", offset)
}

// GetTransactionByID looks up the transaction with the given update id as seen by parties, with DefaultTransactionFormat
func (c *Client) GetTransactionByID(ctx context.Context, updateID string, parties []string, opts ...CallOption) (*data.Transaction, error) {
	return c.GetTransactionByIDWithFormat(ctx, updateID, data.DefaultTransactionFormat(parties), opts...)
}

func (c *Client) GetTransactionByIDWithFormat(ctx context.Context, updateID string, format data.TransactionFormat, opts ...CallOption) (*data.Transaction, error) {
	if len(updateID) == 0 {
		return nil, ErrEmptyUpdateID
	}
	logger.Debugf("looking up update [%s] for parties [%s]", updateID, logging.Keys(format.EventFormat.FiltersByParty))
	req := &ledgerpb.GetUpdateByIdRequest{UpdateId: updateID, UpdateFormat: format.UpdateFormat().ToProto()}
	resp, err := unary(ctx, c, methodGetUpdateByID, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.GetUpdateResponse, error) {
		return c.service.GetUpdateById(ctx, req, callOpts...)
	}, attribute.String("update_id", updateID))
	if err != nil {
		return nil, err
	}
	return transactionOf(resp, "update [%s]", updateID)
}

// GetTransactionTreeByOffset looks up a transaction tree.
//
// Deprecated: use GetTransactionByOffsetWithFormat with data.TransactionShapeLedgerEffects.
func (c *Client) GetTransactionTreeByOffset(ctx context.Context, offset int64, parties []string, opts ...CallOption) (*data.TransactionTree, error) {
	req := &ledgerpb.GetTransactionByOffsetRequest{Offset: offset, RequestingParties: normalize(parties)}
	resp, err := unary(ctx, c, methodGetTransactionTreeByOffset, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.GetTransactionTreeResponse, error) {
		return c.service.GetTransactionTreeByOffset(ctx, req, callOpts...)
	}, attribute.Int64("offset", offset))
	if err != nil {
		return nil, err
	}
	return treeOf(resp, "offset [%d]", offset)
}

// GetTransactionTreeByID looks up a transaction tree.
//
// Deprecated: use GetTransactionByIDWithFormat with data.TransactionShapeLedgerEffects.
func (c *Client) GetTransactionTreeByID(ctx context.Context, updateID string, parties []string, opts ...CallOption) (*data.TransactionTree, error) {
	if len(updateID) == 0 {
		return nil, ErrEmptyUpdateID
	}
	req := &ledgerpb.GetTransactionByIdRequest{UpdateId: updateID, RequestingParties: normalize(parties)}
	resp, err := unary(ctx, c, methodGetTransactionTreeByID, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.GetTransactionTreeResponse, error) {
		return c.service.GetTransactionTreeById(ctx, req, callOpts...)
	}, attribute.String("update_id", updateID))
	if err != nil {
		return nil, err
	}
	return treeOf(resp, "update [%s]", updateID)
}

// unary runs a single-shot call. The error of the call is returned unchanged.
func unary[R any](ctx context.Context, c *Client, method string, opts []CallOption, invoke func(context.Context, []grpc.CallOption) (*R, error), attrs ...attribute.KeyValue) (*R, error) {
	ctx, rc := c.startCall(ctx, method, attrs...)
	resp, err := invoke(ctx, c.callOptions(opts))
	if err != nil {
		rc.end(err, 0)
		return nil, err
	}
	rc.end(nil, 1)
	return resp, nil
}

func transactionOf(resp *ledgerpb.GetUpdateResponse, format string, args ...any) (*data.Transaction, error) {
	tx := resp.GetTransaction()
	if tx == nil {
		return nil, errors.Wrapf(ErrNotATransaction, format, args...)
	}
	return data.TransactionFromProto(tx)
}

func treeOf(resp *ledgerpb.GetTransactionTreeResponse, format string, args ...any) (*data.TransactionTree, error) {
	tree := resp.GetTransaction()
	if tree == nil {
		return nil, errors.Wrapf(ErrNotATransaction, format, args...)
	}
	return data.TransactionTreeFromProto(tree)
}

// normalize removes duplicates and sorts, so that equal party sets give equal requests
func normalize(parties []string) []string {
	if len(parties) == 0 {
		return nil
	}
	return collections.Sorted(collections.NewSet(parties...))
}

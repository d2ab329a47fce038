/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

import (
	"context"
	"strings"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var logger = logging.MustGetLogger()

const (
	methodSubmitAndWait                   = "SubmitAndWait"
	methodSubmitAndWaitForTransaction     = "SubmitAndWaitForTransaction"
	methodSubmitAndWaitForTransactionTree = "SubmitAndWaitForTransactionTree"
)

var (
	// ErrMissingTransaction is returned when the ledger completes a submission without the transaction it asked for
	ErrMissingTransaction = errors.Wrapf(ledgerpb.ErrDecode, "completion carries no transaction")

	ErrEmptyCommandID           = data.ErrEmptyCommandID
	ErrNoCommands               = data.ErrNoCommands
	ErrMissingActAs             = data.ErrMissingActAs
	ErrConflictingDeduplication = data.ErrConflictingDeduplication
)

// Completion locates the update a submission produced
type Completion struct {
	UpdateID string
	Offset   int64
}

// Client submits commands to the command service and waits for their outcome.
// It holds no state besides its configuration and can be shared.
type Client struct {
	service ledgerpb.CommandServiceClient
	token   string
	tracer  trace.Tracer
	metrics *Metrics
}

func NewClient(cc grpc.ClientConnInterface, opts ...Option) *Client {
	c := &Client{
		service: ledgerpb.NewCommandServiceClient(cc),
		tracer:  noop.NewTracerProvider().Tracer("ledger_commands"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitAndWait submits sub and returns once the ledger has committed or rejected it.
// A rejection is returned as the status error of the call.
func (c *Client) SubmitAndWait(ctx context.Context, sub *data.CommandsSubmission, opts ...CallOption) (*Completion, error) {
	resp, err := submit(ctx, c, methodSubmitAndWait, sub, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.SubmitAndWaitResponse, error) {
		return c.service.SubmitAndWait(ctx, &ledgerpb.SubmitAndWaitRequest{Commands: sub.ToProto()}, callOpts...)
	})
	if err != nil {
		return nil, err
	}
	logger.Debugf("command [%s] committed as update [%s] at offset [%d]", sub.CommandID, resp.UpdateId, resp.CompletionOffset)
	return &Completion{UpdateID: resp.UpdateId, Offset: resp.CompletionOffset}, nil
}

// SubmitAndWaitForTransaction submits sub and returns the committed transaction shaped by format
func (c *Client) SubmitAndWaitForTransaction(ctx context.Context, sub *data.CommandsSubmission, format data.TransactionFormat, opts ...CallOption) (*data.Transaction, error) {
	resp, err := submit(ctx, c, methodSubmitAndWaitForTransaction, sub, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.SubmitAndWaitForTransactionResponse, error) {
		return c.service.SubmitAndWaitForTransaction(ctx, &ledgerpb.SubmitAndWaitForTransactionRequest{
			Commands:          sub.ToProto(),
			TransactionFormat: format.ToProto(),
		}, callOpts...)
	})
	if err != nil {
		return nil, err
	}
	tx := resp.GetTransaction()
	if tx == nil {
		return nil, errors.WithMessagef(ErrMissingTransaction, "command [%s]", sub.CommandID)
	}
	return data.TransactionFromProto(tx)
}

// SubmitAndWaitForTransactionForParties returns the committed transaction as seen by the acting and
// reading parties of sub, with DefaultTransactionFormat
func (c *Client) SubmitAndWaitForTransactionForParties(ctx context.Context, sub *data.CommandsSubmission, opts ...CallOption) (*data.Transaction, error) {
	if sub == nil {
		return nil, ErrNoCommands
	}
	return c.SubmitAndWaitForTransaction(ctx, sub, data.DefaultTransactionFormat(sub.Parties()), opts...)
}

// SubmitAndWaitForTransactionTree submits sub and returns the committed transaction tree.
//
// Deprecated: use SubmitAndWaitForTransaction with data.TransactionShapeLedgerEffects.
func (c *Client) SubmitAndWaitForTransactionTree(ctx context.Context, sub *data.CommandsSubmission, opts ...CallOption) (*data.TransactionTree, error) {
	resp, err := submit(ctx, c, methodSubmitAndWaitForTransactionTree, sub, opts, func(ctx context.Context, callOpts []grpc.CallOption) (*ledgerpb.SubmitAndWaitForTransactionTreeResponse, error) {
		return c.service.SubmitAndWaitForTransactionTree(ctx, &ledgerpb.SubmitAndWaitRequest{Commands: sub.ToProto()}, callOpts...)
	})
	if err != nil {
		return nil, err
	}
	tree := resp.GetTransaction()
	if tree == nil {
		return nil, errors.WithMessagef(ErrMissingTransaction, "command [%s]", sub.CommandID)
	}
	return data.TransactionTreeFromProto(tree)
}

// submit validates sub, then runs one observed call. The error of the call is returned unchanged.
func submit[R any](ctx context.Context, c *Client, method string, sub *data.CommandsSubmission, opts []CallOption, invoke func(context.Context, []grpc.CallOption) (*R, error)) (*R, error) {
	if sub == nil {
		return nil, ErrNoCommands
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(
		attribute.String("command_id", sub.CommandID),
		attribute.String("act_as", strings.Join(sub.ActAs, ",")),
	))
	defer span.End()
	logger.Debugf("submitting command [%s] as [%s] with [%d] commands", sub.CommandID, sub.ActAs, len(sub.Commands))
	start := time.Now()

	resp, err := invoke(ctx, grpc2.ResolveCallOptions(c.token, opts))
	code := status.Code(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, code.String())
		logger.Debugf("command [%s] failed: %s", sub.CommandID, err)
	}
	if c.metrics != nil {
		c.metrics.Submissions.With("method", method, "code", code.String()).Add(1)
		c.metrics.Duration.With("method", method).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/core/updates"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeLedger struct {
	ledgerpb.UnimplementedUpdateServiceServer

	responses []*ledgerpb.GetUpdatesResponse
	trees     []*ledgerpb.GetUpdateTreesResponse
	// streamErr ends the stream after the responses, nil ends it cleanly
	streamErr error
	// hold keeps the stream open after the responses until the client goes away
	hold      bool
	cancelled chan struct{}

	lookup    *ledgerpb.GetUpdateResponse
	lookupErr error

	opened   atomic.Int32
	requests chan any
	tokens   chan []string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		cancelled: make(chan struct{}),
		requests:  make(chan any, 16),
		tokens:    make(chan []string, 16),
	}
}

func (f *fakeLedger) record(ctx context.Context, req any) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.tokens <- md.Get("authorization")
	f.requests <- req
}

func (f *fakeLedger) GetUpdates(req *ledgerpb.GetUpdatesRequest, srv ledgerpb.UpdateService_GetUpdatesServer) error {
	f.opened.Add(1)
	f.record(srv.Context(), req)
	for _, r := range f.responses {
		if err := srv.Send(r); err != nil {
			return err
		}
	}
	if f.hold {
		<-srv.Context().Done()
		close(f.cancelled)
		return srv.Context().Err()
	}
	return f.streamErr
}

func (f *fakeLedger) GetUpdateTrees(req *ledgerpb.GetUpdatesRequest, srv ledgerpb.UpdateService_GetUpdateTreesServer) error {
	f.opened.Add(1)
	f.record(srv.Context(), req)
	for _, r := range f.trees {
		if err := srv.Send(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeLedger) GetUpdateByOffset(ctx context.Context, req *ledgerpb.GetUpdateByOffsetRequest) (*ledgerpb.GetUpdateResponse, error) {
	f.record(ctx, req)
	return f.lookup, f.lookupErr
}

func (f *fakeLedger) GetUpdateById(ctx context.Context, req *ledgerpb.GetUpdateByIdRequest) (*ledgerpb.GetUpdateResponse, error) {
	f.record(ctx, req)
	return f.lookup, f.lookupErr
}

func (f *fakeLedger) GetTransactionTreeByOffset(ctx context.Context, req *ledgerpb.GetTransactionByOffsetRequest) (*ledgerpb.GetTransactionTreeResponse, error) {
	f.record(ctx, req)
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return &ledgerpb.GetTransactionTreeResponse{Transaction: &ledgerpb.TransactionTree{UpdateId: "tree", Offset: req.Offset}}, nil
}

func start(t *testing.T, f *fakeLedger, opts ...updates.Option) *updates.Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(ledgerpb.ServerCodec())
	ledgerpb.RegisterUpdateServiceServer(srv, f)
	go func() { _ = srv.Serve(lis) }()

	cc, err := grpc2.NewClient(
		grpc2.ClientConfig{Endpoint: grpc2.Endpoint{Address: "passthrough:///bufnet"}},
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cc.Close()
		srv.Stop()
	})
	return updates.NewClient(cc, opts...)
}

func transaction(offset int64) *ledgerpb.GetUpdatesResponse {
	return &ledgerpb.GetUpdatesResponse{Transaction: &ledgerpb.Transaction{
		UpdateId: fmt.Sprintf("update-%d", offset),
		Offset:   offset,
	}}
}

func checkpoint(offset int64) *ledgerpb.GetUpdatesResponse {
	return &ledgerpb.GetUpdatesResponse{OffsetCheckpoint: &ledgerpb.OffsetCheckpoint{Offset: offset}}
}

func offsets(t *testing.T, s *updates.Stream[data.Transaction]) ([]int64, error) {
	t.Helper()
	var out []int64
	for {
		tx, err := s.Recv()
		if err != nil {
			return out, err
		}
		out = append(out, tx.Offset)
	}
}

func end(o int64) *int64 { return &o }

func TestStreamSkipsUpdatesWithoutTransaction(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{
		checkpoint(1), transaction(2), {Reassignment: []byte{1}}, checkpoint(3), transaction(4), {TopologyTransaction: []byte{1}}, transaction(5), checkpoint(6),
	}
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, end(6), []string{"Alice"})
	require.NoError(t, err)
	defer s.Close()

	got, err := offsets(t, s)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []int64{2, 4, 5}, got)

	// the end is sticky
	_, err = s.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamOfOnlyCheckpointsIsEmpty(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{checkpoint(1), checkpoint(2)}
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, nil, []string{"Alice"})
	require.NoError(t, err)
	defer s.Close()

	got, err := offsets(t, s)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, got)
}

func TestStreamIsCold(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1)}
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, nil, []string{"Alice"})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.opened.Load())

	tx, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.Offset)
	assert.Equal(t, int32(1), f.opened.Load())
	s.Close()

	// a stream closed before its first read never calls the ledger
	s, err = c.GetTransactionsForParties(context.Background(), 0, nil, []string{"Alice"})
	require.NoError(t, err)
	s.Close()
	_, err = s.Recv()
	assert.ErrorIs(t, err, updates.ErrStreamClosed)
	assert.Equal(t, int32(1), f.opened.Load())
}

func TestStreamCloseCancelsCall(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1), transaction(2)}
	f.hold = true
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, nil, []string{"Alice"})
	require.NoError(t, err)

	tx, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.Offset)

	s.Close()
	s.Close()
	select {
	case <-f.cancelled:
	case <-time.After(5 * time.Second):
		t.Fatal("the server did not observe the cancellation")
	}

	_, err = s.Recv()
	assert.ErrorIs(t, err, updates.ErrStreamClosed)
	assert.Equal(t, codes.Canceled, status.Code(err))
}

func TestStreamContextCancellation(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1)}
	f.hold = true
	c := start(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	s, err := c.GetTransactionsForParties(ctx, 0, nil, []string{"Alice"})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Recv()
	require.NoError(t, err)
	cancel()

	_, err = s.Recv()
	assert.Equal(t, codes.Canceled, status.Code(err))
	<-f.cancelled
}

func TestStreamKeepsRemoteErrorClassification(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1)}
	f.streamErr = status.Error(codes.FailedPrecondition, "offset pruned")
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, nil, []string{"Alice"})
	require.NoError(t, err)
	defer s.Close()

	got, err := offsets(t, s)
	assert.Equal(t, []int64{1}, got)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "offset pruned")
}

func TestStreamDeadline(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1)}
	f.hold = true
	c := start(t, f)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	s, err := c.GetTransactionsForParties(ctx, 0, nil, []string{"Alice"})
	require.NoError(t, err)
	defer s.Close()

	tx, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.Offset)

	_, err = s.Recv()
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	<-f.cancelled

	// a lookup past its deadline fails the same way
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()
	_, err = c.GetTransactionByOffset(expired, 1, []string{"Alice"})
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestStreamFailsOnUnknownEvent(t *testing.T) {
	f := newFakeLedger()
	unknown := transaction(2)
	unknown.Transaction.Events = []*ledgerpb.Event{{Created: &ledgerpb.CreatedEvent{ContractId: "c1"}}, {}}
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1), unknown, transaction(3)}
	f.lookup = &ledgerpb.GetUpdateResponse{Transaction: unknown.Transaction}
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, end(3), []string{"Alice"})
	require.NoError(t, err)
	defer s.Close()

	got, err := offsets(t, s)
	assert.Equal(t, []int64{1}, got)
	assert.True(t, errors.HasCause(err, ledgerpb.ErrDecode))

	// the failure is sticky
	_, err = s.Recv()
	assert.True(t, errors.HasCause(err, ledgerpb.ErrDecode))

	_, err = c.GetTransactionByOffset(context.Background(), 2, []string{"Alice"})
	assert.True(t, errors.HasCause(err, ledgerpb.ErrDecode))
}

func TestStreamAllBreakCloses(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1), transaction(2), transaction(3)}
	f.hold = true
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, nil, []string{"Alice"})
	require.NoError(t, err)

	var got []int64
	for tx, err := range s.All() {
		require.NoError(t, err)
		got = append(got, tx.Offset)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int64{1, 2}, got)
	<-f.cancelled
}

func TestInvalidRangeIsNotSent(t *testing.T) {
	f := newFakeLedger()
	c := start(t, f)

	_, err := c.GetTransactionsForParties(context.Background(), 10, end(5), []string{"Alice"})
	assert.ErrorIs(t, err, updates.ErrInvalidRange)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Updates(context.Background(), &data.GetUpdatesRequest{})
	assert.ErrorIs(t, err, updates.ErrMissingFilter)
	assert.Zero(t, f.opened.Load())
}

func TestDefaultFormatIsSharedByStreamAndLookup(t *testing.T) {
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1)}
	f.lookup = &ledgerpb.GetUpdateResponse{Transaction: transaction(1).Transaction}
	c := start(t, f)

	s, err := c.GetTransactionsForParties(context.Background(), 0, end(1), []string{"Alice", "Bob"})
	require.NoError(t, err)
	_, err = offsets(t, s)
	require.ErrorIs(t, err, io.EOF)
	streamed := (<-f.requests).(*ledgerpb.GetUpdatesRequest)

	tx, err := c.GetTransactionByOffset(context.Background(), 1, []string{"Bob", "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "update-1", tx.UpdateID)
	looked := (<-f.requests).(*ledgerpb.GetUpdateByOffsetRequest)
	assert.Equal(t, int64(1), looked.Offset)

	a, err := streamed.UpdateFormat.Marshal()
	require.NoError(t, err)
	b, err := looked.UpdateFormat.Marshal()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	format := data.UpdateFormatFromProto(looked.UpdateFormat)
	require.NotNil(t, format.IncludeTransactions)
	assert.Equal(t, data.TransactionShapeAcsDelta, format.IncludeTransactions.TransactionShape)
	assert.True(t, format.IncludeTransactions.EventFormat.Verbose)
	assert.Len(t, format.IncludeTransactions.EventFormat.FiltersByParty, 2)
	for _, filter := range format.IncludeTransactions.EventFormat.FiltersByParty {
		require.NotNil(t, filter.Wildcard)
		assert.False(t, filter.Wildcard.IncludeCreatedEventBlob)
	}
	assert.Nil(t, format.IncludeReassignments)
	assert.Nil(t, format.IncludeTopologyEvents)
}

func TestLookupByID(t *testing.T) {
	f := newFakeLedger()
	f.lookup = &ledgerpb.GetUpdateResponse{Transaction: transaction(7).Transaction}
	c := start(t, f)

	tx, err := c.GetTransactionByID(context.Background(), "update-7", []string{"Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), tx.Offset)
	req := (<-f.requests).(*ledgerpb.GetUpdateByIdRequest)
	assert.Equal(t, "update-7", req.UpdateId)

	_, err = c.GetTransactionByID(context.Background(), "", []string{"Alice"})
	assert.ErrorIs(t, err, updates.ErrEmptyUpdateID)
}

func TestLookupKeepsRemoteError(t *testing.T) {
	f := newFakeLedger()
	remote := status.Error(codes.NotFound, "update not found")
	f.lookupErr = remote
	c := start(t, f)

	_, err := c.GetTransactionByOffset(context.Background(), 42, []string{"Alice"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, status.Convert(remote).Message(), status.Convert(err).Message())

	_, err = c.GetTransactionTreeByOffset(context.Background(), 42, []string{"Alice"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestLookupOfOtherUpdateKind(t *testing.T) {
	f := newFakeLedger()
	f.lookup = &ledgerpb.GetUpdateResponse{Reassignment: []byte{1}}
	c := start(t, f)

	_, err := c.GetTransactionByOffset(context.Background(), 3, []string{"Alice"})
	assert.ErrorIs(t, err, updates.ErrNotATransaction)
}

func TestTokens(t *testing.T) {
	f := newFakeLedger()
	f.lookup = &ledgerpb.GetUpdateResponse{Transaction: transaction(1).Transaction}
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1)}
	c := start(t, f, updates.WithDefaultAccessToken("default"))

	_, err := c.GetTransactionByOffset(context.Background(), 1, []string{"Alice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer default"}, <-f.tokens)

	_, err = c.GetTransactionByOffset(context.Background(), 1, []string{"Alice"}, updates.WithAccessToken("override"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer override"}, <-f.tokens)

	s, err := c.GetTransactionsForParties(context.Background(), 0, end(1), []string{"Alice"}, updates.WithAccessToken("streaming"))
	require.NoError(t, err)
	_, err = offsets(t, s)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"Bearer streaming"}, <-f.tokens)

	// an empty override sends no token at all
	_, err = c.GetTransactionByOffset(context.Background(), 1, []string{"Alice"}, updates.WithAccessToken(""))
	require.NoError(t, err)
	assert.Empty(t, <-f.tokens)
}

func TestTransactionTrees(t *testing.T) {
	f := newFakeLedger()
	f.trees = []*ledgerpb.GetUpdateTreesResponse{
		{OffsetCheckpoint: &ledgerpb.OffsetCheckpoint{Offset: 1}},
		{TransactionTree: &ledgerpb.TransactionTree{UpdateId: "t2", Offset: 2}},
	}
	c := start(t, f)

	filter := data.TransactionFilter{FiltersByParty: map[string]data.CumulativeFilter{"Alice": {}}}
	s, err := c.GetTransactionTrees(context.Background(), 0, end(2), filter, true)
	require.NoError(t, err)
	defer s.Close()

	tree, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "t2", tree.UpdateID)
	_, err = s.Recv()
	assert.ErrorIs(t, err, io.EOF)

	req := (<-f.requests).(*ledgerpb.GetUpdatesRequest)
	assert.Nil(t, req.UpdateFormat)
	assert.True(t, req.Verbose)
	require.NotNil(t, req.Filter)

	lookup, err := c.GetTransactionTreeByOffset(context.Background(), 5, []string{"Bob", "Alice", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), lookup.Offset)
	assert.Equal(t, []string{"Alice", "Bob"}, (<-f.requests).(*ledgerpb.GetTransactionByOffsetRequest).RequestingParties)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := updates.NewMetrics(metrics.NewProvider(reg))
	f := newFakeLedger()
	f.responses = []*ledgerpb.GetUpdatesResponse{transaction(1), checkpoint(2), transaction(3)}
	f.lookupErr = status.Error(codes.NotFound, "nope")
	c := start(t, f, updates.WithMetrics(m))

	s, err := c.GetTransactionsForParties(context.Background(), 0, end(3), []string{"Alice"})
	require.NoError(t, err)
	_, err = offsets(t, s)
	require.ErrorIs(t, err, io.EOF)
	s.Close()

	_, err = c.GetTransactionByOffset(context.Background(), 1, []string{"Alice"})
	require.Error(t, err)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP dlg_ledger_core_updates_calls Calls to the update service, by method and status code
# TYPE dlg_ledger_core_updates_calls counter
dlg_ledger_core_updates_calls{code="NotFound",method="GetUpdateByOffset"} 1
dlg_ledger_core_updates_calls{code="OK",method="GetUpdates"} 1
# HELP dlg_ledger_core_updates_received_transactions Transactions received, by method
# TYPE dlg_ledger_core_updates_received_transactions counter
dlg_ledger_core_updates_received_transactions{method="GetUpdateByOffset"} 0
dlg_ledger_core_updates_received_transactions{method="GetUpdates"} 2
`), "dlg_ledger_core_updates_calls", "dlg_ledger_core_updates_received_transactions"))
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import (
	"context"
	"io"
	"iter"
	"sync/atomic"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections/iterators"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
)

type opener[T any] func(ctx context.Context, opts []grpc.CallOption) (iterators.Iterator[*T], error)

// Stream is a lazy sequence of the transactions of a server stream.
//
// The call is opened by the first Recv. Each Recv reads messages off the wire until one carries a
// transaction, nothing is read ahead. Close, or cancelling the context the stream was created
// with, cancels the call.
//
// Recv and Next must be called from one goroutine at a time; Close can be called from any.
type Stream[T any] struct {
	ctx      context.Context
	cancel   context.CancelFunc
	client   *Client
	method   string
	callOpts []grpc.CallOption
	open     opener[T]

	it       iterators.Iterator[*T]
	call     atomic.Pointer[call]
	err      error
	closed   atomic.Bool
	received atomic.Int64
}

func newStream[T any](ctx context.Context, c *Client, method string, callOpts []grpc.CallOption, open opener[T]) *Stream[T] {
	ctx, cancel := context.WithCancel(ctx)
	return &Stream[T]{
		ctx:      ctx,
		cancel:   cancel,
		client:   c,
		method:   method,
		callOpts: callOpts,
		open:     open,
	}
}

// Recv returns the next transaction.
// At the end of the stream it returns io.EOF. A remote failure is returned as the server sent it.
// After Close it returns ErrStreamClosed.
func (s *Stream[T]) Recv() (*T, error) {
	if s.closed.Load() {
		return nil, ErrStreamClosed
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.it == nil {
		ctx, c := s.client.startCall(s.ctx, s.method)
		s.call.Store(c)
		it, err := s.open(ctx, s.callOpts)
		if err != nil {
			return nil, s.finish(err)
		}
		s.it = it
	}

	item, err := s.it.Next()
	if err != nil {
		if s.closed.Load() {
			return nil, ErrStreamClosed
		}
		return nil, s.finish(err)
	}
	if item == nil {
		return nil, s.finish(io.EOF)
	}
	n := s.received.Add(1)
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("[%s] received transaction [%d]", s.method, n)
	}
	return item, nil
}

// Next implements iterators.Iterator: it returns nil at the end of the stream
func (s *Stream[T]) Next() (*T, error) {
	item, err := s.Recv()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return item, err
}

// All ranges over the transactions. Breaking out of the loop closes the stream.
func (s *Stream[T]) All() iter.Seq2[*T, error] {
	return iterators.All[T](s)
}

// Close cancels the call. It is safe to call more than once.
func (s *Stream[T]) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.cancel()
	if c := s.call.Load(); c != nil {
		c.end(ErrStreamClosed, int(s.received.Load()))
	}
}

func (s *Stream[T]) finish(err error) error {
	s.err = err
	s.cancel()
	if s.it != nil {
		s.it.Close()
	}
	s.call.Load().end(err, int(s.received.Load()))
	return err
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/status"
)

// call observes one remote call: a span, the call metrics and a debug line at both ends
type call struct {
	method  string
	span    trace.Span
	start   time.Time
	metrics *Metrics
	once    sync.Once
}

func (c *Client) startCall(ctx context.Context, method string, attrs ...attribute.KeyValue) (context.Context, *call) {
	ctx, span := c.tracer.Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
	logger.Debugf("calling [%s]", method)
	return ctx, &call{method: method, span: span, start: time.Now(), metrics: c.metrics}
}

// end is called once per call, io.EOF is a success
func (c *call) end(err error, received int) {
	c.once.Do(func() {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		code := status.Code(err)
		if err != nil {
			c.span.RecordError(err)
			c.span.SetStatus(otelcodes.Error, code.String())
			logger.Debugf("[%s] failed after [%d] transactions: %s", c.method, received, err)
		} else {
			logger.Debugf("[%s] done after [%d] transactions", c.method, received)
		}
		c.span.SetAttributes(attribute.Int("received", received))
		c.span.End()

		if c.metrics != nil {
			c.metrics.Calls.With("method", c.method, "code", code.String()).Add(1)
			c.metrics.Received.With("method", c.method).Add(float64(received))
			c.metrics.Duration.With("method", c.method).Observe(time.Since(c.start).Seconds())
		}
	})
}

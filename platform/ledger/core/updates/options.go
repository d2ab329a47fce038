/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import (
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Option configures a Client
type Option func(*Client)

// WithDefaultAccessToken sets the token sent with every call that does not override it
func WithDefaultAccessToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer("ledger_updates")
	}
}

// WithMetrics enables the call metrics
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// CallOption configures a single call
type CallOption = grpc2.CallOption

var (
	// WithAccessToken sends a token with one call instead of the client's default token
	WithAccessToken = grpc2.WithAccessToken
	// WithGRPCCallOptions appends options to the underlying gRPC call
	WithGRPCCallOptions = grpc2.WithGRPCCallOptions
)

func (c *Client) callOptions(opts []CallOption) []grpc.CallOption {
	return grpc2.ResolveCallOptions(c.token, opts)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const authorizationHeader = "authorization"

// TokenCredentials attaches a bearer token to every call it is used for.
// The token is not bound to the transport: ledger servers are often behind a TLS terminating proxy.
type TokenCredentials string

var _ credentials.PerRPCCredentials = TokenCredentials("")

func (t TokenCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{authorizationHeader: "Bearer " + string(t)}, nil
}

func (t TokenCredentials) RequireTransportSecurity() bool {
	return false
}

// WithToken returns the call option sending token with one call.
// An empty token adds nothing.
func WithToken(token string) []grpc.CallOption {
	if len(token) == 0 {
		return nil
	}
	return []grpc.CallOption{grpc.PerRPCCredentials(TokenCredentials(token))}
}

type callOptions struct {
	token    *string
	grpcOpts []grpc.CallOption
}

// CallOption configures a single call of a ledger client
type CallOption func(*callOptions)

// WithAccessToken sends token with this call instead of the client's default token.
// An empty token sends no token at all. The connection is not affected.
func WithAccessToken(token string) CallOption {
	return func(o *callOptions) {
		o.token = &token
	}
}

// WithGRPCCallOptions appends options to the underlying gRPC call
func WithGRPCCallOptions(opts ...grpc.CallOption) CallOption {
	return func(o *callOptions) {
		o.grpcOpts = append(o.grpcOpts, opts...)
	}
}

// ResolveCallOptions returns the gRPC options of a call sending defaultToken unless opts override it
func ResolveCallOptions(defaultToken string, opts []CallOption) []grpc.CallOption {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	token := defaultToken
	if o.token != nil {
		token = *o.token
	}
	return append(WithToken(token), o.grpcOpts...)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package packages

import (
	"context"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"google.golang.org/grpc"
)

var logger = logging.MustGetLogger()

// ErrEmptyPackageID is returned when asked for the status of an empty package id
var ErrEmptyPackageID = data.ErrEmptyPackageID

// Option configures a Client
type Option func(*Client)

// WithDefaultAccessToken sets the token sent with every call that does not override it
func WithDefaultAccessToken(token string) Option {
	return func(c *Client) {
		c.token = token
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

// Client queries the package service
type Client struct {
	service ledgerpb.PackageServiceClient
	token   string
}

func NewClient(cc grpc.ClientConnInterface, opts ...Option) *Client {
	c := &Client{service: ledgerpb.NewPackageServiceClient(cc)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPackageStatus tells whether the participant knows packageID
func (c *Client) GetPackageStatus(ctx context.Context, packageID string, opts ...CallOption) (data.PackageStatus, error) {
	if len(packageID) == 0 {
		return data.PackageStatusUnspecified, ErrEmptyPackageID
	}
	resp, err := c.service.GetPackageStatus(ctx, &ledgerpb.GetPackageStatusRequest{PackageId: packageID}, grpc2.ResolveCallOptions(c.token, opts)...)
	if err != nil {
		return data.PackageStatusUnspecified, err
	}
	s := data.PackageStatusFromProto(resp.PackageStatus)
	logger.Debugf("package [%s] is [%s]", packageID, s)
	return s, nil
}

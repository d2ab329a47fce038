/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package grpc

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

var ErrInvalidAddress = errors.New("empty address")

// ClientConfig tells how to connect to a ledger API server
type ClientConfig struct {
	Endpoint Endpoint
	// KeepAlive is optional
	KeepAlive *ClientKeepAliveConfig
	// MaxRecvMsgSize defaults to MaxRecvMsgSize
	MaxRecvMsgSize int
	// Name identifies the client in the logs
	Name string
}

// NewClient creates the connection to the configured endpoint.
// The connection is lazy: nothing is dialed until the first call.
func NewClient(c ClientConfig, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	if len(c.Endpoint.Address) == 0 {
		return nil, ErrInvalidAddress
	}

	tlsOpt, err := WithTLS(c.Endpoint)
	if err != nil {
		return nil, err
	}
	maxRecv := c.MaxRecvMsgSize
	if maxRecv <= 0 {
		maxRecv = MaxRecvMsgSize
	}
	name := c.Name
	if len(name) == 0 {
		name = "LedgerClient"
	}

	var opts []grpc.DialOption
	opts = append(opts, WithConnectionTime(c.Endpoint.ConnectionTimeout))
	opts = append(opts, tlsOpt)
	opts = append(opts, ClientKeepaliveOptions(c.KeepAlive)...)
	opts = append(opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxRecv)))
	opts = append(opts, grpc.WithStatsHandler(&DisconnectTracker{ClientName: name}))
	opts = append(opts, extra...)

	logger.Debugf("creating client [%s] for [%s], tls [%v]", name, c.Endpoint.Address, c.Endpoint.TLSEnabled)
	cc, err := grpc.NewClient(c.Endpoint.Address, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed creating client for [%s]", c.Endpoint.Address)
	}
	return cc, nil
}

// WithTLS returns the transport credentials of the endpoint
func WithTLS(endpoint Endpoint) (grpc.DialOption, error) {
	creds, err := TransportCredentials(endpoint)
	if err != nil {
		return nil, err
	}
	return grpc.WithTransportCredentials(creds), nil
}

// TransportCredentials verifies the server against TLSRootCertFile, or against the system roots
// when no file is given
func TransportCredentials(endpoint Endpoint) (credentials.TransportCredentials, error) {
	if !endpoint.TLSEnabled {
		return insecure.NewCredentials(), nil
	}
	if len(endpoint.TLSRootCertFile) == 0 {
		return credentials.NewTLS(&tls.Config{
			ServerName: endpoint.TLSServerNameOverride,
			MinVersion: tls.VersionTLS12,
		}), nil
	}

	if _, err := os.Stat(endpoint.TLSRootCertFile); err != nil {
		return nil, errors.Wrapf(err, "cannot access tls root cert [%s]", endpoint.TLSRootCertFile)
	}
	creds, err := credentials.NewClientTLSFromFile(endpoint.TLSRootCertFile, endpoint.TLSServerNameOverride)
	if err != nil {
		return nil, errors.Wrapf(err, "failed loading tls root cert [%s]", endpoint.TLSRootCertFile)
	}
	return creds, nil
}

func WithConnectionTime(timeout time.Duration) grpc.DialOption {
	if timeout <= 0 {
		timeout = DefaultConnectionTimeout
	}
	return grpc.WithConnectParams(grpc.ConnectParams{
		Backoff:           backoff.DefaultConfig,
		MinConnectTimeout: timeout,
	})
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package grpc

import (
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// Configuration defaults
var (
	// MaxRecvMsgSize bounds the size of a single received message, large transactions included
	MaxRecvMsgSize = 100 * 1024 * 1024
	// DefaultConnectionTimeout is the default connection timeout
	DefaultConnectionTimeout = 5 * time.Second
)

// Endpoint is the address of a ledger API server and how to reach it
type Endpoint struct {
	Address               string        `yaml:"address,omitempty"`
	ConnectionTimeout     time.Duration `yaml:"connectionTimeout,omitempty"`
	TLSEnabled            bool          `yaml:"tlsEnabled,omitempty"`
	TLSRootCertFile       string        `yaml:"tlsRootCertFile,omitempty"`
	TLSServerNameOverride string        `yaml:"tlsServerNameOverride,omitempty"`
}

// ClientKeepAliveConfig describes the client keep alive parameters.
type ClientKeepAliveConfig struct {
	Time                time.Duration `yaml:"time"`
	Timeout             time.Duration `yaml:"timeout"`
	PermitWithoutStream bool          `yaml:"permitWithoutStream"`
}

// ClientKeepaliveOptions returns gRPC keepalive options for clients.
func ClientKeepaliveOptions(c *ClientKeepAliveConfig) []grpc.DialOption {
	if c == nil {
		return nil
	}
	kap := keepalive.ClientParameters{
		Time:                c.Time,
		Timeout:             c.Timeout,
		PermitWithoutStream: c.PermitWithoutStream,
	}
	return []grpc.DialOption{grpc.WithKeepaliveParams(kap)}
}

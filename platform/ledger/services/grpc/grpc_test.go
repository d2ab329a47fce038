/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package grpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
	grpc2 "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/services/grpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/stats"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	_, err := grpc2.NewClient(grpc2.ClientConfig{})
	assert.ErrorIs(t, err, grpc2.ErrInvalidAddress)

	_, err = grpc2.NewClient(grpc2.ClientConfig{Endpoint: grpc2.Endpoint{
		Address:         "localhost:6865",
		TLSEnabled:      true,
		TLSRootCertFile: "/does/not/exist.pem",
	}})
	assert.ErrorContains(t, err, "/does/not/exist.pem")

	// lazy: no server is needed to create the connection
	cc, err := grpc2.NewClient(grpc2.ClientConfig{
		Endpoint:  grpc2.Endpoint{Address: "localhost:6865"},
		KeepAlive: &grpc2.ClientKeepAliveConfig{Time: time.Minute, Timeout: 20 * time.Second},
	})
	require.NoError(t, err)
	assert.NoError(t, cc.Close())
}

func TestTLSWithSystemRoots(t *testing.T) {
	t.Parallel()

	creds, err := grpc2.TransportCredentials(grpc2.Endpoint{TLSEnabled: true, TLSServerNameOverride: "ledger.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)

	creds, err = grpc2.TransportCredentials(grpc2.Endpoint{})
	require.NoError(t, err)
	assert.Equal(t, "insecure", creds.Info().SecurityProtocol)

	cc, err := grpc2.NewClient(grpc2.ClientConfig{Endpoint: grpc2.Endpoint{Address: "ledger.example.com:443", TLSEnabled: true}})
	require.NoError(t, err)
	assert.NoError(t, cc.Close())
}

func TestTokenCredentials(t *testing.T) {
	t.Parallel()

	md, err := grpc2.TokenCredentials("secret").GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"authorization": "Bearer secret"}, md)
	assert.False(t, grpc2.TokenCredentials("secret").RequireTransportSecurity())

	assert.Empty(t, grpc2.WithToken(""))
	assert.Len(t, grpc2.WithToken("secret"), 1)
}

func TestResolveCallOptions(t *testing.T) {
	t.Parallel()

	assert.Len(t, grpc2.ResolveCallOptions("default", nil), 1)
	assert.Empty(t, grpc2.ResolveCallOptions("", nil))
	assert.Empty(t, grpc2.ResolveCallOptions("default", []grpc2.CallOption{grpc2.WithAccessToken("")}))
	assert.Len(t, grpc2.ResolveCallOptions("", []grpc2.CallOption{
		grpc2.WithAccessToken("override"),
		grpc2.WithGRPCCallOptions(grpc.WaitForReady(true)),
	}), 2)
}

func TestIsKeepaliveViolation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "too many pings", err: status.Error(codes.ResourceExhausted, "too_many_pings"), expected: true},
		{name: "calm down", err: status.Error(codes.ResourceExhausted, "ENHANCE_YOUR_CALM"), expected: true},
		{name: "other exhaustion", err: status.Error(codes.ResourceExhausted, "quota"), expected: false},
		{name: "not found", err: status.Error(codes.NotFound, "too_many_pings"), expected: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, grpc2.IsKeepaliveViolation(tc.err))
		})
	}

	tracker := &grpc2.DisconnectTracker{ClientName: "test"}
	tracker.HandleRPC(context.Background(), &stats.End{Error: status.Error(codes.ResourceExhausted, "too_many_pings")})
	tracker.HandleRPC(context.Background(), &stats.End{Error: status.Error(codes.NotFound, "nope")})
	tracker.HandleRPC(context.Background(), &stats.End{})
	assert.Equal(t, uint64(1), tracker.Count)
}

type packageServer struct {
	ledgerpb.UnimplementedPackageServiceServer
	authorization chan []string
}

func (s *packageServer) GetPackageStatus(ctx context.Context, req *ledgerpb.GetPackageStatusRequest) (*ledgerpb.GetPackageStatusResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.authorization <- md.Get("authorization")
	return &ledgerpb.GetPackageStatusResponse{PackageStatus: ledgerpb.PackageStatus_PACKAGE_STATUS_REGISTERED}, nil
}

func TestTokenIsSentOverInsecureConnection(t *testing.T) {
	t.Parallel()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(ledgerpb.ServerCodec())
	ps := &packageServer{authorization: make(chan []string, 2)}
	ledgerpb.RegisterPackageServiceServer(srv, ps)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	cc, err := grpc2.NewClient(
		grpc2.ClientConfig{Endpoint: grpc2.Endpoint{Address: "passthrough:///bufnet"}},
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })

	client := ledgerpb.NewPackageServiceClient(cc)
	resp, err := client.GetPackageStatus(context.Background(), &ledgerpb.GetPackageStatusRequest{PackageId: "pkg"}, grpc2.WithToken("secret")...)
	require.NoError(t, err)
	assert.Equal(t, ledgerpb.PackageStatus_PACKAGE_STATUS_REGISTERED, resp.PackageStatus)
	assert.Equal(t, []string{"Bearer secret"}, <-ps.authorization)

	_, err = client.GetPackageStatus(context.Background(), &ledgerpb.GetPackageStatusRequest{PackageId: "pkg"})
	require.NoError(t, err)
	assert.Empty(t, <-ps.authorization)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package grpc

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/services/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/stats"
	"google.golang.org/grpc/status"
)

var logger = logging.MustGetLogger()

// DisconnectTracker warns when the server throttles or drops the client
type DisconnectTracker struct {
	ClientName string
	Count      uint64
}

func (h *DisconnectTracker) TagRPC(ctx context.Context, info *stats.RPCTagInfo) context.Context {
	return ctx
}

func (h *DisconnectTracker) HandleRPC(ctx context.Context, rpcStats stats.RPCStats) {
	if end, ok := rpcStats.(*stats.End); ok && end.Error != nil && IsKeepaliveViolation(end.Error) {
		atomic.AddUint64(&h.Count, 1)
		logger.Errorf("ResourceExhausted for %s [%s]: check the keepalive configuration", h.ClientName, end.Error)
	}
}

func (h *DisconnectTracker) TagConn(ctx context.Context, info *stats.ConnTagInfo) context.Context {
	return ctx
}

func (h *DisconnectTracker) HandleConn(ctx context.Context, s stats.ConnStats) {
	if _, ok := s.(*stats.ConnEnd); ok {
		logger.Warnf("Connection ended for client: %s", h.ClientName)
	}
}

// IsKeepaliveViolation tells whether err is the server closing the connection for pinging too often
func IsKeepaliveViolation(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.ResourceExhausted &&
		(strings.Contains(st.Message(), "too_many_pings") || strings.Contains(st.Message(), "ENHANCE_YOUR_CALM"))
}

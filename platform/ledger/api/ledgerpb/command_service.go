/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Commands is a batch of commands submitted atomically.
// Each entry of Commands and DisclosedContracts is an encoded Command and DisclosedContract.
// At most one of DeduplicationDuration and DeduplicationOffset is set.
type Commands struct {
	WorkflowId                   string
	UserId                       string
	CommandId                    string
	Commands                     [][]byte
	DeduplicationDuration        *durationpb.Duration
	DeduplicationOffset          *int64
	MinLedgerTimeAbs             *timestamppb.Timestamp
	MinLedgerTimeRel             *durationpb.Duration
	ActAs                        []string
	ReadAs                       []string
	SubmissionId                 string
	DisclosedContracts           [][]byte
	SynchronizerId               string
	PackageIdSelectionPreference []string
}

func (x *Commands) Marshal() ([]byte, error) { return marshal(x) }

func (x *Commands) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *Commands) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.WorkflowId)
	b = appendString(b, 2, x.UserId)
	b = appendString(b, 3, x.CommandId)
	b = appendRepeatedRaw(b, 4, x.Commands)
	switch {
	case x.DeduplicationDuration != nil:
		b = appendDuration(b, 5, x.DeduplicationDuration)
	case x.DeduplicationOffset != nil:
		b = appendOptionalInt64(b, 6, x.DeduplicationOffset)
	}
	b = appendTimestamp(b, 7, x.MinLedgerTimeAbs)
	b = appendDuration(b, 8, x.MinLedgerTimeRel)
	b = appendRepeatedString(b, 9, x.ActAs)
	b = appendRepeatedString(b, 10, x.ReadAs)
	b = appendString(b, 11, x.SubmissionId)
	b = appendRepeatedRaw(b, 12, x.DisclosedContracts)
	b = appendString(b, 13, x.SynchronizerId)
	b = appendRepeatedString(b, 14, x.PackageIdSelectionPreference)
	return b
}

func (x *Commands) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.WorkflowId, n, err = consumeString(num, typ, b)
	case 2:
		x.UserId, n, err = consumeString(num, typ, b)
	case 3:
		x.CommandId, n, err = consumeString(num, typ, b)
	case 4:
		var v []byte
		if v, n, err = consumeBytes(num, typ, b); err == nil {
			x.Commands = append(x.Commands, v)
		}
	case 5:
		x.DeduplicationOffset = nil
		x.DeduplicationDuration, n, err = consumeDuration(num, typ, b)
	case 6:
		var v int64
		if v, n, err = consumeInt64(num, typ, b); err == nil {
			x.DeduplicationDuration = nil
			x.DeduplicationOffset = &v
		}
	case 7:
		x.MinLedgerTimeAbs, n, err = consumeTimestamp(num, typ, b)
	case 8:
		x.MinLedgerTimeRel, n, err = consumeDuration(num, typ, b)
	case 9:
		var v string
		if v, n, err = consumeString(num, typ, b); err == nil {
			x.ActAs = append(x.ActAs, v)
		}
	case 10:
		var v string
		if v, n, err = consumeString(num, typ, b); err == nil {
			x.ReadAs = append(x.ReadAs, v)
		}
	case 11:
		x.SubmissionId, n, err = consumeString(num, typ, b)
	case 12:
		var v []byte
		if v, n, err = consumeBytes(num, typ, b); err == nil {
			x.DisclosedContracts = append(x.DisclosedContracts, v)
		}
	case 13:
		x.SynchronizerId, n, err = consumeString(num, typ, b)
	case 14:
		var v string
		if v, n, err = consumeString(num, typ, b); err == nil {
			x.PackageIdSelectionPreference = append(x.PackageIdSelectionPreference, v)
		}
	}
	return
}

type SubmitAndWaitRequest struct {
	Commands *Commands
}

func (x *SubmitAndWaitRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *SubmitAndWaitRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *SubmitAndWaitRequest) appendFields(b []byte) []byte {
	if x.Commands != nil {
		b = appendMessage(b, 1, x.Commands)
	}
	return b
}

func (x *SubmitAndWaitRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.Commands = &Commands{}
		n, err = consumeMessage(num, typ, b, x.Commands)
	}
	return
}

type SubmitAndWaitResponse struct {
	UpdateId         string
	CompletionOffset int64
}

func (x *SubmitAndWaitResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *SubmitAndWaitResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *SubmitAndWaitResponse) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.UpdateId)
	return appendInt64(b, 2, x.CompletionOffset)
}

func (x *SubmitAndWaitResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.UpdateId, n, err = consumeString(num, typ, b)
	case 2:
		x.CompletionOffset, n, err = consumeInt64(num, typ, b)
	}
	return
}

type SubmitAndWaitForTransactionRequest struct {
	Commands          *Commands
	TransactionFormat *TransactionFormat
}

func (x *SubmitAndWaitForTransactionRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *SubmitAndWaitForTransactionRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *SubmitAndWaitForTransactionRequest) appendFields(b []byte) []byte {
	if x.Commands != nil {
		b = appendMessage(b, 1, x.Commands)
	}
	if x.TransactionFormat != nil {
		b = appendMessage(b, 2, x.TransactionFormat)
	}
	return b
}

func (x *SubmitAndWaitForTransactionRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.Commands = &Commands{}
		n, err = consumeMessage(num, typ, b, x.Commands)
	case 2:
		x.TransactionFormat = &TransactionFormat{}
		n, err = consumeMessage(num, typ, b, x.TransactionFormat)
	}
	return
}

type SubmitAndWaitForTransactionResponse struct {
	Transaction *Transaction
}

func (x *SubmitAndWaitForTransactionResponse) GetTransaction() *Transaction {
	if x == nil {
		return nil
	}
	return x.Transaction
}

func (x *SubmitAndWaitForTransactionResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *SubmitAndWaitForTransactionResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *SubmitAndWaitForTransactionResponse) appendFields(b []byte) []byte {
	if x.Transaction != nil {
		b = appendMessage(b, 1, x.Transaction)
	}
	return b
}

func (x *SubmitAndWaitForTransactionResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.Transaction = &Transaction{}
		n, err = consumeMessage(num, typ, b, x.Transaction)
	}
	return
}

type SubmitAndWaitForTransactionTreeResponse struct {
	Transaction *TransactionTree
}

func (x *SubmitAndWaitForTransactionTreeResponse) GetTransaction() *TransactionTree {
	if x == nil {
		return nil
	}
	return x.Transaction
}

func (x *SubmitAndWaitForTransactionTreeResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *SubmitAndWaitForTransactionTreeResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *SubmitAndWaitForTransactionTreeResponse) appendFields(b []byte) []byte {
	if x.Transaction != nil {
		b = appendMessage(b, 1, x.Transaction)
	}
	return b
}

func (x *SubmitAndWaitForTransactionTreeResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.Transaction = &TransactionTree{}
		n, err = consumeMessage(num, typ, b, x.Transaction)
	}
	return
}

const (
	CommandService_SubmitAndWait_FullMethodName                   = "/com.daml.ledger.api.v2.CommandService/SubmitAndWait"
	CommandService_SubmitAndWaitForTransaction_FullMethodName     = "/com.daml.ledger.api.v2.CommandService/SubmitAndWaitForTransaction"
	CommandService_SubmitAndWaitForTransactionTree_FullMethodName = "/com.daml.ledger.api.v2.CommandService/SubmitAndWaitForTransactionTree"
)

type CommandServiceClient interface {
	SubmitAndWait(ctx context.Context, in *SubmitAndWaitRequest, opts ...grpc.CallOption) (*SubmitAndWaitResponse, error)
	SubmitAndWaitForTransaction(ctx context.Context, in *SubmitAndWaitForTransactionRequest, opts ...grpc.CallOption) (*SubmitAndWaitForTransactionResponse, error)
	SubmitAndWaitForTransactionTree(ctx context.Context, in *SubmitAndWaitRequest, opts ...grpc.CallOption) (*SubmitAndWaitForTransactionTreeResponse, error)
}

type commandServiceClient struct{ cc grpc.ClientConnInterface }

func NewCommandServiceClient(cc grpc.ClientConnInterface) CommandServiceClient {
	return &commandServiceClient{cc: cc}
}

func (c *commandServiceClient) SubmitAndWait(ctx context.Context, in *SubmitAndWaitRequest, opts ...grpc.CallOption) (*SubmitAndWaitResponse, error) {
	out := new(SubmitAndWaitResponse)
	if err := c.cc.Invoke(ctx, CommandService_SubmitAndWait_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commandServiceClient) SubmitAndWaitForTransaction(ctx context.Context, in *SubmitAndWaitForTransactionRequest, opts ...grpc.CallOption) (*SubmitAndWaitForTransactionResponse, error) {
	out := new(SubmitAndWaitForTransactionResponse)
	if err := c.cc.Invoke(ctx, CommandService_SubmitAndWaitForTransaction_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *commandServiceClient) SubmitAndWaitForTransactionTree(ctx context.Context, in *SubmitAndWaitRequest, opts ...grpc.CallOption) (*SubmitAndWaitForTransactionTreeResponse, error) {
	out := new(SubmitAndWaitForTransactionTreeResponse)
	if err := c.cc.Invoke(ctx, CommandService_SubmitAndWaitForTransactionTree_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type CommandServiceServer interface {
	SubmitAndWait(context.Context, *SubmitAndWaitRequest) (*SubmitAndWaitResponse, error)
	SubmitAndWaitForTransaction(context.Context, *SubmitAndWaitForTransactionRequest) (*SubmitAndWaitForTransactionResponse, error)
	SubmitAndWaitForTransactionTree(context.Context, *SubmitAndWaitRequest) (*SubmitAndWaitForTransactionTreeResponse, error)
}

// UnimplementedCommandServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCommandServiceServer struct{}

func (UnimplementedCommandServiceServer) SubmitAndWait(context.Context, *SubmitAndWaitRequest) (*SubmitAndWaitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitAndWait not implemented")
}

func (UnimplementedCommandServiceServer) SubmitAndWaitForTransaction(context.Context, *SubmitAndWaitForTransactionRequest) (*SubmitAndWaitForTransactionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitAndWaitForTransaction not implemented")
}

func (UnimplementedCommandServiceServer) SubmitAndWaitForTransactionTree(context.Context, *SubmitAndWaitRequest) (*SubmitAndWaitForTransactionTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitAndWaitForTransactionTree not implemented")
}

func RegisterCommandServiceServer(s grpc.ServiceRegistrar, srv CommandServiceServer) {
	s.RegisterService(&CommandService_ServiceDesc, srv)
}

func _CommandService_SubmitAndWait_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitAndWaitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommandServiceServer).SubmitAndWait(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CommandService_SubmitAndWait_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommandServiceServer).SubmitAndWait(ctx, req.(*SubmitAndWaitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CommandService_SubmitAndWaitForTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitAndWaitForTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommandServiceServer).SubmitAndWaitForTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CommandService_SubmitAndWaitForTransaction_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommandServiceServer).SubmitAndWaitForTransaction(ctx, req.(*SubmitAndWaitForTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CommandService_SubmitAndWaitForTransactionTree_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitAndWaitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommandServiceServer).SubmitAndWaitForTransactionTree(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CommandService_SubmitAndWaitForTransactionTree_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommandServiceServer).SubmitAndWaitForTransactionTree(ctx, req.(*SubmitAndWaitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CommandService_ServiceDesc is the grpc.ServiceDesc for the command service.
var CommandService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "com.daml.ledger.api.v2.CommandService",
	HandlerType: (*CommandServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitAndWait", Handler: _CommandService_SubmitAndWait_Handler},
		{MethodName: "SubmitAndWaitForTransaction", Handler: _CommandService_SubmitAndWaitForTransaction_Handler},
		{MethodName: "SubmitAndWaitForTransactionTree", Handler: _CommandService_SubmitAndWaitForTransactionTree_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "com/daml/ledger/api/v2/command_service.proto",
}

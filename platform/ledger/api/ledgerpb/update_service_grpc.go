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
)

const (
	UpdateService_ServiceName = "com.daml.ledger.api.v2.UpdateService"

	UpdateService_GetUpdates_FullMethodName                 = "/com.daml.ledger.api.v2.UpdateService/GetUpdates"
	UpdateService_GetUpdateTrees_FullMethodName             = "/com.daml.ledger.api.v2.UpdateService/GetUpdateTrees"
	UpdateService_GetTransactionTreeByOffset_FullMethodName = "/com.daml.ledger.api.v2.UpdateService/GetTransactionTreeByOffset"
	UpdateService_GetTransactionTreeById_FullMethodName     = "/com.daml.ledger.api.v2.UpdateService/GetTransactionTreeById"
	UpdateService_GetUpdateByOffset_FullMethodName          = "/com.daml.ledger.api.v2.UpdateService/GetUpdateByOffset"
	UpdateService_GetUpdateById_FullMethodName              = "/com.daml.ledger.api.v2.UpdateService/GetUpdateById"
)

// UpdateServiceClient is the client API for the update service.
// Every call is sent with Codec, options passed by the caller come after it.
type UpdateServiceClient interface {
	GetUpdates(ctx context.Context, in *GetUpdatesRequest, opts ...grpc.CallOption) (UpdateService_GetUpdatesClient, error)
	GetUpdateTrees(ctx context.Context, in *GetUpdatesRequest, opts ...grpc.CallOption) (UpdateService_GetUpdateTreesClient, error)
	GetTransactionTreeByOffset(ctx context.Context, in *GetTransactionByOffsetRequest, opts ...grpc.CallOption) (*GetTransactionTreeResponse, error)
	GetTransactionTreeById(ctx context.Context, in *GetTransactionByIdRequest, opts ...grpc.CallOption) (*GetTransactionTreeResponse, error)
	GetUpdateByOffset(ctx context.Context, in *GetUpdateByOffsetRequest, opts ...grpc.CallOption) (*GetUpdateResponse, error)
	GetUpdateById(ctx context.Context, in *GetUpdateByIdRequest, opts ...grpc.CallOption) (*GetUpdateResponse, error)
}

type updateServiceClient struct{ cc grpc.ClientConnInterface }

func NewUpdateServiceClient(cc grpc.ClientConnInterface) UpdateServiceClient {
	return &updateServiceClient{cc: cc}
}

type UpdateService_GetUpdatesClient interface {
	Recv() (*GetUpdatesResponse, error)
	grpc.ClientStream
}

type updateServiceGetUpdatesClient struct{ grpc.ClientStream }

func (x *updateServiceGetUpdatesClient) Recv() (*GetUpdatesResponse, error) {
	m := new(GetUpdatesResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type UpdateService_GetUpdateTreesClient interface {
	Recv() (*GetUpdateTreesResponse, error)
	grpc.ClientStream
}

type updateServiceGetUpdateTreesClient struct{ grpc.ClientStream }

func (x *updateServiceGetUpdateTreesClient) Recv() (*GetUpdateTreesResponse, error) {
	m := new(GetUpdateTreesResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// openServerStream sends the single request of a server streaming call
func (c *updateServiceClient) openServerStream(ctx context.Context, desc *grpc.StreamDesc, method string, in any, opts []grpc.CallOption) (grpc.ClientStream, error) {
	stream, err := c.cc.NewStream(ctx, desc, method, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return stream, nil
}

func (c *updateServiceClient) GetUpdates(ctx context.Context, in *GetUpdatesRequest, opts ...grpc.CallOption) (UpdateService_GetUpdatesClient, error) {
	stream, err := c.openServerStream(ctx, &UpdateService_ServiceDesc.Streams[0], UpdateService_GetUpdates_FullMethodName, in, opts)
	if err != nil {
		return nil, err
	}
	return &updateServiceGetUpdatesClient{stream}, nil
}

func (c *updateServiceClient) GetUpdateTrees(ctx context.Context, in *GetUpdatesRequest, opts ...grpc.CallOption) (UpdateService_GetUpdateTreesClient, error) {
	stream, err := c.openServerStream(ctx, &UpdateService_ServiceDesc.Streams[1], UpdateService_GetUpdateTrees_FullMethodName, in, opts)
	if err != nil {
		return nil, err
	}
	return &updateServiceGetUpdateTreesClient{stream}, nil
}

func (c *updateServiceClient) GetTransactionTreeByOffset(ctx context.Context, in *GetTransactionByOffsetRequest, opts ...grpc.CallOption) (*GetTransactionTreeResponse, error) {
	out := new(GetTransactionTreeResponse)
	if err := c.cc.Invoke(ctx, UpdateService_GetTransactionTreeByOffset_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *updateServiceClient) GetTransactionTreeById(ctx context.Context, in *GetTransactionByIdRequest, opts ...grpc.CallOption) (*GetTransactionTreeResponse, error) {
	out := new(GetTransactionTreeResponse)
	if err := c.cc.Invoke(ctx, UpdateService_GetTransactionTreeById_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *updateServiceClient) GetUpdateByOffset(ctx context.Context, in *GetUpdateByOffsetRequest, opts ...grpc.CallOption) (*GetUpdateResponse, error) {
	out := new(GetUpdateResponse)
	if err := c.cc.Invoke(ctx, UpdateService_GetUpdateByOffset_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *updateServiceClient) GetUpdateById(ctx context.Context, in *GetUpdateByIdRequest, opts ...grpc.CallOption) (*GetUpdateResponse, error) {
	out := new(GetUpdateResponse)
	if err := c.cc.Invoke(ctx, UpdateService_GetUpdateById_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateServiceServer is the server API for the update service.
// Servers must be created with ServerCodec.
type UpdateServiceServer interface {
	GetUpdates(*GetUpdatesRequest, UpdateService_GetUpdatesServer) error
	GetUpdateTrees(*GetUpdatesRequest, UpdateService_GetUpdateTreesServer) error
	GetTransactionTreeByOffset(context.Context, *GetTransactionByOffsetRequest) (*GetTransactionTreeResponse, error)
	GetTransactionTreeById(context.Context, *GetTransactionByIdRequest) (*GetTransactionTreeResponse, error)
	GetUpdateByOffset(context.Context, *GetUpdateByOffsetRequest) (*GetUpdateResponse, error)
	GetUpdateById(context.Context, *GetUpdateByIdRequest) (*GetUpdateResponse, error)
}

// UnimplementedUpdateServiceServer can be embedded to have forward compatible implementations.
type UnimplementedUpdateServiceServer struct{}

func (UnimplementedUpdateServiceServer) GetUpdates(*GetUpdatesRequest, UpdateService_GetUpdatesServer) error {
	return status.Error(codes.Unimplemented, "method GetUpdates not implemented")
}
func (UnimplementedUpdateServiceServer) GetUpdateTrees(*GetUpdatesRequest, UpdateService_GetUpdateTreesServer) error {
	return status.Error(codes.Unimplemented, "method GetUpdateTrees not implemented")
}
func (UnimplementedUpdateServiceServer) GetTransactionTreeByOffset(context.Context, *GetTransactionByOffsetRequest) (*GetTransactionTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTransactionTreeByOffset not implemented")
}
func (UnimplementedUpdateServiceServer) GetTransactionTreeById(context.Context, *GetTransactionByIdRequest) (*GetTransactionTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTransactionTreeById not implemented")
}
func (UnimplementedUpdateServiceServer) GetUpdateByOffset(context.Context, *GetUpdateByOffsetRequest) (*GetUpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUpdateByOffset not implemented")
}
func (UnimplementedUpdateServiceServer) GetUpdateById(context.Context, *GetUpdateByIdRequest) (*GetUpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUpdateById not implemented")
}

// RegisterUpdateServiceServer registers the update service on a gRPC server.
func RegisterUpdateServiceServer(s grpc.ServiceRegistrar, srv UpdateServiceServer) {
	s.RegisterService(&UpdateService_ServiceDesc, srv)
}

type UpdateService_GetUpdatesServer interface {
	Send(*GetUpdatesResponse) error
	grpc.ServerStream
}

type updateServiceGetUpdatesServer struct{ grpc.ServerStream }

func (x *updateServiceGetUpdatesServer) Send(m *GetUpdatesResponse) error {
	return x.ServerStream.SendMsg(m)
}

type UpdateService_GetUpdateTreesServer interface {
	Send(*GetUpdateTreesResponse) error
	grpc.ServerStream
}

type updateServiceGetUpdateTreesServer struct{ grpc.ServerStream }

func (x *updateServiceGetUpdateTreesServer) Send(m *GetUpdateTreesResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _UpdateService_GetUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GetUpdatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UpdateServiceServer).GetUpdates(m, &updateServiceGetUpdatesServer{stream})
}

func _UpdateService_GetUpdateTrees_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GetUpdatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UpdateServiceServer).GetUpdateTrees(m, &updateServiceGetUpdateTreesServer{stream})
}

func _UpdateService_GetTransactionTreeByOffset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTransactionByOffsetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpdateServiceServer).GetTransactionTreeByOffset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateService_GetTransactionTreeByOffset_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpdateServiceServer).GetTransactionTreeByOffset(ctx, req.(*GetTransactionByOffsetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UpdateService_GetTransactionTreeById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTransactionByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpdateServiceServer).GetTransactionTreeById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateService_GetTransactionTreeById_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpdateServiceServer).GetTransactionTreeById(ctx, req.(*GetTransactionByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UpdateService_GetUpdateByOffset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUpdateByOffsetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpdateServiceServer).GetUpdateByOffset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateService_GetUpdateByOffset_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpdateServiceServer).GetUpdateByOffset(ctx, req.(*GetUpdateByOffsetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UpdateService_GetUpdateById_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUpdateByIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpdateServiceServer).GetUpdateById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateService_GetUpdateById_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpdateServiceServer).GetUpdateById(ctx, req.(*GetUpdateByIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UpdateService_ServiceDesc is the grpc.ServiceDesc for the update service.
var UpdateService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: UpdateService_ServiceName,
	HandlerType: (*UpdateServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTransactionTreeByOffset", Handler: _UpdateService_GetTransactionTreeByOffset_Handler},
		{MethodName: "GetTransactionTreeById", Handler: _UpdateService_GetTransactionTreeById_Handler},
		{MethodName: "GetUpdateByOffset", Handler: _UpdateService_GetUpdateByOffset_Handler},
		{MethodName: "GetUpdateById", Handler: _UpdateService_GetUpdateById_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetUpdates", Handler: _UpdateService_GetUpdates_Handler, ServerStreams: true},
		{StreamName: "GetUpdateTrees", Handler: _UpdateService_GetUpdateTrees_Handler, ServerStreams: true},
	},
	Metadata: "com/daml/ledger/api/v2/update_service.proto",
}

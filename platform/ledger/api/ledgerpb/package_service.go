/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import (
	"context"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protowire"
)

type PackageStatus int32

const (
	PackageStatus_PACKAGE_STATUS_UNSPECIFIED PackageStatus = 0
	PackageStatus_PACKAGE_STATUS_REGISTERED  PackageStatus = 1
)

var PackageStatus_name = map[int32]string{
	0: "PACKAGE_STATUS_UNSPECIFIED",
	1: "PACKAGE_STATUS_REGISTERED",
}

func (s PackageStatus) String() string {
	if n, ok := PackageStatus_name[int32(s)]; ok {
		return n
	}
	return strconv.Itoa(int(s))
}

type GetPackageStatusRequest struct {
	PackageId string
}

func (x *GetPackageStatusRequest) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetPackageStatusRequest) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetPackageStatusRequest) appendFields(b []byte) []byte {
	return appendString(b, 1, x.PackageId)
}

func (x *GetPackageStatusRequest) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		x.PackageId, n, err = consumeString(num, typ, b)
	}
	return
}

type GetPackageStatusResponse struct {
	PackageStatus PackageStatus
}

func (x *GetPackageStatusResponse) Marshal() ([]byte, error) { return marshal(x) }

func (x *GetPackageStatusResponse) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *GetPackageStatusResponse) appendFields(b []byte) []byte {
	return appendInt32(b, 1, int32(x.PackageStatus))
}

func (x *GetPackageStatusResponse) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	if num == 1 {
		var v int32
		v, n, err = consumeInt32(num, typ, b)
		x.PackageStatus = PackageStatus(v)
	}
	return
}

const PackageService_GetPackageStatus_FullMethodName = "/com.daml.ledger.api.v2.PackageService/GetPackageStatus"

type PackageServiceClient interface {
	GetPackageStatus(ctx context.Context, in *GetPackageStatusRequest, opts ...grpc.CallOption) (*GetPackageStatusResponse, error)
}

type packageServiceClient struct{ cc grpc.ClientConnInterface }

func NewPackageServiceClient(cc grpc.ClientConnInterface) PackageServiceClient {
	return &packageServiceClient{cc: cc}
}

func (c *packageServiceClient) GetPackageStatus(ctx context.Context, in *GetPackageStatusRequest, opts ...grpc.CallOption) (*GetPackageStatusResponse, error) {
	out := new(GetPackageStatusResponse)
	if err := c.cc.Invoke(ctx, PackageService_GetPackageStatus_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type PackageServiceServer interface {
	GetPackageStatus(context.Context, *GetPackageStatusRequest) (*GetPackageStatusResponse, error)
}

// UnimplementedPackageServiceServer can be embedded to have forward compatible implementations.
type UnimplementedPackageServiceServer struct{}

func (UnimplementedPackageServiceServer) GetPackageStatus(context.Context, *GetPackageStatusRequest) (*GetPackageStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPackageStatus not implemented")
}

func RegisterPackageServiceServer(s grpc.ServiceRegistrar, srv PackageServiceServer) {
	s.RegisterService(&PackageService_ServiceDesc, srv)
}

func _PackageService_GetPackageStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPackageStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PackageServiceServer).GetPackageStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PackageService_GetPackageStatus_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PackageServiceServer).GetPackageStatus(ctx, req.(*GetPackageStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PackageService_ServiceDesc is the grpc.ServiceDesc for the package service.
var PackageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "com.daml.ledger.api.v2.PackageService",
	HandlerType: (*PackageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPackageStatus", Handler: _PackageService_GetPackageStatus_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "com/daml/ledger/api/v2/package_service.proto",
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import (
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype the codec is announced with.
// The bytes on the wire are plain protobuf, so servers decode them with their own proto codec.
const CodecName = "proto"

// Codec carries ledger API messages over gRPC.
// Standard protobuf messages (e.g. health checks) are delegated to the protobuf runtime.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.Marshal()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, errors.Errorf("cannot marshal [%T]: not a ledger api message", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.Unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return errors.Errorf("cannot unmarshal into [%T]: not a ledger api message", v)
	}
}

func (Codec) Name() string {
	return CodecName
}

// withCodec prepends the codec call option, so that callers can still override it
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
}

// ServerCodec is the server option that test and embedded servers need to decode ledger api messages
func ServerCodec() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}

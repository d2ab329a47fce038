/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledgerpb holds the messages and service stubs of the ledger API (com.daml.ledger.api.v2)
// used by this client, encoded field by field with protowire.
//
// Sub-messages the client never looks into (Daml values, reassignments, topology transactions,
// trace contexts) are kept as their raw encoding, so that they survive a decode/encode cycle
// unchanged. For those fields nil means absent.
package ledgerpb

import (
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	// ErrDecode is the cause of every decoding failure
	ErrDecode = errors.New("malformed ledger api message")
)

// Message is a ledger API message
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
}

type message interface {
	appendFields(b []byte) []byte
	consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error)
}

func marshal(m message) ([]byte, error) {
	return m.appendFields(nil), nil
}

// unmarshal decodes b into m. Fields m does not know are skipped.
func unmarshal(b []byte, m message) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return parseError(protowire.ParseError(n), "tag")
		}
		b = b[n:]
		n, err := m.consumeField(num, typ, b)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return parseError(protowire.ParseError(n), "unknown field %d", num)
			}
		}
		b = b[n:]
	}
	return nil
}

func parseError(err error, format string, args ...any) error {
	return errors.Wrapf(ErrDecode, "%s: "+format, append([]any{err}, args...)...)
}

func wireTypeError(num protowire.Number, typ protowire.Type) error {
	return errors.Wrapf(ErrDecode, "unexpected wire type %d for field %d", typ, num)
}

// encoding

func appendString(b []byte, num protowire.Number, v string) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendRepeatedString(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// appendOptionalInt64 encodes v even when it is zero, as long as it is set
func appendOptionalInt64(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	// negative values are sign extended to 64 bits
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// appendRaw encodes an opaque sub-message. nil means absent, an empty slice is an empty message.
func appendRaw(b []byte, num protowire.Number, v []byte) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendRepeatedRaw(b []byte, num protowire.Number, vs [][]byte) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}
	return b
}

func appendMessage(b []byte, num protowire.Number, m message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendFields(nil))
}

// appendTimestamp writes google.protobuf.Timestamp{seconds = 1, nanos = 2}
func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	if ts == nil {
		return b
	}
	var raw []byte
	raw = appendInt64(raw, 1, ts.GetSeconds())
	raw = appendInt32(raw, 2, ts.GetNanos())
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw)
}

// appendDuration writes google.protobuf.Duration{seconds = 1, nanos = 2}
func appendDuration(b []byte, num protowire.Number, d *durationpb.Duration) []byte {
	if d == nil {
		return b
	}
	var raw []byte
	raw = appendInt64(raw, 1, d.GetSeconds())
	raw = appendInt32(raw, 2, d.GetNanos())
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw)
}

// decoding

func consumeString(num protowire.Number, typ protowire.Type, b []byte) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, parseError(protowire.ParseError(n), "field %d", num)
	}
	return v, n, nil
}

func consumeVarint(num protowire.Number, typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, parseError(protowire.ParseError(n), "field %d", num)
	}
	return v, n, nil
}

func consumeInt64(num protowire.Number, typ protowire.Type, b []byte) (int64, int, error) {
	v, n, err := consumeVarint(num, typ, b)
	return int64(v), n, err
}

func consumeInt32(num protowire.Number, typ protowire.Type, b []byte) (int32, int, error) {
	v, n, err := consumeVarint(num, typ, b)
	return int32(v), n, err
}

func consumeBool(num protowire.Number, typ protowire.Type, b []byte) (bool, int, error) {
	v, n, err := consumeVarint(num, typ, b)
	return protowire.DecodeBool(v), n, err
}

// consumeBytes copies the value out of b, the codec may reuse its buffer
func consumeBytes(num protowire.Number, typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, parseError(protowire.ParseError(n), "field %d", num)
	}
	return append(make([]byte, 0, len(v)), v...), n, nil
}

func consumeMessage(num protowire.Number, typ protowire.Type, b []byte, m message) (int, error) {
	if typ != protowire.BytesType {
		return 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, parseError(protowire.ParseError(n), "field %d", num)
	}
	if err := unmarshal(v, m); err != nil {
		return 0, errors.WithMessagef(err, "field %d", num)
	}
	return n, nil
}

func consumeTimestamp(num protowire.Number, typ protowire.Type, b []byte) (*timestamppb.Timestamp, int, error) {
	raw, n, err := consumeBytes(num, typ, b)
	if err != nil {
		return nil, 0, err
	}
	ts := &timestamppb.Timestamp{}
	if err := proto.Unmarshal(raw, ts); err != nil {
		return nil, 0, errors.Wrapf(ErrDecode, "timestamp in field %d: %s", num, err)
	}
	return ts, n, nil
}

func consumeDuration(num protowire.Number, typ protowire.Type, b []byte) (*durationpb.Duration, int, error) {
	raw, n, err := consumeBytes(num, typ, b)
	if err != nil {
		return nil, 0, err
	}
	d := &durationpb.Duration{}
	if err := proto.Unmarshal(raw, d); err != nil {
		return nil, 0, errors.Wrapf(ErrDecode, "duration in field %d: %s", num, err)
	}
	return d, n, nil
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package updates

import (
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/data"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrStreamClosed is returned by a stream after Close
	ErrStreamClosed = status.Error(codes.Canceled, "stream closed")
	// ErrNotATransaction is returned by lookups that find an update of another kind
	ErrNotATransaction = errors.New("update is not a transaction")

	ErrInvalidRange      = data.ErrInvalidRange
	ErrConflictingFilter = data.ErrConflictingFilter
	ErrMissingFilter     = data.ErrMissingFilter
	ErrEmptyUpdateID     = data.ErrEmptyUpdateID
)

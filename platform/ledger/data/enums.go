/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package data

import "github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"

// TransactionShape tells how much of a transaction the server returns
type TransactionShape int32

const (
	TransactionShapeUnspecified TransactionShape = iota
	// TransactionShapeAcsDelta returns only the events that change the active contract set
	TransactionShapeAcsDelta
	// TransactionShapeLedgerEffects returns all the events of the transaction
	TransactionShapeLedgerEffects

	// TransactionShapeUnrecognized stands for a value sent by a newer server.
	// It is sent back as unspecified.
	TransactionShapeUnrecognized TransactionShape = -1
)

func (s TransactionShape) String() string {
	switch s {
	case TransactionShapeUnspecified:
		return "Unspecified"
	case TransactionShapeAcsDelta:
		return "AcsDelta"
	case TransactionShapeLedgerEffects:
		return "LedgerEffects"
	default:
		return "Unrecognized"
	}
}

func (s TransactionShape) ToProto() ledgerpb.TransactionShape {
	switch s {
	case TransactionShapeAcsDelta:
		return ledgerpb.TransactionShape_TRANSACTION_SHAPE_ACS_DELTA
	case TransactionShapeLedgerEffects:
		return ledgerpb.TransactionShape_TRANSACTION_SHAPE_LEDGER_EFFECTS
	default:
		return ledgerpb.TransactionShape_TRANSACTION_SHAPE_UNSPECIFIED
	}
}

func TransactionShapeFromProto(s ledgerpb.TransactionShape) TransactionShape {
	switch s {
	case ledgerpb.TransactionShape_TRANSACTION_SHAPE_UNSPECIFIED:
		return TransactionShapeUnspecified
	case ledgerpb.TransactionShape_TRANSACTION_SHAPE_ACS_DELTA:
		return TransactionShapeAcsDelta
	case ledgerpb.TransactionShape_TRANSACTION_SHAPE_LEDGER_EFFECTS:
		return TransactionShapeLedgerEffects
	default:
		return TransactionShapeUnrecognized
	}
}

// PackageStatus tells whether a package is known to the participant
type PackageStatus int32

const (
	PackageStatusUnspecified PackageStatus = iota
	PackageStatusRegistered

	PackageStatusUnrecognized PackageStatus = -1
)

func (s PackageStatus) String() string {
	switch s {
	case PackageStatusUnspecified:
		return "Unspecified"
	case PackageStatusRegistered:
		return "Registered"
	default:
		return "Unrecognized"
	}
}

func (s PackageStatus) ToProto() ledgerpb.PackageStatus {
	if s == PackageStatusRegistered {
		return ledgerpb.PackageStatus_PACKAGE_STATUS_REGISTERED
	}
	return ledgerpb.PackageStatus_PACKAGE_STATUS_UNSPECIFIED
}

func PackageStatusFromProto(s ledgerpb.PackageStatus) PackageStatus {
	switch s {
	case ledgerpb.PackageStatus_PACKAGE_STATUS_UNSPECIFIED:
		return PackageStatusUnspecified
	case ledgerpb.PackageStatus_PACKAGE_STATUS_REGISTERED:
		return PackageStatusRegistered
	default:
		return PackageStatusUnrecognized
	}
}

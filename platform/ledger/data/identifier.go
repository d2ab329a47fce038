/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package data holds the client side records of the ledger API and their conversion from and to
// the wire messages in ledgerpb. Records are plain values: conversions allocate fresh slices and
// never keep references to the message they were built from.
package data

import (
	"fmt"
	"strings"

	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/hyperledger-labs/daml-ledger-go/platform/ledger/api/ledgerpb"
)

// Identifier names a template or an interface
type Identifier struct {
	PackageID  string
	ModuleName string
	EntityName string
}

func (i Identifier) String() string {
	return fmt.Sprintf("%s:%s:%s", i.PackageID, i.ModuleName, i.EntityName)
}

// ParseIdentifier parses the form printed by String, package:module:entity.
// The package may be given by name, as in #my-package:Main:Iou.
func ParseIdentifier(s string) (Identifier, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Identifier{}, errors.Wrapf(ErrMalformedIdentifier, "[%s]", s)
	}
	return Identifier{PackageID: parts[0], ModuleName: parts[1], EntityName: parts[2]}, nil
}

func (i Identifier) ToProto() *ledgerpb.Identifier {
	return &ledgerpb.Identifier{
		PackageId:  i.PackageID,
		ModuleName: i.ModuleName,
		EntityName: i.EntityName,
	}
}

func IdentifierFromProto(id *ledgerpb.Identifier) Identifier {
	return Identifier{
		PackageID:  id.GetPackageId(),
		ModuleName: id.GetModuleName(),
		EntityName: id.GetEntityName(),
	}
}

func optionalIdentifierToProto(id *Identifier) *ledgerpb.Identifier {
	if id == nil {
		return nil
	}
	return id.ToProto()
}

func optionalIdentifierFromProto(id *ledgerpb.Identifier) *Identifier {
	if id == nil {
		return nil
	}
	i := IdentifierFromProto(id)
	return &i
}

func identifiersToProto(ids []Identifier) []*ledgerpb.Identifier {
	if len(ids) == 0 {
		return nil
	}
	out := make([]*ledgerpb.Identifier, len(ids))
	for i, id := range ids {
		out[i] = id.ToProto()
	}
	return out
}

func identifiersFromProto(ids []*ledgerpb.Identifier) []Identifier {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Identifier, len(ids))
	for i, id := range ids {
		out[i] = IdentifierFromProto(id)
	}
	return out
}

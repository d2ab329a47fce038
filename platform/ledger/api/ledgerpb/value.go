/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerpb

import "google.golang.org/protobuf/encoding/protowire"

// Identifier names a template or interface.
// Field 2 is the retired module-qualified name and is not used.
type Identifier struct {
	PackageId  string
	ModuleName string
	EntityName string
}

func (x *Identifier) GetPackageId() string {
	if x == nil {
		return ""
	}
	return x.PackageId
}

func (x *Identifier) GetModuleName() string {
	if x == nil {
		return ""
	}
	return x.ModuleName
}

func (x *Identifier) GetEntityName() string {
	if x == nil {
		return ""
	}
	return x.EntityName
}

func (x *Identifier) Marshal() ([]byte, error) { return marshal(x) }

func (x *Identifier) Unmarshal(b []byte) error { return unmarshal(b, x) }

func (x *Identifier) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.PackageId)
	b = appendString(b, 3, x.ModuleName)
	b = appendString(b, 4, x.EntityName)
	return b
}

func (x *Identifier) consumeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
	switch num {
	case 1:
		x.PackageId, n, err = consumeString(num, typ, b)
	case 3:
		x.ModuleName, n, err = consumeString(num, typ, b)
	case 4:
		x.EntityName, n, err = consumeString(num, typ, b)
	}
	return
}

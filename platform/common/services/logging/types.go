/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections"
)

// Keys logs lazily the keys of a map
func Keys[K comparable, V any](m map[K]V) fmt.Stringer {
	return keys[K, V](m)
}

type keys[K comparable, V any] map[K]V

func (k keys[K, V]) String() string {
	ks := make([]string, 0, len(k))
	for _, key := range collections.Keys(k) {
		ks = append(ks, fmt.Sprintf("%v", key))
	}
	sort.Strings(ks)
	return strings.Join(ks, ", ")
}

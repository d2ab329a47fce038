/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package iterators

import (
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
)

// FlattenOptional lazily extracts at most one B out of every A.
// The As that carry nothing are skipped, the order of the others is preserved.
// Errors of the underlying iterator are returned unchanged.
func FlattenOptional[A any, B any](iterator Iterator[*A], extract Extractor[*A, *B]) Iterator[*B] {
	return &flattenedOptional[A, B]{Iterator: iterator, extract: extract}
}

type flattenedOptional[A any, B any] struct {
	Iterator[*A]
	extract Extractor[*A, *B]
}

func (it *flattenedOptional[A, B]) Next() (*B, error) {
	for {
		next, err := it.Iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, nil
		}
		item, ok, err := it.extract(next)
		if err != nil {
			return nil, errors.Wrapf(err, "failed transforming")
		}
		if ok {
			return item, nil
		}
	}
}

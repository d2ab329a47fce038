/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package iterators

import "iter"

// All exposes the iterator as a sequence for range-over-func loops.
// The iterator is closed when the loop ends, on exhaustion, error or break.
// An error is yielded once, as the last element.
func All[V any](it Iterator[*V]) iter.Seq2[*V, error] {
	return func(yield func(*V, error) bool) {
		defer it.Close()
		for {
			item, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if item == nil {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

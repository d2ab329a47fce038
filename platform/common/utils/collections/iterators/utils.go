/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package iterators

// Limit returns the first n items of it, then reports exhaustion without reading further.
// A non-positive n returns it unchanged.
func Limit[T any](it Iterator[*T], n int) Iterator[*T] {
	if n <= 0 {
		return it
	}
	return &limited[T]{Iterator: it, left: n}
}

type limited[T any] struct {
	Iterator[*T]
	left int
}

func (it *limited[T]) Next() (*T, error) {
	if it.left == 0 {
		return nil, nil
	}
	it.left--
	return it.Iterator.Next()
}

// ForEach executes the given ConsumeFunc for each element of the Iterator
func ForEach[V any](it Iterator[*V], consume ConsumeFunc[*V]) error {
	defer it.Close()
	for {
		item, err := it.Next()
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		if err := consume(item); err != nil {
			return err
		}
	}
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package collections

import (
	"cmp"
	"slices"
)

type Set[V comparable] interface {
	Add(...V)
	Contains(V) bool
	ToSlice() []V
	Empty() bool
	Length() int
}

type set[V comparable] map[V]struct{}

func NewSet[V comparable](items ...V) Set[V] {
	s := make(set[V], len(items))
	s.Add(items...)
	return &s
}

func (s *set[V]) Add(vs ...V) {
	for _, v := range vs {
		(*s)[v] = struct{}{}
	}
}

func (s *set[V]) Contains(v V) bool {
	_, ok := (*s)[v]
	return ok
}

func (s *set[V]) ToSlice() []V {
	return Keys(*s)
}

func (s *set[V]) Length() int {
	return len(*s)
}

func (s *set[V]) Empty() bool {
	return s.Length() == 0
}

// Sorted returns the elements of s in ascending order
func Sorted[V cmp.Ordered](s Set[V]) []V {
	res := s.ToSlice()
	slices.Sort(res)
	return res
}

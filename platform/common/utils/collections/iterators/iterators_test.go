/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package iterators_test

import (
	"errors"
	"io"
	"testing"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils/collections/iterators"
	. "github.com/onsi/gomega"
)

type sliceIterator[T any] struct {
	items []*T
}

func slice[T any](items ...*T) iterators.Iterator[*T] {
	return &sliceIterator[T]{items: items}
}

func (it *sliceIterator[T]) Next() (*T, error) {
	if len(it.items) == 0 {
		return nil, nil
	}
	item := it.items[0]
	it.items = it.items[1:]
	return item, nil
}

func (it *sliceIterator[T]) Close() {}

func readAll[T any](it iterators.Iterator[*T]) ([]*T, error) {
	var items []*T
	err := iterators.ForEach(it, func(item *T) error {
		items = append(items, item)
		return nil
	})
	return items, err
}

type envelope struct {
	payload *int
}

func ptr(i int) *int { return &i }

func extractPayload(e *envelope) (*int, bool, error) {
	return e.payload, e.payload != nil, nil
}

func TestFlattenOptional(t *testing.T) {
	RegisterTestingT(t)

	it := iterators.FlattenOptional(slice(
		&envelope{payload: ptr(1)},
		&envelope{},
		&envelope{},
		&envelope{payload: ptr(2)},
		&envelope{},
		&envelope{payload: ptr(3)},
	), extractPayload)

	items, err := readAll(it)
	Expect(err).NotTo(HaveOccurred())
	Expect(items).To(HaveLen(3))
	Expect(*items[0]).To(Equal(1))
	Expect(*items[1]).To(Equal(2))
	Expect(*items[2]).To(Equal(3))
}

func TestFlattenOptionalOnlyEmpty(t *testing.T) {
	RegisterTestingT(t)

	it := iterators.FlattenOptional(slice(&envelope{}, &envelope{}), extractPayload)

	items, err := readAll(it)
	Expect(err).NotTo(HaveOccurred())
	Expect(items).To(BeEmpty())
}

type fakeStream struct {
	items []*int
	err   error
}

func (s *fakeStream) Recv() (*int, error) {
	if len(s.items) == 0 {
		return nil, s.err
	}
	n := s.items[0]
	s.items = s.items[1:]
	return n, nil
}

func TestStream(t *testing.T) {
	RegisterTestingT(t)

	closed := 0
	it := iterators.Stream[*int](&fakeStream{items: []*int{ptr(1), ptr(2)}, err: io.EOF}, func() { closed++ })

	items, err := readAll(it)
	Expect(err).NotTo(HaveOccurred())
	Expect(items).To(HaveLen(2))
	Expect(closed).To(Equal(1))

	// closing twice runs the hook once
	it.Close()
	Expect(closed).To(Equal(1))
}

func TestStreamErrorKeepsPartialResults(t *testing.T) {
	RegisterTestingT(t)

	boom := errors.New("boom")
	it := iterators.Stream[*int](&fakeStream{items: []*int{ptr(1)}, err: boom}, nil)

	items, err := readAll(it)
	Expect(err).To(BeIdenticalTo(boom))
	Expect(items).To(HaveLen(1))
}

func TestAllStopsOnBreak(t *testing.T) {
	RegisterTestingT(t)

	closed := false
	it := iterators.Stream[*int](&fakeStream{items: []*int{ptr(1), ptr(2), ptr(3)}, err: io.EOF}, func() { closed = true })

	var seen []int
	for item, err := range iterators.All(it) {
		Expect(err).NotTo(HaveOccurred())
		seen = append(seen, *item)
		if len(seen) == 2 {
			break
		}
	}
	Expect(seen).To(Equal([]int{1, 2}))
	Expect(closed).To(BeTrue())
}

func TestLimit(t *testing.T) {
	RegisterTestingT(t)

	s := &fakeStream{items: []*int{ptr(1), ptr(2), ptr(3)}, err: io.EOF}
	closed := false
	items, err := readAll(iterators.Limit(iterators.Stream[*int](s, func() { closed = true }), 2))
	Expect(err).NotTo(HaveOccurred())
	Expect(items).To(HaveLen(2))
	Expect(closed).To(BeTrue())
	// the third item is never read
	Expect(s.items).To(HaveLen(1))

	items, err = readAll(iterators.Limit(slice(ptr(1), ptr(2)), 0))
	Expect(err).NotTo(HaveOccurred())
	Expect(items).To(HaveLen(2))
}

func TestMap(t *testing.T) {
	RegisterTestingT(t)

	it := iterators.Map(slice(ptr(1), ptr(2)), func(i *int) (*int, error) {
		return ptr(*i * 10), nil
	})
	var got []int
	Expect(iterators.ForEach(it, func(i *int) error {
		got = append(got, *i)
		return nil
	})).To(Succeed())
	Expect(got).To(Equal([]int{10, 20}))
}

func TestForEachStopsOnError(t *testing.T) {
	RegisterTestingT(t)

	boom := errors.New("boom")
	seen := 0
	err := iterators.ForEach(slice(ptr(1), ptr(2), ptr(3)), func(i *int) error {
		seen++
		if *i == 2 {
			return boom
		}
		return nil
	})
	Expect(err).To(BeIdenticalTo(boom))
	Expect(seen).To(Equal(2))
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package iterators

import (
	"io"

	"github.com/hyperledger-labs/daml-ledger-go/platform/common/utils"
)

type stream[T any] interface {
	Recv() (T, error)
}

// Stream turns a server-streaming client into an Iterator.
// io.EOF is reported as exhaustion, any other error is returned unchanged.
// onClose runs once, on the first call to Close.
func Stream[T any](cli stream[T], onClose func()) Iterator[T] {
	return &streamIterator[T]{cli: cli, onClose: onClose}
}

type streamIterator[T any] struct {
	cli     stream[T]
	onClose func()
}

func (it *streamIterator[T]) Next() (T, error) {
	if n, err := it.cli.Recv(); err == nil {
		return n, nil
	} else if err == io.EOF {
		return utils.Zero[T](), nil
	} else {
		return utils.Zero[T](), err
	}
}

func (it *streamIterator[T]) Close() {
	if it.onClose != nil {
		it.onClose()
		it.onClose = nil
	}
}

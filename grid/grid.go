// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid binds lattice structures to element buffers.
//
// A grid is a structure plus the buffer it addresses. Views, projections
// and transposes of a grid return new grids over the same buffer, so
// writes through any of them are visible through all the others. Grids do
// no synchronization of their own.
package grid

import (
	"fmt"
	"iter"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/array"
)

// Float is the constraint of the element types compared by the EqualFloat
// functions.
type Float interface {
	~float32 | ~float64
}

type spanner interface {
	Span() (lo, hi int, ok bool)
}

// checkSpan verifies that every offset addressed by s lies in the buffer.
func checkSpan[T any](s spanner, data array.Dense[T]) error {
	_, hi, ok := s.Span()
	if ok && hi >= data.Len() {
		return fmt.Errorf("%w: %s addresses offset %d of buffer of length %d",
			lattices.ErrOutOfBounds, s, hi, data.Len())
	}
	return nil
}

// sameBuffer reports whether a and b share their first element, as grids
// derived from one another do.
func sameBuffer[T any](a, b array.Dense[T]) bool {
	ae, be := a.Elems(), b.Elems()
	return len(ae) > 0 && len(be) > 0 && &ae[0] == &be[0]
}

func extentMismatch(a, b fmt.Stringer) error {
	return fmt.Errorf("%w: extent %s, other extent %s", lattices.ErrDimensionMismatch, a, b)
}

// reduce folds the values of seq with f, the first value being the
// initial accumulator.
func reduce[I, T any](seq iter.Seq2[I, T], f func(acc, v T) T) (T, bool) {
	var acc T
	first := true
	for _, v := range seq {
		if first {
			acc, first = v, false
			continue
		}
		acc = f(acc, v)
	}
	return acc, !first
}

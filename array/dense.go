// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array provides the flat element buffers that lattice structures
// address.
package array

import (
	"fmt"
	"slices"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/dtype"
)

// Dense is a fixed-length buffer of elements. Copies of a Dense value
// share the same elements; use Copy to duplicate them.
type Dense[T any] struct {
	elems []T
}

// New returns a zeroed buffer of n elements. It fails with
// lattices.ErrOutOfBounds if n is negative.
func New[T any](n int) (Dense[T], error) {
	if n < 0 {
		return Dense[T]{}, fmt.Errorf("%w: buffer length %d", lattices.ErrOutOfBounds, n)
	}
	return Dense[T]{elems: make([]T, n)}, nil
}

// Of returns a buffer holding a copy of elems.
func Of[T any](elems ...T) Dense[T] {
	return Dense[T]{elems: slices.Clone(elems)}
}

// Wrap returns a buffer sharing elems with the caller.
func Wrap[T any](elems []T) Dense[T] {
	return Dense[T]{elems: elems}
}

// Len returns the number of elements.
func (d Dense[T]) Len() int { return len(d.elems) }

// Get returns the element at offset i, which must be in [0, Len()).
func (d Dense[T]) Get(i int) T { return d.elems[i] }

// Set stores v at offset i, which must be in [0, Len()).
func (d Dense[T]) Set(i int, v T) { d.elems[i] = v }

// Elems returns the underlying elements, shared with d.
func (d Dense[T]) Elems() []T { return d.elems }

// Copy returns a buffer holding a copy of all elements.
func (d Dense[T]) Copy() Dense[T] {
	return Dense[T]{elems: slices.Clone(d.elems)}
}

// CopyRange returns a buffer holding a copy of the n elements starting at
// offset start.
func (d Dense[T]) CopyRange(start, n int) (Dense[T], error) {
	if start < 0 || n < 0 || start > len(d.elems)-n {
		return Dense[T]{}, fmt.Errorf("%w: copy of %d elements at %d from buffer of length %d",
			lattices.ErrOutOfBounds, n, start, len(d.elems))
	}
	return Dense[T]{elems: slices.Clone(d.elems[start : start+n])}, nil
}

// Like returns a new zeroed buffer of n elements of the same type.
func (d Dense[T]) Like(n int) (Dense[T], error) {
	return New[T](n)
}

// Fill sets every element to v.
func (d Dense[T]) Fill(v T) {
	for i := range d.elems {
		d.elems[i] = v
	}
}

// DType returns the data type of the elements, and false if T has no
// fixed-size representation.
func (d Dense[T]) DType() (dtype.DType, bool) {
	return dtype.Of[T]()
}

// ByteSize returns the number of bytes occupied by the elements. It fails
// if T has no fixed-size representation.
func (d Dense[T]) ByteSize() (int, error) {
	dt, ok := d.DType()
	if !ok {
		return 0, fmt.Errorf("no data type for elements of type %T", *new(T))
	}
	return dt.ByteSize(len(d.elems))
}

func (d Dense[T]) String() string {
	return fmt.Sprintf("Dense%v", d.elems)
}

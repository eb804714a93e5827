// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import "errors"

var (
	// ErrOutOfBounds is returned for negative sizes, size overflows, ranges
	// exceeding their containing extent and projection indexes outside
	// their axis.
	ErrOutOfBounds = errors.New("lattices: out of bounds")

	// ErrRequired is returned when a mandatory component, such as a layout,
	// a view or a projection, is missing.
	ErrRequired = errors.New("lattices: required value missing")

	// ErrDimensionMismatch is returned when N-dimensional components of
	// different rank are combined.
	ErrDimensionMismatch = errors.New("lattices: dimension mismatch")

	// ErrNotInvertible is returned by CheckedIndex when an offset cannot be
	// mapped back to an index of the structure.
	ErrNotInvertible = errors.New("lattices: offset not invertible")
)

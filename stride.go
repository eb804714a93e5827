// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"slices"
)

// Stride1d is the step between consecutive elements of a one-dimensional
// layout, or the downsampling factor of a stride view.
type Stride1d struct {
	value int
}

// NewStride1d returns a Stride1d, failing with ErrOutOfBounds for a
// negative value.
func NewStride1d(value int) (Stride1d, error) {
	if value < 0 {
		return Stride1d{}, fmt.Errorf("%w: stride [%d]", ErrOutOfBounds, value)
	}
	return Stride1d{value: value}, nil
}

// MustStride1d is like NewStride1d but panics on error.
func MustStride1d(value int) Stride1d {
	return must(NewStride1d(value))
}

func (s Stride1d) Value() int { return s.value }

func (s Stride1d) String() string { return fmt.Sprintf("Stride[%d]", s.value) }

// Stride2d holds the row and column steps of a two-dimensional layout.
type Stride2d struct {
	row int
	col int
}

// NewStride2d returns a Stride2d, failing with ErrOutOfBounds if any step
// is negative.
func NewStride2d(row, col int) (Stride2d, error) {
	if row < 0 || col < 0 {
		return Stride2d{}, fmt.Errorf("%w: stride [%d, %d]", ErrOutOfBounds, row, col)
	}
	return Stride2d{row: row, col: col}, nil
}

// MustStride2d is like NewStride2d but panics on error.
func MustStride2d(row, col int) Stride2d {
	return must(NewStride2d(row, col))
}

func (s Stride2d) Row() int { return s.row }
func (s Stride2d) Col() int { return s.col }

func (s Stride2d) String() string { return fmt.Sprintf("Stride[%d, %d]", s.row, s.col) }

// Stride3d holds the slice, row and column steps of a three-dimensional
// layout.
type Stride3d struct {
	slice int
	row   int
	col   int
}

// NewStride3d returns a Stride3d, failing with ErrOutOfBounds if any step
// is negative.
func NewStride3d(slice, row, col int) (Stride3d, error) {
	if slice < 0 || row < 0 || col < 0 {
		return Stride3d{}, fmt.Errorf("%w: stride [%d, %d, %d]", ErrOutOfBounds, slice, row, col)
	}
	return Stride3d{slice: slice, row: row, col: col}, nil
}

// MustStride3d is like NewStride3d but panics on error.
func MustStride3d(slice, row, col int) Stride3d {
	return must(NewStride3d(slice, row, col))
}

func (s Stride3d) Slice() int { return s.slice }
func (s Stride3d) Row() int   { return s.row }
func (s Stride3d) Col() int   { return s.col }

func (s Stride3d) String() string {
	return fmt.Sprintf("Stride[%d, %d, %d]", s.slice, s.row, s.col)
}

// StrideNd holds the per-dimension steps of an N-dimensional layout.
type StrideNd struct {
	steps []int
}

// NewStrideNd returns a StrideNd holding a copy of steps.
func NewStrideNd(steps ...int) (StrideNd, error) {
	if len(steps) == 0 {
		return StrideNd{}, fmt.Errorf("%w: stride needs at least one dimension", ErrDimensionMismatch)
	}
	for _, v := range steps {
		if v < 0 {
			return StrideNd{}, fmt.Errorf("%w: stride %v", ErrOutOfBounds, steps)
		}
	}
	return StrideNd{steps: slices.Clone(steps)}, nil
}

// MustStrideNd is like NewStrideNd but panics on error.
func MustStrideNd(steps ...int) StrideNd {
	return must(NewStrideNd(steps...))
}

// Rank returns the number of dimensions.
func (s StrideNd) Rank() int { return len(s.steps) }

// At returns the step of the given dimension.
func (s StrideNd) At(dim int) int { return s.steps[dim] }

// Steps returns a copy of all steps.
func (s StrideNd) Steps() []int { return slices.Clone(s.steps) }

// Equal reports whether s and o hold the same steps.
func (s StrideNd) Equal(o StrideNd) bool { return slices.Equal(s.steps, o.steps) }

func (s StrideNd) String() string { return "Stride" + formatInts(s.steps) }

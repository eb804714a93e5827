// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"slices"
	"strings"
)

// Extent1d is the size of a one-dimensional structure.
type Extent1d struct {
	size int
}

// NewExtent1d returns an Extent1d of the given size, or an error wrapping
// ErrOutOfBounds if the size is negative.
func NewExtent1d(size int) (Extent1d, error) {
	if size < 0 {
		return Extent1d{}, fmt.Errorf("%w: extent [%d]", ErrOutOfBounds, size)
	}
	return Extent1d{size: size}, nil
}

// MustExtent1d is like NewExtent1d but panics on error.
func MustExtent1d(size int) Extent1d {
	return must(NewExtent1d(size))
}

// Size returns the number of elements.
func (e Extent1d) Size() int { return e.size }

// Nd converts the extent to its N-dimensional form.
func (e Extent1d) Nd() ExtentNd { return ExtentNd{dims: []int{e.size}, size: e.size} }

func (e Extent1d) String() string { return fmt.Sprintf("[%d]", e.size) }

// Extent2d is the shape of a two-dimensional structure.
type Extent2d struct {
	rows int
	cols int
}

// NewExtent2d returns an Extent2d with the given number of rows and
// columns. It fails with ErrOutOfBounds if either is negative or if
// rows*cols overflows int.
func NewExtent2d(rows, cols int) (Extent2d, error) {
	if _, err := checkedProduct(rows, cols); err != nil {
		return Extent2d{}, fmt.Errorf("extent [%d, %d]: %w", rows, cols, err)
	}
	return Extent2d{rows: rows, cols: cols}, nil
}

// MustExtent2d is like NewExtent2d but panics on error.
func MustExtent2d(rows, cols int) Extent2d {
	return must(NewExtent2d(rows, cols))
}

func (e Extent2d) Rows() int { return e.rows }
func (e Extent2d) Cols() int { return e.cols }

// Size returns the number of elements, rows*cols.
func (e Extent2d) Size() int { return e.rows * e.cols }

// Nd converts the extent to its N-dimensional form.
func (e Extent2d) Nd() ExtentNd {
	return ExtentNd{dims: []int{e.rows, e.cols}, size: e.Size()}
}

func (e Extent2d) String() string { return fmt.Sprintf("[%d, %d]", e.rows, e.cols) }

// Extent3d is the shape of a three-dimensional structure.
type Extent3d struct {
	slices int
	rows   int
	cols   int
}

// NewExtent3d returns an Extent3d. It fails with ErrOutOfBounds if any
// size is negative or if the element count overflows int.
func NewExtent3d(slices, rows, cols int) (Extent3d, error) {
	if _, err := checkedProduct(slices, rows, cols); err != nil {
		return Extent3d{}, fmt.Errorf("extent [%d, %d, %d]: %w", slices, rows, cols, err)
	}
	return Extent3d{slices: slices, rows: rows, cols: cols}, nil
}

// MustExtent3d is like NewExtent3d but panics on error.
func MustExtent3d(slices, rows, cols int) Extent3d {
	return must(NewExtent3d(slices, rows, cols))
}

func (e Extent3d) Slices() int { return e.slices }
func (e Extent3d) Rows() int   { return e.rows }
func (e Extent3d) Cols() int   { return e.cols }

// Size returns the number of elements, slices*rows*cols.
func (e Extent3d) Size() int { return e.slices * e.rows * e.cols }

// Nd converts the extent to its N-dimensional form.
func (e Extent3d) Nd() ExtentNd {
	return ExtentNd{dims: []int{e.slices, e.rows, e.cols}, size: e.Size()}
}

func (e Extent3d) String() string {
	return fmt.Sprintf("[%d, %d, %d]", e.slices, e.rows, e.cols)
}

// ExtentNd is the shape of a structure of arbitrary rank. Dimensions are
// ordered from outermost to innermost.
type ExtentNd struct {
	dims []int
	size int
}

// NewExtentNd returns an ExtentNd with the given dimensions, which are
// copied. At least one dimension is required.
func NewExtentNd(dims ...int) (ExtentNd, error) {
	if len(dims) == 0 {
		return ExtentNd{}, fmt.Errorf("%w: extent needs at least one dimension", ErrDimensionMismatch)
	}
	size, err := checkedProduct(dims...)
	if err != nil {
		return ExtentNd{}, fmt.Errorf("extent %v: %w", dims, err)
	}
	return ExtentNd{dims: slices.Clone(dims), size: size}, nil
}

// MustExtentNd is like NewExtentNd but panics on error.
func MustExtentNd(dims ...int) ExtentNd {
	return must(NewExtentNd(dims...))
}

// Rank returns the number of dimensions.
func (e ExtentNd) Rank() int { return len(e.dims) }

// At returns the size of the given dimension.
func (e ExtentNd) At(dim int) int { return e.dims[dim] }

// Dims returns a copy of all dimension sizes.
func (e ExtentNd) Dims() []int { return slices.Clone(e.dims) }

// Size returns the number of elements.
func (e ExtentNd) Size() int { return e.size }

// Equal reports whether e and o have the same dimensions.
func (e ExtentNd) Equal(o ExtentNd) bool { return slices.Equal(e.dims, o.dims) }

func (e ExtentNd) String() string { return formatInts(e.dims) }

func formatInts(values []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

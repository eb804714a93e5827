// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import "fmt"

// Layout1d maps one-dimensional indexes to buffer offsets.
type Layout1d struct {
	start  Index1d
	stride Stride1d
}

// NewLayout1d returns a layout starting at start and stepping by stride.
func NewLayout1d(start Index1d, stride Stride1d) Layout1d {
	return Layout1d{start: start, stride: stride}
}

// RowMajorLayout1d returns the canonical layout of a one-dimensional
// structure whose elements interleave the given number of channels.
func RowMajorLayout1d(channels Channels) Layout1d {
	return Layout1d{stride: Stride1d{value: int(channels)}}
}

func (l Layout1d) Start() Index1d   { return l.start }
func (l Layout1d) Stride() Stride1d { return l.stride }

// Offset returns start + i*stride.
func (l Layout1d) Offset(i Index1d) int {
	return l.start.Value + i.Value*l.stride.value
}

// Index is the arithmetic inverse of Offset. The offset is not checked:
// it must be one produced by Offset.
func (l Layout1d) Index(offset int) Index1d {
	return Index1d{Value: quot(offset-l.start.Value, l.stride.value)}
}

func (l Layout1d) String() string {
	return fmt.Sprintf("Layout{start=%s, stride=%s}", l.start, l.stride)
}

// Layout2d maps two-dimensional indexes to buffer offsets.
type Layout2d struct {
	start  Index2d
	stride Stride2d
}

// NewLayout2d returns a layout with the given per-dimension start and
// stride.
func NewLayout2d(start Index2d, stride Stride2d) Layout2d {
	return Layout2d{start: start, stride: stride}
}

// RowMajorLayout2d returns the canonical layout of the given extent:
// rows are stored one after the other and the innermost step equals the
// number of channels.
func RowMajorLayout2d(extent Extent2d, channels Channels) Layout2d {
	c := int(channels)
	return Layout2d{stride: Stride2d{row: extent.cols * c, col: c}}
}

func (l Layout2d) Start() Index2d   { return l.start }
func (l Layout2d) Stride() Stride2d { return l.stride }

// Offset returns the sum of start + index*stride over both dimensions.
func (l Layout2d) Offset(i Index2d) int {
	return l.start.Row + i.Row*l.stride.row +
		l.start.Col + i.Col*l.stride.col
}

// Index is the arithmetic inverse of Offset. It divides by the row stride
// first and by the column stride after, which is only correct when the
// row stride nests the column stride (as in RowMajorLayout2d). Transposed
// layouts break this assumption; see Structure2d.CheckedIndex.
func (l Layout2d) Index(offset int) Index2d {
	rem := offset - l.start.Row - l.start.Col
	row := quot(rem, l.stride.row)
	rem -= row * l.stride.row
	col := quot(rem, l.stride.col)
	return Index2d{Row: row, Col: col}
}

// transpose swaps the row and column components of start and stride.
func (l Layout2d) transpose() Layout2d {
	return Layout2d{
		start:  Index2d{Row: l.start.Col, Col: l.start.Row},
		stride: Stride2d{row: l.stride.col, col: l.stride.row},
	}
}

func (l Layout2d) String() string {
	return fmt.Sprintf("Layout{start=%s, stride=%s}", l.start, l.stride)
}

// Layout3d maps three-dimensional indexes to buffer offsets.
type Layout3d struct {
	start  Index3d
	stride Stride3d
}

// NewLayout3d returns a layout with the given per-dimension start and
// stride.
func NewLayout3d(start Index3d, stride Stride3d) Layout3d {
	return Layout3d{start: start, stride: stride}
}

// RowMajorLayout3d returns the canonical slice-major layout of the given
// extent.
func RowMajorLayout3d(extent Extent3d, channels Channels) Layout3d {
	c := int(channels)
	return Layout3d{stride: Stride3d{
		slice: extent.rows * extent.cols * c,
		row:   extent.cols * c,
		col:   c,
	}}
}

func (l Layout3d) Start() Index3d   { return l.start }
func (l Layout3d) Stride() Stride3d { return l.stride }

// Offset returns the sum of start + index*stride over all dimensions.
func (l Layout3d) Offset(i Index3d) int {
	return l.start.Slice + i.Slice*l.stride.slice +
		l.start.Row + i.Row*l.stride.row +
		l.start.Col + i.Col*l.stride.col
}

// Index is the arithmetic inverse of Offset, dividing by the slice, row
// and column strides in this order. It assumes the canonical nesting of
// RowMajorLayout3d.
func (l Layout3d) Index(offset int) Index3d {
	rem := offset - l.start.Slice - l.start.Row - l.start.Col
	slice := quot(rem, l.stride.slice)
	rem -= slice * l.stride.slice
	row := quot(rem, l.stride.row)
	rem -= row * l.stride.row
	col := quot(rem, l.stride.col)
	return Index3d{Slice: slice, Row: row, Col: col}
}

func (l Layout3d) String() string {
	return fmt.Sprintf("Layout{start=%s, stride=%s}", l.start, l.stride)
}

// LayoutNd maps N-dimensional indexes to buffer offsets.
type LayoutNd struct {
	start  IndexNd
	stride StrideNd
}

// NewLayoutNd returns a layout with the given per-dimension start and
// stride, which must have the same rank.
func NewLayoutNd(start IndexNd, stride StrideNd) (LayoutNd, error) {
	if start.Rank() != stride.Rank() {
		return LayoutNd{}, fmt.Errorf("%w: layout start rank %d, stride rank %d",
			ErrDimensionMismatch, start.Rank(), stride.Rank())
	}
	return LayoutNd{start: start, stride: stride}, nil
}

// RowMajorLayoutNd returns the canonical layout of the given extent, the
// last dimension being the innermost one.
func RowMajorLayoutNd(extent ExtentNd, channels Channels) LayoutNd {
	steps := make([]int, extent.Rank())
	step := int(channels)
	for d := len(steps) - 1; d >= 0; d-- {
		steps[d] = step
		step *= extent.dims[d]
	}
	return LayoutNd{start: ZeroIndexNd(extent.Rank()), stride: StrideNd{steps: steps}}
}

func (l LayoutNd) Start() IndexNd   { return l.start }
func (l LayoutNd) Stride() StrideNd { return l.stride }
func (l LayoutNd) Rank() int        { return l.start.Rank() }

// Offset returns the sum of start + index*stride over all dimensions.
// The index must have the layout's rank.
func (l LayoutNd) Offset(i IndexNd) int {
	offset := 0
	for d, v := range i.coords {
		offset += l.start.coords[d] + v*l.stride.steps[d]
	}
	return offset
}

// Index is the arithmetic inverse of Offset, dividing by each stride from
// the outermost dimension to the innermost one.
func (l LayoutNd) Index(offset int) IndexNd {
	rem := offset
	for _, v := range l.start.coords {
		rem -= v
	}
	coords := make([]int, l.Rank())
	for d, step := range l.stride.steps {
		coords[d] = quot(rem, step)
		rem -= coords[d] * step
	}
	return IndexNd{coords: coords}
}

// Equal reports whether l and o have the same start and stride.
func (l LayoutNd) Equal(o LayoutNd) bool {
	return l.start.Equal(o.start) && l.stride.Equal(o.stride)
}

func (l LayoutNd) String() string {
	return fmt.Sprintf("Layout{start=%s, stride=%s}", l.start, l.stride)
}

// quot divides a by step, treating a zero step as a dimension that does
// not advance.
func quot(a, step int) int {
	if step == 0 {
		return 0
	}
	return a / step
}

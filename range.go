// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"slices"
)

// Range1d is a contiguous run of a one-dimensional structure.
type Range1d struct {
	start  Index1d
	extent Extent1d
}

// NewRange1d returns the range of extent.Size() elements beginning at
// start. It fails with ErrOutOfBounds if start is negative or if its end
// overflows int.
func NewRange1d(start Index1d, extent Extent1d) (Range1d, error) {
	if start.Value < 0 {
		return Range1d{}, fmt.Errorf("%w: range start %s", ErrOutOfBounds, start)
	}
	if _, err := checkedAdd(start.Value, extent.size); err != nil {
		return Range1d{}, fmt.Errorf("range end: %w", err)
	}
	return Range1d{start: start, extent: extent}, nil
}

// MustRange1d is like NewRange1d but panics on error.
func MustRange1d(start Index1d, extent Extent1d) Range1d {
	return must(NewRange1d(start, extent))
}

// RangeOf1d returns the range covering the whole extent.
func RangeOf1d(extent Extent1d) Range1d {
	return Range1d{extent: extent}
}

func (r Range1d) Start() Index1d   { return r.start }
func (r Range1d) Extent() Extent1d { return r.extent }

// End returns the exclusive end index.
func (r Range1d) End() Index1d { return Index1d{Value: r.start.Value + r.extent.size} }

// Contains reports whether i lies within the range.
func (r Range1d) Contains(i Index1d) bool {
	return i.Value >= r.start.Value && i.Value < r.End().Value
}

// within reports whether the range fits inside the given extent.
func (r Range1d) within(e Extent1d) bool {
	return r.End().Value <= e.size
}

func (r Range1d) String() string {
	return fmt.Sprintf("[%d..%d]", r.start.Value, r.End().Value)
}

// Range2d is a rectangular region of a two-dimensional structure.
type Range2d struct {
	start  Index2d
	extent Extent2d
}

// NewRange2d returns the rectangle of the given extent whose upper left
// corner is start.
func NewRange2d(start Index2d, extent Extent2d) (Range2d, error) {
	if start.Row < 0 || start.Col < 0 {
		return Range2d{}, fmt.Errorf("%w: range start %s", ErrOutOfBounds, start)
	}
	if _, err := checkedAdd(start.Row, extent.rows); err != nil {
		return Range2d{}, fmt.Errorf("range end: %w", err)
	}
	if _, err := checkedAdd(start.Col, extent.cols); err != nil {
		return Range2d{}, fmt.Errorf("range end: %w", err)
	}
	return Range2d{start: start, extent: extent}, nil
}

// MustRange2d is like NewRange2d but panics on error.
func MustRange2d(start Index2d, extent Extent2d) Range2d {
	return must(NewRange2d(start, extent))
}

// RangeOf2d returns the range covering the whole extent.
func RangeOf2d(extent Extent2d) Range2d {
	return Range2d{extent: extent}
}

func (r Range2d) Start() Index2d   { return r.start }
func (r Range2d) Extent() Extent2d { return r.extent }

// End returns the exclusive end index.
func (r Range2d) End() Index2d {
	return Index2d{Row: r.start.Row + r.extent.rows, Col: r.start.Col + r.extent.cols}
}

// Contains reports whether i lies within the range.
func (r Range2d) Contains(i Index2d) bool {
	end := r.End()
	return i.Row >= r.start.Row && i.Row < end.Row &&
		i.Col >= r.start.Col && i.Col < end.Col
}

func (r Range2d) within(e Extent2d) bool {
	end := r.End()
	return end.Row <= e.rows && end.Col <= e.cols
}

func (r Range2d) String() string {
	end := r.End()
	return fmt.Sprintf("[%d..%d, %d..%d]", r.start.Row, end.Row, r.start.Col, end.Col)
}

// Range3d is a box-shaped region of a three-dimensional structure.
type Range3d struct {
	start  Index3d
	extent Extent3d
}

// NewRange3d returns the box of the given extent whose first corner is
// start.
func NewRange3d(start Index3d, extent Extent3d) (Range3d, error) {
	if start.Slice < 0 || start.Row < 0 || start.Col < 0 {
		return Range3d{}, fmt.Errorf("%w: range start %s", ErrOutOfBounds, start)
	}
	for _, p := range [3][2]int{
		{start.Slice, extent.slices},
		{start.Row, extent.rows},
		{start.Col, extent.cols},
	} {
		if _, err := checkedAdd(p[0], p[1]); err != nil {
			return Range3d{}, fmt.Errorf("range end: %w", err)
		}
	}
	return Range3d{start: start, extent: extent}, nil
}

// MustRange3d is like NewRange3d but panics on error.
func MustRange3d(start Index3d, extent Extent3d) Range3d {
	return must(NewRange3d(start, extent))
}

// RangeOf3d returns the range covering the whole extent.
func RangeOf3d(extent Extent3d) Range3d {
	return Range3d{extent: extent}
}

func (r Range3d) Start() Index3d   { return r.start }
func (r Range3d) Extent() Extent3d { return r.extent }

// End returns the exclusive end index.
func (r Range3d) End() Index3d {
	return Index3d{
		Slice: r.start.Slice + r.extent.slices,
		Row:   r.start.Row + r.extent.rows,
		Col:   r.start.Col + r.extent.cols,
	}
}

// Contains reports whether i lies within the range.
func (r Range3d) Contains(i Index3d) bool {
	end := r.End()
	return i.Slice >= r.start.Slice && i.Slice < end.Slice &&
		i.Row >= r.start.Row && i.Row < end.Row &&
		i.Col >= r.start.Col && i.Col < end.Col
}

func (r Range3d) within(e Extent3d) bool {
	end := r.End()
	return end.Slice <= e.slices && end.Row <= e.rows && end.Col <= e.cols
}

func (r Range3d) String() string {
	end := r.End()
	return fmt.Sprintf("[%d..%d, %d..%d, %d..%d]",
		r.start.Slice, end.Slice, r.start.Row, end.Row, r.start.Col, end.Col)
}

// RangeNd is a box-shaped region of an N-dimensional structure.
type RangeNd struct {
	start  IndexNd
	extent ExtentNd
}

// NewRangeNd returns the region of the given extent beginning at start.
// Both must have the same rank.
func NewRangeNd(start IndexNd, extent ExtentNd) (RangeNd, error) {
	if start.Rank() != extent.Rank() {
		return RangeNd{}, fmt.Errorf("%w: range start rank %d, extent rank %d",
			ErrDimensionMismatch, start.Rank(), extent.Rank())
	}
	for d, v := range start.coords {
		if v < 0 {
			return RangeNd{}, fmt.Errorf("%w: range start %s", ErrOutOfBounds, start)
		}
		if _, err := checkedAdd(v, extent.dims[d]); err != nil {
			return RangeNd{}, fmt.Errorf("range end: %w", err)
		}
	}
	return RangeNd{start: start, extent: extent}, nil
}

// MustRangeNd is like NewRangeNd but panics on error.
func MustRangeNd(start IndexNd, extent ExtentNd) RangeNd {
	return must(NewRangeNd(start, extent))
}

// RangeOfNd returns the range covering the whole extent.
func RangeOfNd(extent ExtentNd) RangeNd {
	return RangeNd{start: ZeroIndexNd(extent.Rank()), extent: extent}
}

func (r RangeNd) Start() IndexNd   { return r.start }
func (r RangeNd) Extent() ExtentNd { return r.extent }
func (r RangeNd) Rank() int        { return r.extent.Rank() }

// End returns the exclusive end index.
func (r RangeNd) End() IndexNd {
	end := slices.Clone(r.start.coords)
	for d := range end {
		end[d] += r.extent.dims[d]
	}
	return IndexNd{coords: end}
}

// Contains reports whether i lies within the range.
func (r RangeNd) Contains(i IndexNd) bool {
	if i.Rank() != r.Rank() {
		return false
	}
	for d, v := range i.coords {
		if v < r.start.coords[d] || v >= r.start.coords[d]+r.extent.dims[d] {
			return false
		}
	}
	return true
}

func (r RangeNd) within(e ExtentNd) bool {
	if r.Rank() != e.Rank() {
		return false
	}
	for d, v := range r.start.coords {
		if v+r.extent.dims[d] > e.dims[d] {
			return false
		}
	}
	return true
}

// Equal reports whether r and o describe the same region.
func (r RangeNd) Equal(o RangeNd) bool {
	return r.start.Equal(o.start) && r.extent.Equal(o.extent)
}

func (r RangeNd) String() string {
	end := r.End()
	s := "["
	for d := range r.start.coords {
		if d > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d..%d", r.start.coords[d], end.coords[d])
	}
	return s + "]"
}

// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import "fmt"

// StructureNd is the addressing contract of an N-dimensional view onto a
// flat buffer.
type StructureNd struct {
	extent  ExtentNd
	layout  LayoutNd
	channel Channel
}

// NewStructureNd validates the given properties with the rules of
// NewStructure1d, applied to every dimension, and additionally requires
// the extent and the layout to have the same rank.
func NewStructureNd(extent ExtentNd, layout LayoutNd, channel Channel) (StructureNd, error) {
	if err := channel.validate(); err != nil {
		return StructureNd{}, err
	}
	if layout.Rank() == 0 {
		return StructureNd{}, fmt.Errorf("%w: layout for extent %s", ErrRequired, extent)
	}
	if layout.Rank() != extent.Rank() {
		return StructureNd{}, fmt.Errorf("%w: extent rank %d, layout rank %d",
			ErrDimensionMismatch, extent.Rank(), layout.Rank())
	}
	start := int(channel)
	dims := make([][2]int, extent.Rank())
	for d := range dims {
		dims[d] = [2]int{extent.dims[d], layout.stride.steps[d]}
		if err := checkStride(dims[d][0], dims[d][1]); err != nil {
			return StructureNd{}, err
		}
		start += layout.start.coords[d]
	}
	if err := checkSpan(start, dims); err != nil {
		return StructureNd{}, err
	}
	return StructureNd{extent: extent, layout: layout, channel: channel}, nil
}

// StructureOfNd returns the canonical row-major structure of the given
// extent over a buffer interleaving the given number of channels.
func StructureOfNd(extent ExtentNd, channels Channels) (StructureNd, error) {
	if extent.Rank() == 0 {
		return StructureNd{}, fmt.Errorf("%w: extent", ErrRequired)
	}
	if err := channels.validate(); err != nil {
		return StructureNd{}, err
	}
	if _, err := checkedMul(extent.size, int(channels)); err != nil {
		return StructureNd{}, fmt.Errorf("structure %s with %d channels: %w", extent, channels, err)
	}
	return StructureNd{extent: extent, layout: RowMajorLayoutNd(extent, channels)}, nil
}

// MustStructureOfNd is like StructureOfNd but panics on error.
func MustStructureOfNd(extent ExtentNd, channels Channels) StructureNd {
	return must(StructureOfNd(extent, channels))
}

func (s StructureNd) Extent() ExtentNd { return s.extent }
func (s StructureNd) Layout() LayoutNd { return s.layout }
func (s StructureNd) Channel() Channel { return s.channel }
func (s StructureNd) Rank() int        { return s.extent.Rank() }

// Offset returns the buffer position of the element at i, which must have
// the structure's rank. The index is not checked against the extent.
func (s StructureNd) Offset(i IndexNd) int {
	return s.layout.Offset(i) + int(s.channel)
}

// Index returns the index whose Offset is the given one, assuming strides
// nested from the outermost dimension to the innermost one.
func (s StructureNd) Index(offset int) IndexNd {
	return s.layout.Index(offset - int(s.channel))
}

// CheckedIndex is like Index but fails with ErrNotInvertible if the
// arithmetic inverse does not map back to offset or lies outside the
// extent.
func (s StructureNd) CheckedIndex(offset int) (IndexNd, error) {
	i := s.Index(offset)
	if !RangeOfNd(s.extent).Contains(i) || s.Offset(i) != offset {
		return IndexNd{}, fmt.Errorf("%w: offset %d in %s", ErrNotInvertible, offset, s)
	}
	return i, nil
}

// Span returns the lowest and the highest addressable offsets. The
// boolean flag is false for an empty structure.
func (s StructureNd) Span() (lo, hi int, ok bool) {
	if s.extent.size == 0 {
		return 0, 0, false
	}
	last := make([]int, s.Rank())
	for d, v := range s.extent.dims {
		last[d] = v - 1
	}
	return s.Offset(ZeroIndexNd(s.Rank())), s.Offset(IndexNd{coords: last}), true
}

// Like returns the canonical single-channel structure of the same extent.
func (s StructureNd) Like() StructureNd {
	return StructureNd{extent: s.extent, layout: RowMajorLayoutNd(s.extent, OneChannel)}
}

// View derives a new structure by applying v.
func (s StructureNd) View(v ViewNd) (StructureNd, error) {
	if v == nil {
		return StructureNd{}, fmt.Errorf("%w: view", ErrRequired)
	}
	return v(s)
}

// Project derives a structure of rank Rank()-1 by applying p.
func (s StructureNd) Project(p ProjectionNd) (StructureNd, error) {
	if p == nil {
		return StructureNd{}, fmt.Errorf("%w: projection", ErrRequired)
	}
	return p(s)
}

// Equal reports whether s and o have the same extent, layout and channel.
func (s StructureNd) Equal(o StructureNd) bool {
	return s.extent.Equal(o.extent) && s.layout.Equal(o.layout) && s.channel == o.channel
}

func (s StructureNd) String() string {
	return fmt.Sprintf("Structure{extent=%s, %s, channel=%d}", s.extent, s.layout, s.channel)
}

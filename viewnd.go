// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"slices"
)

// ViewNd derives a structure sharing the buffer of the given one.
type ViewNd func(StructureNd) (StructureNd, error)

// Compose returns a view applying before first, then v.
func (v ViewNd) Compose(before ViewNd) ViewNd {
	return func(s StructureNd) (StructureNd, error) {
		s, err := s.View(before)
		if err != nil {
			return StructureNd{}, err
		}
		return s.View(v)
	}
}

// AndThen returns a view applying v first, then after.
func (v ViewNd) AndThen(after ViewNd) ViewNd {
	return after.Compose(v)
}

// IdentityViewNd returns a view leaving structures unchanged.
func IdentityViewNd() ViewNd {
	return func(s StructureNd) (StructureNd, error) { return s, nil }
}

// RangeViewNd returns a view onto the given region. Applying it fails with
// ErrDimensionMismatch if the ranks differ and with ErrOutOfBounds if the
// region does not fit the structure's extent.
func RangeViewNd(r RangeNd) ViewNd {
	return func(s StructureNd) (StructureNd, error) {
		if r.Rank() != s.Rank() {
			return StructureNd{}, fmt.Errorf("%w: range rank %d, structure rank %d",
				ErrDimensionMismatch, r.Rank(), s.Rank())
		}
		if !r.within(s.extent) {
			return StructureNd{}, fmt.Errorf("%w: range %s exceeds extent %s", ErrOutOfBounds, r, s.extent)
		}
		start := slices.Clone(s.layout.start.coords)
		for d, step := range s.layout.stride.steps {
			start[d] += step * r.start.coords[d]
		}
		return StructureNd{
			extent:  r.extent,
			layout:  LayoutNd{start: IndexNd{coords: start}, stride: s.layout.stride},
			channel: s.channel,
		}, nil
	}
}

// StartViewNd returns a view from start to the far corner of the
// structure.
func StartViewNd(start IndexNd) ViewNd {
	return func(s StructureNd) (StructureNd, error) {
		if start.Rank() != s.Rank() {
			return StructureNd{}, fmt.Errorf("%w: start rank %d, structure rank %d",
				ErrDimensionMismatch, start.Rank(), s.Rank())
		}
		dims := make([]int, s.Rank())
		for d, v := range start.coords {
			dims[d] = s.extent.dims[d] - v
		}
		e, err := NewExtentNd(dims...)
		if err != nil {
			return StructureNd{}, fmt.Errorf("start %s beyond extent %s: %w", start, s.extent, err)
		}
		r, err := NewRangeNd(start, e)
		if err != nil {
			return StructureNd{}, err
		}
		return RangeViewNd(r)(s)
	}
}

// ExtentViewNd returns a view onto the leading region of the given extent.
func ExtentViewNd(extent ExtentNd) ViewNd {
	return RangeViewNd(RangeOfNd(extent))
}

// StrideViewNd returns a view keeping every stride-th element along each
// dimension. Applying it fails with ErrOutOfBounds for a zero step.
func StrideViewNd(stride StrideNd) ViewNd {
	return func(s StructureNd) (StructureNd, error) {
		if stride.Rank() != s.Rank() {
			return StructureNd{}, fmt.Errorf("%w: stride rank %d, structure rank %d",
				ErrDimensionMismatch, stride.Rank(), s.Rank())
		}
		dims := make([]int, s.Rank())
		steps := make([]int, s.Rank())
		for d, f := range stride.steps {
			if f == 0 {
				return StructureNd{}, fmt.Errorf("%w: view %s must be positive", ErrOutOfBounds, stride)
			}
			dims[d] = ceilDiv(s.extent.dims[d], f)
			steps[d] = s.layout.stride.steps[d] * f
		}
		size, err := checkedProduct(dims...)
		if err != nil {
			return StructureNd{}, err
		}
		return StructureNd{
			extent:  ExtentNd{dims: dims, size: size},
			layout:  LayoutNd{start: s.layout.start, stride: StrideNd{steps: steps}},
			channel: s.channel,
		}, nil
	}
}

// PermuteViewNd returns a view reordering the dimensions: dimension d of
// the result is dimension axes[d] of the input. Applying it fails with
// ErrDimensionMismatch unless axes is a permutation of 0..rank-1.
// PermuteViewNd(1, 0) on a two-dimensional structure is a transpose.
func PermuteViewNd(axes ...int) ViewNd {
	axes = slices.Clone(axes)
	return func(s StructureNd) (StructureNd, error) {
		if len(axes) != s.Rank() || !isPermutation(axes) {
			return StructureNd{}, fmt.Errorf("%w: axes %v for rank %d",
				ErrDimensionMismatch, axes, s.Rank())
		}
		dims := make([]int, len(axes))
		start := make([]int, len(axes))
		steps := make([]int, len(axes))
		for d, a := range axes {
			dims[d] = s.extent.dims[a]
			start[d] = s.layout.start.coords[a]
			steps[d] = s.layout.stride.steps[a]
		}
		return StructureNd{
			extent: ExtentNd{dims: dims, size: s.extent.size},
			layout: LayoutNd{
				start:  IndexNd{coords: start},
				stride: StrideNd{steps: steps},
			},
			channel: s.channel,
		}, nil
	}
}

// ChannelViewNd returns a view addressing the given channel of
// interleaved data.
func ChannelViewNd(channel Channel) ViewNd {
	return func(s StructureNd) (StructureNd, error) {
		if err := channel.validate(); err != nil {
			return StructureNd{}, err
		}
		s.channel = channel
		return s, nil
	}
}

// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"slices"
)

// Projection2d fixes one coordinate of a two-dimensional structure,
// yielding the one-dimensional structure of the remaining axis.
type Projection2d func(Structure2d) (Structure1d, error)

// Compose returns a projection applying the view before to its input.
func (p Projection2d) Compose(before View2d) Projection2d {
	return func(s Structure2d) (Structure1d, error) {
		s, err := s.View(before)
		if err != nil {
			return Structure1d{}, err
		}
		return s.Project(p)
	}
}

// AndThen returns a projection applying the view after to its output.
func (p Projection2d) AndThen(after View1d) Projection2d {
	return func(s Structure2d) (Structure1d, error) {
		r, err := s.Project(p)
		if err != nil {
			return Structure1d{}, err
		}
		return r.View(after)
	}
}

// RowProjection2d returns the projection onto row i.
func RowProjection2d(i int) Projection2d {
	return func(s Structure2d) (Structure1d, error) {
		if err := checkAxis("row", i, s.extent.rows); err != nil {
			return Structure1d{}, err
		}
		l := s.layout
		return Structure1d{
			extent: Extent1d{size: s.extent.cols},
			layout: Layout1d{
				start:  Index1d{Value: l.start.Row + l.start.Col + i*l.stride.row},
				stride: Stride1d{value: l.stride.col},
			},
			channel: s.channel,
		}, nil
	}
}

// ColProjection2d returns the projection onto column i.
func ColProjection2d(i int) Projection2d {
	return func(s Structure2d) (Structure1d, error) {
		if err := checkAxis("column", i, s.extent.cols); err != nil {
			return Structure1d{}, err
		}
		l := s.layout
		return Structure1d{
			extent: Extent1d{size: s.extent.rows},
			layout: Layout1d{
				start:  Index1d{Value: l.start.Row + l.start.Col + i*l.stride.col},
				stride: Stride1d{value: l.stride.row},
			},
			channel: s.channel,
		}, nil
	}
}

// Projection3d fixes one coordinate of a three-dimensional structure,
// yielding the two-dimensional structure of the remaining axes.
type Projection3d func(Structure3d) (Structure2d, error)

// Compose returns a projection applying the view before to its input.
func (p Projection3d) Compose(before View3d) Projection3d {
	return func(s Structure3d) (Structure2d, error) {
		s, err := s.View(before)
		if err != nil {
			return Structure2d{}, err
		}
		return s.Project(p)
	}
}

// AndThen returns a projection applying the view after to its output.
func (p Projection3d) AndThen(after View2d) Projection3d {
	return func(s Structure3d) (Structure2d, error) {
		r, err := s.Project(p)
		if err != nil {
			return Structure2d{}, err
		}
		return r.View(after)
	}
}

// SliceProjection3d returns the projection onto slice i: a rows by
// columns structure.
func SliceProjection3d(i int) Projection3d {
	return func(s Structure3d) (Structure2d, error) {
		if err := checkAxis("slice", i, s.extent.slices); err != nil {
			return Structure2d{}, err
		}
		l := s.layout
		return Structure2d{
			extent: Extent2d{rows: s.extent.rows, cols: s.extent.cols},
			layout: Layout2d{
				start:  Index2d{Row: l.start.Slice + i*l.stride.slice + l.start.Row, Col: l.start.Col},
				stride: Stride2d{row: l.stride.row, col: l.stride.col},
			},
			channel: s.channel,
		}, nil
	}
}

// RowProjection3d returns the projection onto row i: a slices by columns
// structure.
func RowProjection3d(i int) Projection3d {
	return func(s Structure3d) (Structure2d, error) {
		if err := checkAxis("row", i, s.extent.rows); err != nil {
			return Structure2d{}, err
		}
		l := s.layout
		return Structure2d{
			extent: Extent2d{rows: s.extent.slices, cols: s.extent.cols},
			layout: Layout2d{
				start:  Index2d{Row: l.start.Slice, Col: l.start.Row + i*l.stride.row + l.start.Col},
				stride: Stride2d{row: l.stride.slice, col: l.stride.col},
			},
			channel: s.channel,
		}, nil
	}
}

// ColProjection3d returns the projection onto column i: a slices by rows
// structure.
func ColProjection3d(i int) Projection3d {
	return func(s Structure3d) (Structure2d, error) {
		if err := checkAxis("column", i, s.extent.cols); err != nil {
			return Structure2d{}, err
		}
		l := s.layout
		return Structure2d{
			extent: Extent2d{rows: s.extent.slices, cols: s.extent.rows},
			layout: Layout2d{
				start:  Index2d{Row: l.start.Slice, Col: l.start.Row + l.start.Col + i*l.stride.col},
				stride: Stride2d{row: l.stride.slice, col: l.stride.row},
			},
			channel: s.channel,
		}, nil
	}
}

// ProjectionNd fixes one coordinate of an N-dimensional structure,
// yielding a structure of rank N-1.
type ProjectionNd func(StructureNd) (StructureNd, error)

// Compose returns a projection applying the view before to its input.
func (p ProjectionNd) Compose(before ViewNd) ProjectionNd {
	return func(s StructureNd) (StructureNd, error) {
		s, err := s.View(before)
		if err != nil {
			return StructureNd{}, err
		}
		return s.Project(p)
	}
}

// AndThen returns a projection applying the view after to its output.
func (p ProjectionNd) AndThen(after ViewNd) ProjectionNd {
	return func(s StructureNd) (StructureNd, error) {
		r, err := s.Project(p)
		if err != nil {
			return StructureNd{}, err
		}
		return r.View(after)
	}
}

// AxisProjectionNd returns the projection fixing coordinate i of the
// given axis. The start of the removed axis, plus i steps along it, is
// folded into the start of the first remaining axis. Applying it fails
// with ErrDimensionMismatch on a rank-1 structure or an axis outside the
// rank.
func AxisProjectionNd(axis, i int) ProjectionNd {
	return func(s StructureNd) (StructureNd, error) {
		rank := s.Rank()
		if rank < 2 {
			return StructureNd{}, fmt.Errorf("%w: cannot project structure of rank %d",
				ErrDimensionMismatch, rank)
		}
		if axis < 0 || axis >= rank {
			return StructureNd{}, fmt.Errorf("%w: axis %d for rank %d", ErrDimensionMismatch, axis, rank)
		}
		if err := checkAxis(fmt.Sprintf("axis %d", axis), i, s.extent.dims[axis]); err != nil {
			return StructureNd{}, err
		}
		l := s.layout
		fixed := l.start.coords[axis] + i*l.stride.steps[axis]
		dims := slices.Delete(slices.Clone(s.extent.dims), axis, axis+1)
		start := slices.Delete(slices.Clone(l.start.coords), axis, axis+1)
		steps := slices.Delete(slices.Clone(l.stride.steps), axis, axis+1)
		start[0] += fixed
		size := s.extent.size / s.extent.dims[axis]
		return StructureNd{
			extent: ExtentNd{dims: dims, size: size},
			layout: LayoutNd{
				start:  IndexNd{coords: start},
				stride: StrideNd{steps: steps},
			},
			channel: s.channel,
		}, nil
	}
}

// checkAxis verifies that 0 <= i < size.
func checkAxis(name string, i, size int) error {
	if i < 0 || i >= size {
		return fmt.Errorf("%w: %s %d not in [0, %d)", ErrOutOfBounds, name, i, size)
	}
	return nil
}

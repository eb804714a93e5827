// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import "fmt"

// View1d derives a structure sharing the buffer of the given one.
type View1d func(Structure1d) (Structure1d, error)

// Compose returns a view applying before first, then v.
func (v View1d) Compose(before View1d) View1d {
	return func(s Structure1d) (Structure1d, error) {
		s, err := s.View(before)
		if err != nil {
			return Structure1d{}, err
		}
		return s.View(v)
	}
}

// AndThen returns a view applying v first, then after.
func (v View1d) AndThen(after View1d) View1d {
	return after.Compose(v)
}

// IdentityView1d returns a view leaving structures unchanged.
func IdentityView1d() View1d {
	return func(s Structure1d) (Structure1d, error) { return s, nil }
}

// RangeView1d returns a view onto the given range. Applying it fails with
// ErrOutOfBounds if the range does not fit the structure's extent.
func RangeView1d(r Range1d) View1d {
	return func(s Structure1d) (Structure1d, error) {
		if !r.within(s.extent) {
			return Structure1d{}, fmt.Errorf("%w: range %s exceeds extent %s", ErrOutOfBounds, r, s.extent)
		}
		l := s.layout
		return Structure1d{
			extent: r.extent,
			layout: Layout1d{
				start:  Index1d{Value: l.start.Value + l.stride.value*r.start.Value},
				stride: l.stride,
			},
			channel: s.channel,
		}, nil
	}
}

// StartView1d returns a view from start to the end of the structure.
func StartView1d(start Index1d) View1d {
	return func(s Structure1d) (Structure1d, error) {
		e, err := NewExtent1d(s.extent.size - start.Value)
		if err != nil {
			return Structure1d{}, fmt.Errorf("start %s beyond extent %s: %w", start, s.extent, err)
		}
		r, err := NewRange1d(start, e)
		if err != nil {
			return Structure1d{}, err
		}
		return RangeView1d(r)(s)
	}
}

// ExtentView1d returns a view onto the first extent.Size() elements.
func ExtentView1d(extent Extent1d) View1d {
	return RangeView1d(RangeOf1d(extent))
}

// StrideView1d returns a view onto every stride-th element. Applying it
// fails with ErrOutOfBounds for a zero stride.
func StrideView1d(stride Stride1d) View1d {
	return func(s Structure1d) (Structure1d, error) {
		if stride.value == 0 {
			return Structure1d{}, fmt.Errorf("%w: view %s must be positive", ErrOutOfBounds, stride)
		}
		l := s.layout
		return Structure1d{
			extent: Extent1d{size: ceilDiv(s.extent.size, stride.value)},
			layout: Layout1d{
				start:  l.start,
				stride: Stride1d{value: l.stride.value * stride.value},
			},
			channel: s.channel,
		}, nil
	}
}

// ChannelView1d returns a view addressing the given channel of
// interleaved data.
func ChannelView1d(channel Channel) View1d {
	return func(s Structure1d) (Structure1d, error) {
		if err := channel.validate(); err != nil {
			return Structure1d{}, err
		}
		s.channel = channel
		return s, nil
	}
}

// View2d derives a structure sharing the buffer of the given one.
type View2d func(Structure2d) (Structure2d, error)

// Compose returns a view applying before first, then v.
func (v View2d) Compose(before View2d) View2d {
	return func(s Structure2d) (Structure2d, error) {
		s, err := s.View(before)
		if err != nil {
			return Structure2d{}, err
		}
		return s.View(v)
	}
}

// AndThen returns a view applying v first, then after.
func (v View2d) AndThen(after View2d) View2d {
	return after.Compose(v)
}

// IdentityView2d returns a view leaving structures unchanged.
func IdentityView2d() View2d {
	return func(s Structure2d) (Structure2d, error) { return s, nil }
}

// RangeView2d returns a view onto the given rectangle. Applying it fails
// with ErrOutOfBounds if the range does not fit the structure's extent.
func RangeView2d(r Range2d) View2d {
	return func(s Structure2d) (Structure2d, error) {
		if !r.within(s.extent) {
			return Structure2d{}, fmt.Errorf("%w: range %s exceeds extent %s", ErrOutOfBounds, r, s.extent)
		}
		l := s.layout
		return Structure2d{
			extent: r.extent,
			layout: Layout2d{
				start: Index2d{
					Row: l.start.Row + l.stride.row*r.start.Row,
					Col: l.start.Col + l.stride.col*r.start.Col,
				},
				stride: l.stride,
			},
			channel: s.channel,
		}, nil
	}
}

// StartView2d returns a view from start to the far corner of the
// structure.
func StartView2d(start Index2d) View2d {
	return func(s Structure2d) (Structure2d, error) {
		e, err := NewExtent2d(s.extent.rows-start.Row, s.extent.cols-start.Col)
		if err != nil {
			return Structure2d{}, fmt.Errorf("start %s beyond extent %s: %w", start, s.extent, err)
		}
		r, err := NewRange2d(start, e)
		if err != nil {
			return Structure2d{}, err
		}
		return RangeView2d(r)(s)
	}
}

// ExtentView2d returns a view onto the upper left rectangle of the given
// extent.
func ExtentView2d(extent Extent2d) View2d {
	return RangeView2d(RangeOf2d(extent))
}

// StrideView2d returns a view onto every stride.Row()-th row and every
// stride.Col()-th column. Applying it fails with ErrOutOfBounds for a zero
// step.
func StrideView2d(stride Stride2d) View2d {
	return func(s Structure2d) (Structure2d, error) {
		if stride.row == 0 || stride.col == 0 {
			return Structure2d{}, fmt.Errorf("%w: view %s must be positive", ErrOutOfBounds, stride)
		}
		l := s.layout
		return Structure2d{
			extent: Extent2d{
				rows: ceilDiv(s.extent.rows, stride.row),
				cols: ceilDiv(s.extent.cols, stride.col),
			},
			layout: Layout2d{
				start:  l.start,
				stride: Stride2d{row: l.stride.row * stride.row, col: l.stride.col * stride.col},
			},
			channel: s.channel,
		}, nil
	}
}

// TransposeView2d returns a view swapping rows and columns.
func TransposeView2d() View2d {
	return func(s Structure2d) (Structure2d, error) { return s.Transpose(), nil }
}

// ChannelView2d returns a view addressing the given channel of
// interleaved data.
func ChannelView2d(channel Channel) View2d {
	return func(s Structure2d) (Structure2d, error) {
		if err := channel.validate(); err != nil {
			return Structure2d{}, err
		}
		s.channel = channel
		return s, nil
	}
}

// View3d derives a structure sharing the buffer of the given one.
type View3d func(Structure3d) (Structure3d, error)

// Compose returns a view applying before first, then v.
func (v View3d) Compose(before View3d) View3d {
	return func(s Structure3d) (Structure3d, error) {
		s, err := s.View(before)
		if err != nil {
			return Structure3d{}, err
		}
		return s.View(v)
	}
}

// AndThen returns a view applying v first, then after.
func (v View3d) AndThen(after View3d) View3d {
	return after.Compose(v)
}

// IdentityView3d returns a view leaving structures unchanged.
func IdentityView3d() View3d {
	return func(s Structure3d) (Structure3d, error) { return s, nil }
}

// RangeView3d returns a view onto the given box. Applying it fails with
// ErrOutOfBounds if the range does not fit the structure's extent.
func RangeView3d(r Range3d) View3d {
	return func(s Structure3d) (Structure3d, error) {
		if !r.within(s.extent) {
			return Structure3d{}, fmt.Errorf("%w: range %s exceeds extent %s", ErrOutOfBounds, r, s.extent)
		}
		l := s.layout
		return Structure3d{
			extent: r.extent,
			layout: Layout3d{
				start: Index3d{
					Slice: l.start.Slice + l.stride.slice*r.start.Slice,
					Row:   l.start.Row + l.stride.row*r.start.Row,
					Col:   l.start.Col + l.stride.col*r.start.Col,
				},
				stride: l.stride,
			},
			channel: s.channel,
		}, nil
	}
}

// StartView3d returns a view from start to the far corner of the
// structure.
func StartView3d(start Index3d) View3d {
	return func(s Structure3d) (Structure3d, error) {
		e, err := NewExtent3d(
			s.extent.slices-start.Slice,
			s.extent.rows-start.Row,
			s.extent.cols-start.Col,
		)
		if err != nil {
			return Structure3d{}, fmt.Errorf("start %s beyond extent %s: %w", start, s.extent, err)
		}
		r, err := NewRange3d(start, e)
		if err != nil {
			return Structure3d{}, err
		}
		return RangeView3d(r)(s)
	}
}

// ExtentView3d returns a view onto the leading box of the given extent.
func ExtentView3d(extent Extent3d) View3d {
	return RangeView3d(RangeOf3d(extent))
}

// StrideView3d returns a view keeping every stride-th element along each
// dimension. Applying it fails with ErrOutOfBounds for a zero step.
func StrideView3d(stride Stride3d) View3d {
	return func(s Structure3d) (Structure3d, error) {
		if stride.slice == 0 || stride.row == 0 || stride.col == 0 {
			return Structure3d{}, fmt.Errorf("%w: view %s must be positive", ErrOutOfBounds, stride)
		}
		l := s.layout
		return Structure3d{
			extent: Extent3d{
				slices: ceilDiv(s.extent.slices, stride.slice),
				rows:   ceilDiv(s.extent.rows, stride.row),
				cols:   ceilDiv(s.extent.cols, stride.col),
			},
			layout: Layout3d{
				start: l.start,
				stride: Stride3d{
					slice: l.stride.slice * stride.slice,
					row:   l.stride.row * stride.row,
					col:   l.stride.col * stride.col,
				},
			},
			channel: s.channel,
		}, nil
	}
}

// ChannelView3d returns a view addressing the given channel of
// interleaved data.
func ChannelView3d(channel Channel) View3d {
	return func(s Structure3d) (Structure3d, error) {
		if err := channel.validate(); err != nil {
			return Structure3d{}, err
		}
		s.channel = channel
		return s, nil
	}
}

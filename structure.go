// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import "fmt"

// Structure1d is the addressing contract of a one-dimensional view onto
// a flat buffer.
type Structure1d struct {
	extent  Extent1d
	layout  Layout1d
	channel Channel
}

// NewStructure1d performs validity checks over the given properties and
// returns a Structure1d if they succeed, otherwise an error.
//
// The rules are:
//   - the channel must not be negative
//   - a zero-value layout is only accepted for an extent of at most one
//     element (ErrRequired otherwise)
//   - a zero stride is only accepted for an extent of at most one element
//   - the first addressable offset must not be negative, and the last one
//     must fit the int type
func NewStructure1d(extent Extent1d, layout Layout1d, channel Channel) (Structure1d, error) {
	if err := channel.validate(); err != nil {
		return Structure1d{}, err
	}
	if layout == (Layout1d{}) && extent.size > 1 {
		return Structure1d{}, fmt.Errorf("%w: layout for extent %s", ErrRequired, extent)
	}
	if err := checkStride(extent.size, layout.stride.value); err != nil {
		return Structure1d{}, err
	}
	s := Structure1d{extent: extent, layout: layout, channel: channel}
	if err := checkSpan(int(channel)+layout.start.Value,
		[][2]int{{extent.size, layout.stride.value}}); err != nil {
		return Structure1d{}, err
	}
	return s, nil
}

// StructureOf1d returns the canonical structure of the given extent over
// a buffer interleaving the given number of channels. The structure
// addresses channel 0; use ChannelView1d to address the others.
func StructureOf1d(extent Extent1d, channels Channels) (Structure1d, error) {
	if err := channels.validate(); err != nil {
		return Structure1d{}, err
	}
	if _, err := checkedMul(extent.size, int(channels)); err != nil {
		return Structure1d{}, fmt.Errorf("structure %s with %d channels: %w", extent, channels, err)
	}
	return Structure1d{extent: extent, layout: RowMajorLayout1d(channels)}, nil
}

// MustStructureOf1d is like StructureOf1d but panics on error.
func MustStructureOf1d(extent Extent1d, channels Channels) Structure1d {
	return must(StructureOf1d(extent, channels))
}

func (s Structure1d) Extent() Extent1d { return s.extent }
func (s Structure1d) Layout() Layout1d { return s.layout }
func (s Structure1d) Channel() Channel { return s.channel }

// Offset returns the buffer position of the element at i.
// The index is not checked against the extent.
func (s Structure1d) Offset(i Index1d) int {
	return s.layout.Offset(i) + int(s.channel)
}

// Index returns the index whose Offset is the given one. The offset is
// not checked: it must be one produced by Offset.
func (s Structure1d) Index(offset int) Index1d {
	return s.layout.Index(offset - int(s.channel))
}

// CheckedIndex is like Index but fails with ErrNotInvertible if offset is
// not one of the structure's addressable offsets.
func (s Structure1d) CheckedIndex(offset int) (Index1d, error) {
	i := s.Index(offset)
	if i.Value < 0 || i.Value >= s.extent.size || s.Offset(i) != offset {
		return Index1d{}, fmt.Errorf("%w: offset %d in %s", ErrNotInvertible, offset, s)
	}
	return i, nil
}

// Span returns the lowest and the highest addressable offsets. The
// boolean flag is false for an empty structure.
func (s Structure1d) Span() (lo, hi int, ok bool) {
	if s.extent.size == 0 {
		return 0, 0, false
	}
	lo = s.Offset(Index1d{})
	return lo, lo + (s.extent.size-1)*s.layout.stride.value, true
}

// Like returns the canonical single-channel structure of the same extent.
func (s Structure1d) Like() Structure1d {
	return Structure1d{extent: s.extent, layout: RowMajorLayout1d(OneChannel)}
}

// View derives a new structure by applying v.
func (s Structure1d) View(v View1d) (Structure1d, error) {
	if v == nil {
		return Structure1d{}, fmt.Errorf("%w: view", ErrRequired)
	}
	return v(s)
}

// Nd converts the structure to its N-dimensional form.
func (s Structure1d) Nd() StructureNd {
	return StructureNd{
		extent: s.extent.Nd(),
		layout: LayoutNd{
			start:  IndexNd{coords: []int{s.layout.start.Value}},
			stride: StrideNd{steps: []int{s.layout.stride.value}},
		},
		channel: s.channel,
	}
}

func (s Structure1d) String() string {
	return fmt.Sprintf("Structure{extent=%s, %s, channel=%d}", s.extent, s.layout, s.channel)
}

// Structure2d is the addressing contract of a two-dimensional view onto
// a flat buffer.
type Structure2d struct {
	extent  Extent2d
	layout  Layout2d
	channel Channel
}

// NewStructure2d performs the same checks as NewStructure1d over each
// dimension and returns a Structure2d if they succeed.
func NewStructure2d(extent Extent2d, layout Layout2d, channel Channel) (Structure2d, error) {
	if err := channel.validate(); err != nil {
		return Structure2d{}, err
	}
	if layout == (Layout2d{}) && extent.Size() > 1 {
		return Structure2d{}, fmt.Errorf("%w: layout for extent %s", ErrRequired, extent)
	}
	if err := checkStride(extent.rows, layout.stride.row); err != nil {
		return Structure2d{}, err
	}
	if err := checkStride(extent.cols, layout.stride.col); err != nil {
		return Structure2d{}, err
	}
	if err := checkSpan(int(channel)+layout.start.Row+layout.start.Col, [][2]int{
		{extent.rows, layout.stride.row},
		{extent.cols, layout.stride.col},
	}); err != nil {
		return Structure2d{}, err
	}
	return Structure2d{extent: extent, layout: layout, channel: channel}, nil
}

// StructureOf2d returns the canonical row-major structure of the given
// extent over a buffer interleaving the given number of channels.
func StructureOf2d(extent Extent2d, channels Channels) (Structure2d, error) {
	if err := channels.validate(); err != nil {
		return Structure2d{}, err
	}
	if _, err := checkedMul(extent.Size(), int(channels)); err != nil {
		return Structure2d{}, fmt.Errorf("structure %s with %d channels: %w", extent, channels, err)
	}
	return Structure2d{extent: extent, layout: RowMajorLayout2d(extent, channels)}, nil
}

// MustStructureOf2d is like StructureOf2d but panics on error.
func MustStructureOf2d(extent Extent2d, channels Channels) Structure2d {
	return must(StructureOf2d(extent, channels))
}

func (s Structure2d) Extent() Extent2d { return s.extent }
func (s Structure2d) Layout() Layout2d { return s.layout }
func (s Structure2d) Channel() Channel { return s.channel }

// Offset returns the buffer position of the element at i.
// The index is not checked against the extent.
func (s Structure2d) Offset(i Index2d) int {
	return s.layout.Offset(i) + int(s.channel)
}

// Index returns the index whose Offset is the given one, under the
// nesting assumption documented on Layout2d.Index.
func (s Structure2d) Index(offset int) Index2d {
	return s.layout.Index(offset - int(s.channel))
}

// CheckedIndex is like Index but fails with ErrNotInvertible if the
// arithmetic inverse does not map back to offset or lies outside the
// extent, which happens for offsets the structure does not address and
// for layouts whose strides are not nested row-major.
func (s Structure2d) CheckedIndex(offset int) (Index2d, error) {
	i := s.Index(offset)
	if !RangeOf2d(s.extent).Contains(i) || s.Offset(i) != offset {
		return Index2d{}, fmt.Errorf("%w: offset %d in %s", ErrNotInvertible, offset, s)
	}
	return i, nil
}

// Span returns the lowest and the highest addressable offsets. The
// boolean flag is false for an empty structure.
func (s Structure2d) Span() (lo, hi int, ok bool) {
	if s.extent.Size() == 0 {
		return 0, 0, false
	}
	lo = s.Offset(Index2d{})
	return lo, s.Offset(Index2d{Row: s.extent.rows - 1, Col: s.extent.cols - 1}), true
}

// Like returns the canonical single-channel structure of the same extent.
func (s Structure2d) Like() Structure2d {
	return Structure2d{extent: s.extent, layout: RowMajorLayout2d(s.extent, OneChannel)}
}

// View derives a new structure by applying v.
func (s Structure2d) View(v View2d) (Structure2d, error) {
	if v == nil {
		return Structure2d{}, fmt.Errorf("%w: view", ErrRequired)
	}
	return v(s)
}

// Project derives a one-dimensional structure by applying p.
func (s Structure2d) Project(p Projection2d) (Structure1d, error) {
	if p == nil {
		return Structure1d{}, fmt.Errorf("%w: projection", ErrRequired)
	}
	return p(s)
}

// Transpose returns the structure with rows and columns swapped.
func (s Structure2d) Transpose() Structure2d {
	return Structure2d{
		extent:  Extent2d{rows: s.extent.cols, cols: s.extent.rows},
		layout:  s.layout.transpose(),
		channel: s.channel,
	}
}

// Nd converts the structure to its N-dimensional form.
func (s Structure2d) Nd() StructureNd {
	return StructureNd{
		extent: s.extent.Nd(),
		layout: LayoutNd{
			start:  IndexNd{coords: []int{s.layout.start.Row, s.layout.start.Col}},
			stride: StrideNd{steps: []int{s.layout.stride.row, s.layout.stride.col}},
		},
		channel: s.channel,
	}
}

func (s Structure2d) String() string {
	return fmt.Sprintf("Structure{extent=%s, %s, channel=%d}", s.extent, s.layout, s.channel)
}

// Structure3d is the addressing contract of a three-dimensional view onto
// a flat buffer.
type Structure3d struct {
	extent  Extent3d
	layout  Layout3d
	channel Channel
}

// NewStructure3d performs the same checks as NewStructure1d over each
// dimension and returns a Structure3d if they succeed.
func NewStructure3d(extent Extent3d, layout Layout3d, channel Channel) (Structure3d, error) {
	if err := channel.validate(); err != nil {
		return Structure3d{}, err
	}
	if layout == (Layout3d{}) && extent.Size() > 1 {
		return Structure3d{}, fmt.Errorf("%w: layout for extent %s", ErrRequired, extent)
	}
	dims := [][2]int{
		{extent.slices, layout.stride.slice},
		{extent.rows, layout.stride.row},
		{extent.cols, layout.stride.col},
	}
	for _, d := range dims {
		if err := checkStride(d[0], d[1]); err != nil {
			return Structure3d{}, err
		}
	}
	start := int(channel) + layout.start.Slice + layout.start.Row + layout.start.Col
	if err := checkSpan(start, dims); err != nil {
		return Structure3d{}, err
	}
	return Structure3d{extent: extent, layout: layout, channel: channel}, nil
}

// StructureOf3d returns the canonical slice-major structure of the given
// extent over a buffer interleaving the given number of channels.
func StructureOf3d(extent Extent3d, channels Channels) (Structure3d, error) {
	if err := channels.validate(); err != nil {
		return Structure3d{}, err
	}
	if _, err := checkedMul(extent.Size(), int(channels)); err != nil {
		return Structure3d{}, fmt.Errorf("structure %s with %d channels: %w", extent, channels, err)
	}
	return Structure3d{extent: extent, layout: RowMajorLayout3d(extent, channels)}, nil
}

// MustStructureOf3d is like StructureOf3d but panics on error.
func MustStructureOf3d(extent Extent3d, channels Channels) Structure3d {
	return must(StructureOf3d(extent, channels))
}

func (s Structure3d) Extent() Extent3d { return s.extent }
func (s Structure3d) Layout() Layout3d { return s.layout }
func (s Structure3d) Channel() Channel { return s.channel }

// Offset returns the buffer position of the element at i.
// The index is not checked against the extent.
func (s Structure3d) Offset(i Index3d) int {
	return s.layout.Offset(i) + int(s.channel)
}

// Index returns the index whose Offset is the given one, under the
// nesting assumption documented on Layout3d.Index.
func (s Structure3d) Index(offset int) Index3d {
	return s.layout.Index(offset - int(s.channel))
}

// CheckedIndex is like Index but fails with ErrNotInvertible if the
// arithmetic inverse does not map back to offset or lies outside the
// extent.
func (s Structure3d) CheckedIndex(offset int) (Index3d, error) {
	i := s.Index(offset)
	if !RangeOf3d(s.extent).Contains(i) || s.Offset(i) != offset {
		return Index3d{}, fmt.Errorf("%w: offset %d in %s", ErrNotInvertible, offset, s)
	}
	return i, nil
}

// Span returns the lowest and the highest addressable offsets. The
// boolean flag is false for an empty structure.
func (s Structure3d) Span() (lo, hi int, ok bool) {
	if s.extent.Size() == 0 {
		return 0, 0, false
	}
	last := Index3d{Slice: s.extent.slices - 1, Row: s.extent.rows - 1, Col: s.extent.cols - 1}
	return s.Offset(Index3d{}), s.Offset(last), true
}

// Like returns the canonical single-channel structure of the same extent.
func (s Structure3d) Like() Structure3d {
	return Structure3d{extent: s.extent, layout: RowMajorLayout3d(s.extent, OneChannel)}
}

// View derives a new structure by applying v.
func (s Structure3d) View(v View3d) (Structure3d, error) {
	if v == nil {
		return Structure3d{}, fmt.Errorf("%w: view", ErrRequired)
	}
	return v(s)
}

// Project derives a two-dimensional structure by applying p.
func (s Structure3d) Project(p Projection3d) (Structure2d, error) {
	if p == nil {
		return Structure2d{}, fmt.Errorf("%w: projection", ErrRequired)
	}
	return p(s)
}

// Nd converts the structure to its N-dimensional form.
func (s Structure3d) Nd() StructureNd {
	l := s.layout
	return StructureNd{
		extent: s.extent.Nd(),
		layout: LayoutNd{
			start:  IndexNd{coords: []int{l.start.Slice, l.start.Row, l.start.Col}},
			stride: StrideNd{steps: []int{l.stride.slice, l.stride.row, l.stride.col}},
		},
		channel: s.channel,
	}
}

func (s Structure3d) String() string {
	return fmt.Sprintf("Structure{extent=%s, %s, channel=%d}", s.extent, s.layout, s.channel)
}

// checkStride rejects a zero step on a dimension that has more than one
// element, since distinct indexes would share one offset.
func checkStride(size, step int) error {
	if step == 0 && size > 1 {
		return fmt.Errorf("%w: zero stride on dimension of size %d", ErrOutOfBounds, size)
	}
	return nil
}

// checkSpan verifies that the first offset is not negative and that the
// last offset, start + sum((size-1)*step), fits the int type. Each pair of
// dims holds a dimension size and its step.
func checkSpan(start int, dims [][2]int) error {
	if start < 0 {
		return fmt.Errorf("%w: negative start offset %d", ErrOutOfBounds, start)
	}
	last := start
	for _, d := range dims {
		if d[0] == 0 {
			return nil
		}
		n, err := checkedMul(d[0]-1, d[1])
		if err != nil {
			return fmt.Errorf("structure span: %w", err)
		}
		if last, err = checkedAdd(last, n); err != nil {
			return fmt.Errorf("structure span: %w", err)
		}
	}
	return nil
}

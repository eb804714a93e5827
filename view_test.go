// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeView1d_Channels(t *testing.T) {
	const size = 10000
	buf := make([]string, 2*size)
	for i := 0; i < size; i++ {
		buf[2*i] = fmt.Sprintf("v_%d", i)
		buf[2*i+1] = fmt.Sprintf("v_%d_c2", i)
	}
	s := MustStructureOf1d(MustExtent1d(size), 2)
	rv := RangeView1d(MustRange1d(Index1d{Value: 4000}, MustExtent1d(5000)))

	v, err := s.View(rv)
	require.NoError(t, err)
	assert.Equal(t, 5000, v.Extent().Size())
	for i := range Forward1d(RangeOf1d(v.Extent())) {
		require.Equal(t, fmt.Sprintf("v_%d", 4000+i.Value), buf[v.Offset(i)])
	}

	c2, err := s.View(rv.AndThen(ChannelView1d(1)))
	require.NoError(t, err)
	for i := range Forward1d(RangeOf1d(MustExtent1d(1000))) {
		require.Equal(t, fmt.Sprintf("v_%d_c2", 4000+i.Value), buf[c2.Offset(i)])
	}
	assert.Equal(t, "v_8999_c2", buf[c2.Offset(Index1d{Value: 4999})])
}

func TestRangeView2d(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(100, 200), ThreeChannels)
	r := MustRange2d(Index2d{Row: 0, Col: 4}, MustExtent2d(34, 32))

	v, err := s.View(RangeView2d(r))
	require.NoError(t, err)
	assert.Equal(t, MustExtent2d(34, 32), v.Extent())
	assert.Equal(t, Index2d{Row: 0, Col: 12}, v.Layout().Start())
	assert.Equal(t, s.Layout().Stride(), v.Layout().Stride())

	for i := range RowMajor2d(RangeOf2d(v.Extent())) {
		want := s.Offset(Index2d{Row: i.Row + r.Start().Row, Col: i.Col + r.Start().Col})
		require.Equal(t, want, v.Offset(i), "index %s", i)
		require.Equal(t, i, v.Index(v.Offset(i)), "index %s", i)
	}

	t.Run("exceeding extent", func(t *testing.T) {
		_, err := s.View(RangeView2d(MustRange2d(Index2d{Row: 90, Col: 0}, MustExtent2d(11, 1))))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestStartView2d(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(5, 5), OneChannel)

	v, err := s.View(StartView2d(Index2d{Row: 2, Col: 3}))
	require.NoError(t, err)
	assert.Equal(t, MustExtent2d(3, 2), v.Extent())
	assert.Equal(t, s.Offset(Index2d{Row: 4, Col: 4}), v.Offset(Index2d{Row: 2, Col: 1}))

	_, err = s.View(StartView2d(Index2d{Row: 6}))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.View(StartView2d(Index2d{Col: -1}))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	empty, err := s.View(StartView2d(Index2d{Row: 5, Col: 5}))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Extent().Size())
}

func TestStartView1d(t *testing.T) {
	s := MustStructureOf1d(MustExtent1d(10), OneChannel)
	v, err := s.View(StartView1d(Index1d{Value: 7}))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Extent().Size())
	assert.Equal(t, 9, v.Offset(Index1d{Value: 2}))

	_, err = s.View(StartView1d(Index1d{Value: 11}))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestExtentView(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(4, 6), OneChannel)
	v, err := s.View(ExtentView2d(MustExtent2d(2, 3)))
	require.NoError(t, err)
	assert.Equal(t, MustExtent2d(2, 3), v.Extent())
	assert.Equal(t, 6+2, v.Offset(Index2d{Row: 1, Col: 2}))

	_, err = s.View(ExtentView2d(MustExtent2d(5, 1)))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	v1, err := MustStructureOf1d(MustExtent1d(8), OneChannel).View(ExtentView1d(MustExtent1d(3)))
	require.NoError(t, err)
	assert.Equal(t, 3, v1.Extent().Size())
}

func TestStrideView2d(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(5, 7), OneChannel)

	v, err := s.View(StrideView2d(MustStride2d(2, 3)))
	require.NoError(t, err)
	assert.Equal(t, MustExtent2d(3, 3), v.Extent())
	for i := range RowMajor2d(RangeOf2d(v.Extent())) {
		want := s.Offset(Index2d{Row: 2 * i.Row, Col: 3 * i.Col})
		require.Equal(t, want, v.Offset(i), "index %s", i)
	}

	_, err = s.View(StrideView2d(MustStride2d(0, 1)))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	empty, err := MustStructureOf2d(MustExtent2d(0, 3), OneChannel).View(StrideView2d(MustStride2d(2, 2)))
	require.NoError(t, err)
	assert.Equal(t, MustExtent2d(0, 2), empty.Extent())
}

func TestStrideView1d(t *testing.T) {
	s := MustStructureOf1d(MustExtent1d(10), OneChannel)
	v, err := s.View(StrideView1d(MustStride1d(3)))
	require.NoError(t, err)
	assert.Equal(t, 4, v.Extent().Size())
	assert.Equal(t, 9, v.Offset(Index1d{Value: 3}))

	_, err = s.View(StrideView1d(MustStride1d(0)))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestTransposeView2d(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(3, 5), ThreeChannels)
	v, err := s.View(TransposeView2d())
	require.NoError(t, err)
	assert.Equal(t, MustExtent2d(5, 3), v.Extent())

	for i := range RowMajor2d(RangeOf2d(v.Extent())) {
		require.Equal(t, s.Offset(Index2d{Row: i.Col, Col: i.Row}), v.Offset(i))
	}

	back, err := v.View(TransposeView2d())
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestChannelView(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(2, 2), ThreeChannels)

	v, err := s.View(ChannelView2d(1).AndThen(ChannelView2d(2)))
	require.NoError(t, err)
	assert.Equal(t, Channel(2), v.Channel())
	assert.Equal(t, s.Offset(Index2d{Row: 1, Col: 1})+2, v.Offset(Index2d{Row: 1, Col: 1}))

	_, err = s.View(ChannelView2d(-1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = MustStructureOf1d(MustExtent1d(2), OneChannel).View(ChannelView1d(-1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = MustStructureOf3d(MustExtent3d(1, 1, 1), OneChannel).View(ChannelView3d(-1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestView2d_Compose(t *testing.T) {
	s := MustStructureOf2d(MustExtent2d(10, 10), OneChannel)
	rng := RangeView2d(MustRange2d(Index2d{Row: 1, Col: 1}, MustExtent2d(6, 6)))
	str := StrideView2d(MustStride2d(2, 2))

	a, err := s.View(str.Compose(rng))
	require.NoError(t, err)
	b, err := s.View(rng.AndThen(str))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, MustExtent2d(3, 3), a.Extent())
	assert.Equal(t, s.Offset(Index2d{Row: 5, Col: 5}), a.Offset(Index2d{Row: 2, Col: 2}))

	// Striding first leaves a 5x5 structure the range does not fit.
	_, err = s.View(rng.Compose(str))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	t.Run("nil member", func(t *testing.T) {
		_, err := s.View(rng.AndThen(nil))
		assert.ErrorIs(t, err, ErrRequired)
		_, err = s.View(rng.Compose(nil))
		assert.ErrorIs(t, err, ErrRequired)
		var none View2d
		_, err = s.View(none.Compose(rng))
		assert.ErrorIs(t, err, ErrRequired)
	})

	t.Run("identity", func(t *testing.T) {
		v, err := s.View(IdentityView2d().AndThen(rng))
		require.NoError(t, err)
		w, err := s.View(rng)
		require.NoError(t, err)
		assert.Equal(t, w, v)
	})
}

func TestView1d_Compose(t *testing.T) {
	s := MustStructureOf1d(MustExtent1d(20), OneChannel)
	v, err := s.View(StrideView1d(MustStride1d(2)).Compose(StartView1d(Index1d{Value: 5})))
	require.NoError(t, err)
	assert.Equal(t, 8, v.Extent().Size())
	assert.Equal(t, 5, v.Offset(Index1d{}))
	assert.Equal(t, 19, v.Offset(Index1d{Value: 7}))

	_, err = s.View(IdentityView1d().AndThen(nil))
	assert.ErrorIs(t, err, ErrRequired)
}

func TestViews3d(t *testing.T) {
	s := MustStructureOf3d(MustExtent3d(4, 5, 6), ThreeChannels)

	r := MustRange3d(Index3d{Slice: 1, Row: 2, Col: 3}, MustExtent3d(3, 3, 3))
	v, err := s.View(RangeView3d(r).AndThen(StrideView3d(MustStride3d(2, 1, 2))))
	require.NoError(t, err)
	assert.Equal(t, MustExtent3d(2, 3, 2), v.Extent())
	for i := range RowMajor3d(RangeOf3d(v.Extent())) {
		want := s.Offset(Index3d{Slice: 1 + 2*i.Slice, Row: 2 + i.Row, Col: 3 + 2*i.Col})
		require.Equal(t, want, v.Offset(i), "index %s", i)
	}

	_, err = s.View(RangeView3d(MustRange3d(Index3d{Slice: 2}, MustExtent3d(3, 1, 1))))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.View(StrideView3d(MustStride3d(1, 0, 1)))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	st, err := s.View(StartView3d(Index3d{Slice: 3, Row: 4, Col: 5}).Compose(IdentityView3d()))
	require.NoError(t, err)
	assert.Equal(t, MustExtent3d(1, 1, 1), st.Extent())
	assert.Equal(t, s.Offset(Index3d{Slice: 3, Row: 4, Col: 5}), st.Offset(Index3d{}))

	ev, err := s.View(ExtentView3d(MustExtent3d(1, 2, 3)).AndThen(ChannelView3d(2)))
	require.NoError(t, err)
	assert.Equal(t, s.Offset(Index3d{Row: 1, Col: 2})+2, ev.Offset(Index3d{Row: 1, Col: 2}))
}

func TestViewsNd(t *testing.T) {
	s2 := MustStructureOf2d(MustExtent2d(8, 9), ThreeChannels)
	s := s2.Nd()

	t.Run("range", func(t *testing.T) {
		want, err := s2.View(RangeView2d(MustRange2d(Index2d{Row: 1, Col: 2}, MustExtent2d(4, 5))))
		require.NoError(t, err)
		got, err := s.View(RangeViewNd(MustRangeNd(NewIndexNd(1, 2), MustExtentNd(4, 5))))
		require.NoError(t, err)
		assert.True(t, want.Nd().Equal(got), "want %s, got %s", want.Nd(), got)

		_, err = s.View(RangeViewNd(MustRangeNd(NewIndexNd(5, 0), MustExtentNd(4, 5))))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = s.View(RangeViewNd(RangeOfNd(MustExtentNd(1))))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("start", func(t *testing.T) {
		got, err := s.View(StartViewNd(NewIndexNd(7, 8)))
		require.NoError(t, err)
		assert.True(t, got.Extent().Equal(MustExtentNd(1, 1)))
		assert.Equal(t, s2.Offset(Index2d{Row: 7, Col: 8}), got.Offset(NewIndexNd(0, 0)))

		_, err = s.View(StartViewNd(NewIndexNd(9, 0)))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = s.View(StartViewNd(NewIndexNd(0)))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("extent", func(t *testing.T) {
		got, err := s.View(ExtentViewNd(MustExtentNd(2, 2)))
		require.NoError(t, err)
		assert.Equal(t, 4, got.Extent().Size())
	})

	t.Run("stride", func(t *testing.T) {
		want, err := s2.View(StrideView2d(MustStride2d(3, 2)))
		require.NoError(t, err)
		got, err := s.View(StrideViewNd(MustStrideNd(3, 2)))
		require.NoError(t, err)
		assert.True(t, want.Nd().Equal(got))
		assert.Equal(t, want.Extent().Size(), got.Extent().Size())

		_, err = s.View(StrideViewNd(MustStrideNd(0, 2)))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = s.View(StrideViewNd(MustStrideNd(1)))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("permute", func(t *testing.T) {
		got, err := s.View(PermuteViewNd(1, 0))
		require.NoError(t, err)
		assert.True(t, s2.Transpose().Nd().Equal(got))

		_, err = s.View(PermuteViewNd(0, 0))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = s.View(PermuteViewNd(0, 1, 2))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("permute 4d", func(t *testing.T) {
		s4 := MustStructureOfNd(MustExtentNd(2, 3, 4, 5), OneChannel)
		got, err := s4.View(PermuteViewNd(3, 1, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, []int{5, 3, 2, 4}, got.Extent().Dims())
		assert.Equal(t,
			s4.Offset(NewIndexNd(1, 2, 3, 4)),
			got.Offset(NewIndexNd(4, 2, 1, 3)))
	})

	t.Run("channel and compose", func(t *testing.T) {
		v := ChannelViewNd(2).Compose(IdentityViewNd())
		got, err := s.View(v)
		require.NoError(t, err)
		assert.Equal(t, Channel(2), got.Channel())

		_, err = s.View(ChannelViewNd(-1))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = s.View(v.AndThen(nil))
		assert.ErrorIs(t, err, ErrRequired)
	})
}

// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"testing"

	"github.com/nlpodyssey/lattices"
	"github.com/nlpodyssey/lattices/array"
	"github.com/nlpodyssey/lattices/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ fmt.Stringer = Grid1d[int]{}
	_ fmt.Stringer = Grid2d[int]{}
)

func grid2x3(t *testing.T) Grid2d[int] {
	t.Helper()
	g, err := Of2d(lattices.MustExtent2d(2, 3), 0, 1, 2, 3, 4, 5)
	require.NoError(t, err)
	return g
}

func TestOf2d(t *testing.T) {
	g := grid2x3(t)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 4, g.Get(1, 1))
	assert.Equal(t, "[[0 1 2] [3 4 5]]", g.String())

	_, err := Of2d(lattices.MustExtent2d(2, 2), 1, 2, 3)
	assert.ErrorIs(t, err, lattices.ErrDimensionMismatch)
}

func TestWrap2d(t *testing.T) {
	s := lattices.MustStructureOf2d(lattices.MustExtent2d(2, 3), lattices.OneChannel)

	g, err := Wrap2d(s, array.Of(0, 1, 2, 3, 4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Get(1, 2))

	_, err = Wrap2d(s, array.Of(0, 1, 2, 3, 4))
	assert.ErrorIs(t, err, lattices.ErrOutOfBounds)

	empty, err := Wrap2d(lattices.MustStructureOf2d(lattices.MustExtent2d(0, 3), lattices.OneChannel), array.Of[int]())
	require.NoError(t, err)
	_, ok := empty.Reduce(func(acc, v int) int { return acc + v })
	assert.False(t, ok)
}

func TestGrid2d_SharedBuffer(t *testing.T) {
	g := grid2x3(t)

	tr := g.Transpose()
	assert.Equal(t, lattices.MustExtent2d(3, 2), tr.Extent())
	assert.Equal(t, "[[0 3] [1 4] [2 5]]", tr.String())

	tr.Set(2, 0, 20)
	assert.Equal(t, 20, g.Get(0, 2))

	v, err := g.View(lattices.RangeView2d(lattices.MustRange2d(
		lattices.Index2d{Row: 0, Col: 1}, lattices.MustExtent2d(2, 2))))
	require.NoError(t, err)
	assert.Equal(t, "[[1 20] [4 5]]", v.String())
	v.Fill(7)
	assert.Equal(t, "[[0 7 7] [3 7 7]]", g.String())

	c := g.Copy()
	c.Set(0, 0, 99)
	assert.Equal(t, 0, g.Get(0, 0))
	assert.True(t, Equal2d(c.Transpose().Transpose(), c))
}

func TestGrid2d_RowCol(t *testing.T) {
	g := grid2x3(t)

	row, err := g.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "[3 4 5]", row.String())

	col, err := g.Col(2)
	require.NoError(t, err)
	assert.Equal(t, "[2 5]", col.String())

	col.Set(0, 12)
	assert.Equal(t, 12, g.Get(0, 2))

	_, err = g.Row(2)
	assert.ErrorIs(t, err, lattices.ErrOutOfBounds)
	_, err = g.Col(-1)
	assert.ErrorIs(t, err, lattices.ErrOutOfBounds)
}

func TestGrid2d_All(t *testing.T) {
	g := grid2x3(t)

	var rowMajor []int
	for _, v := range g.All(nil) {
		rowMajor = append(rowMajor, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, rowMajor)

	var colMajor []int
	for i, v := range g.All(lattices.ColMajor2d) {
		require.Equal(t, g.Get(i.Row, i.Col), v)
		colMajor = append(colMajor, v)
	}
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, colMajor)

	var first []int
	for _, v := range g.All(lattices.RowMajorBackward2d) {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{5, 4}, first)
}

func TestGrid2d_Assign(t *testing.T) {
	t.Run("from transpose of itself", func(t *testing.T) {
		g, err := Of2d(lattices.MustExtent2d(2, 2), 1, 2, 3, 4)
		require.NoError(t, err)
		require.NoError(t, g.Assign(g.Transpose()))
		assert.Equal(t, "[[1 3] [2 4]]", g.String())
	})

	t.Run("extent mismatch", func(t *testing.T) {
		g := grid2x3(t)
		err := g.Assign(g.Transpose())
		assert.ErrorIs(t, err, lattices.ErrDimensionMismatch)
	})

	t.Run("rows", func(t *testing.T) {
		g := New2d[string](lattices.MustExtent2d(2, 2))
		require.NoError(t, g.AssignRows([][]string{{"a", "b"}, {"c", "d"}}))
		assert.Equal(t, "[[a b] [c d]]", g.String())

		err := g.AssignRows([][]string{{"a", "b"}, {"c"}})
		assert.ErrorIs(t, err, lattices.ErrDimensionMismatch)
		assert.Equal(t, "[[a b] [c d]]", g.String())

		err = g.AssignRows([][]string{{"a", "b"}})
		assert.ErrorIs(t, err, lattices.ErrDimensionMismatch)
	})
}

func TestGrid2d_CombineSwap(t *testing.T) {
	a := grid2x3(t)
	b := grid2x3(t)
	b.Update(func(v int) int { return v * 10 })

	require.NoError(t, a.Combine(b, func(x, y int) int { return x + y }))
	assert.Equal(t, "[[0 11 22] [33 44 55]]", a.String())

	require.NoError(t, a.Swap(b))
	assert.Equal(t, "[[0 10 20] [30 40 50]]", a.String())
	assert.Equal(t, "[[0 11 22] [33 44 55]]", b.String())

	sum, ok := b.Reduce(func(acc, v int) int { return acc + v })
	assert.True(t, ok)
	assert.Equal(t, 165, sum)

	sq, err := Of2d(lattices.MustExtent2d(2, 2), 1, 2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, sq.Combine(sq.Transpose(), func(x, y int) int { return x - y }))
	assert.Equal(t, "[[0 -1] [1 0]]", sq.String())

	assert.ErrorIs(t, a.Swap(a.Transpose()), lattices.ErrDimensionMismatch)
}

func TestEqualFloat2d(t *testing.T) {
	x, y := 0.1, 0.2
	a, err := Of2d(lattices.MustExtent2d(1, 2), x+y, 1)
	require.NoError(t, err)
	b, err := Of2d(lattices.MustExtent2d(1, 2), 0.3, 1)
	require.NoError(t, err)

	assert.True(t, EqualFloat2d(numeric.Default(), a, b))
	assert.False(t, EqualFloat2d(numeric.Exact(), a, b))
	assert.False(t, Equal2d(a, b))
	assert.False(t, EqualFloat2d(numeric.Default(), a, a.Transpose()))
}

func TestGrid1d(t *testing.T) {
	g := Of1d(1, 2, 3, 4, 5)
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, "[1 2 3 4 5]", g.String())

	odd, err := g.View(lattices.StrideView1d(lattices.MustStride1d(2)))
	require.NoError(t, err)
	assert.Equal(t, "[1 3 5]", odd.String())
	odd.Update(func(v int) int { return -v })
	assert.Equal(t, "[-1 2 -3 4 -5]", g.String())

	var back []int
	for _, v := range g.All(lattices.Backward1d) {
		back = append(back, v)
	}
	assert.Equal(t, []int{-5, 4, -3, 2, -1}, back)

	largest, ok := g.Reduce(func(acc, v int) int { return max(acc, v) })
	assert.True(t, ok)
	assert.Equal(t, 4, largest)

	require.NoError(t, odd.AssignValues(7, 8, 9))
	assert.Equal(t, "[7 2 8 4 9]", g.String())
	assert.ErrorIs(t, odd.AssignValues(1), lattices.ErrDimensionMismatch)

	c := g.Copy()
	assert.True(t, Equal1d(c, g))
	c.Set(0, 0)
	assert.False(t, Equal1d(c, g))
	require.NoError(t, c.Swap(g))
	assert.Equal(t, 0, g.Get(0))
	assert.Equal(t, 7, c.Get(0))

	_, err = Wrap1d(lattices.MustStructureOf1d(lattices.MustExtent1d(3), 2), array.Of(1, 2, 3, 4))
	assert.ErrorIs(t, err, lattices.ErrOutOfBounds)

	_, ok = New1d[int](lattices.MustExtent1d(0)).Reduce(func(acc, v int) int { return acc + v })
	assert.False(t, ok)
}

func TestGrid1d_Channels(t *testing.T) {
	s := lattices.MustStructureOf1d(lattices.MustExtent1d(3), 2)
	data := array.Of("r0", "g0", "r1", "g1", "r2", "g2")

	red, err := Wrap1d(s, data)
	require.NoError(t, err)
	green, err := red.View(lattices.ChannelView1d(1))
	require.NoError(t, err)
	assert.Equal(t, "[r0 r1 r2]", red.String())
	assert.Equal(t, "[g0 g1 g2]", green.String())

	require.NoError(t, red.Assign(green))
	assert.Equal(t, []string{"g0", "g0", "g1", "g1", "g2", "g2"}, data.Elems())

	a := Of1d(1.0, 2.0)
	b := Of1d(1.0, 2.0+1e-12)
	assert.True(t, EqualFloat1d(numeric.Default(), a, b))
	assert.False(t, EqualFloat1d(numeric.Exact(), a, b))
	assert.False(t, EqualFloat1d(numeric.Default(), a, Of1d(1.0)))
}

func TestGrid3d(t *testing.T) {
	values := make([]int, 24)
	for i := range values {
		values[i] = i
	}
	g, err := Of3d(lattices.MustExtent3d(2, 3, 4), values...)
	require.NoError(t, err)
	assert.Equal(t, 17, g.Get(1, 1, 1))

	slice, err := g.Slice(1)
	require.NoError(t, err)
	assert.Equal(t, "[[12 13 14 15] [16 17 18 19] [20 21 22 23]]", slice.String())

	rows, err := g.Project(lattices.RowProjection3d(2))
	require.NoError(t, err)
	assert.Equal(t, "[[8 9 10 11] [20 21 22 23]]", rows.String())

	cols, err := g.Project(lattices.ColProjection3d(3))
	require.NoError(t, err)
	assert.Equal(t, "[[3 7 11] [15 19 23]]", cols.String())
	cols.Set(0, 0, -3)
	assert.Equal(t, -3, g.Get(0, 0, 3))

	_, err = g.Slice(2)
	assert.ErrorIs(t, err, lattices.ErrOutOfBounds)

	_, err = Of3d(lattices.MustExtent3d(1, 1, 2), 1)
	assert.ErrorIs(t, err, lattices.ErrDimensionMismatch)
}

func TestGrid3d_Ops(t *testing.T) {
	e := lattices.MustExtent3d(2, 2, 2)
	g := New3d[float64](e)
	g.Fill(1.5)

	total, ok := g.Reduce(func(acc, v float64) float64 { return acc + v })
	assert.True(t, ok)
	assert.Equal(t, 12.0, total)

	o := New3d[float64](e)
	o.Update(func(float64) float64 { return 0.5 })
	require.NoError(t, g.Combine(o, func(a, b float64) float64 { return a * b }))
	assert.False(t, EqualFloat3d(numeric.Default(), g, o.Copy()))
	for _, v := range g.All(lattices.ColMajor3d) {
		require.Equal(t, 0.75, v)
	}

	require.NoError(t, o.Assign(g))
	assert.True(t, Equal3d(o, g))

	first, err := g.View(lattices.RangeView3d(lattices.MustRange3d(
		lattices.Index3d{}, lattices.MustExtent3d(1, 2, 2))))
	require.NoError(t, err)
	first.Fill(0)
	assert.False(t, Equal3d(o, g))
	assert.Equal(t, 0.0, g.Get(0, 1, 1))
	assert.Equal(t, 0.75, g.Get(1, 1, 1))

	assert.ErrorIs(t, g.Assign(first), lattices.ErrDimensionMismatch)

	s := lattices.MustStructureOf3d(e, lattices.ThreeChannels)
	_, err = Wrap3d(s, array.Of(make([]float64, 21)...))
	assert.ErrorIs(t, err, lattices.ErrOutOfBounds)
}

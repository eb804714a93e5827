// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"slices"
)

// Index1d is a coordinate of a one-dimensional structure.
type Index1d struct {
	Value int
}

func (i Index1d) String() string { return fmt.Sprintf("(%d)", i.Value) }

// Index2d is a coordinate of a two-dimensional structure.
type Index2d struct {
	Row int
	Col int
}

func (i Index2d) String() string { return fmt.Sprintf("(%d, %d)", i.Row, i.Col) }

// Index3d is a coordinate of a three-dimensional structure.
type Index3d struct {
	Slice int
	Row   int
	Col   int
}

func (i Index3d) String() string {
	return fmt.Sprintf("(%d, %d, %d)", i.Slice, i.Row, i.Col)
}

// IndexNd is a coordinate of a structure of arbitrary rank.
type IndexNd struct {
	coords []int
}

// NewIndexNd returns an IndexNd holding a copy of coords.
func NewIndexNd(coords ...int) IndexNd {
	return IndexNd{coords: slices.Clone(coords)}
}

// ZeroIndexNd returns the origin of a structure of the given rank.
func ZeroIndexNd(rank int) IndexNd {
	return IndexNd{coords: make([]int, rank)}
}

// Rank returns the number of coordinates.
func (i IndexNd) Rank() int { return len(i.coords) }

// At returns the coordinate along the given dimension.
func (i IndexNd) At(dim int) int { return i.coords[dim] }

// Coords returns a copy of all coordinates.
func (i IndexNd) Coords() []int { return slices.Clone(i.coords) }

// Equal reports whether i and o hold the same coordinates.
func (i IndexNd) Equal(o IndexNd) bool { return slices.Equal(i.coords, o.coords) }

func (i IndexNd) String() string {
	s := formatInts(i.coords)
	return "(" + s[1:len(s)-1] + ")"
}

// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"iter"
	"slices"
)

// Loop1d traverses every index of a range exactly once. The returned
// sequence can be ranged over any number of times.
type Loop1d func(Range1d) iter.Seq[Index1d]

// Loop2d traverses every index of a range exactly once.
type Loop2d func(Range2d) iter.Seq[Index2d]

// Loop3d traverses every index of a range exactly once.
type Loop3d func(Range3d) iter.Seq[Index3d]

var (
	_ Loop1d = Forward1d
	_ Loop1d = Backward1d
	_ Loop2d = RowMajor2d
	_ Loop2d = RowMajorBackward2d
	_ Loop2d = ColMajor2d
	_ Loop2d = ColMajorBackward2d
	_ Loop3d = RowMajor3d
	_ Loop3d = RowMajorBackward3d
	_ Loop3d = ColMajor3d
	_ Loop3d = ColMajorBackward3d
)

// Forward1d visits the range in increasing order.
func Forward1d(r Range1d) iter.Seq[Index1d] {
	return func(yield func(Index1d) bool) {
		for i := r.start.Value; i < r.End().Value; i++ {
			if !yield(Index1d{Value: i}) {
				return
			}
		}
	}
}

// Backward1d visits the range in decreasing order.
func Backward1d(r Range1d) iter.Seq[Index1d] {
	return func(yield func(Index1d) bool) {
		for i := r.End().Value - 1; i >= r.start.Value; i-- {
			if !yield(Index1d{Value: i}) {
				return
			}
		}
	}
}

// RowMajor2d visits the range row by row, the column varying fastest.
func RowMajor2d(r Range2d) iter.Seq[Index2d] {
	return func(yield func(Index2d) bool) {
		end := r.End()
		for row := r.start.Row; row < end.Row; row++ {
			for col := r.start.Col; col < end.Col; col++ {
				if !yield(Index2d{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// RowMajorBackward2d visits the indexes of RowMajor2d in reverse order.
func RowMajorBackward2d(r Range2d) iter.Seq[Index2d] {
	return func(yield func(Index2d) bool) {
		end := r.End()
		for row := end.Row - 1; row >= r.start.Row; row-- {
			for col := end.Col - 1; col >= r.start.Col; col-- {
				if !yield(Index2d{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// ColMajor2d visits the range column by column, the row varying fastest.
func ColMajor2d(r Range2d) iter.Seq[Index2d] {
	return func(yield func(Index2d) bool) {
		end := r.End()
		for col := r.start.Col; col < end.Col; col++ {
			for row := r.start.Row; row < end.Row; row++ {
				if !yield(Index2d{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// ColMajorBackward2d visits the indexes of ColMajor2d in reverse order.
func ColMajorBackward2d(r Range2d) iter.Seq[Index2d] {
	return func(yield func(Index2d) bool) {
		end := r.End()
		for col := end.Col - 1; col >= r.start.Col; col-- {
			for row := end.Row - 1; row >= r.start.Row; row-- {
				if !yield(Index2d{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// RowMajor3d visits the range slice by slice and row by row, the column
// varying fastest.
func RowMajor3d(r Range3d) iter.Seq[Index3d] {
	return func(yield func(Index3d) bool) {
		end := r.End()
		for s := r.start.Slice; s < end.Slice; s++ {
			for row := r.start.Row; row < end.Row; row++ {
				for col := r.start.Col; col < end.Col; col++ {
					if !yield(Index3d{Slice: s, Row: row, Col: col}) {
						return
					}
				}
			}
		}
	}
}

// RowMajorBackward3d visits the indexes of RowMajor3d in reverse order.
func RowMajorBackward3d(r Range3d) iter.Seq[Index3d] {
	return func(yield func(Index3d) bool) {
		end := r.End()
		for s := end.Slice - 1; s >= r.start.Slice; s-- {
			for row := end.Row - 1; row >= r.start.Row; row-- {
				for col := end.Col - 1; col >= r.start.Col; col-- {
					if !yield(Index3d{Slice: s, Row: row, Col: col}) {
						return
					}
				}
			}
		}
	}
}

// ColMajor3d visits the range with the slice varying fastest and the
// column slowest.
func ColMajor3d(r Range3d) iter.Seq[Index3d] {
	return func(yield func(Index3d) bool) {
		end := r.End()
		for col := r.start.Col; col < end.Col; col++ {
			for row := r.start.Row; row < end.Row; row++ {
				for s := r.start.Slice; s < end.Slice; s++ {
					if !yield(Index3d{Slice: s, Row: row, Col: col}) {
						return
					}
				}
			}
		}
	}
}

// ColMajorBackward3d visits the indexes of ColMajor3d in reverse order.
func ColMajorBackward3d(r Range3d) iter.Seq[Index3d] {
	return func(yield func(Index3d) bool) {
		end := r.End()
		for col := end.Col - 1; col >= r.start.Col; col-- {
			for row := end.Row - 1; row >= r.start.Row; row-- {
				for s := end.Slice - 1; s >= r.start.Slice; s-- {
					if !yield(Index3d{Slice: s, Row: row, Col: col}) {
						return
					}
				}
			}
		}
	}
}

// ForwardNd returns a sequence visiting every index of the range, the
// dimension order being given by p. It fails with ErrDimensionMismatch if
// the ranks differ. Each yielded index is a distinct value.
func ForwardNd(r RangeNd, p Precedence) (iter.Seq[IndexNd], error) {
	return odometer(r, p, false)
}

// BackwardNd is like ForwardNd but visits the indexes in reverse order.
func BackwardNd(r RangeNd, p Precedence) (iter.Seq[IndexNd], error) {
	return odometer(r, p, true)
}

func odometer(r RangeNd, p Precedence, backward bool) (iter.Seq[IndexNd], error) {
	if r.Rank() != p.Rank() {
		return nil, fmt.Errorf("%w: range rank %d, precedence rank %d",
			ErrDimensionMismatch, r.Rank(), p.Rank())
	}
	first, last := r.start.coords, r.End().coords
	step := 1
	if backward {
		first = make([]int, len(last))
		for d, v := range last {
			first[d] = v - 1
		}
		last = make([]int, len(first))
		for d, v := range r.start.coords {
			last[d] = v - 1
		}
		step = -1
	}
	return func(yield func(IndexNd) bool) {
		if r.extent.size == 0 {
			return
		}
		cur := slices.Clone(first)
		for {
			if !yield(IndexNd{coords: slices.Clone(cur)}) {
				return
			}
			i := 0
			for ; i < len(p.order); i++ {
				d := p.order[i]
				cur[d] += step
				if cur[d] != last[d] {
					break
				}
				cur[d] = first[d]
			}
			if i == len(p.order) {
				return
			}
		}
	}, nil
}

// AnyMatch reports whether pred holds for at least one element of seq.
func AnyMatch[I any](seq iter.Seq[I], pred func(I) bool) bool {
	for i := range seq {
		if pred(i) {
			return true
		}
	}
	return false
}

// AllMatch reports whether pred holds for every element of seq. It is
// true for an empty sequence.
func AllMatch[I any](seq iter.Seq[I], pred func(I) bool) bool {
	for i := range seq {
		if !pred(i) {
			return false
		}
	}
	return true
}

// NoneMatch reports whether pred holds for no element of seq.
func NoneMatch[I any](seq iter.Seq[I], pred func(I) bool) bool {
	return !AnyMatch(seq, pred)
}

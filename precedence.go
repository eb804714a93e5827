// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"cmp"
	"fmt"
	"slices"
)

// Precedence orders the dimensions of an N-dimensional traversal. The
// dimension at position 0 varies fastest, the one at Rank()-1 slowest.
type Precedence struct {
	order []int
}

// NewPrecedence returns the precedence of the given dimension order,
// which must be a non-empty permutation of 0..len(order)-1.
func NewPrecedence(order ...int) (Precedence, error) {
	if len(order) == 0 {
		return Precedence{}, fmt.Errorf("%w: empty precedence", ErrDimensionMismatch)
	}
	if !isPermutation(order) {
		return Precedence{}, fmt.Errorf("%w: precedence %v is not a permutation",
			ErrDimensionMismatch, order)
	}
	return Precedence{order: slices.Clone(order)}, nil
}

// MustPrecedence is like NewPrecedence but panics on error.
func MustPrecedence(order ...int) Precedence {
	return must(NewPrecedence(order...))
}

// RegularPrecedence returns the order 0, 1, ..., rank-1, in which the
// first dimension varies fastest (column-major).
func RegularPrecedence(rank int) Precedence {
	order := make([]int, rank)
	for i := range order {
		order[i] = i
	}
	return Precedence{order: order}
}

// ReversePrecedence returns the order rank-1, ..., 1, 0, in which the
// last dimension varies fastest (row-major).
func ReversePrecedence(rank int) Precedence {
	order := make([]int, rank)
	for i := range order {
		order[i] = rank - i - 1
	}
	return Precedence{order: order}
}

// Rank returns the number of ordered dimensions.
func (p Precedence) Rank() int { return len(p.order) }

// At returns the dimension at the given position.
func (p Precedence) At(i int) int { return p.order[i] }

// Order returns a copy of the dimension order.
func (p Precedence) Order() []int { return slices.Clone(p.order) }

// Compare orders two indexes of the precedence's rank by their traversal
// position, returning -1, 0 or +1.
func (p Precedence) Compare(a, b IndexNd) int {
	for i := len(p.order) - 1; i >= 0; i-- {
		d := p.order[i]
		if c := cmp.Compare(a.coords[d], b.coords[d]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether p and o have the same order.
func (p Precedence) Equal(o Precedence) bool { return slices.Equal(p.order, o.order) }

func (p Precedence) String() string { return formatInts(p.order) }

// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices

import (
	"fmt"
	"math"
	"math/bits"
)

// checkedMul multiplies two non-negative ints and checks the result
// fits the int type.
func checkedMul(a, b int) (int, error) {
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%w: multiplication overflow: %d * %d", ErrOutOfBounds, a, b)
	}
	return int(lo), nil
}

// checkedAdd adds two non-negative ints and checks the result fits the
// int type.
func checkedAdd(a, b int) (int, error) {
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("%w: addition overflow: %d + %d", ErrOutOfBounds, a, b)
	}
	return a + b, nil
}

// checkedProduct returns the product of all dims, failing on a negative
// value or on overflow.
func checkedProduct(dims ...int) (int, error) {
	size := 1
	for _, v := range dims {
		if v < 0 {
			return 0, fmt.Errorf("%w: negative size %d", ErrOutOfBounds, v)
		}
		var err error
		if size, err = checkedMul(size, v); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// ceilDiv returns the number of elements left along a dimension of the
// given size after taking every step-th one.
func ceilDiv(size, step int) int {
	if size == 0 {
		return 0
	}
	return (size-1)/step + 1
}

// isPermutation reports whether values is a permutation of [0, len(values)).
func isPermutation(values []int) bool {
	seen := make([]bool, len(values))
	for _, v := range values {
		if v < 0 || v >= len(values) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

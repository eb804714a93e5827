// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric provides tolerance-based comparison of floating point
// values.
package numeric

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// DefaultPrecision is the number of decimal digits compared by Default.
const DefaultPrecision = 9

// PrecisionEnv is the environment variable read by FromEnv.
const PrecisionEnv = "LATTICES_PRECISION"

// Context compares floating point values within an absolute epsilon.
// The zero value compares exactly.
type Context struct {
	epsilon float64
}

// New returns a Context with the given epsilon. The sign of epsilon is
// ignored.
func New(epsilon float64) Context {
	return Context{epsilon: math.Abs(epsilon)}
}

// WithPrecision returns a Context comparing the given number of decimal
// digits, that is with epsilon 10^-digits.
func WithPrecision(digits int) Context {
	return Context{epsilon: math.Pow(10, -float64(digits))}
}

// Default returns the Context of DefaultPrecision digits.
func Default() Context {
	return WithPrecision(DefaultPrecision)
}

// Exact returns the zero-epsilon Context.
func Exact() Context {
	return Context{}
}

// FromEnv returns the Context whose precision is read from the
// PrecisionEnv environment variable, or Default if it is unset.
func FromEnv() (Context, error) {
	v, ok := os.LookupEnv(PrecisionEnv)
	if !ok || v == "" {
		return Default(), nil
	}
	digits, err := strconv.Atoi(v)
	if err != nil {
		return Context{}, fmt.Errorf("invalid %s value %q: %w", PrecisionEnv, v, err)
	}
	return WithPrecision(digits), nil
}

// Epsilon returns the comparison tolerance.
func (c Context) Epsilon() float64 { return c.epsilon }

// Equal reports whether a and b are identical or differ by at most
// epsilon. NaN equals NaN.
func (c Context) Equal(a, b float64) bool {
	if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
		return true
	}
	return math.Abs(a-b) <= c.epsilon
}

// IsZero reports whether a equals 0 within epsilon.
func (c Context) IsZero(a float64) bool { return c.Equal(a, 0) }

// IsOne reports whether a equals 1 within epsilon.
func (c Context) IsOne(a float64) bool { return c.Equal(a, 1) }

// IsPositive reports whether a is greater than 0 by more than epsilon.
func (c Context) IsPositive(a float64) bool {
	return a > 0 && math.Abs(a) > c.epsilon
}

// IsNegative reports whether a is smaller than 0 by more than epsilon.
func (c Context) IsNegative(a float64) bool {
	return a < 0 && math.Abs(a) > c.epsilon
}

func (c Context) String() string {
	return fmt.Sprintf("Context{epsilon=%g}", c.epsilon)
}

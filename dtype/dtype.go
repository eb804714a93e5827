// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtype describes the element types a lattice buffer can hold.
package dtype

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// DType represents the data type of the elements of a buffer.
type DType uint8

const (
	// Bool represents an 8-bit boolean data type.
	Bool DType = iota + 1
	// U8 represents an 8-bit unsigned integer data type.
	U8
	// I8 represents an 8-bit signed integer data type.
	I8
	// U16 represents a 16-bit unsigned integer data type.
	U16
	// I16 represents a 16-bit signed integer data type.
	I16
	// U32 represents a 32-bit unsigned integer data type.
	U32
	// I32 represents a 32-bit signed integer data type.
	I32
	// F32 represents a 32-bit floating point data type.
	F32
	// U64 represents a 64-bit unsigned integer data type.
	U64
	// I64 represents a 64-bit signed integer data type.
	I64
	// F64 represents a 64-bit floating point data type.
	F64
)

type info struct {
	name  string
	size  int
	float bool
}

var infos = [...]info{
	Bool: {"BOOL", 1, false},
	U8:   {"U8", 1, false},
	I8:   {"I8", 1, false},
	U16:  {"U16", 2, false},
	I16:  {"I16", 2, false},
	U32:  {"U32", 4, false},
	I32:  {"I32", 4, false},
	F32:  {"F32", 4, true},
	U64:  {"U64", 8, false},
	I64:  {"I64", 8, false},
	F64:  {"F64", 8, true},
}

// Validate returns an error if the DType is not valid, otherwise nil.
func (dt DType) Validate() error {
	if dt == 0 || dt > F64 {
		return fmt.Errorf("invalid DType(%d)", dt)
	}
	return nil
}

// String returns a string representation of a DType.
func (dt DType) String() string {
	if err := dt.Validate(); err != nil {
		return err.Error()
	}
	return infos[dt].name
}

// Size returns the size in bytes of one element of this data type,
// or -1 if the DType value is invalid.
func (dt DType) Size() int {
	if err := dt.Validate(); err != nil {
		return -1
	}
	return infos[dt].size
}

// IsFloat reports whether dt is a floating point data type.
func (dt DType) IsFloat() bool {
	return dt.Validate() == nil && infos[dt].float
}

// ByteSize returns the number of bytes occupied by n elements of this
// data type. It fails if dt is invalid, if n is negative or if the
// result does not fit the int type.
func (dt DType) ByteSize(n int) (int, error) {
	if err := dt.Validate(); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative element count %d", n)
	}
	hi, size := bits.Mul(uint(n), uint(infos[dt].size))
	if hi != 0 || size > math.MaxInt {
		return 0, fmt.Errorf("byte size of %d %s elements is too large for int type", n, dt)
	}
	return int(size), nil
}

// Parse returns the DType of the given name, ignoring case.
func Parse(s string) (DType, error) {
	name := strings.ToUpper(s)
	for dt, in := range infos {
		if dt != 0 && in.name == name {
			return DType(dt), nil
		}
	}
	return 0, fmt.Errorf("unknown DType %q", s)
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (dt DType) MarshalText() ([]byte, error) {
	if err := dt.Validate(); err != nil {
		return nil, err
	}
	return []byte(infos[dt].name), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (dt *DType) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("failed to text-unmarshal DType: %w", err)
	}
	*dt = v
	return nil
}

// Of returns the DType describing elements of type T, and false if T has
// no fixed-size representation.
func Of[T any]() (DType, bool) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool, true
	case uint8:
		return U8, true
	case int8:
		return I8, true
	case uint16:
		return U16, true
	case int16:
		return I16, true
	case uint32:
		return U32, true
	case int32:
		return I32, true
	case float32:
		return F32, true
	case uint64:
		return U64, true
	case int64:
		return I64, true
	case float64:
		return F64, true
	case int:
		if bits.UintSize == 32 {
			return I32, true
		}
		return I64, true
	case uint:
		if bits.UintSize == 32 {
			return U32, true
		}
		return U64, true
	default:
		return 0, false
	}
}

// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"encoding"
	"fmt"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = DType(0)
	_ encoding.TextUnmarshaler = new(DType)
)

var (
	validValues = []struct {
		dType  DType
		size   int
		string string
		float  bool
	}{
		{Bool, 1, "BOOL", false},
		{U8, 1, "U8", false},
		{I8, 1, "I8", false},
		{U16, 2, "U16", false},
		{I16, 2, "I16", false},
		{U32, 4, "U32", false},
		{I32, 4, "I32", false},
		{F32, 4, "F32", true},
		{U64, 8, "U64", false},
		{I64, 8, "I64", false},
		{F64, 8, "F64", true},
	}
	invalidValues = []DType{0, 12, 13, 254, 255}
)

func TestDType_Validate(t *testing.T) {
	for _, tc := range validValues {
		assert.NoError(t, tc.dType.Validate())
	}

	for _, dt := range invalidValues {
		assert.EqualError(t, dt.Validate(), fmt.Sprintf("invalid DType(%d)", dt))
	}
}

func TestDType_String(t *testing.T) {
	for _, tc := range validValues {
		assert.Equal(t, tc.string, tc.dType.String())
	}

	for _, dt := range invalidValues {
		assert.Equal(t, fmt.Sprintf("invalid DType(%d)", dt), dt.String())
	}
}

func TestDType_Size(t *testing.T) {
	for _, tc := range validValues {
		assert.Equal(t, tc.size, tc.dType.Size())
		assert.Equal(t, tc.float, tc.dType.IsFloat())
	}

	for _, dt := range invalidValues {
		assert.Equal(t, -1, dt.Size())
		assert.False(t, dt.IsFloat())
	}
}

func TestDType_ByteSize(t *testing.T) {
	n, err := F64.ByteSize(20000)
	require.NoError(t, err)
	assert.Equal(t, 160000, n)

	n, err = U8.ByteSize(0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = F32.ByteSize(-1)
	assert.EqualError(t, err, "negative element count -1")

	_, err = I64.ByteSize(math.MaxInt / 4)
	assert.EqualError(t, err, fmt.Sprintf("byte size of %d I64 elements is too large for int type", math.MaxInt/4))

	_, err = DType(0).ByteSize(1)
	assert.EqualError(t, err, "invalid DType(0)")
}

func TestParse(t *testing.T) {
	for _, tc := range validValues {
		dt, err := Parse(tc.string)
		assert.NoError(t, err)
		assert.Equal(t, tc.dType, dt)
	}

	dt, err := Parse("f64")
	assert.NoError(t, err)
	assert.Equal(t, F64, dt)

	_, err = Parse("F16")
	assert.EqualError(t, err, `unknown DType "F16"`)
	_, err = Parse("")
	assert.EqualError(t, err, `unknown DType ""`)
}

func TestDType_MarshalText(t *testing.T) {
	for _, tc := range validValues {
		b, err := tc.dType.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, []byte(tc.string), b)
	}

	for _, dt := range invalidValues {
		b, err := dt.MarshalText()
		assert.EqualError(t, err, fmt.Sprintf("invalid DType(%d)", dt))
		assert.Nil(t, b)
	}
}

func TestDType_UnmarshalText(t *testing.T) {
	for _, tc := range validValues {
		var dt DType
		err := dt.UnmarshalText([]byte(tc.string))
		assert.NoError(t, err)
		assert.Equal(t, tc.dType, dt)
	}

	var dt DType
	assert.EqualError(t, dt.UnmarshalText(nil), `failed to text-unmarshal DType: unknown DType ""`)
	assert.EqualError(t, dt.UnmarshalText([]byte("foo")), `failed to text-unmarshal DType: unknown DType "foo"`)
	assert.EqualError(t, dt.UnmarshalText([]byte(`"foo"`)), `failed to text-unmarshal DType: unknown DType "\"foo\""`)
}

func TestDType_YAML(t *testing.T) {
	var doc struct {
		DType DType `yaml:"dtype"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("dtype: f32\n"), &doc))
	assert.Equal(t, F32, doc.DType)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "dtype: F32\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("dtype: F16\n"), &doc))
}

func TestOf(t *testing.T) {
	assertOf[bool](t, Bool)
	assertOf[uint8](t, U8)
	assertOf[int8](t, I8)
	assertOf[uint16](t, U16)
	assertOf[int16](t, I16)
	assertOf[uint32](t, U32)
	assertOf[int32](t, I32)
	assertOf[float32](t, F32)
	assertOf[uint64](t, U64)
	assertOf[int64](t, I64)
	assertOf[float64](t, F64)

	dt, ok := Of[int]()
	assert.True(t, ok)
	assert.Equal(t, bits.UintSize, 8*dt.Size())

	_, ok = Of[string]()
	assert.False(t, ok)
	_, ok = Of[complex128]()
	assert.False(t, ok)
}

func assertOf[T any](t *testing.T, want DType) {
	t.Helper()
	dt, ok := Of[T]()
	assert.True(t, ok)
	assert.Equal(t, want, dt)
}

// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"math"
	"testing"

	"go.blockwire.dev/blocks/internal/testutil/assert"
)

func TestEncodeDecodeZeroIsSingleDigit(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, EncodeU32(ch, 0))
	// marker, one zero digit, marker.
	assert.Equal(t, 3, len(ch.Written()))
	ch.Reset()
	v, err := DecodeU32(ch)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), v)
}

var u64Cases = []uint64{
	0, 1, 90, 91, 8191, math.MaxUint8, math.MaxUint16, math.MaxUint32, math.MaxUint64,
}

func TestUnsignedRoundTrip(t *testing.T) {
	for _, v := range u64Cases {
		if v <= math.MaxUint8 {
			ch := NewMemoryChannel()
			assert.NoError(t, EncodeU8(ch, uint8(v)))
			ch.Reset()
			got, err := DecodeU8(ch)
			assert.NoError(t, err)
			assert.Equal(t, uint8(v), got)
		}
		if v <= math.MaxUint16 {
			ch := NewMemoryChannel()
			assert.NoError(t, EncodeU16(ch, uint16(v)))
			ch.Reset()
			got, err := DecodeU16(ch)
			assert.NoError(t, err)
			assert.Equal(t, uint16(v), got)
		}
		if v <= math.MaxUint32 {
			ch := NewMemoryChannel()
			assert.NoError(t, EncodeU32(ch, uint32(v)))
			ch.Reset()
			got, err := DecodeU32(ch)
			assert.NoError(t, err)
			assert.Equal(t, uint32(v), got)
		}
		ch := NewMemoryChannel()
		assert.NoError(t, EncodeU64(ch, v))
		ch.Reset()
		got, err := DecodeU64(ch)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	i8s := []int8{0, 1, -1, math.MaxInt8, math.MinInt8}
	for _, v := range i8s {
		ch := NewMemoryChannel()
		assert.NoError(t, EncodeI8(ch, v))
		ch.Reset()
		got, err := DecodeI8(ch)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
	i64s := []int64{0, 1, -1, math.MaxInt64, math.MinInt64}
	for _, v := range i64s {
		ch := NewMemoryChannel()
		assert.NoError(t, EncodeI64(ch, v))
		ch.Reset()
		got, err := DecodeI64(ch)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloatRoundTripPreservesNaNBits(t *testing.T) {
	bits := uint32(0x7fc00001) // non-canonical NaN payload
	v := math.Float32frombits(bits)
	ch := NewMemoryChannel()
	assert.NoError(t, EncodeF32(ch, v))
	ch.Reset()
	got, err := DecodeF32(ch)
	assert.NoError(t, err)
	assert.Equal(t, bits, math.Float32bits(got))
}

func TestDecodeOverflowsDeclaredWidth(t *testing.T) {
	ch := NewMemoryChannel()
	// u32 framing around a value one past math.MaxUint32.
	assert.NoError(t, encodeValue(ch, RawCopperBlock, nil, math.MaxUint32+1))
	ch.Reset()
	_, err := DecodeU32(ch)
	assert.NotNil(t, err)
	var of *OverflowError
	assert.ErrorAs(t, err, &of)
}

func TestDecodeWrongMarkerIsUnexpectedBlock(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, EncodeU32(ch, 5))
	ch.Reset()
	_, err := DecodeU16(ch)
	assert.NotNil(t, err)
	var ub *UnexpectedBlockError
	assert.ErrorAs(t, err, &ub)
}

func TestCharRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', '€', 0x1F600} {
		ch := NewMemoryChannel()
		assert.NoError(t, EncodeChar(ch, r))
		ch.Reset()
		got, err := DecodeChar(ch)
		assert.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Number encoding and decoding (spec §4.2, Table M). Every numeric
// type is framed as marker, optional signedness token, big-endian
// base-91 digits, and a repeated marker as terminator. Signed integers
// are reinterpreted as their two's-complement unsigned bitwidth-sized
// value before encoding; floats encode their IEEE-754 bit pattern.

package codec

import "math"

// encodeValue writes marker [sign] digits(v) marker to ch. v is not
// checked against the width of the type the marker stands for; callers
// pass a value already reduced to that width.
func encodeValue(ch BlockChannel, marker Block, sign *Block, v uint64) error {
	if err := ch.Send(marker); err != nil {
		return &TransportError{Op: "send marker", Err: err}
	}
	if sign != nil {
		if err := ch.Send(*sign); err != nil {
			return &TransportError{Op: "send sign", Err: err}
		}
	}
	digits := bigEndianDigits(v)
	for _, d := range digits {
		db, err := blockOfDigit(d)
		if err != nil {
			return err
		}
		if err := ch.Send(db); err != nil {
			return &TransportError{Op: "send digit", Err: err}
		}
	}
	if err := ch.Send(marker); err != nil {
		return &TransportError{Op: "send terminator", Err: err}
	}
	return nil
}

// bigEndianDigits returns the big-endian base-91 digits of v. v == 0
// yields a single digit, 0.
func bigEndianDigits(v uint64) []int {
	if v == 0 {
		return []int{0}
	}
	var rev []int
	for v > 0 {
		rev = append(rev, int(v%Base))
		v /= Base
	}
	out := make([]int, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}

// decodeValue consumes marker [sign] digits marker from ch, enforcing
// the declared maxVal as an overflow bound.
func decodeValue(ch BlockChannel, marker Block, sign *Block, maxVal uint64, kind string) (uint64, error) {
	got, err := ch.Consume()
	if err != nil {
		return 0, &TransportError{Op: "consume marker", Err: err}
	}
	if got != marker {
		return 0, &UnexpectedBlockError{Expected: marker, Found: got, Context: kind}
	}
	if sign != nil {
		got, err := ch.Consume()
		if err != nil {
			return 0, &TransportError{Op: "consume sign", Err: err}
		}
		if got != *sign {
			return 0, &UnexpectedBlockError{Expected: *sign, Found: got, Context: kind + " sign"}
		}
	}
	var acc uint64
	for {
		got, err := ch.Consume()
		if err != nil {
			return 0, &TransportError{Op: "consume digit", Err: err}
		}
		if got == marker {
			return acc, nil
		}
		digit, err := digitValue(got)
		if err != nil {
			return 0, &UnexpectedBlockError{Expected: marker, Found: got, Context: kind}
		}
		acc, err = accumulateDigit(acc, digit, maxVal, kind)
		if err != nil {
			return 0, err
		}
	}
}

func accumulateDigit(acc uint64, digit int, maxVal uint64, kind string) (uint64, error) {
	if acc > (maxVal-uint64(digit))/Base {
		return 0, &OverflowError{Kind: kind, Value: acc, Bits: bitsFor(maxVal)}
	}
	next := acc*Base + uint64(digit)
	if next > maxVal {
		return 0, &OverflowError{Kind: kind, Value: next, Bits: bitsFor(maxVal)}
	}
	return next, nil
}

func bitsFor(maxVal uint64) int {
	bits := 0
	for maxVal > 0 {
		bits++
		maxVal >>= 1
	}
	return bits
}

// Unsigned integer encoders/decoders.

func EncodeU8(ch BlockChannel, v uint8) error { return encodeValue(ch, EndStone, nil, uint64(v)) }
func DecodeU8(ch BlockChannel) (uint8, error) {
	v, err := decodeValue(ch, EndStone, nil, math.MaxUint8, "u8")
	return uint8(v), err
}

func EncodeU16(ch BlockChannel, v uint16) error {
	return encodeValue(ch, RawIronBlock, nil, uint64(v))
}
func DecodeU16(ch BlockChannel) (uint16, error) {
	v, err := decodeValue(ch, RawIronBlock, nil, math.MaxUint16, "u16")
	return uint16(v), err
}

func EncodeU32(ch BlockChannel, v uint32) error {
	return encodeValue(ch, RawCopperBlock, nil, uint64(v))
}
func DecodeU32(ch BlockChannel) (uint32, error) {
	v, err := decodeValue(ch, RawCopperBlock, nil, math.MaxUint32, "u32")
	return uint32(v), err
}

func EncodeU64(ch BlockChannel, v uint64) error {
	return encodeValue(ch, RawGoldBlock, nil, v)
}
func DecodeU64(ch BlockChannel) (uint64, error) {
	return decodeValue(ch, RawGoldBlock, nil, math.MaxUint64, "u64")
}

// Signed integer encoders/decoders: reinterpreted as their
// two's-complement unsigned bitwidth-sized value.

func EncodeI8(ch BlockChannel, v int8) error {
	return encodeValue(ch, EndStone, &OchreFroglight, uint64(uint8(v)))
}
func DecodeI8(ch BlockChannel) (int8, error) {
	v, err := decodeValue(ch, EndStone, &OchreFroglight, math.MaxUint8, "i8")
	return int8(uint8(v)), err
}

func EncodeI16(ch BlockChannel, v int16) error {
	return encodeValue(ch, RawIronBlock, &VerdantFroglight, uint64(uint16(v)))
}
func DecodeI16(ch BlockChannel) (int16, error) {
	v, err := decodeValue(ch, RawIronBlock, &VerdantFroglight, math.MaxUint16, "i16")
	return int16(uint16(v)), err
}

func EncodeI32(ch BlockChannel, v int32) error {
	return encodeValue(ch, RawCopperBlock, &PearlescentFroglight, uint64(uint32(v)))
}
func DecodeI32(ch BlockChannel) (int32, error) {
	v, err := decodeValue(ch, RawCopperBlock, &PearlescentFroglight, math.MaxUint32, "i32")
	return int32(uint32(v)), err
}

func EncodeI64(ch BlockChannel, v int64) error {
	return encodeValue(ch, RawGoldBlock, &SeaLantern, uint64(v))
}
func DecodeI64(ch BlockChannel) (int64, error) {
	v, err := decodeValue(ch, RawGoldBlock, &SeaLantern, math.MaxUint64, "i64")
	return int64(v), err
}

// Floating point encoders/decoders: the IEEE-754 bit pattern of the
// correct width, preserved exactly including non-canonical NaNs.

func EncodeF32(ch BlockChannel, v float32) error {
	return encodeValue(ch, Shroomlight, nil, uint64(math.Float32bits(v)))
}
func DecodeF32(ch BlockChannel) (float32, error) {
	v, err := decodeValue(ch, Shroomlight, nil, math.MaxUint32, "f32")
	return math.Float32frombits(uint32(v)), err
}

func EncodeF64(ch BlockChannel, v float64) error {
	return encodeValue(ch, Glowstone, nil, math.Float64bits(v))
}
func DecodeF64(ch BlockChannel) (float64, error) {
	v, err := decodeValue(ch, Glowstone, nil, math.MaxUint64, "f64")
	return math.Float64frombits(v), err
}

// Char encodes a Unicode scalar value as its 32-bit codepoint.

func EncodeChar(ch BlockChannel, r rune) error {
	return encodeValue(ch, ChiseledDeepslate, nil, uint64(uint32(r)))
}
func DecodeChar(ch BlockChannel) (rune, error) {
	v, err := decodeValue(ch, ChiseledDeepslate, nil, math.MaxUint32, "char")
	return rune(v), err
}

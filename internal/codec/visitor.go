// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Kind enumerates the 27 structural productions the schema-driven
// visitor/accessor protocol can express (spec §4.4-§4.5). Its integer
// value is the stable wire tag used to disambiguate the inner value of
// an option's Some case (spec §4.5) — do not reorder these constants.
package codec

// Kind identifies one of the grammar's structural productions.
type Kind int

const (
	KindBool Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
	KindChar
	KindStr
	KindBytes
	KindNone
	KindUnit
	KindUnitStruct
	KindUnitVariant
	KindNewtypeStruct
	KindNewtypeVariant
	KindSeq
	KindTuple
	KindTupleStruct
	KindTupleVariant
	KindMap
	KindStruct
	KindStructVariant

	kindCount
)

// String names the Kind for diagnostics.
func (k Kind) String() string {
	names := [kindCount]string{
		"bool", "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64",
		"f32", "f64", "char", "str", "bytes", "none", "unit",
		"unit_struct", "unit_variant", "newtype_struct", "newtype_variant",
		"seq", "tuple", "tuple_struct", "tuple_variant", "map", "struct",
		"struct_variant",
	}
	if k < 0 || int(k) >= len(names) {
		return "invalid_kind"
	}
	return names[k]
}

// KindFromTag resolves a decoded option-tag digit (0..26) back to its
// Kind, failing for any value the wire contract does not assign.
func KindFromTag(tag int) (Kind, error) {
	if tag < 0 || tag >= int(kindCount) {
		return 0, &OverflowError{Kind: "option_tag", Value: uint64(tag), Bits: 5}
	}
	return Kind(tag), nil
}

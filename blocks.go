// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package blocks implements a block-alphabet structured-data codec
// for the Go language: arbitrary Go values are encoded as a stream of
// named tokens drawn from a fixed 150-block alphabet. Decoding is
// schema-driven, not self-describing: the stream carries no type tag
// an arbitrary "any" target could dispatch on, so Unmarshal and
// Decode always populate a concrete Go value whose shape the caller
// already knows, the same way encoding/gob expects a matching target.
//
// Source code and other details for the project are available at GitHub:
//
//	https://go.blockwire.dev/blocks
package blocks

import (
	"go.blockwire.dev/blocks/internal/codec"
	"go.blockwire.dev/blocks/internal/reflectcodec"
)

// Re-export types from internal/codec so callers never need to import
// an internal package directly.
type (
	Block  = codec.Block
	Family = codec.Family
	Kind   = codec.Kind
)

// Re-export error types.
type (
	TransportError        = codec.TransportError
	UnknownBlockTypeError = codec.UnknownBlockTypeError
	UnexpectedBlockError  = codec.UnexpectedBlockError
	BitToBlockError       = codec.BitToBlockError
	BlockToBitError       = codec.BlockToBitError
	InvalidUTF8Error      = codec.InvalidUTF8Error
	OverflowError         = codec.OverflowError
	RewindFailedError     = codec.RewindFailedError
	LengthMismatchError   = codec.LengthMismatchError
	DepthExceededError    = codec.DepthExceededError
	CustomError           = codec.CustomError
)

// Re-export family constants.
const (
	FamilyWool             = codec.FamilyWool
	FamilyConcrete         = codec.FamilyConcrete
	FamilyTerracotta       = codec.FamilyTerracotta
	FamilyGlazedTerracotta = codec.FamilyGlazedTerracotta
	FamilyPlanks           = codec.FamilyPlanks
	FamilyStainedGlass     = codec.FamilyStainedGlass
	FamilyLog              = codec.FamilyLog
	FamilyMarker           = codec.FamilyMarker
)

// BlockChannel is the transport boundary a Serializer/Deserializer
// reads from and writes to. See internal/codec for the built-in
// MemoryChannel, and the transport package for a network-backed
// implementation.
type BlockChannel = codec.BlockChannel

// Option configures a Marshal, Unmarshal, Encoder, or Decoder call.
type Option = codec.Option

// WithMaxDepth bounds how many levels of nesting a single Marshal or
// Unmarshal walk will follow before returning a *DepthExceededError
// instead of recursing further. It defaults to codec.DefaultMaxDepth,
// which is comfortably beyond any legitimate document but turns an
// accidental cycle (a struct pointing back to itself through a
// pointer field, say) into a clean error instead of a stack overflow.
var WithMaxDepth = codec.WithMaxDepth

// WithStrictFields controls what Unmarshal does with a struct field
// name present in the stream but absent from the Go target type. True
// (the default) is a fatal error; false discards the field's value
// and continues.
var WithStrictFields = codec.WithStrictFields

// WithChannel routes a single Marshal or Unmarshal call through ch
// instead of the default in-memory buffer, without switching to
// MarshalTo/UnmarshalFrom.
var WithChannel = codec.WithChannel

// Marshaler is the interface implemented by types that can encode
// themselves directly onto a Serializer, bypassing reflection.
type Marshaler interface {
	MarshalBlocks(s *codec.Serializer) error
}

// Unmarshaler is the interface implemented by types that can decode
// themselves directly from a Deserializer, bypassing reflection.
type Unmarshaler interface {
	UnmarshalBlocks(d *codec.Deserializer) error
}

// IsZeroer lets a type customize omitempty's notion of "empty" for
// cases where the zero Go value isn't the natural empty value (a
// time.Time is the canonical example).
type IsZeroer interface {
	IsZero() bool
}

// Lookup resolves a canonical block name to its Block value, failing
// with *UnknownBlockTypeError if name is outside the alphabet.
func Lookup(name string) (Block, error) {
	return codec.Lookup(name)
}

// Marshal encodes v into a freshly allocated block stream. Maps,
// structs, slices, arrays, and pointers (to any of those, or to a
// scalar) are accepted as the in value, the same as encoding/json.
//
// Struct fields are only marshaled if they are exported, and are
// marshaled using the field name lowercased as the default key.
// Custom keys may be defined via the "block" name in the field tag:
// the content preceding the first comma is used as the key, and the
// following comma-separated options tweak the marshaling process.
//
// The only supported flag is:
//
//	omitempty    For pointer fields only: a nil pointer, or a non-nil
//	             pointer whose pointee implements IsZeroer and reports
//	             true, is marshaled as the none option instead of some.
//	             Non-pointer fields are always emitted, since this
//	             format's structs are not self-describing and cannot
//	             safely omit a field the decoder has no other way to
//	             infer the shape of.
//
// If the key is "-", the field is ignored.
//
// For example:
//
//	type T struct {
//	    F *int32 `block:"a,omitempty"`
//	    B int32
//	}
//	blocks.Marshal(&T{B: 2})
//
// WithMaxDepth and WithChannel may be passed in opts; see their docs.
func Marshal(v any, opts ...Option) ([]Block, error) {
	return reflectcodec.Marshal(v, opts...)
}

// MarshalTo encodes v and writes it to ch. See Marshal for the
// conversion rules from a Go value to blocks and the accepted opts.
func MarshalTo(ch BlockChannel, v any, opts ...Option) error {
	return reflectcodec.MarshalTo(ch, v, opts...)
}

// Unmarshal decodes blocks into the value pointed to by out. Maps and
// pointers (to a struct, string, int, etc) are accepted as out
// values. The out parameter must not be nil.
//
// Struct fields are only unmarshaled if they are exported, and are
// unmarshaled using the field name lowercased as the default key,
// or the key named by a "block" struct tag. See Marshal for the tag
// format.
//
// WithMaxDepth, WithStrictFields, and WithChannel may be passed in
// opts; see their docs.
func Unmarshal(bs []Block, out any, opts ...Option) error {
	return reflectcodec.Unmarshal(bs, out, opts...)
}

// UnmarshalFrom decodes a value from ch into out. See Unmarshal for
// the conversion rules from blocks to a Go value and the accepted opts.
func UnmarshalFrom(ch BlockChannel, out any, opts ...Option) error {
	return reflectcodec.UnmarshalFrom(ch, out, opts...)
}

// An Encoder writes values to a BlockChannel.
type Encoder struct {
	ch   BlockChannel
	opts []Option
}

// NewEncoder returns a new Encoder that writes to ch, applying opts to
// every value it encodes.
func NewEncoder(ch BlockChannel, opts ...Option) *Encoder {
	return &Encoder{ch: ch, opts: opts}
}

// Encode writes the block encoding of v to the channel.
func (e *Encoder) Encode(v any) error {
	return MarshalTo(e.ch, v, e.opts...)
}

// Close flushes any buffered output.
func (e *Encoder) Close() error {
	return e.ch.Flush()
}

// A Decoder reads and decodes values from a BlockChannel.
type Decoder struct {
	ch   BlockChannel
	opts []Option
}

// NewDecoder returns a new Decoder that reads from ch, applying opts
// to every value it decodes.
func NewDecoder(ch BlockChannel, opts ...Option) *Decoder {
	return &Decoder{ch: ch, opts: opts}
}

// Decode reads the next block-encoded value from its channel and
// stores it in the value pointed to by v.
func (d *Decoder) Decode(v any) error {
	return UnmarshalFrom(d.ch, v, d.opts...)
}

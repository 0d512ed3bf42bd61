// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Serializer driver: the output side of the schema-driven visitor
// protocol (spec §4.4-§4.5). Each method maps one structural kind to
// its prefix/body/terminator token pattern and writes it to a
// BlockChannel. Composite kinds return a small encoder that the
// caller drives element-by-element before calling End.

package codec

// Serializer emits block tokens for typed values to a BlockChannel.
// It holds no buffering of its own; every method writes straight
// through to the channel.
type Serializer struct {
	ch BlockChannel
}

// NewSerializer returns a Serializer writing to ch.
func NewSerializer(ch BlockChannel) *Serializer {
	return &Serializer{ch: ch}
}

func send(ch BlockChannel, b Block, op string) error {
	if err := ch.Send(b); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

// SerializeBool writes RedstoneBlock for true, RedstoneLamp for false.
func (s *Serializer) SerializeBool(v bool) error {
	if v {
		return send(s.ch, RedstoneBlock, "send bool true")
	}
	return send(s.ch, RedstoneLamp, "send bool false")
}

func (s *Serializer) SerializeI8(v int8) error     { return EncodeI8(s.ch, v) }
func (s *Serializer) SerializeI16(v int16) error   { return EncodeI16(s.ch, v) }
func (s *Serializer) SerializeI32(v int32) error   { return EncodeI32(s.ch, v) }
func (s *Serializer) SerializeI64(v int64) error   { return EncodeI64(s.ch, v) }
func (s *Serializer) SerializeU8(v uint8) error    { return EncodeU8(s.ch, v) }
func (s *Serializer) SerializeU16(v uint16) error  { return EncodeU16(s.ch, v) }
func (s *Serializer) SerializeU32(v uint32) error  { return EncodeU32(s.ch, v) }
func (s *Serializer) SerializeU64(v uint64) error  { return EncodeU64(s.ch, v) }
func (s *Serializer) SerializeF32(v float32) error { return EncodeF32(s.ch, v) }
func (s *Serializer) SerializeF64(v float64) error { return EncodeF64(s.ch, v) }
func (s *Serializer) SerializeChar(v rune) error   { return EncodeChar(s.ch, v) }
func (s *Serializer) SerializeStr(v string) error  { return EncodeString(s.ch, v) }
func (s *Serializer) SerializeBytes(v []byte) error {
	return EncodeBytes(s.ch, v)
}

// SerializeNone writes the two-block CoalBlock, CoalBlock "none" form.
func (s *Serializer) SerializeNone() error {
	if err := send(s.ch, CoalBlock, "send option none"); err != nil {
		return err
	}
	return send(s.ch, CoalBlock, "send option none")
}

// SerializeSome writes CoalBlock, a tag digit identifying the inner
// value's Kind (spec §4.5), and then invokes encode to perform that
// kind's own normal production. Because Some is not self-delimiting
// by the inner kind alone, the tag is what lets a deserializer
// dispatch without look-ahead past one block.
func (s *Serializer) SerializeSome(kind Kind, encode func(*Serializer) error) error {
	if err := send(s.ch, CoalBlock, "send option some"); err != nil {
		return err
	}
	tagBlock, err := blockOfDigit(int(kind))
	if err != nil {
		return err
	}
	if err := send(s.ch, tagBlock, "send option tag"); err != nil {
		return err
	}
	return encode(s)
}

// SerializeUnit writes Bedrock.
func (s *Serializer) SerializeUnit() error {
	return send(s.ch, Bedrock, "send unit")
}

// SerializeUnitStruct writes Bedrock; unit structs share unit's wire form.
func (s *Serializer) SerializeUnitStruct(name string) error {
	return s.SerializeUnit()
}

// SerializeUnitVariant writes OakLog, variant_index.
func (s *Serializer) SerializeUnitVariant(name string, variantIndex uint32, variant string) error {
	if err := send(s.ch, OakLog, "send unit variant"); err != nil {
		return err
	}
	return EncodeU32(s.ch, variantIndex)
}

// SerializeNewtypeStruct writes SpruceLog, name, then invokes encode
// to write the inner value.
func (s *Serializer) SerializeNewtypeStruct(name string, encode func(*Serializer) error) error {
	if err := send(s.ch, SpruceLog, "send newtype struct"); err != nil {
		return err
	}
	if err := EncodeString(s.ch, name); err != nil {
		return err
	}
	return encode(s)
}

// SerializeNewtypeVariant writes DarkOakLog, variant_index, then
// invokes encode to write the inner value.
func (s *Serializer) SerializeNewtypeVariant(name string, variantIndex uint32, variant string, encode func(*Serializer) error) error {
	if err := send(s.ch, DarkOakLog, "send newtype variant"); err != nil {
		return err
	}
	if err := EncodeU32(s.ch, variantIndex); err != nil {
		return err
	}
	return encode(s)
}

// SeqEncoder drives the element-by-element body shared by sequences,
// tuples, tuple structs, and tuple variants, all of which terminate
// with DarkPrismarine.
type SeqEncoder struct {
	s *Serializer
}

// SerializeElement invokes encode to write one element/field.
func (e *SeqEncoder) SerializeElement(encode func(*Serializer) error) error {
	return encode(e.s)
}

// End writes the DarkPrismarine terminator.
func (e *SeqEncoder) End() error {
	return send(e.s.ch, DarkPrismarine, "send seq terminator")
}

// SerializeSeq writes CherryLog and returns an encoder for the elements.
func (s *Serializer) SerializeSeq() (*SeqEncoder, error) {
	if err := send(s.ch, CherryLog, "send seq"); err != nil {
		return nil, err
	}
	return &SeqEncoder{s: s}, nil
}

// SerializeTuple writes CrimsonStem and returns an encoder for the elements.
func (s *Serializer) SerializeTuple(length int) (*SeqEncoder, error) {
	if err := send(s.ch, CrimsonStem, "send tuple"); err != nil {
		return nil, err
	}
	return &SeqEncoder{s: s}, nil
}

// SerializeTupleStruct writes WarpedStem, name, length, and returns an
// encoder for the elements.
func (s *Serializer) SerializeTupleStruct(name string, length int) (*SeqEncoder, error) {
	if err := send(s.ch, WarpedStem, "send tuple struct"); err != nil {
		return nil, err
	}
	if err := EncodeString(s.ch, name); err != nil {
		return nil, err
	}
	if err := EncodeU32(s.ch, uint32(length)); err != nil {
		return nil, err
	}
	return &SeqEncoder{s: s}, nil
}

// SerializeTupleVariant writes PurpurBlock, variant_index, length, and
// returns an encoder for the elements.
func (s *Serializer) SerializeTupleVariant(name string, variantIndex uint32, variant string, length int) (*SeqEncoder, error) {
	if err := send(s.ch, PurpurBlock, "send tuple variant"); err != nil {
		return nil, err
	}
	if err := EncodeU32(s.ch, variantIndex); err != nil {
		return nil, err
	}
	if err := EncodeU32(s.ch, uint32(length)); err != nil {
		return nil, err
	}
	return &SeqEncoder{s: s}, nil
}

// MapEncoder drives alternating key/value pairs, terminated by AmethystBlock.
type MapEncoder struct {
	s *Serializer
}

// SerializeEntry invokes encodeKey then encodeValue for one pair.
func (m *MapEncoder) SerializeEntry(encodeKey, encodeValue func(*Serializer) error) error {
	if err := encodeKey(m.s); err != nil {
		return err
	}
	return encodeValue(m.s)
}

// End writes the AmethystBlock terminator.
func (m *MapEncoder) End() error {
	return send(m.s.ch, AmethystBlock, "send map terminator")
}

// SerializeMap writes PurpurPillar and returns an encoder for the entries.
func (s *Serializer) SerializeMap() (*MapEncoder, error) {
	if err := send(s.ch, PurpurPillar, "send map"); err != nil {
		return nil, err
	}
	return &MapEncoder{s: s}, nil
}

// StructEncoder drives alternating field-name/value pairs for structs
// and struct variants, terminated by EmeraldBlock.
type StructEncoder struct {
	s *Serializer
}

// SerializeField writes name as a string, then invokes encode to
// write the field's value.
func (e *StructEncoder) SerializeField(name string, encode func(*Serializer) error) error {
	if err := EncodeString(e.s.ch, name); err != nil {
		return err
	}
	return encode(e.s)
}

// End writes the EmeraldBlock terminator.
func (e *StructEncoder) End() error {
	return send(e.s.ch, EmeraldBlock, "send struct terminator")
}

// SerializeStruct writes GoldBlock, name, length, and returns an
// encoder for the fields.
func (s *Serializer) SerializeStruct(name string, length int) (*StructEncoder, error) {
	if err := send(s.ch, GoldBlock, "send struct"); err != nil {
		return nil, err
	}
	if err := EncodeString(s.ch, name); err != nil {
		return nil, err
	}
	if err := EncodeU32(s.ch, uint32(length)); err != nil {
		return nil, err
	}
	return &StructEncoder{s: s}, nil
}

// SerializeStructVariant writes DiamondBlock, variant_index, length,
// and returns an encoder for the fields.
func (s *Serializer) SerializeStructVariant(name string, variantIndex uint32, variant string, length int) (*StructEncoder, error) {
	if err := send(s.ch, DiamondBlock, "send struct variant"); err != nil {
		return nil, err
	}
	if err := EncodeU32(s.ch, variantIndex); err != nil {
		return nil, err
	}
	if err := EncodeU32(s.ch, uint32(length)); err != nil {
		return nil, err
	}
	return &StructEncoder{s: s}, nil
}

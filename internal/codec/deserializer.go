// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Deserializer driver: the input side of the schema-driven visitor
// protocol. Unlike the push-style Serializer, decoding in Go is
// naturally pull-oriented — callers ask the Deserializer what's next
// rather than the Deserializer calling back into caller code, the way
// encoding/json.Decoder reads a token at a time. Composite kinds
// return a small accessor the caller drives until it reports done.

package codec

// Deserializer reads typed values from a BlockChannel.
type Deserializer struct {
	ch BlockChannel
}

// NewDeserializer returns a Deserializer reading from ch.
func NewDeserializer(ch BlockChannel) *Deserializer {
	return &Deserializer{ch: ch}
}

func consumeExpect(ch BlockChannel, want Block, context string) error {
	got, err := ch.Consume()
	if err != nil {
		return &TransportError{Op: "consume " + context, Err: err}
	}
	if got != want {
		return &UnexpectedBlockError{Expected: want, Found: got, Context: context}
	}
	return nil
}

// DeserializeBool reads RedstoneBlock/RedstoneLamp.
func (d *Deserializer) DeserializeBool() (bool, error) {
	got, err := d.ch.Consume()
	if err != nil {
		return false, &TransportError{Op: "consume bool", Err: err}
	}
	switch got {
	case RedstoneBlock:
		return true, nil
	case RedstoneLamp:
		return false, nil
	default:
		return false, &UnexpectedBlockError{Expected: RedstoneBlock, Found: got, Context: "bool"}
	}
}

func (d *Deserializer) DeserializeI8() (int8, error)     { return DecodeI8(d.ch) }
func (d *Deserializer) DeserializeI16() (int16, error)   { return DecodeI16(d.ch) }
func (d *Deserializer) DeserializeI32() (int32, error)   { return DecodeI32(d.ch) }
func (d *Deserializer) DeserializeI64() (int64, error)   { return DecodeI64(d.ch) }
func (d *Deserializer) DeserializeU8() (uint8, error)    { return DecodeU8(d.ch) }
func (d *Deserializer) DeserializeU16() (uint16, error)  { return DecodeU16(d.ch) }
func (d *Deserializer) DeserializeU32() (uint32, error)  { return DecodeU32(d.ch) }
func (d *Deserializer) DeserializeU64() (uint64, error)  { return DecodeU64(d.ch) }
func (d *Deserializer) DeserializeF32() (float32, error) { return DecodeF32(d.ch) }
func (d *Deserializer) DeserializeF64() (float64, error) { return DecodeF64(d.ch) }
func (d *Deserializer) DeserializeChar() (rune, error)   { return DecodeChar(d.ch) }
func (d *Deserializer) DeserializeStr() (string, error)  { return DecodeString(d.ch) }
func (d *Deserializer) DeserializeBytes() ([]byte, error) {
	return DecodeBytes(d.ch)
}

// DeserializeOption consumes the leading CoalBlock marker and reports
// whether a value follows. When ok is true, tag identifies the inner
// value's Kind so the caller can dispatch to the matching decode
// method; the caller must still consume that value itself.
func (d *Deserializer) DeserializeOption() (ok bool, tag Kind, err error) {
	if err := consumeExpect(d.ch, CoalBlock, "option"); err != nil {
		return false, 0, err
	}
	next, err := d.ch.Consume()
	if err != nil {
		return false, 0, &TransportError{Op: "consume option body", Err: err}
	}
	if next == CoalBlock {
		return false, 0, nil
	}
	digit, err := digitValue(next)
	if err != nil {
		return false, 0, &UnexpectedBlockError{Expected: CoalBlock, Found: next, Context: "option tag"}
	}
	kind, err := KindFromTag(digit)
	if err != nil {
		return false, 0, err
	}
	return true, kind, nil
}

// DeserializeUnit consumes Bedrock.
func (d *Deserializer) DeserializeUnit() error {
	return consumeExpect(d.ch, Bedrock, "unit")
}

// DeserializeUnitStruct consumes Bedrock; unit structs share unit's wire form.
func (d *Deserializer) DeserializeUnitStruct(name string) error {
	return d.DeserializeUnit()
}

// DeserializeUnitVariantIndex consumes OakLog, variant_index.
func (d *Deserializer) DeserializeUnitVariantIndex() (uint32, error) {
	if err := consumeExpect(d.ch, OakLog, "unit variant"); err != nil {
		return 0, err
	}
	return DecodeU32(d.ch)
}

// DeserializeNewtypeStructName consumes SpruceLog, name; the caller
// decodes the inner value afterward.
func (d *Deserializer) DeserializeNewtypeStructName() (string, error) {
	if err := consumeExpect(d.ch, SpruceLog, "newtype struct"); err != nil {
		return "", err
	}
	return DecodeString(d.ch)
}

// DeserializeNewtypeVariantIndex consumes DarkOakLog, variant_index;
// the caller decodes the inner value afterward.
func (d *Deserializer) DeserializeNewtypeVariantIndex() (uint32, error) {
	if err := consumeExpect(d.ch, DarkOakLog, "newtype variant"); err != nil {
		return 0, err
	}
	return DecodeU32(d.ch)
}

// SeqAccess pulls elements from a sequence, tuple, tuple struct, or
// tuple variant body, each of which is terminated by DarkPrismarine.
type SeqAccess struct {
	d    *Deserializer
	done bool
}

// Next reports whether another element follows, consuming the
// terminator itself when the body is exhausted.
func (a *SeqAccess) Next() (bool, error) {
	if a.done {
		return false, nil
	}
	next, err := a.d.ch.Peek()
	if err != nil {
		return false, &TransportError{Op: "peek seq element", Err: err}
	}
	if next == DarkPrismarine {
		if err := a.d.ch.Skip(); err != nil {
			return false, &TransportError{Op: "skip seq terminator", Err: err}
		}
		a.done = true
		return false, nil
	}
	return true, nil
}

// DeserializeSeq consumes CherryLog and returns an accessor for the elements.
func (d *Deserializer) DeserializeSeq() (*SeqAccess, error) {
	if err := consumeExpect(d.ch, CherryLog, "seq"); err != nil {
		return nil, err
	}
	return &SeqAccess{d: d}, nil
}

// DeserializeTuple consumes CrimsonStem and returns an accessor for the elements.
func (d *Deserializer) DeserializeTuple(length int) (*SeqAccess, error) {
	if err := consumeExpect(d.ch, CrimsonStem, "tuple"); err != nil {
		return nil, err
	}
	return &SeqAccess{d: d}, nil
}

// DeserializeTupleStruct consumes WarpedStem, name, length, and
// returns an accessor for the elements.
func (d *Deserializer) DeserializeTupleStruct(name string, length int) (*SeqAccess, error) {
	if err := consumeExpect(d.ch, WarpedStem, "tuple struct"); err != nil {
		return nil, err
	}
	if _, err := DecodeString(d.ch); err != nil {
		return nil, err
	}
	if _, err := DecodeU32(d.ch); err != nil {
		return nil, err
	}
	return &SeqAccess{d: d}, nil
}

// TupleVariantHeader is the variant_index and declared length read
// from a tuple variant's prefix, before its element accessor is used.
type TupleVariantHeader struct {
	VariantIndex uint32
	Length       uint32
}

// DeserializeTupleVariant consumes PurpurBlock, variant_index, length,
// and returns the header plus an accessor for the elements.
func (d *Deserializer) DeserializeTupleVariant() (TupleVariantHeader, *SeqAccess, error) {
	if err := consumeExpect(d.ch, PurpurBlock, "tuple variant"); err != nil {
		return TupleVariantHeader{}, nil, err
	}
	idx, err := DecodeU32(d.ch)
	if err != nil {
		return TupleVariantHeader{}, nil, err
	}
	length, err := DecodeU32(d.ch)
	if err != nil {
		return TupleVariantHeader{}, nil, err
	}
	return TupleVariantHeader{VariantIndex: idx, Length: length}, &SeqAccess{d: d}, nil
}

// MapAccess pulls key/value pairs from a map body, terminated by AmethystBlock.
type MapAccess struct {
	d    *Deserializer
	done bool
}

// NextKey reports whether another entry follows, consuming the
// terminator itself when the body is exhausted.
func (a *MapAccess) NextKey() (bool, error) {
	if a.done {
		return false, nil
	}
	next, err := a.d.ch.Peek()
	if err != nil {
		return false, &TransportError{Op: "peek map key", Err: err}
	}
	if next == AmethystBlock {
		if err := a.d.ch.Skip(); err != nil {
			return false, &TransportError{Op: "skip map terminator", Err: err}
		}
		a.done = true
		return false, nil
	}
	return true, nil
}

// DeserializeMap consumes PurpurPillar and returns an accessor for the entries.
func (d *Deserializer) DeserializeMap() (*MapAccess, error) {
	if err := consumeExpect(d.ch, PurpurPillar, "map"); err != nil {
		return nil, err
	}
	return &MapAccess{d: d}, nil
}

// StructAccess pulls field-name/value pairs from a struct or struct
// variant body, terminated by EmeraldBlock.
type StructAccess struct {
	d    *Deserializer
	done bool
}

// NextField reports whether another field follows and, if so, its
// name; it consumes the terminator itself when the body is exhausted.
func (a *StructAccess) NextField() (name string, ok bool, err error) {
	if a.done {
		return "", false, nil
	}
	next, err := a.d.ch.Peek()
	if err != nil {
		return "", false, &TransportError{Op: "peek struct field", Err: err}
	}
	if next == EmeraldBlock {
		if err := a.d.ch.Skip(); err != nil {
			return "", false, &TransportError{Op: "skip struct terminator", Err: err}
		}
		a.done = true
		return "", false, nil
	}
	name, err = DecodeString(a.d.ch)
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// DeserializeStruct consumes GoldBlock, name, length, and returns an
// accessor for the fields.
func (d *Deserializer) DeserializeStruct(name string, length int) (*StructAccess, error) {
	if err := consumeExpect(d.ch, GoldBlock, "struct"); err != nil {
		return nil, err
	}
	if _, err := DecodeString(d.ch); err != nil {
		return nil, err
	}
	if _, err := DecodeU32(d.ch); err != nil {
		return nil, err
	}
	return &StructAccess{d: d}, nil
}

// StructVariantHeader is the variant_index and declared length read
// from a struct variant's prefix, before its field accessor is used.
type StructVariantHeader struct {
	VariantIndex uint32
	Length       uint32
}

// DeserializeStructVariant consumes DiamondBlock, variant_index,
// length, and returns the header plus an accessor for the fields.
func (d *Deserializer) DeserializeStructVariant() (StructVariantHeader, *StructAccess, error) {
	if err := consumeExpect(d.ch, DiamondBlock, "struct variant"); err != nil {
		return StructVariantHeader{}, nil, err
	}
	idx, err := DecodeU32(d.ch)
	if err != nil {
		return StructVariantHeader{}, nil, err
	}
	length, err := DecodeU32(d.ch)
	if err != nil {
		return StructVariantHeader{}, nil, err
	}
	return StructVariantHeader{VariantIndex: idx, Length: length}, &StructAccess{d: d}, nil
}

// EnumKind classifies which of the four variant productions an enum
// peek resolved to.
type EnumKind int

const (
	EnumUnit EnumKind = iota
	EnumNewtype
	EnumTuple
	EnumStruct
)

// PeekEnum reads the next block without consuming it and classifies
// which variant production it introduces, per the fixed dispatch
// table (OakLog=unit, DarkOakLog=newtype, PurpurBlock=tuple,
// DiamondBlock=struct). Any other block is an error: enums are not
// open to extension at decode time.
func (d *Deserializer) PeekEnum() (EnumKind, error) {
	next, err := d.ch.Peek()
	if err != nil {
		return 0, &TransportError{Op: "peek enum", Err: err}
	}
	switch next {
	case OakLog:
		return EnumUnit, nil
	case DarkOakLog:
		return EnumNewtype, nil
	case PurpurBlock:
		return EnumTuple, nil
	case DiamondBlock:
		return EnumStruct, nil
	default:
		return 0, &UnexpectedBlockError{Expected: DiamondBlock, Found: next, Context: "enum variant"}
	}
}

// SkipValue consumes and discards the next well-formed value, whatever
// production it turns out to be, without reconstructing it into a Go
// value. It lets a schema-driven Unmarshal ignore a struct field name
// it doesn't recognize (see Options.StrictFields) while leaving the
// channel positioned at the production that follows.
func (d *Deserializer) SkipValue() error {
	next, err := d.ch.Peek()
	if err != nil {
		return &TransportError{Op: "peek value to skip", Err: err}
	}
	switch next {
	case RedstoneBlock, RedstoneLamp, Bedrock:
		return d.skipConsume(1, "scalar marker")
	case EndStone, RawIronBlock, RawCopperBlock, RawGoldBlock, Shroomlight, Glowstone, ChiseledDeepslate:
		return d.skipNumber()
	case Blackstone, GildedBlackstone:
		return d.skipByteRun()
	case CoalBlock:
		return d.skipOption()
	case OakLog:
		if err := d.skipConsume(1, "unit variant"); err != nil {
			return err
		}
		return d.skipNumber()
	case SpruceLog:
		if err := d.skipConsume(1, "newtype struct"); err != nil {
			return err
		}
		if err := d.skipByteRun(); err != nil {
			return err
		}
		return d.SkipValue()
	case DarkOakLog:
		if err := d.skipConsume(1, "newtype variant"); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		return d.SkipValue()
	case CherryLog, CrimsonStem:
		return d.skipSeqLike(DarkPrismarine)
	case WarpedStem:
		if err := d.skipConsume(1, "tuple struct"); err != nil {
			return err
		}
		if err := d.skipByteRun(); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		return d.skipSeqLike(DarkPrismarine)
	case PurpurBlock:
		if err := d.skipConsume(1, "tuple variant"); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		return d.skipSeqLike(DarkPrismarine)
	case PurpurPillar:
		return d.skipPairs(AmethystBlock)
	case GoldBlock:
		if err := d.skipConsume(1, "struct"); err != nil {
			return err
		}
		if err := d.skipByteRun(); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		return d.skipStructFields(EmeraldBlock)
	case DiamondBlock:
		if err := d.skipConsume(1, "struct variant"); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		if err := d.skipNumber(); err != nil {
			return err
		}
		return d.skipStructFields(EmeraldBlock)
	default:
		return &UnexpectedBlockError{Expected: GoldBlock, Found: next, Context: "value to skip"}
	}
}

func (d *Deserializer) skipConsume(n int, context string) error {
	for i := 0; i < n; i++ {
		if _, err := d.ch.Consume(); err != nil {
			return &TransportError{Op: "consume " + context, Err: err}
		}
	}
	return nil
}

// skipNumber discards a marker [sign] digits marker run without
// caring which numeric type it was; the terminator is always a repeat
// of whichever marker opened it.
func (d *Deserializer) skipNumber() error {
	marker, err := d.ch.Consume()
	if err != nil {
		return &TransportError{Op: "consume number marker", Err: err}
	}
	next, err := d.ch.Peek()
	if err != nil {
		return &TransportError{Op: "peek number body", Err: err}
	}
	switch next {
	case OchreFroglight, VerdantFroglight, PearlescentFroglight, SeaLantern:
		if err := d.ch.Skip(); err != nil {
			return &TransportError{Op: "skip number sign", Err: err}
		}
	}
	for {
		got, err := d.ch.Consume()
		if err != nil {
			return &TransportError{Op: "consume number digit", Err: err}
		}
		if got == marker {
			return nil
		}
	}
}

// skipByteRun discards a marker <digit pairs> Prismarine run, used by
// both the bytes and string productions.
func (d *Deserializer) skipByteRun() error {
	if _, err := d.ch.Consume(); err != nil {
		return &TransportError{Op: "consume byte-run marker", Err: err}
	}
	for {
		got, err := d.ch.Consume()
		if err != nil {
			return &TransportError{Op: "consume byte-run digit", Err: err}
		}
		if got == Prismarine {
			return nil
		}
	}
}

func (d *Deserializer) skipOption() error {
	if err := d.skipConsume(1, "option marker"); err != nil {
		return err
	}
	next, err := d.ch.Consume()
	if err != nil {
		return &TransportError{Op: "consume option body", Err: err}
	}
	if next == CoalBlock {
		return nil
	}
	return d.SkipValue()
}

func (d *Deserializer) skipSeqLike(terminator Block) error {
	if err := d.skipConsume(1, "seq/tuple open"); err != nil {
		return err
	}
	for {
		next, err := d.ch.Peek()
		if err != nil {
			return &TransportError{Op: "peek seq element to skip", Err: err}
		}
		if next == terminator {
			return d.skipConsume(1, "seq/tuple terminator")
		}
		if err := d.SkipValue(); err != nil {
			return err
		}
	}
}

func (d *Deserializer) skipPairs(terminator Block) error {
	if err := d.skipConsume(1, "map open"); err != nil {
		return err
	}
	for {
		next, err := d.ch.Peek()
		if err != nil {
			return &TransportError{Op: "peek map key to skip", Err: err}
		}
		if next == terminator {
			return d.skipConsume(1, "map terminator")
		}
		if err := d.SkipValue(); err != nil {
			return err
		}
		if err := d.SkipValue(); err != nil {
			return err
		}
	}
}

func (d *Deserializer) skipStructFields(terminator Block) error {
	for {
		next, err := d.ch.Peek()
		if err != nil {
			return &TransportError{Op: "peek struct field to skip", Err: err}
		}
		if next == terminator {
			return d.skipConsume(1, "struct terminator")
		}
		if err := d.skipByteRun(); err != nil {
			return err
		}
		if err := d.SkipValue(); err != nil {
			return err
		}
	}
}

// DeserializeIdentifier reads a variant or field identifier, which the
// grammar allows to be encoded either as a string name or as a u32
// index (spec §4.7): peek GildedBlackstone selects the string form,
// RawCopperBlock the u32 form.
func (d *Deserializer) DeserializeIdentifier() (name string, index uint32, byName bool, err error) {
	next, err := d.ch.Peek()
	if err != nil {
		return "", 0, false, &TransportError{Op: "peek identifier", Err: err}
	}
	switch next {
	case GildedBlackstone:
		name, err = DecodeString(d.ch)
		return name, 0, true, err
	case RawCopperBlock:
		index, err = DecodeU32(d.ch)
		return "", index, false, err
	default:
		return "", 0, false, &UnexpectedBlockError{Expected: GildedBlackstone, Found: next, Context: "identifier"}
	}
}

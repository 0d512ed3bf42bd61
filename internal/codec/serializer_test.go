// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"testing"

	"go.blockwire.dev/blocks/internal/testutil/assert"
)

func TestSerializeBoolDeserializeBool(t *testing.T) {
	for _, v := range []bool{true, false} {
		ch := NewMemoryChannel()
		s := NewSerializer(ch)
		assert.NoError(t, s.SerializeBool(v))
		ch.Reset()
		got, err := NewDeserializer(ch).DeserializeBool()
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSerializeNoneDeserializeOption(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, NewSerializer(ch).SerializeNone())
	ch.Reset()
	ok, _, err := NewDeserializer(ch).DeserializeOption()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSerializeSomeDeserializeOption(t *testing.T) {
	ch := NewMemoryChannel()
	s := NewSerializer(ch)
	err := s.SerializeSome(KindU32, func(s *Serializer) error {
		return s.SerializeU32(42)
	})
	assert.NoError(t, err)
	ch.Reset()
	d := NewDeserializer(ch)
	ok, kind, err := d.DeserializeOption()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KindU32, kind)
	v, err := d.DeserializeU32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestSerializeUnitAndUnitStructShareWireForm(t *testing.T) {
	chUnit := NewMemoryChannel()
	assert.NoError(t, NewSerializer(chUnit).SerializeUnit())
	chStruct := NewMemoryChannel()
	assert.NoError(t, NewSerializer(chStruct).SerializeUnitStruct("Marker"))
	assert.DeepEqual(t, chUnit.Written(), chStruct.Written())
}

func TestSerializeSeqDeserializeSeq(t *testing.T) {
	ch := NewMemoryChannel()
	s := NewSerializer(ch)
	seq, err := s.SerializeSeq()
	assert.NoError(t, err)
	for _, v := range []uint32{1, 2, 3} {
		assert.NoError(t, seq.SerializeElement(func(s *Serializer) error {
			return s.SerializeU32(v)
		}))
	}
	assert.NoError(t, seq.End())

	ch.Reset()
	d := NewDeserializer(ch)
	access, err := d.DeserializeSeq()
	assert.NoError(t, err)
	var got []uint32
	for {
		more, err := access.Next()
		assert.NoError(t, err)
		if !more {
			break
		}
		v, err := d.DeserializeU32()
		assert.NoError(t, err)
		got = append(got, v)
	}
	assert.DeepEqual(t, []uint32{1, 2, 3}, got)
}

func TestSerializeEmptySeq(t *testing.T) {
	ch := NewMemoryChannel()
	s := NewSerializer(ch)
	seq, err := s.SerializeSeq()
	assert.NoError(t, err)
	assert.NoError(t, seq.End())

	ch.Reset()
	d := NewDeserializer(ch)
	access, err := d.DeserializeSeq()
	assert.NoError(t, err)
	more, err := access.Next()
	assert.NoError(t, err)
	assert.False(t, more)
}

func TestSerializeMapDeserializeMap(t *testing.T) {
	ch := NewMemoryChannel()
	s := NewSerializer(ch)
	m, err := s.SerializeMap()
	assert.NoError(t, err)
	entries := map[string]uint32{"a": 1, "b": 2}
	for k, v := range entries {
		assert.NoError(t, m.SerializeEntry(
			func(s *Serializer) error { return s.SerializeStr(k) },
			func(s *Serializer) error { return s.SerializeU32(v) },
		))
	}
	assert.NoError(t, m.End())

	ch.Reset()
	d := NewDeserializer(ch)
	access, err := d.DeserializeMap()
	assert.NoError(t, err)
	got := map[string]uint32{}
	for {
		more, err := access.NextKey()
		assert.NoError(t, err)
		if !more {
			break
		}
		k, err := d.DeserializeStr()
		assert.NoError(t, err)
		v, err := d.DeserializeU32()
		assert.NoError(t, err)
		got[k] = v
	}
	assert.DeepEqual(t, entries, got)
}

func TestSerializeStructDeserializeStruct(t *testing.T) {
	ch := NewMemoryChannel()
	s := NewSerializer(ch)
	st, err := s.SerializeStruct("Point", 2)
	assert.NoError(t, err)
	assert.NoError(t, st.SerializeField("x", func(s *Serializer) error { return s.SerializeI32(3) }))
	assert.NoError(t, st.SerializeField("y", func(s *Serializer) error { return s.SerializeI32(-4) }))
	assert.NoError(t, st.End())

	ch.Reset()
	d := NewDeserializer(ch)
	access, err := d.DeserializeStruct("Point", 2)
	assert.NoError(t, err)
	got := map[string]int32{}
	for {
		name, ok, err := access.NextField()
		assert.NoError(t, err)
		if !ok {
			break
		}
		v, err := d.DeserializeI32()
		assert.NoError(t, err)
		got[name] = v
	}
	assert.Equal(t, int32(3), got["x"])
	assert.Equal(t, int32(-4), got["y"])
}

func TestEnumDispatch(t *testing.T) {
	cases := []struct {
		kind  EnumKind
		block Block
	}{
		{EnumUnit, OakLog},
		{EnumNewtype, DarkOakLog},
		{EnumTuple, PurpurBlock},
		{EnumStruct, DiamondBlock},
	}
	for _, c := range cases {
		ch := NewMemoryChannelFrom([]Block{c.block})
		kind, err := NewDeserializer(ch).PeekEnum()
		assert.NoError(t, err)
		assert.Equal(t, c.kind, kind)
	}
}

func TestUnitVariantRoundTrip(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, NewSerializer(ch).SerializeUnitVariant("Color", 2, "Blue"))
	ch.Reset()
	idx, err := NewDeserializer(ch).DeserializeUnitVariantIndex()
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), idx)
}

func TestTupleVariantRoundTrip(t *testing.T) {
	ch := NewMemoryChannel()
	s := NewSerializer(ch)
	tv, err := s.SerializeTupleVariant("Shape", 1, "Circle", 1)
	assert.NoError(t, err)
	assert.NoError(t, tv.SerializeElement(func(s *Serializer) error { return s.SerializeF64(1.5) }))
	assert.NoError(t, tv.End())

	ch.Reset()
	d := NewDeserializer(ch)
	hdr, access, err := d.DeserializeTupleVariant()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), hdr.VariantIndex)
	assert.Equal(t, uint32(1), hdr.Length)
	more, err := access.Next()
	assert.NoError(t, err)
	assert.True(t, more)
	v, err := d.DeserializeF64()
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)
	more, err = access.Next()
	assert.NoError(t, err)
	assert.False(t, more)
}

func TestIdentifierByNameAndByIndex(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, EncodeString(ch, "field_name"))
	ch.Reset()
	name, _, byName, err := NewDeserializer(ch).DeserializeIdentifier()
	assert.NoError(t, err)
	assert.True(t, byName)
	assert.Equal(t, "field_name", name)

	ch2 := NewMemoryChannel()
	assert.NoError(t, EncodeU32(ch2, 7))
	ch2.Reset()
	_, idx, byName2, err := NewDeserializer(ch2).DeserializeIdentifier()
	assert.NoError(t, err)
	assert.False(t, byName2)
	assert.Equal(t, uint32(7), idx)
}

// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package blocks_test

import (
	"testing"

	"go.blockwire.dev/blocks"
	"go.blockwire.dev/blocks/internal/codec"
	"go.blockwire.dev/blocks/internal/testutil/assert"
)

type waypoint struct {
	X    int32  `block:"x"`
	Y    int32  `block:"y"`
	Z    int32  `block:"z"`
	Name string `block:"name,omitempty"`
	Next *int32 `block:"next,omitempty"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := waypoint{X: 10, Y: 64, Z: -3, Name: "spawn"}
	bs, err := blocks.Marshal(in)
	assert.NoError(t, err)

	var out waypoint
	assert.NoError(t, blocks.Unmarshal(bs, &out))
	assert.Equal(t, in, out)
}

func TestEncoderDecoderRoundTrip(t *testing.T) {
	ch := codec.NewMemoryChannel()
	enc := blocks.NewEncoder(ch)
	assert.NoError(t, enc.Encode([]string{"alpha", "beta"}))
	assert.NoError(t, enc.Close())

	mc := ch
	mc.Reset()

	dec := blocks.NewDecoder(mc)
	var out []string
	assert.NoError(t, dec.Decode(&out))
	assert.DeepEqual(t, []string{"alpha", "beta"}, out)
}

func TestLookupUnknownBlock(t *testing.T) {
	_, err := blocks.Lookup("minecraft:does_not_exist")
	var want *blocks.UnknownBlockTypeError
	assert.ErrorAs(t, err, &want)
}

type marshaledPoint struct {
	lat, lon float64
}

func (p marshaledPoint) MarshalBlocks(s *codec.Serializer) error {
	tup, err := s.SerializeTuple(2)
	if err != nil {
		return err
	}
	if err := tup.SerializeElement(func(s *codec.Serializer) error { return s.SerializeF64(p.lat) }); err != nil {
		return err
	}
	if err := tup.SerializeElement(func(s *codec.Serializer) error { return s.SerializeF64(p.lon) }); err != nil {
		return err
	}
	return tup.End()
}

func (p *marshaledPoint) UnmarshalBlocks(d *codec.Deserializer) error {
	seq, err := d.DeserializeTuple(2)
	if err != nil {
		return err
	}
	vals := make([]float64, 0, 2)
	for {
		more, err := seq.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		v, err := d.DeserializeF64()
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}
	p.lat, p.lon = vals[0], vals[1]
	return nil
}

func TestCustomMarshalerPreferredOverReflection(t *testing.T) {
	in := marshaledPoint{lat: 12.5, lon: -71.25}
	bs, err := blocks.Marshal(in)
	assert.NoError(t, err)

	var out marshaledPoint
	assert.NoError(t, blocks.Unmarshal(bs, &out))
	assert.Equal(t, in, out)
}

type chain struct {
	Next *chain `block:"next,omitempty"`
}

func TestMarshalWithMaxDepthRejectsCycle(t *testing.T) {
	c := &chain{}
	c.Next = c

	_, err := blocks.Marshal(c, blocks.WithMaxDepth(32))
	var depthErr *blocks.DepthExceededError
	assert.ErrorAs(t, err, &depthErr)
}

type fullWaypoint struct {
	X int32 `block:"x"`
	Y int32 `block:"y"`
}

type trimmedWaypoint struct {
	X int32 `block:"x"`
}

func TestUnmarshalWithStrictFieldsDisabled(t *testing.T) {
	bs, err := blocks.Marshal(fullWaypoint{X: 1, Y: 2})
	assert.NoError(t, err)

	var strict trimmedWaypoint
	assert.ErrorMatches(t, ".*unknown field.*", blocks.Unmarshal(bs, &strict))

	var lenient trimmedWaypoint
	assert.NoError(t, blocks.Unmarshal(bs, &lenient, blocks.WithStrictFields(false)))
	assert.Equal(t, int32(1), lenient.X)
}

// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package reflectcodec

import (
	"testing"

	"go.blockwire.dev/blocks/internal/codec"
	"go.blockwire.dev/blocks/internal/testutil/assert"
)

type point struct {
	X   int32  `block:"x"`
	Y   int32  `block:"y"`
	Z   int32  `block:"z,omitempty"`
	Tag string `block:"tag,omitempty"`
}

func TestMarshalUnmarshalStruct(t *testing.T) {
	in := point{X: 1, Y: -2}
	blocks, err := Marshal(in)
	assert.NoError(t, err)

	var out point
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.Equal(t, in, out)
}

func TestMarshalUnmarshalSlice(t *testing.T) {
	in := []string{"alpha", "beta", "gamma"}
	blocks, err := Marshal(in)
	assert.NoError(t, err)

	var out []string
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.DeepEqual(t, in, out)
}

func TestMarshalUnmarshalMap(t *testing.T) {
	in := map[string]int32{"a": 1, "b": 2}
	blocks, err := Marshal(in)
	assert.NoError(t, err)

	out := map[string]int32{}
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.DeepEqual(t, in, out)
}

func TestMarshalUnmarshalPointerOption(t *testing.T) {
	var in *int32
	blocks, err := Marshal(in)
	assert.NoError(t, err)

	var out *int32
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.IsNil(t, out)

	v := int32(99)
	in = &v
	blocks, err = Marshal(in)
	assert.NoError(t, err)

	out = nil
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.NotNil(t, out)
	assert.Equal(t, int32(99), *out)
}

func TestMarshalUnmarshalBytes(t *testing.T) {
	in := []byte{1, 2, 3, 255}
	blocks, err := Marshal(in)
	assert.NoError(t, err)

	var out []byte
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.DeepEqual(t, in, out)
}

func TestMarshalUnmarshalArrayTuple(t *testing.T) {
	in := [3]int32{10, 20, 30}
	blocks, err := Marshal(in)
	assert.NoError(t, err)

	var out [3]int32
	assert.NoError(t, Unmarshal(blocks, &out))
	assert.Equal(t, in, out)
}

type cyclic struct {
	Next *cyclic `block:"next"`
}

func TestMarshalWithMaxDepthCatchesCycle(t *testing.T) {
	n := &cyclic{}
	n.Next = n

	_, err := Marshal(n, codec.WithMaxDepth(64))
	var depthErr *codec.DepthExceededError
	assert.ErrorAs(t, err, &depthErr)
	assert.Equal(t, 64, depthErr.MaxDepth)
}

type wideRecord struct {
	A int32 `block:"a"`
	B int32 `block:"b"`
}

type narrowRecord struct {
	A int32 `block:"a"`
}

func TestUnmarshalStrictFieldsRejectsUnknown(t *testing.T) {
	bs, err := Marshal(wideRecord{A: 1, B: 2})
	assert.NoError(t, err)

	var out narrowRecord
	err = Unmarshal(bs, &out)
	assert.ErrorMatches(t, ".*unknown field.*", err)
}

func TestUnmarshalStrictFieldsDisabledSkipsUnknown(t *testing.T) {
	bs, err := Marshal(wideRecord{A: 1, B: 2})
	assert.NoError(t, err)

	var out narrowRecord
	assert.NoError(t, Unmarshal(bs, &out, codec.WithStrictFields(false)))
	assert.Equal(t, int32(1), out.A)
}

func TestMarshalUnmarshalWithChannel(t *testing.T) {
	ch := codec.NewMemoryChannel()
	out, err := Marshal(point{X: 1, Y: 2}, codec.WithChannel(ch))
	assert.NoError(t, err)
	assert.IsNil(t, out)

	var got point
	assert.NoError(t, UnmarshalFrom(ch, &got))
	assert.Equal(t, point{X: 1, Y: 2}, got)
}

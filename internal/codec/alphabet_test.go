// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"testing"

	"go.blockwire.dev/blocks/internal/testutil/assert"
)

func TestAlphabetSize(t *testing.T) {
	assert.Equal(t, 150, AlphabetSize())
}

func TestLookupRoundTrip(t *testing.T) {
	for name := range registry {
		b, err := Lookup(name)
		assert.NoError(t, err)
		assert.Equal(t, name, b.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("minecraft:not_a_real_block")
	assert.NotNil(t, err)
	var utErr *UnknownBlockTypeError
	assert.ErrorAs(t, err, &utErr)
}

func TestFamilyPredicates(t *testing.T) {
	assert.True(t, CoalBlock.Family() == FamilyMarker)
	assert.True(t, OakLog.IsLog())
	assert.True(t, registry["minecraft:white_wool"].IsWool())
	assert.True(t, registry["minecraft:oak_planks"].IsPlanks())
}

func TestZeroBlockIsNotRegistered(t *testing.T) {
	var zero Block
	assert.True(t, zero.IsZero())
	_, found := registry[zero.Name()]
	assert.False(t, found)
}

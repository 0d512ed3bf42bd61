// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"testing"

	"go.blockwire.dev/blocks/internal/testutil/assert"
)

func TestMemoryChannelSendConsume(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, ch.Send(Bedrock))
	assert.NoError(t, ch.Send(CoalBlock))
	got, err := ch.Consume()
	assert.NoError(t, err)
	assert.Equal(t, Bedrock, got)
	got, err = ch.Consume()
	assert.NoError(t, err)
	assert.Equal(t, CoalBlock, got)
	_, err = ch.Consume()
	assert.NotNil(t, err)
}

func TestMemoryChannelPeekDoesNotAdvance(t *testing.T) {
	ch := NewMemoryChannelFrom([]Block{Bedrock, CoalBlock})
	peeked, err := ch.Peek()
	assert.NoError(t, err)
	assert.Equal(t, Bedrock, peeked)
	got, err := ch.Consume()
	assert.NoError(t, err)
	assert.Equal(t, Bedrock, got)
}

func TestMemoryChannelSkip(t *testing.T) {
	ch := NewMemoryChannelFrom([]Block{Bedrock, CoalBlock})
	assert.NoError(t, ch.Skip())
	got, err := ch.Consume()
	assert.NoError(t, err)
	assert.Equal(t, CoalBlock, got)
}

func TestMemoryChannelRewind(t *testing.T) {
	ch := NewMemoryChannelFrom([]Block{Bedrock, CoalBlock})
	_, err := ch.Consume()
	assert.NoError(t, err)
	assert.NoError(t, ch.Rewind())
	got, err := ch.Consume()
	assert.NoError(t, err)
	assert.Equal(t, Bedrock, got)
}

func TestMemoryChannelRewindAtStartFails(t *testing.T) {
	ch := NewMemoryChannelFrom([]Block{Bedrock})
	err := ch.Rewind()
	assert.NotNil(t, err)
	var rf *RewindFailedError
	assert.ErrorAs(t, err, &rf)
}

func TestMemoryChannelResetAllowsReread(t *testing.T) {
	ch := NewMemoryChannel()
	assert.NoError(t, ch.Send(Bedrock))
	ch.Reset()
	got, err := ch.Consume()
	assert.NoError(t, err)
	assert.Equal(t, Bedrock, got)
}

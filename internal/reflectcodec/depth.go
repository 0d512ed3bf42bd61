// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

package reflectcodec

import "go.blockwire.dev/blocks/internal/codec"

// depthGuard counts how many nested marshalValue/unmarshalValue calls
// a single walk has made, so a cyclic Go value (a struct pointing back
// to itself through a pointer field, say) fails with a
// *codec.DepthExceededError instead of recursing until the goroutine
// stack overflows.
type depthGuard struct {
	max   int
	depth int
}

func newDepthGuard(max int) *depthGuard {
	return &depthGuard{max: max}
}

func (g *depthGuard) enter() error {
	g.depth++
	if g.depth > g.max {
		return &codec.DepthExceededError{MaxDepth: g.max}
	}
	return nil
}

func (g *depthGuard) leave() {
	g.depth--
}

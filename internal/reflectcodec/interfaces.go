// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Interfaces for custom marshaling/unmarshaling behavior. Defined here
// rather than imported from the root package, since the dependency
// only goes one direction (root imports internal): a type implementing
// the root package's exported interface structurally satisfies this
// one too.

package reflectcodec

import "go.blockwire.dev/blocks/internal/codec"

// Marshaler may be implemented by types that want to drive their own
// wire production instead of being walked by reflection.
type Marshaler interface {
	MarshalBlocks(s *codec.Serializer) error
}

// Unmarshaler may be implemented by types that want to read their own
// wire production instead of being populated by reflection.
type Unmarshaler interface {
	UnmarshalBlocks(d *codec.Deserializer) error
}

// IsZeroer is used to decide whether a field is empty for the purposes
// of an ,omitempty tag. time.Time is the canonical example of a type
// whose zero value isn't reflect's zero value.
type IsZeroer interface {
	IsZero() bool
}

// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Functional-options configuration, in the same shape as a typical
// Go encoding package: an Options struct of optional fields, set one
// at a time by an Option closure, each with a documented default
// applied when the field was never set.

package codec

// Options holds the resolved configuration for a single Marshal or
// Unmarshal call. The zero Options is valid and applies every default.
type Options struct {
	maxDepth     *int
	strictFields *bool
	channel      BlockChannel
}

// Defaults applied when the corresponding Option was never given.
const (
	DefaultMaxDepth     = 10000
	defaultStrictFields = true
)

// Option configures an Options value.
type Option func(*Options)

// WithMaxDepth bounds how many levels of nesting (struct fields,
// slice/array elements, map entries, pointer indirection) a single
// Marshal or Unmarshal walk will follow before it gives up with a
// *DepthExceededError, turning an accidental cycle into a clean error
// instead of a stack overflow.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.maxDepth = &depth }
}

// WithStrictFields controls how Unmarshal treats a struct field name
// present in the wire stream but absent from the Go target type. When
// enabled (the default), it is a fatal error. When disabled, the
// field's value is consumed and discarded.
func WithStrictFields(enabled bool) Option {
	return func(o *Options) { o.strictFields = &enabled }
}

// WithChannel overrides the BlockChannel a convenience call (Marshal,
// Unmarshal) uses in place of its default in-memory one, letting a
// caller route a single-value call through, say, a network transport
// without switching to MarshalTo/UnmarshalFrom.
func WithChannel(ch BlockChannel) Option {
	return func(o *Options) { o.channel = ch }
}

// MaxDepth returns the configured depth cap, or DefaultMaxDepth.
func (o *Options) MaxDepth() int {
	if o == nil || o.maxDepth == nil {
		return DefaultMaxDepth
	}
	return *o.maxDepth
}

// StrictFields returns the configured unknown-field policy, or the default.
func (o *Options) StrictFields() bool {
	if o == nil || o.strictFields == nil {
		return defaultStrictFields
	}
	return *o.strictFields
}

// Channel returns the configured channel override, or nil if none was set.
func (o *Options) Channel() BlockChannel {
	if o == nil {
		return nil
	}
	return o.channel
}

// NewOptions applies opts in order and returns the resolved Options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	o.Apply(opts...)
	return o
}

// Apply applies additional options to o, in order, overriding any
// field they touch.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

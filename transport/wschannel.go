// Copyright 2026 The blocks Project Contributors
// SPDX-License-Identifier: Apache-2.0

// WSChannel is a codec.BlockChannel backed by a gorilla/websocket
// connection, implementing the canonical transport framing: one block
// per text frame, with a request/acknowledgement round trip for send,
// consume, peek, and rewind. Grounded on original_source/src/websocket.rs
// and original_source/src/de/main.rs's "peek"/"consume"/"rewind"
// command frames and "done" rewind acknowledgement.
package transport

import (
	"sync"

	"github.com/gorilla/websocket"

	"go.blockwire.dev/blocks/internal/codec"
)

// WSChannel adapts a *websocket.Conn to codec.BlockChannel. A single
// connection serializes one logical stream; concurrent callers must
// not share a WSChannel without external coordination beyond what its
// internal mutex provides (the mutex only protects one request/response
// round trip from interleaving with another, not from duplicate
// consumption of the same block channel cursor).
type WSChannel struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewWSChannel wraps an already-established websocket connection.
func NewWSChannel(conn *websocket.Conn) *WSChannel {
	return &WSChannel{conn: conn}
}

// Dial connects to url and returns a ready WSChannel.
func Dial(url string) (*WSChannel, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, &codec.TransportError{Op: "dial", Err: err}
	}
	return NewWSChannel(conn), nil
}

// Close closes the underlying connection.
func (c *WSChannel) Close() error {
	return c.conn.Close()
}

func (c *WSChannel) roundTrip(cmd string) (string, error) {
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(cmd)); err != nil {
		return "", err
	}
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Send writes b as a text frame and waits for one acknowledgement
// frame, mirroring MCWebSocket::send_block's write-then-read pattern.
func (c *WSChannel) Send(b codec.Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.roundTrip(b.Name()); err != nil {
		return &codec.TransportError{Op: "send", Err: err}
	}
	return nil
}

// Consume sends the "consume" command frame and resolves the response
// frame's text to a Block.
func (c *WSChannel) Consume() (codec.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, err := c.roundTrip("consume")
	if err != nil {
		return codec.Block{}, &codec.TransportError{Op: "consume", Err: err}
	}
	return codec.Lookup(name)
}

// Peek sends the "peek" command frame and resolves the response
// frame's text to a Block without advancing the remote cursor.
func (c *WSChannel) Peek() (codec.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, err := c.roundTrip("peek")
	if err != nil {
		return codec.Block{}, &codec.TransportError{Op: "peek", Err: err}
	}
	return codec.Lookup(name)
}

// Skip consumes and discards one block. The protocol has no dedicated
// skip command; original_source never needed one because its decoder
// always inspects what it discards.
func (c *WSChannel) Skip() error {
	_, err := c.Consume()
	return err
}

// Rewind sends the "rewind" command frame and expects a "done"
// acknowledgement.
func (c *WSChannel) Rewind() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, err := c.roundTrip("rewind")
	if err != nil {
		return &codec.TransportError{Op: "rewind", Err: err}
	}
	if resp != "done" {
		return &codec.RewindFailedError{}
	}
	return nil
}

// Flush is a no-op: gorilla/websocket writes go straight to the
// underlying connection with no extra buffering layer to drain.
func (c *WSChannel) Flush() error { return nil }

// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngme

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/bpowers/pngme/chunk"
	"github.com/bpowers/pngme/internal/unsafestring"
)

const SignatureSize = 8

// Signature is the fixed prefix of every PNG file.
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Container is an ordered list of chunks behind the PNG signature.  A
// Container is not safe for concurrent use.
type Container struct {
	chunks []*chunk.Chunk
	logger *slog.Logger
}

// New returns a container holding chunks, in order.
func New(chunks []*chunk.Chunk, opts ...Option) *Container {
	o := newOptions(opts)
	return &Container{
		chunks: append([]*chunk.Chunk(nil), chunks...),
		logger: o.logger,
	}
}

// Parse decodes a complete container.  The signature is checked before
// any chunk is looked at, and b must be consumed exactly: a run of fewer
// than chunk.MinSize bytes at the end is ErrTrailing.  Errors from
// individual chunks are wrapped with their position and can be matched
// with errors.Is against the chunk package's sentinels.
func Parse(b []byte, opts ...Option) (*Container, error) {
	o := newOptions(opts)

	if len(b) < SignatureSize || !bytes.Equal(b[:SignatureSize], Signature[:]) {
		return nil, ErrBadSignature
	}

	c := &Container{logger: o.logger}
	off := SignatureSize
	for off < len(b) {
		if remaining := len(b) - off; remaining < chunk.MinSize {
			return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailing, remaining, off)
		}
		ch, err := chunk.Parse(b[off:])
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(c.chunks), off, err)
		}
		c.logger.Debug("parsed chunk", "index", len(c.chunks), "offset", off, "type", ch.Type().String(), "length", ch.Length())
		c.chunks = append(c.chunks, ch)
		off += ch.EncodedLen()
	}

	return c, nil
}

// Signature returns the container's leading bytes, which are always Signature.
func (c *Container) Signature() [SignatureSize]byte {
	return Signature
}

// Chunks returns the container's chunks in order.  The returned slice is
// a copy; appending to or reordering it does not affect the container.
func (c *Container) Chunks() []*chunk.Chunk {
	return append([]*chunk.Chunk(nil), c.chunks...)
}

func (c *Container) Len() int {
	return len(c.chunks)
}

// AppendChunk adds ch to the end of the container.  Duplicate types are allowed.
func (c *Container) AppendChunk(ch *chunk.Chunk) {
	c.logger.Debug("append chunk", "index", len(c.chunks), "type", ch.Type().String(), "length", ch.Length())
	c.chunks = append(c.chunks, ch)
}

func (c *Container) indexOf(typeName string) int {
	name := unsafestring.ToBytes(typeName)
	for i, ch := range c.chunks {
		typ := ch.Type()
		if bytes.Equal(typ[:], name) {
			return i
		}
	}
	return -1
}

// ChunkByType returns the first chunk whose type is spelled typeName.
func (c *Container) ChunkByType(typeName string) (*chunk.Chunk, bool) {
	i := c.indexOf(typeName)
	if i < 0 {
		return nil, false
	}
	return c.chunks[i], true
}

// RemoveChunk removes the first chunk whose type is spelled typeName and
// returns it.  Later chunks of the same type are left in place.
func (c *Container) RemoveChunk(typeName string) (*chunk.Chunk, error) {
	i := c.indexOf(typeName)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, typeName)
	}
	ch := c.chunks[i]
	copy(c.chunks[i:], c.chunks[i+1:])
	c.chunks[len(c.chunks)-1] = nil
	c.chunks = c.chunks[:len(c.chunks)-1]

	c.logger.Debug("removed chunk", "index", i, "type", typeName, "length", ch.Length())
	return ch, nil
}

// EncodedLen is the number of bytes Bytes will return.
func (c *Container) EncodedLen() int {
	n := SignatureSize
	for _, ch := range c.chunks {
		n += ch.EncodedLen()
	}
	return n
}

// Bytes serializes the signature followed by every chunk in order.
func (c *Container) Bytes() []byte {
	b := make([]byte, 0, c.EncodedLen())
	b = append(b, Signature[:]...)
	for _, ch := range c.chunks {
		b = ch.AppendTo(b)
	}
	return b
}

// WriteTo writes the serialized container to w.
func (c *Container) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	written, err := bw.Write(Signature[:])
	n = int64(written)
	if err != nil {
		return n, fmt.Errorf("bufio.Write: %w", err)
	}
	for i, ch := range c.chunks {
		chunkWritten, err := ch.WriteTo(bw)
		n += chunkWritten
		if err != nil {
			return n, fmt.Errorf("chunk %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("bufio.Flush: %w", err)
	}
	return n, nil
}

// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"unicode/utf8"
)

const (
	// HeaderSize is the 32-bit payload length + the 4-byte type code.
	HeaderSize = 4 + typeLen
	// TrailerSize is the 32-bit CRC.
	TrailerSize = 4
	// MinSize is the encoded size of a chunk with an empty payload.
	MinSize = HeaderSize + TrailerSize

	// MaxPayloadLen is the largest payload the length field can describe.
	MaxPayloadLen = (1 << 32) - 1

	headerTypeOff = 4
)

// Chunk is a single type-tagged, checksummed record.  Chunks are
// immutable once constructed: the CRC is calculated by New and verified
// by Parse, so a *Chunk never carries a stale checksum.
type Chunk struct {
	typ     Type
	payload []byte
	crc     uint32
}

// New returns a chunk of type t carrying payload.  The chunk takes
// ownership of payload; callers must not modify it afterwards.
//
// len(payload) must not exceed MaxPayloadLen.
func New(t Type, payload []byte) *Chunk {
	if payload == nil {
		payload = []byte{}
	}
	return &Chunk{
		typ:     t,
		payload: payload,
		crc:     checksum(t, payload),
	}
}

func checksum(t Type, payload []byte) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(t[:])
	_, _ = h.Write(payload)
	return h.Sum32()
}

func readHeader(header []byte) (payloadLen uint32, typeBytes [typeLen]byte) {
	_ = header[HeaderSize-1]

	payloadLen = binary.BigEndian.Uint32(header[:headerTypeOff])
	copy(typeBytes[:], header[headerTypeOff:HeaderSize])
	return
}

// Parse decodes the chunk at the start of b.  Bytes after the chunk are
// ignored; use EncodedLen to find where the next one begins.  The
// returned chunk holds a copy of its payload, so b may be reused.
func Parse(b []byte) (*Chunk, error) {
	if len(b) < MinSize {
		return nil, fmt.Errorf("%w: have %d bytes, need at least %d", ErrTruncated, len(b), MinSize)
	}
	payloadLen, typeBytes := readHeader(b[:HeaderSize])

	t, err := TypeFromBytes(typeBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidType, err)
	}

	// compare in uint64 so a huge declared length can't overflow on 32-bit platforms
	end := uint64(HeaderSize) + uint64(payloadLen) + TrailerSize
	if end > uint64(len(b)) {
		return nil, fmt.Errorf("%w: %s declares %d payload bytes but only %d remain", ErrTruncated, t, payloadLen, len(b)-MinSize)
	}

	payload := bytes.Clone(b[HeaderSize : HeaderSize+int(payloadLen)])
	expectedCRC := binary.BigEndian.Uint32(b[end-TrailerSize : end])
	crc := checksum(t, payload)
	if expectedCRC != crc {
		return nil, fmt.Errorf("%w: %s stored %#08x, calculated %#08x", ErrChecksumMismatch, t, expectedCRC, crc)
	}

	return &Chunk{
		typ:     t,
		payload: payload,
		crc:     crc,
	}, nil
}

// Type returns the chunk's type code.
func (c *Chunk) Type() Type {
	return c.typ
}

// Payload returns the chunk's data.  The slice must not be modified.
func (c *Chunk) Payload() []byte {
	return c.payload
}

// Length is the payload length as stored in the chunk header.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.payload))
}

// CRC returns the checksum over the type code and payload.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// EncodedLen is the number of bytes Bytes will return.
func (c *Chunk) EncodedLen() int {
	return MinSize + len(c.payload)
}

// PayloadString returns the payload as text, or ErrNotUTF8.
func (c *Chunk) PayloadString() (string, error) {
	if !utf8.Valid(c.payload) {
		return "", ErrNotUTF8
	}
	return string(c.payload), nil
}

// AppendTo appends the serialized chunk to dst and returns the extended slice.
func (c *Chunk) AppendTo(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.Length())
	dst = append(dst, c.typ[:]...)
	dst = append(dst, c.payload...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

// Bytes returns the serialized chunk; it is the inverse of Parse.
func (c *Chunk) Bytes() []byte {
	return c.AppendTo(make([]byte, 0, c.EncodedLen()))
}

func (c *Chunk) WriteTo(w io.Writer) (n int64, err error) {
	var header [HeaderSize]byte
	binary.BigEndian.PutUint32(header[:headerTypeOff], c.Length())
	copy(header[headerTypeOff:], c.typ[:])

	var trailer [TrailerSize]byte
	binary.BigEndian.PutUint32(trailer[:], c.crc)

	for _, part := range [][]byte{header[:], c.payload, trailer[:]} {
		written, err := w.Write(part)
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("write: %w", err)
		}
	}
	return n, nil
}

// Equal reports whether c and other have the same type, payload and CRC.
func (c *Chunk) Equal(other *Chunk) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.typ == other.typ && c.crc == other.crc && bytes.Equal(c.payload, other.payload)
}

// String returns a short human-readable summary, not the payload.
func (c *Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes, crc %#08x)", c.typ, len(c.payload), c.crc)
}

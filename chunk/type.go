// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"bytes"
	"fmt"
)

const (
	typeLen = 4

	propertyBit = 0x20
)

// Type is a 4-byte chunk type code like "IHDR" or "tEXt".
//
// A Type can hold any four ASCII letters, including codes with the
// reserved bit set.  Those are constructible (so diagnostics can talk
// about them) but IsValid reports false.
type Type [typeLen]byte

// TypeFromBytes returns the Type for b, or ErrNonAlphabetic if any byte
// is not an ASCII letter.
func TypeFromBytes(b [typeLen]byte) (Type, error) {
	for i, c := range b {
		if !isLetter(c) {
			return Type{}, fmt.Errorf("%w: byte %d is %#02x", ErrNonAlphabetic, i, c)
		}
	}
	return Type(b), nil
}

// ParseType returns the Type spelled by s.  s must be exactly 4 bytes long.
func ParseType(s string) (Type, error) {
	if len(s) != typeLen {
		return Type{}, fmt.Errorf("%w: %q is %d bytes", ErrWrongLength, s, len(s))
	}
	var b [typeLen]byte
	copy(b[:], s)
	return TypeFromBytes(b)
}

// MustParseType is like ParseType but panics on error.  It is meant for
// package-level declarations of well-known types.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Bytes returns the raw type code.
func (t Type) Bytes() [typeLen]byte {
	return t
}

func (t Type) String() string {
	return string(t[:])
}

// Compare orders types byte-wise, returning -1, 0 or +1.
func (t Type) Compare(other Type) int {
	return bytes.Compare(t[:], other[:])
}

// IsValid reports whether t is four ASCII letters with the reserved bit clear.
func (t Type) IsValid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether decoders must understand this chunk to
// render the image.  The opposite is ancillary.
func (t Type) IsCritical() bool {
	return t[0]&propertyBit == 0
}

// IsPublic reports whether the type is part of the public registry.
// The opposite is private.
func (t Type) IsPublic() bool {
	return t[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit (third letter) is clear.
func (t Type) IsReservedBitValid() bool {
	return t[2]&propertyBit == 0
}

// IsSafeToCopy reports whether editors that don't recognize the chunk
// may copy it into a modified image.
func (t Type) IsSafeToCopy() bool {
	return t[3]&propertyBit != 0
}

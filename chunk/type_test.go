// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	typ, err := TypeFromBytes(expected)
	require.NoError(t, err)
	assert.Equal(t, expected, typ.Bytes())
	assert.Equal(t, "RuSt", typ.String())
}

func TestTypeFromBytes_AllLetters(t *testing.T) {
	var letters []byte
	for c := byte('A'); c <= 'Z'; c++ {
		letters = append(letters, c, c+('a'-'A'))
	}
	for i, c := range letters {
		b := [4]byte{c, letters[(i+7)%len(letters)], letters[(i+13)%len(letters)], letters[(i+29)%len(letters)]}
		typ, err := TypeFromBytes(b)
		require.NoError(t, err)
		require.Equal(t, b, typ.Bytes())
	}
}

func TestTypeFromBytes_NonAlphabetic(t *testing.T) {
	for _, input := range [][4]byte{
		{'R', 'u', '1', 't'},
		{'R', 'u', 'S', ' '},
		{0, 'u', 'S', 't'},
		{'@', 'A', 'A', 'A'},
		{'A', '[', 'A', 'A'},
		{'A', 'A', '`', 'A'},
		{'A', 'A', 'A', '{'},
		{0xc3, 0xa9, 'A', 'A'},
	} {
		_, err := TypeFromBytes(input)
		require.ErrorIs(t, err, ErrNonAlphabetic, "input %q", input[:])
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("RuSt")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{'R', 'u', 'S', 't'}, typ.Bytes())

	for _, input := range []string{
		"",
		"Rus",
		"RuStt",
		"é",
		"éAAA",
	} {
		_, err := ParseType(input)
		assert.ErrorIs(t, err, ErrWrongLength, "input %q", input)
	}

	_, err = ParseType("Ru1t")
	assert.ErrorIs(t, err, ErrNonAlphabetic)
}

func TestType_Properties(t *testing.T) {
	typ := MustParseType("RuSt")
	assert.True(t, typ.IsValid())
	assert.True(t, typ.IsCritical())
	assert.False(t, typ.IsPublic())
	assert.True(t, typ.IsReservedBitValid())
	assert.True(t, typ.IsSafeToCopy())

	typ = MustParseType("ruSt")
	assert.True(t, typ.IsValid())
	assert.False(t, typ.IsCritical())
	assert.False(t, typ.IsPublic())
	assert.True(t, typ.IsSafeToCopy())

	typ = MustParseType("IHDR")
	assert.True(t, typ.IsValid())
	assert.True(t, typ.IsCritical())
	assert.True(t, typ.IsPublic())
	assert.False(t, typ.IsSafeToCopy())
}

func TestType_ReservedBitIsConstructibleButInvalid(t *testing.T) {
	typ, err := ParseType("Rust")
	require.NoError(t, err)
	assert.False(t, typ.IsReservedBitValid())
	assert.False(t, typ.IsValid())
	assert.Equal(t, "Rust", typ.String())
}

func TestType_ZeroValueIsInvalid(t *testing.T) {
	var typ Type
	assert.False(t, typ.IsValid())
}

func TestType_EqualityAndOrder(t *testing.T) {
	a := MustParseType("IDAT")
	b := MustParseType("IDAT")
	c := MustParseType("IEND")

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
	// uppercase sorts before lowercase
	assert.Equal(t, -1, MustParseType("RUST").Compare(MustParseType("rust")))
}

func TestMustParseType_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParseType("no")
	})
}

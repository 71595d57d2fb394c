// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/pngme"
	"github.com/bpowers/pngme/chunk"
	"github.com/bpowers/pngme/internal/seal"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 4)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// keep the caller's environment from leaking in
	t.Setenv("PNGME_PASSPHRASE", "")
	t.Setenv("PNGME_LOG_LEVEL", "")
	t.Setenv("PNGME_MMAP", "")
	t.Setenv("PNGME_END_TYPE", "")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func parseFile(t *testing.T, path string) *pngme.Container {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	c, err := pngme.Parse(data)
	require.NoError(t, err)
	return c
}

func typeNames(c *pngme.Container) []string {
	var names []string
	for _, ch := range c.Chunks() {
		names = append(names, ch.Type().String())
	}
	return names
}

func TestEncodeDecodeRemove(t *testing.T) {
	path := writeTestImage(t)

	out, err := run(t, "encode", path, "ruSt", "meet me at midnight")
	require.NoError(t, err)
	assert.Contains(t, out, "Message encoded")

	c := parseFile(t, path)
	names := typeNames(c)
	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, "ruSt", names[len(names)-2])
	assert.Equal(t, "IEND", names[len(names)-1])

	// still a valid image
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	for _, noMmap := range []bool{false, true} {
		args := []string{"decode", path, "ruSt"}
		if noMmap {
			args = append(args, "--no-mmap")
		}
		out, err = run(t, args...)
		require.NoError(t, err)
		assert.Equal(t, "meet me at midnight\n", out)
	}

	out, err = run(t, "remove", path, "ruSt")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")
	_, ok := parseFile(t, path).ChunkByType("ruSt")
	assert.False(t, ok)

	_, err = run(t, "decode", path, "ruSt")
	assert.ErrorIs(t, err, pngme.ErrNotFound)

	_, err = run(t, "remove", path, "ruSt")
	assert.ErrorIs(t, err, pngme.ErrNotFound)
}

func TestEncode_Out(t *testing.T) {
	path := writeTestImage(t)
	orig, err := os.ReadFile(path)
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "out.png")
	_, err = run(t, "encode", path, "ruSt", "hello", "--out", outPath)
	require.NoError(t, err)

	unchanged, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, unchanged)

	out, err := run(t, "decode", outPath, "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestEncode_RejectsBadTypes(t *testing.T) {
	path := writeTestImage(t)
	for _, tc := range []struct {
		typ string
		err error
	}{
		{"ruS", chunk.ErrWrongLength},
		{"ru5t", chunk.ErrNonAlphabetic},
		{"rust", nil}, // reserved bit set
		{"RuSt", nil}, // critical
	} {
		_, err := run(t, "encode", path, tc.typ, "msg")
		require.Error(t, err, tc.typ)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.typ)
		}
	}
}

func TestEncode_Sealed(t *testing.T) {
	path := writeTestImage(t)

	_, err := run(t, "encode", path, "ruSt", "top secret", "--passphrase", "hunter2")
	require.NoError(t, err)

	ch, ok := parseFile(t, path).ChunkByType("ruSt")
	require.True(t, ok)
	assert.NotContains(t, string(ch.Payload()), "top secret")
	assert.Equal(t, seal.Overhead+len("top secret"), int(ch.Length()))

	out, err := run(t, "decode", path, "ruSt", "-p", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "top secret\n", out)

	_, err = run(t, "decode", path, "ruSt", "-p", "wrong")
	assert.ErrorIs(t, err, seal.ErrOpen)
}

func TestEncode_NoEndChunk(t *testing.T) {
	c := pngme.New(nil)
	path := filepath.Join(t.TempDir(), "bare.png")
	require.NoError(t, os.WriteFile(path, c.Bytes(), 0644))

	_, err := run(t, "encode", path, "ruSt", "alone")
	require.NoError(t, err)
	assert.Equal(t, []string{"ruSt"}, typeNames(parseFile(t, path)))
}

func TestPrint(t *testing.T) {
	path := writeTestImage(t)
	_, err := run(t, "encode", path, "ruSt", "hello")
	require.NoError(t, err)

	out, err := run(t, "print", path)
	require.NoError(t, err)
	for _, want := range []string{"IHDR", "IDAT", "IEND", "ruSt", "critical", "ancillary,private,safe-to-copy"} {
		assert.Contains(t, out, want)
	}
}

func TestCorruptInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a, definitely"), 0644))

	for _, args := range [][]string{
		{"print", path},
		{"decode", path, "ruSt"},
		{"remove", path, "ruSt"},
		{"encode", path, "ruSt", "x"},
	} {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, pngme.ErrBadSignature, "%v", args)
	}

	_, err := run(t, "print", filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFile(t *testing.T) {
	path := writeTestImage(t)
	cfgPath := filepath.Join(t.TempDir(), "pngme.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("passphrase = \"from-config\"\nmmap = false\n"), 0644))

	_, err := run(t, "--config", cfgPath, "encode", path, "ruSt", "configured")
	require.NoError(t, err)

	out, err := run(t, "decode", path, "ruSt", "-p", "from-config")
	require.NoError(t, err)
	assert.Equal(t, "configured\n", out)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "print", path)
	assert.Error(t, err)
}

func TestInsertBeforeEnd(t *testing.T) {
	c := pngme.New([]*chunk.Chunk{
		chunk.New(chunk.MustParseType("IHDR"), nil),
		chunk.New(chunk.MustParseType("IEND"), nil),
		chunk.New(chunk.MustParseType("IEND"), nil),
	})
	insertBeforeEnd(c, chunk.New(chunk.MustParseType("ruSt"), []byte("x")), "IEND")
	assert.Equal(t, []string{"IHDR", "IEND", "ruSt", "IEND"}, typeNames(c))
}

func TestEnvironmentDoesNotLeak(t *testing.T) {
	path := writeTestImage(t)
	t.Setenv("PNGME_END_TYPE", "IHDR")
	t.Setenv("PNGME_MMAP", "not-a-bool")

	_, err := run(t, "encode", path, "ruSt", "hello")
	require.NoError(t, err)
	names := typeNames(parseFile(t, path))
	assert.Equal(t, "IHDR", names[0])
	assert.Equal(t, "IEND", names[len(names)-1])
}

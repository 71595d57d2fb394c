// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command gen-testdata writes a small random-noise PNG to stdout, for
// trying out pngme by hand:
//
//	go run ./cmd/gen-testdata > dice.png
package main

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
)

func newRand() *rand.Rand {
	var seedBytes [8]byte
	_, _ = crand.Read(seedBytes[:])
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(seed))
}

func main() {
	width := flag.Int("width", 64, "image width in pixels")
	height := flag.Int("height", 64, "image height in pixels")
	flag.Parse()

	rng := newRand()
	img := image.NewNRGBA(image.Rect(0, 0, *width, *height))
	for y := 0; y < *height; y++ {
		for x := 0; x < *width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 0xff,
			})
		}
	}

	w := bufio.NewWriter(os.Stdout)
	if err := png.Encode(w, img); err != nil {
		panic(err)
	}
	if err := w.Flush(); err != nil {
		panic(err)
	}
}

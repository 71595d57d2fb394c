// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pngme reads, edits and writes PNG files at the chunk level,
// which is enough to hide arbitrary messages inside an image without
// touching (or understanding) its pixels.
//
// A container is an 8-byte signature followed by a sequence of chunks:
//
//	┌───────────────────┐
//	│ signature         │  89 50 4E 47 0D 0A 1A 0A
//	├───────────────────┤
//	│ IHDR              │  by convention, first
//	├───────────────────┤
//	│ ...               │
//	├───────────────────┤
//	│ IEND              │  by convention, last
//	└───────────────────┘
//
// Container only enforces the signature.  Policies like "IEND comes
// last" or "only one IHDR" are left to callers; see cmd/pngme for one
// that inserts new chunks ahead of IEND.
package pngme

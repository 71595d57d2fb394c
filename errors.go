// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngme

import "errors"

var (
	ErrBadSignature = errors.New("bad signature: not a PNG or corrupted")
	ErrTrailing     = errors.New("trailing bytes too short to hold a chunk")

	// ErrNotFound is an expected outcome of lookups, not a sign of corruption.
	ErrNotFound = errors.New("chunk not found")
)

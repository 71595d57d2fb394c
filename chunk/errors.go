// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package chunk

import "errors"

var (
	ErrNonAlphabetic = errors.New("chunk type contains a non-alphabetic byte")
	ErrWrongLength   = errors.New("chunk type must be exactly 4 bytes")

	ErrTruncated        = errors.New("chunk truncated")
	ErrInvalidType      = errors.New("invalid chunk type")
	ErrChecksumMismatch = errors.New("chunk crc mismatch")

	// ErrNotUTF8 is only returned by PayloadString.
	ErrNotUTF8 = errors.New("chunk payload is not valid UTF-8")
)

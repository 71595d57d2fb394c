// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build !unix

package fileio

func mapFile(path string) (*File, error) {
	return ReadFile(path, false)
}

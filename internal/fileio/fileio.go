// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fileio reads whole container files into memory and writes
// edited ones back without leaving a half-written file behind.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is the read-only contents of a file.  Bytes is only valid until
// Close is called.
type File struct {
	data   []byte
	unmap  func() error
	closed bool
}

func (f *File) Bytes() []byte {
	return f.data
}

func (f *File) Len() int {
	return len(f.data)
}

// Close releases the file's contents.  It is safe to call more than once.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.data = nil
	if f.unmap != nil {
		return f.unmap()
	}
	return nil
}

// ReadFile returns the contents of path.  When useMmap is set and the
// platform supports it the file is memory-mapped instead of copied onto
// the heap.
func ReadFile(path string, useMmap bool) (*File, error) {
	if useMmap {
		return mapFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s): %w", path, err)
	}
	return &File{data: data}, nil
}

// WriteFileAtomic replaces the contents of path with data.  The new
// contents are written to a temporary file in the same directory and
// renamed over path, so readers see either the old file or the new one.
// An existing file's permissions are preserved; new files get 0644.
func WriteFileAtomic(path string, data []byte) (err error) {
	path, err = filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}

	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("os.Stat: %w", err)
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".pngme.*.tmp")
	if err != nil {
		return fmt.Errorf("CreateTemp failed (may need permissions for dir %q): %w", dir, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if n, err := f.Write(data); err != nil {
		return fmt.Errorf("f.Write: %w", err)
	} else if n != len(data) {
		return fmt.Errorf("f.Write: short write of %d (wanted %d)", n, len(data))
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("f.Sync: %w", err)
	}
	if err = f.Chmod(mode); err != nil {
		return fmt.Errorf("f.Chmod(%o): %w", mode, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("f.Close: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}

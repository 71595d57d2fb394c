// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package seal encrypts short messages under a passphrase so a hidden
// chunk can't be read by anyone who merely finds it.
//
// A sealed message looks like:
//
//	┌──────────┬────────────┬──────────────────────────┐
//	│ salt(16) │ nonce(24)  │ ciphertext + tag(16)     │
//	└──────────┴────────────┴──────────────────────────┘
//
// The key is derived with Argon2id and the message is encrypted with
// XChaCha20-Poly1305.
package seal

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/bpowers/pngme/internal/zero"
)

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4

	// Overhead is how many bytes Seal adds to a message.
	Overhead = saltSize + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
)

var (
	ErrEmptyPassphrase = errors.New("empty passphrase")
	// ErrOpen is returned for a wrong passphrase and a tampered message alike.
	ErrOpen = errors.New("unable to open sealed message")
)

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

// Seal encrypts msg under passphrase using random salt and nonce.
func Seal(passphrase string, msg []byte) ([]byte, error) {
	return sealWithRand(rand.Reader, passphrase, msg)
}

func sealWithRand(random io.Reader, passphrase string, msg []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	out := make([]byte, saltSize+chacha20poly1305.NonceSizeX, Overhead+len(msg))
	if _, err := io.ReadFull(random, out); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	salt, nonce := out[:saltSize], out[saltSize:]

	key := deriveKey(passphrase, salt)
	defer zero.Bytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305.NewX: %w", err)
	}
	return aead.Seal(out, nonce, msg, nil), nil
}

// Open decrypts a message produced by Seal.
func Open(passphrase string, sealed []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if len(sealed) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte envelope", ErrOpen, len(sealed), Overhead)
	}
	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := sealed[saltSize+chacha20poly1305.NonceSizeX:]

	key := deriveKey(passphrase, salt)
	defer zero.Bytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305.NewX: %w", err)
	}
	msg, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrOpen
	}
	return msg, nil
}

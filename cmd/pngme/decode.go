// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bpowers/pngme"
	"github.com/bpowers/pngme/chunk"
	"github.com/bpowers/pngme/internal/seal"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message hidden in the first chunk of a type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typeName := args[0], args[1]

			if _, err := chunk.ParseType(typeName); err != nil {
				return fmt.Errorf("chunk type: %w", err)
			}

			c, err := a.load(path)
			if err != nil {
				return err
			}
			ch, ok := c.ChunkByType(typeName)
			if !ok {
				return fmt.Errorf("decode %s: %w: no %s chunk", path, pngme.ErrNotFound, typeName)
			}

			var message string
			if a.cfg.Passphrase != "" {
				opened, err := seal.Open(a.cfg.Passphrase, ch.Payload())
				if err != nil {
					return fmt.Errorf("decode %s: %w", path, err)
				}
				if !utf8.Valid(opened) {
					return fmt.Errorf("decode %s: %w", path, chunk.ErrNotUTF8)
				}
				message = string(opened)
			} else if message, err = ch.PayloadString(); err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

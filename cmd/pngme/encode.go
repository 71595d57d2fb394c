// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpowers/pngme"
	"github.com/bpowers/pngme/chunk"
	"github.com/bpowers/pngme/internal/seal"
)

func newEncodeCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "encode <file> <chunk-type> <message>",
		Short: "Hide a message in a new chunk",
		Long: `Hide a message in a new chunk of the given type.

The new chunk is inserted just before the end chunk (IEND) so the image
stays valid.  The chunk type must be a valid, ancillary type such as ruSt.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typeName, message := args[0], args[1], args[2]
			if out == "" {
				out = path
			}

			typ, err := parseUserType(typeName)
			if err != nil {
				return err
			}
			if typ.IsCritical() {
				return fmt.Errorf("chunk type %s is critical; decoders would reject the image (use a lowercase first letter)", typ)
			}

			c, err := a.load(path)
			if err != nil {
				return err
			}

			payload := []byte(message)
			if a.cfg.Passphrase != "" {
				if payload, err = seal.Seal(a.cfg.Passphrase, payload); err != nil {
					return fmt.Errorf("seal message: %w", err)
				}
				a.logger.Debug("sealed message", "bytes", len(payload))
			}
			if uint64(len(payload)) > chunk.MaxPayloadLen {
				return fmt.Errorf("message too long: %d bytes", len(payload))
			}

			insertBeforeEnd(c, chunk.New(typ, payload), a.cfg.EndType)

			if err := a.store(out, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Message encoded in %s chunk of %s\n", successIcon, typeStyle.Render(typ.String()), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result here instead of overwriting <file>")
	return cmd
}

// parseUserType validates a chunk type supplied on the command line.
func parseUserType(s string) (chunk.Type, error) {
	typ, err := chunk.ParseType(s)
	if err != nil {
		return chunk.Type{}, fmt.Errorf("chunk type: %w", err)
	}
	if !typ.IsValid() {
		return chunk.Type{}, fmt.Errorf("chunk type %s: reserved bit (third letter) must be uppercase", typ)
	}
	return typ, nil
}

// insertBeforeEnd appends ch, keeping the first chunk of type endType
// (if any) last.
func insertBeforeEnd(c *pngme.Container, ch *chunk.Chunk, endType string) {
	end, err := c.RemoveChunk(endType)
	if errors.Is(err, pngme.ErrNotFound) {
		end = nil
	}
	c.AppendChunk(ch)
	if end != nil {
		c.AppendChunk(end)
	}
}

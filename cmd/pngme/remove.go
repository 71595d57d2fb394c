// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bpowers/pngme/chunk"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Remove the first chunk of a type",
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
			removed, err := c.RemoveChunk(typeName)
			if err != nil {
				return fmt.Errorf("remove from %s: %w", path, err)
			}
			if err := a.store(path, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s chunk (%d bytes) from %s\n", successIcon, typeStyle.Render(removed.Type().String()), removed.Length(), path)
			return nil
		},
	}
}

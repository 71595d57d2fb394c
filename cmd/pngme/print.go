// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/dgryski/go-farm"
	"github.com/spf13/cobra"

	"github.com/bpowers/pngme/chunk"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "List the chunks in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			c, err := a.load(path)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", titleStyle.Render(path), detailStyle.Render(fmt.Sprintf("(%d chunks, %d bytes)", c.Len(), c.EncodedLen())))
			for i, ch := range c.Chunks() {
				fmt.Fprintf(w, "%4d  %s  %10d bytes  crc %08x  fp %016x  %s\n",
					i,
					typeStyle.Render(ch.Type().String()),
					ch.Length(),
					ch.CRC(),
					farm.Fingerprint64(ch.Payload()),
					detailStyle.Render(describeType(ch.Type())))
			}
			return nil
		},
	}
}

func describeType(t chunk.Type) string {
	props := make([]string, 0, 4)
	if t.IsCritical() {
		props = append(props, "critical")
	} else {
		props = append(props, "ancillary")
	}
	if t.IsPublic() {
		props = append(props, "public")
	} else {
		props = append(props, "private")
	}
	if t.IsSafeToCopy() {
		props = append(props, "safe-to-copy")
	} else {
		props = append(props, "unsafe-to-copy")
	}
	if !t.IsReservedBitValid() {
		props = append(props, "reserved-bit-set")
	}
	return strings.Join(props, ",")
}

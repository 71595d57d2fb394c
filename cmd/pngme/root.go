// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bpowers/pngme"
	"github.com/bpowers/pngme/internal/config"
	"github.com/bpowers/pngme/internal/fileio"
)

type app struct {
	cfgFile    string
	verbose    bool
	noMmap     bool
	passphrase string

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "pngme",
		Short: "Hide messages inside PNG files",
		Long: titleStyle.Render("pngme") + subtitleStyle.Render(" - hide messages inside PNG files") + `

pngme stores messages in ancillary chunks, which image viewers skip
over, so the picture is unchanged.

` + subtitleStyle.Render("Examples:") + `
  pngme encode dice.png ruSt "meet me at midnight"
  pngme decode dice.png ruSt
  pngme remove dice.png ruSt
  pngme print dice.png`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (TOML); PNGME_* environment variables override it")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.noMmap, "no-mmap", false, "read input files onto the heap instead of memory-mapping them")
	flags.StringVarP(&a.passphrase, "passphrase", "p", "", "seal (encode) or open (decode) messages with this passphrase")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newRemoveCmd(a),
		newPrintCmd(a),
	)
	return rootCmd
}

// init loads configuration and applies flags on top of it.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.noMmap {
		cfg.Mmap = false
	}
	if a.passphrase != "" {
		cfg.Passphrase = a.passphrase
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "pngme",
		Level:  level,
	})
	return nil
}

// load reads and parses the container at path.  The file is released
// before returning; parsed chunks own copies of their payloads.
func (a *app) load(path string) (*pngme.Container, error) {
	f, err := fileio.ReadFile(path, a.cfg.Mmap)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	a.logger.Debug("read file", "path", path, "bytes", f.Len(), "mmap", a.cfg.Mmap)

	c, err := pngme.Parse(f.Bytes(), pngme.WithLogger(slog.New(a.logger)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (a *app) store(path string, c *pngme.Container) error {
	if err := fileio.WriteFileAtomic(path, c.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Debug("wrote file", "path", path, "bytes", c.EncodedLen(), "chunks", c.Len())
	return nil
}

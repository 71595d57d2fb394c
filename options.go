// Copyright 2026 The pngme Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pngme

import (
	"io"
	"log/slog"
)

// Option configures a Container.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets an optional logger for the container to report parse
// and mutation events to at debug level.  If not provided, no logging
// output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"log/slog"
)

type Option func(r *Renderer) error

// WithPage wraps the output in a complete HTML page.
func WithPage(flag bool) Option {
	return func(r *Renderer) error {
		r.page = flag
		return nil
	}
}

// WithEscapeText controls HTML escaping of document text.
// It is on by default.
func WithEscapeText(flag bool) Option {
	return func(r *Renderer) error {
		r.escapeText = flag
		return nil
	}
}

// WithCharset sets the code page used for hex escapes when the document
// does not declare one. Zero clears it, so bytes are used as is.
func WithCharset(cp int) Option {
	return func(r *Renderer) error {
		if cp == 0 {
			r.charset = nil
			return nil
		}
		cm, ok := CodePage(cp)
		if !ok {
			return fmt.Errorf("charset %d: %w", cp, ErrUnsupportedCharset)
		}
		r.charset = cm
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) error {
		r.logger = logger
		return nil
	}
}

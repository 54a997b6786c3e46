// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mdhender/rtfhtml"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

// Renderer converts a document tree to HTML.
// It is not changed by Render and may be shared.
type Renderer struct {
	page       bool
	escapeText bool
	charset    *charmap.Charmap
	logger     *slog.Logger
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		escapeText: true,
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render returns the HTML for the tree. Every call uses a new session.
func (r *Renderer) Render(root *rtfhtml.Group) string {
	s := newSession(r)
	s.group(root)
	if r.page {
		return wrapPage(s.output.String())
	}
	return s.output.String()
}

// Format renders the tree with the default options.
// When page is true, the output is a complete HTML page.
func Format(root *rtfhtml.Group, page bool) string {
	r := &Renderer{page: page, escapeText: true}
	return r.Render(root)
}

// Convert parses the input and renders it.
// Parse errors are returned as *rtfhtml.ParseError.
func Convert(input []byte, options ...Option) (string, error) {
	r, err := New(options...)
	if err != nil {
		return "", err
	}
	root, err := rtfhtml.NewParser(context.Background(), "input", input, r.logger).Parse()
	if err != nil {
		return "", err
	}
	return r.Render(root), nil
}

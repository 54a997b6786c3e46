// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

import "strings"

// Element is the interface implemented by all nodes of the document tree.
// The set of implementations is closed: *Group, *ControlWord,
// *ControlSymbol, and *Text. Callers dispatch with a type switch.
//
// Kind returns a short, stable identifier for the element type.
//
// Span reports the source range of the element. For a group it covers
// both delimiters.
type Element interface {
	Kind() string
	Line() int
	Column() int
	Span() Span

	element()
}

type baseElement struct {
	span Span
}

func (b *baseElement) Span() Span  { return b.span }
func (b *baseElement) Line() int   { return b.span.Line }
func (b *baseElement) Column() int { return b.span.Column }
func (b *baseElement) element()    {}

// Group is a brace-delimited list of elements.
type Group struct {
	baseElement
	Children []Element

	// Type is the recognized destination keyword (fonttbl, colortbl,
	// stylesheet, info, or a pict variant), or empty.
	Type string

	// Destination is set when the group starts with the \* marker.
	Destination bool
}

func (g *Group) Kind() string { return "Group" }

// ControlWord is a keyword like \b, \fs22, or \u-3913.
type ControlWord struct {
	baseElement
	Word     string
	Param    int
	HasParam bool
}

func (w *ControlWord) Kind() string { return "ControlWord" }

// ParamOr returns the parameter, or def if the word had none.
func (w *ControlWord) ParamOr(def int) int {
	if !w.HasParam {
		return def
	}
	return w.Param
}

// Rune returns the code point of a \uN word. Writers emit values above
// 32767 as negative 16-bit numbers, so those are shifted back.
func (w *ControlWord) Rune() rune {
	n := w.ParamOr(0)
	if n < 0 {
		n += 65536
	}
	return rune(n)
}

// ControlSymbol is a backslash followed by a single non-letter,
// like \~ or \*. The hex escape \'hh is a symbol whose Param holds
// the decoded byte.
type ControlSymbol struct {
	baseElement
	Symbol   rune
	Param    int
	HasParam bool
}

func (s *ControlSymbol) Kind() string { return "ControlSymbol" }

// Text is a run of literal characters with escapes resolved.
type Text struct {
	baseElement
	Text string
}

func (t *Text) Kind() string { return "Text" }

// namedDestinations are the destinations the formatter knows how to
// consume or skip. Picture groups are matched by prefix.
var namedDestinations = map[string]bool{
	"colortbl":   true,
	"fonttbl":    true,
	"info":       true,
	"stylesheet": true,
}

// IsNamedDestination reports whether word names a recognized destination.
func IsNamedDestination(word string) bool {
	return namedDestinations[word] || strings.HasPrefix(word, "pict")
}

// classify sets Type and Destination from the group's leading children.
func (g *Group) classify() {
	if len(g.Children) == 0 {
		return
	}
	switch first := g.Children[0].(type) {
	case *ControlWord:
		if IsNamedDestination(first.Word) {
			g.Type = first.Word
		}
	case *ControlSymbol:
		if first.Symbol != '*' {
			return
		}
		g.Destination = true
		if len(g.Children) > 1 {
			if w, ok := g.Children[1].(*ControlWord); ok && IsNamedDestination(w.Word) {
				g.Type = w.Word
			}
		}
	}
}

// IsIgnorable reports whether the group is a destination whose content
// is never rendered as document text. The color table is not ignorable;
// it is consumed by the formatter.
func (g *Group) IsIgnorable() bool {
	switch {
	case g.Type == "colortbl":
		return false
	case g.Type != "":
		return true
	}
	return g.Destination
}

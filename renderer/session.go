// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"
	"strings"

	"github.com/mdhender/rtfhtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/charmap"
)

// session holds the state of one conversion.
type session struct {
	r      *Renderer
	output strings.Builder

	// states is the stack of group scopes. The last entry is current.
	states []State

	// previous is the state of the last span written.
	// It is nil until the first span.
	previous *State

	// openTags is closed in order, so span must come before p.
	openTags []openTag

	// newPar is set when a paragraph starts and cleared by the first
	// styled text written into it.
	newPar bool

	colors   ColorTable
	codePage *charmap.Charmap
}

type openTag struct {
	tag  atom.Atom
	open bool
}

func newSession(r *Renderer) *session {
	s := &session{
		r:        r,
		states:   []State{{}},
		openTags: []openTag{{tag: atom.Span}, {tag: atom.P, open: true}},
		newPar:   true,
		codePage: r.charset,
	}
	s.output.WriteString("<p>")
	return s
}

// state returns the current scope's attributes.
func (s *session) state() *State {
	return &s.states[len(s.states)-1]
}

func (s *session) group(g *rtfhtml.Group) {
	switch {
	case g.Type == "colortbl":
		s.colors = ExtractColorTable(g)
		return
	case g.IsIgnorable():
		s.debug(g, "skipping %q group", g.Type)
		return
	}

	s.states = append(s.states, *s.state())
	for _, child := range g.Children {
		switch e := child.(type) {
		case *rtfhtml.Group:
			s.group(e)
		case *rtfhtml.ControlWord:
			s.word(e)
		case *rtfhtml.ControlSymbol:
			s.symbol(e)
		case *rtfhtml.Text:
			s.text(e)
		}
	}
	s.states = s.states[:len(s.states)-1]
}

func (s *session) word(w *rtfhtml.ControlWord) {
	st := s.state()
	switch w.Word {
	case "plain", "pard":
		*st = State{}
	case "b":
		st.Bold = w.ParamOr(1) > 0
	case "i":
		st.Italic = w.ParamOr(1) > 0
	case "ul", "uld", "uldb", "uldash", "ulw", "ulwave", "ulth":
		st.Underline = w.ParamOr(1) > 0
	case "ulnone":
		st.Underline = false
	case "strike":
		st.Strike = w.ParamOr(1) > 0
	case "v":
		st.Hidden = w.ParamOr(1) > 0
	case "fs":
		st.FontSize = halfPointsToPixels(w.ParamOr(24))
	case "dn":
		st.DnUp = halfPointsToPixels(-w.ParamOr(6))
	case "up":
		st.DnUp = halfPointsToPixels(w.ParamOr(6))
	case "sub":
		st.Subscript, st.Superscript = true, false
	case "super":
		st.Subscript, st.Superscript = false, true
	case "nosupersub":
		st.Subscript, st.Superscript = false, false
	case "cf":
		st.TextColor = w.ParamOr(0)
	case "cb", "chcbpat", "highlight":
		st.Background = w.ParamOr(0)
	case "lquote":
		s.output.WriteString("&lsquo;")
	case "rquote":
		s.output.WriteString("&rsquo;")
	case "ldblquote":
		s.output.WriteString("&ldquo;")
	case "rdblquote":
		s.output.WriteString("&rdquo;")
	case "emdash":
		s.output.WriteString("&mdash;")
	case "endash":
		s.output.WriteString("&ndash;")
	case "emspace":
		s.output.WriteString("&emsp;")
	case "enspace":
		s.output.WriteString("&ensp;")
	case "tab":
		s.output.WriteString("&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;")
	case "line":
		s.output.WriteString("<br>")
	case "bullet":
		s.output.WriteString("&bull;")
	case "u":
		s.applyStyle(fmt.Sprintf("&#%d;", w.Rune()))
	case "par", "row":
		s.closeTags()
		s.output.WriteString("<p>")
		s.setOpen(atom.P, true)
		s.newPar = true
	case "ansi", "mac", "pc", "pca":
		s.codePage, _ = CodePage(charsetWords[w.Word])
	case "ansicpg":
		if cm, ok := CodePage(w.ParamOr(0)); ok {
			s.codePage = cm
		} else {
			s.debug(w, "ansicpg%d: unsupported code page", w.ParamOr(0))
		}
	}
}

func (s *session) symbol(sym *rtfhtml.ControlSymbol) {
	switch sym.Symbol {
	case '\'':
		if sym.HasParam {
			s.applyStyle(fmt.Sprintf("&#%d;", decodeByte(s.codePage, sym.Param)))
		}
	case '~':
		s.output.WriteString("&nbsp;")
	}
}

func (s *session) text(t *rtfhtml.Text) {
	if s.r.escapeText {
		s.applyStyle(html.EscapeString(t.Text))
		return
	}
	s.applyStyle(t.Text)
}

// applyStyle writes txt, starting a new span when the attributes changed
// since the last span or a paragraph has just started.
func (s *session) applyStyle(txt string) {
	st := *s.state()
	if s.previous == nil || *s.previous != st || s.newPar {
		s.previous = &st
		s.closeTag(atom.Span)
		s.output.WriteString(`<span style="`)
		s.output.WriteString(st.style(s.colors))
		s.output.WriteString(`">`)
		s.output.WriteString(txt)
		s.setOpen(atom.Span, true)
	} else {
		s.output.WriteString(txt)
	}
	s.newPar = false
}

func (s *session) setOpen(tag atom.Atom, open bool) {
	for i := range s.openTags {
		if s.openTags[i].tag == tag {
			s.openTags[i].open = open
			return
		}
	}
}

// closeTag writes the end tag if the tag is open.
func (s *session) closeTag(tag atom.Atom) {
	for i := range s.openTags {
		if s.openTags[i].tag == tag && s.openTags[i].open {
			s.output.WriteString("</" + tag.String() + ">")
			s.openTags[i].open = false
			return
		}
	}
}

func (s *session) closeTags() {
	for _, ot := range s.openTags {
		s.closeTag(ot.tag)
	}
}

func (s *session) debug(e rtfhtml.Element, format string, args ...any) {
	if s.r.logger == nil {
		return
	}
	s.r.logger.Debug(fmt.Sprintf("%d:%d %s", e.Line(), e.Column(), fmt.Sprintf(format, args...)))
}

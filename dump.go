// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// dump colors, used as CSS color names in the HTML listing
// and mapped to ANSI colors for terminals.
const (
	dumpPlain  = ""
	dumpWord   = "green"
	dumpText   = "red"
	dumpSymbol = "blue"
)

var dumpANSI = map[string]string{
	dumpWord:   "2",
	dumpText:   "1",
	dumpSymbol: "4",
}

// DumpHTML writes the tree as an indented, color-coded listing.
// Every node is written as a div. Indentation is one line of &nbsp;
// per level, and each nesting level adds two.
// Destination groups, the color table included, are left out.
func DumpHTML(w io.Writer, root *Group) error {
	d := &dumper{w: w, line: func(level int, color, s string) string {
		var sb strings.Builder
		if color == dumpPlain {
			sb.WriteString("<div>\n")
		} else {
			fmt.Fprintf(&sb, "<div style='color:%s'>\n", color)
		}
		for range level {
			sb.WriteString("&nbsp;\n")
		}
		sb.WriteString(s)
		sb.WriteString("\n</div>\n")
		return sb.String()
	}}
	d.group(root, 0)
	return d.err
}

// Dump writes the same listing as DumpHTML for a terminal, one line per
// node, indented with spaces and colored for the given profile.
// termenv.Ascii turns colors off.
func Dump(w io.Writer, root *Group, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	d := &dumper{w: w, line: func(level int, color, s string) string {
		if color != dumpPlain {
			s = out.String(s).Foreground(out.Color(dumpANSI[color])).String()
		}
		return strings.Repeat(" ", level) + s + "\n"
	}}
	d.group(root, 0)
	return d.err
}

type dumper struct {
	w    io.Writer
	err  error
	line func(level int, color, s string) string
}

func (d *dumper) print(level int, color, s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, d.line(level, color, s))
}

func (d *dumper) group(g *Group, level int) {
	d.print(level, dumpPlain, "{")
	for _, child := range g.Children {
		switch e := child.(type) {
		case *Group:
			if e.Type == "" && !e.Destination {
				d.group(e, level+2)
			}
		case *ControlWord:
			d.print(level+2, dumpWord, fmt.Sprintf("WORD %s (%d)", e.Word, e.ParamOr(1)))
		case *ControlSymbol:
			d.print(level+2, dumpSymbol, fmt.Sprintf("SYMBOL %c (%d)", e.Symbol, e.Param))
		case *Text:
			d.print(level+2, dumpText, "TEXT "+e.Text)
		}
	}
	d.print(level, dumpPlain, "}")
}

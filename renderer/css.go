// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"strconv"
	"strings"
)

// style returns the inline CSS for the state.
//
// The order of the declarations matters. Underline and strike both set
// text-decoration, so strike wins when both are on. The dn/up block and
// the sub/super block both set font-size after the explicit size, and
// sub/super comes last so it overrides dn/up.
func (s State) style(colors ColorTable) string {
	var sb strings.Builder
	if s.Bold {
		sb.WriteString("font-weight:bold;")
	}
	if s.Italic {
		sb.WriteString("font-style:italic;")
	}
	if s.Underline {
		sb.WriteString("text-decoration:underline;")
	}
	if s.Strike {
		sb.WriteString("text-decoration:strikethrough;")
	}
	if s.Hidden {
		sb.WriteString("display:none;")
	}
	if s.FontSize != 0 {
		sb.WriteString("font-size:" + itoa(s.FontSize) + "px;")
	}
	if s.DnUp != 0 {
		sb.WriteString(s.reducedFontSize())
		sb.WriteString("vertical-align:" + itoa(s.DnUp) + "px;")
	}
	if s.Subscript {
		sb.WriteString(s.reducedFontSize())
		sb.WriteString("vertical-align:sub;")
	}
	if s.Superscript {
		sb.WriteString(s.reducedFontSize())
		sb.WriteString("vertical-align:super;")
	}
	if color := colors.Color(s.TextColor); color != "" {
		sb.WriteString("color:" + color + ";")
	}
	if color := colors.Color(s.Background); color != "" {
		sb.WriteString("background-color:" + color + ";")
	}
	return sb.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

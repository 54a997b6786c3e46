// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import "math"

// State is the set of character attributes in effect at one point of
// the document. It is a plain value: copying it is how a group scope
// saves its parent's attributes, and == compares every field.
type State struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Hidden    bool

	// FontSize is in pixels. Zero means no size was set.
	FontSize int

	// DnUp is the vertical offset in pixels, negative for \dn.
	// Zero means no offset.
	DnUp int

	// Subscript and Superscript are never both true.
	Subscript   bool
	Superscript bool

	// TextColor and Background are indexes into the color table.
	// Zero is the automatic color.
	TextColor  int
	Background int
}

// halfPointsToPixels converts a size in half-points to pixels, rounding up.
func halfPointsToPixels(halfPoints int) int {
	return int(math.Ceil(float64(halfPoints) / 24 * 16))
}

// reducedFontSize returns the font-size declaration used for raised,
// lowered, and sub/superscript text: two thirds of the current size,
// or "smaller" when no size is set.
func (s State) reducedFontSize() string {
	if s.FontSize == 0 {
		return "font-size:smaller;"
	}
	return "font-size:" + itoa(int(math.Ceil(float64(s.FontSize)/3*2))) + "px;"
}

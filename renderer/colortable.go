// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdhender/rtfhtml"
)

// ColorTable holds the document colors as "#rrggbb" strings.
// Entry 0 is the automatic color and is never used for output.
// An entry is empty when the document did not give all three components.
type ColorTable []string

// Color returns the hex color for the index, or an empty string when
// the index is 0, out of range, or names an incomplete entry.
func (ct ColorTable) Color(index int) string {
	if index <= 0 || index >= len(ct) {
		return ""
	}
	return ct[index]
}

// ExtractColorTable builds the table from a colortbl group.
//
// Each ';' ends an entry. The \red, \green and \blue words before it
// set the components; other words are ignored.
func ExtractColorTable(g *rtfhtml.Group) ColorTable {
	var table ColorTable

	var rgb [3]int
	var seen [3]bool
	for _, child := range g.Children {
		switch e := child.(type) {
		case *rtfhtml.ControlWord:
			var n int
			switch e.Word {
			case "red":
				n = 0
			case "green":
				n = 1
			case "blue":
				n = 2
			default:
				continue
			}
			rgb[n], seen[n] = min(max(e.ParamOr(0), 0), 255), true
		case *rtfhtml.Text:
			for range strings.Count(e.Text, ";") {
				if seen[0] && seen[1] && seen[2] {
					table = append(table, colorful.Color{
						R: float64(rgb[0]) / 255,
						G: float64(rgb[1]) / 255,
						B: float64(rgb[2]) / 255,
					}.Hex())
				} else {
					table = append(table, "")
				}
				rgb, seen = [3]int{}, [3]bool{}
			}
		}
	}

	return table
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer_test

import (
	"testing"

	"github.com/mdhender/rtfhtml"
	"github.com/mdhender/rtfhtml/renderer"
)

func colorTable(t *testing.T, group string) renderer.ColorTable {
	t.Helper()
	root, err := rtfhtml.Parse([]byte(`{\rtf1` + group + `}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, ok := root.Children[1].(*rtfhtml.Group)
	if !ok || g.Type != "colortbl" {
		t.Fatalf("second child is not a color table")
	}
	return renderer.ExtractColorTable(g)
}

func TestExtractColorTable(t *testing.T) {
	for _, tc := range []struct {
		name  string
		group string
		want  []string
	}{
		{"canonical", `{\colortbl;\red143\green176\blue140;\red0\green0\blue255;}`, []string{"", "#8fb08c", "#0000ff"}},
		{"space after keyword", `{\colortbl ;\red143\green176\blue140;}`, []string{"", "#8fb08c"}},
		{"missing component", `{\colortbl;\red10\green20;\red1\green2\blue3;}`, []string{"", "", "#010203"}},
		{"out of range components", `{\colortbl;\red300\green-5\blue0;}`, []string{"", "#ff0000"}},
		{"component order", `{\colortbl;\blue255\red0\green128;}`, []string{"", "#0080ff"}},
		{"theme words", `{\colortbl;\ctint255\cshade255\red1\green2\blue3;}`, []string{"", "#010203"}},
		{"no auto entry", `{\colortbl\red255\green255\blue255;}`, []string{"#ffffff"}},
		{"empty", `{\colortbl}`, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := colorTable(t, tc.group)
			if len(got) != len(tc.want) {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("got %q, want %q", got, tc.want)
				}
			}
		})
	}
}

func TestColorTable_Color(t *testing.T) {
	ct := colorTable(t, `{\colortbl;\red143\green176\blue140;\red1;}`)
	for _, tc := range []struct {
		index int
		want  string
	}{
		{-1, ""},
		{0, ""},
		{1, "#8fb08c"},
		{2, ""},
		{3, ""},
	} {
		if got := ct.Color(tc.index); got != tc.want {
			t.Errorf("Color(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

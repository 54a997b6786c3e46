// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import "testing"

func TestHalfPointsToPixels(t *testing.T) {
	for _, tc := range []struct {
		halfPoints, want int
	}{
		{22, 15},
		{24, 16},
		{28, 19},
		{32, 22},
		{6, 4},
		{-6, -4},
		{1, 1},
		{0, 0},
	} {
		if got := halfPointsToPixels(tc.halfPoints); got != tc.want {
			t.Errorf("halfPointsToPixels(%d) = %d, want %d", tc.halfPoints, got, tc.want)
		}
	}
}

func TestState_ReducedFontSize(t *testing.T) {
	if got, want := (State{FontSize: 22}).reducedFontSize(), "font-size:15px;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := (State{FontSize: 16}).reducedFontSize(), "font-size:11px;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := (State{}).reducedFontSize(), "font-size:smaller;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestState_Equality(t *testing.T) {
	base := State{Bold: true, FontSize: 15, TextColor: 1}
	for _, changed := range []State{
		{Bold: false, FontSize: 15, TextColor: 1},
		{Bold: true, Italic: true, FontSize: 15, TextColor: 1},
		{Bold: true, Underline: true, FontSize: 15, TextColor: 1},
		{Bold: true, Strike: true, FontSize: 15, TextColor: 1},
		{Bold: true, Hidden: true, FontSize: 15, TextColor: 1},
		{Bold: true, FontSize: 16, TextColor: 1},
		{Bold: true, FontSize: 15, DnUp: 4, TextColor: 1},
		{Bold: true, FontSize: 15, Subscript: true, TextColor: 1},
		{Bold: true, FontSize: 15, Superscript: true, TextColor: 1},
		{Bold: true, FontSize: 15, TextColor: 2},
		{Bold: true, FontSize: 15, TextColor: 1, Background: 1},
	} {
		if changed == base {
			t.Errorf("%+v == %+v, want different", changed, base)
		}
	}

	copied := base
	copied.Bold = false
	if !base.Bold {
		t.Errorf("changing a copy changed the original")
	}
}

func TestState_Style(t *testing.T) {
	colors := ColorTable{"", "#010203"}
	all := State{
		Bold: true, Italic: true, Underline: true, Strike: true, Hidden: true,
		FontSize: 22, DnUp: -4, Superscript: true, TextColor: 1, Background: 1,
	}
	want := "font-weight:bold;font-style:italic;text-decoration:underline;text-decoration:strikethrough;" +
		"display:none;font-size:22px;font-size:15px;vertical-align:-4px;font-size:15px;vertical-align:super;" +
		"color:#010203;background-color:#010203;"
	if got := all.style(colors); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
	if got := (State{}).style(colors); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestDecodeByte(t *testing.T) {
	cm, ok := CodePage(1252)
	if !ok {
		t.Fatalf("CodePage(1252) not found")
	}
	if got, want := decodeByte(cm, 0x80), rune(0x20ac); got != want {
		t.Errorf("decodeByte(1252, 0x80) = %U, want %U", got, want)
	}
	if got, want := decodeByte(nil, 0x80), rune(0x80); got != want {
		t.Errorf("decodeByte(nil, 0x80) = %U, want %U", got, want)
	}
	if _, ok := CodePage(932); ok {
		t.Errorf("CodePage(932) found, want not found")
	}
}

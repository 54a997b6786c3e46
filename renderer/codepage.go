// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"golang.org/x/text/encoding/charmap"
)

// codePages maps Windows code page numbers to single-byte decoders.
// Multi-byte code pages are not supported.
var codePages = map[int]*charmap.Charmap{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28593: charmap.ISO8859_3,
	28594: charmap.ISO8859_4,
	28595: charmap.ISO8859_5,
	28596: charmap.ISO8859_6,
	28597: charmap.ISO8859_7,
	28598: charmap.ISO8859_8,
	28599: charmap.ISO8859_9,
	28603: charmap.ISO8859_13,
	28605: charmap.ISO8859_15,
}

// charsetWords are the document charset words and their code pages.
var charsetWords = map[string]int{
	"ansi": 1252,
	"mac":  10000,
	"pc":   437,
	"pca":  850,
}

// CodePage returns the decoder for a Windows code page number.
func CodePage(cp int) (*charmap.Charmap, bool) {
	m, ok := codePages[cp]
	return m, ok
}

// decodeByte returns the character for a byte from a hex escape.
// Without a code page the byte value is used as is.
func decodeByte(cm *charmap.Charmap, b int) rune {
	if cm == nil || b < 0 || b > 255 {
		return rune(b)
	}
	return cm.DecodeByte(byte(b))
}

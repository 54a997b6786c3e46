// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

const (
	// CR and LF are control characters, respectively coded 0x0D (13 decimal) and 0x0A (10 decimal).
	// RTF writers break long lines with CR+LF, LF, or (rarely) a bare CR.
	// None of them are significant in the document; the lexer reports them
	// as EndOfLine tokens and the parser drops them.

	// CR is 0x0D or '\r'
	CR rune = rune(13)

	// LF is 0x0A or '\n'
	LF rune = rune(10)

	// EOF is a sentinel for end of input
	EOF rune = rune(-1)
)

// isletter reports whether ch may appear in a control word.
// Control words are limited to ASCII letters.
func isletter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isdigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func ishex(ch rune) bool {
	return isdigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// hexval returns the value of a hex digit. The caller must check ishex first.
func hexval(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	}
	return int(ch-'A') + 10
}

// iseol reports whether ch ends a line.
// The lexer has already merged CR+LF into a single LF.
func iseol(ch rune) bool {
	return ch == LF || ch == CR
}

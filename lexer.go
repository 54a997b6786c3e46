// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer invariants and coordinate system
//
// The lexer treats input as an immutable UTF-8 byte slice.
//
// Fields:
//   input       - the original []byte
//   length      - len(input)
//
//   r           - the current rune, or EOF when we have read past the end.
//                 Line endings are normalized so that:
//                   * "\n"   (LF) stays "\n"
//                   * "\r\n" (CRLF) is seen as a single "\n" rune
//                   * a bare "\r" stays "\r"; callers treat it like LF
//
//   posCurrRune - index into input of the first byte of r,
//                 or length when r == EOF.
//   posNextRune - index into input of the first byte of the *next* rune,
//                 or length when r == EOF.
//   anchorPos   - index into input where the current token starts.
//
// Invariants (must always hold):
//   0 <= posCurrRune <= posNextRune <= length
//
//   r == EOF  <=> posCurrRune == posNextRune == length
//
//   r != EOF  => posCurrRune < length && posNextRune > posCurrRune
//                and input[posCurrRune:posNextRune] encodes exactly r.
//
// Scanners that produce a token:
//   1. Call setAnchor() while r is the first rune of the token.
//   2. Call advance() while r belongs to the token. When the loop stops,
//      r is the first rune after the token (or EOF).
//   3. Call token(kind), which slices input[anchorPos:posCurrRune].

type Lexer struct {
	name        string // name of the input source
	r           rune   // current rune
	line        int    // line number of current rune
	column      int    // column number of current rune
	posCurrRune int    // position of current rune
	posNextRune int    // position of next rune
	length      int    // length of input buffer
	input       []byte

	anchorPos    int
	anchorLine   int
	anchorColumn int

	// canonical end of input token
	endToken *Token

	// logging
	ctx         context.Context
	logger      *slog.Logger
	errorCount  int
	tokenCount  int
	diagnostics []Diagnostic
}

func NewLexer(ctx context.Context, path string, input []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		name:   path,
		input:  input,
		length: len(input),
		ctx:    ctx,
		logger: logger,
		r:      LF, // so the first advance starts line 1, column 1
	}
	// read the first character to initialize the lexer.
	l.advance()
	return l
}

// ErrorCount returns the number of problems the lexer reported.
func (l *Lexer) ErrorCount() int {
	return l.errorCount
}

// Diagnostics returns the problems found so far. None of them stop the scan.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diagnostics
}

// Scan returns the next token from the input buffer.
//
// Once we reach end of input, we always return the same EOF token.
func (l *Lexer) Scan() *Token {
	if l.iseof() {
		if l.endToken == nil {
			l.seteof()
		}
		return l.endToken
	}
	l.tokenCount++

	l.setAnchor()

	switch ch := l.peekChar(); ch {
	case LF, CR:
		l.advance()
		return l.token(EndOfLine)
	case '{':
		l.advance()
		return l.token(LBRACE)
	case '}':
		l.advance()
		return l.token(RBRACE)
	case '\\':
		next := l.peekCharN(1)
		switch {
		case isletter(next):
			return l.scanControlWord()
		case next == '{' || next == '}' || next == '\\':
			return l.scanText()
		case next == '\'':
			return l.scanHexEscape()
		case iseol(next):
			// an escaped line break is the same as \par
			l.advance()
			l.advance()
			tok := l.token(WORD)
			tok.Word = "par"
			return tok
		case next == EOF:
			l.advance()
			l.error("backslash at end of input")
			return l.token(UNKNOWN)
		}
		l.advance()
		l.advance()
		tok := l.token(SYMBOL)
		tok.Symbol = next
		return tok
	}

	return l.scanText()
}

// scanControlWord accepts \letters[-digits][ ] and returns a WORD token.
// The current rune must be the backslash.
func (l *Lexer) scanControlWord() *Token {
	l.advance() // backslash

	start := l.posCurrRune
	for isletter(l.peekChar()) {
		l.advance()
	}
	word := string(l.input[start:l.posCurrRune])

	var param int
	var hasParam bool
	if isdigit(l.peekChar()) || (l.peekChar() == '-' && isdigit(l.peekCharN(1))) {
		start = l.posCurrRune
		if l.peekChar() == '-' {
			l.advance()
		}
		for isdigit(l.peekChar()) {
			l.advance()
		}
		digits := string(l.input[start:l.posCurrRune])
		// parameters are signed 16-bit values in practice.
		// ParseInt saturates at the 32-bit bounds on overflow.
		n, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			l.error("\\%s: parameter %s out of range", word, digits)
		}
		param, hasParam = int(n), true
	}

	// a single space delimits the control word and is not part of the document
	if l.peekChar() == ' ' {
		l.advance()
	}

	tok := l.token(WORD)
	tok.Word, tok.Param, tok.HasParam = word, param, hasParam
	return tok
}

// scanHexEscape accepts \'hh and returns a SYMBOL token.
// The current rune must be the backslash.
func (l *Lexer) scanHexEscape() *Token {
	l.advance() // backslash
	l.advance() // quote

	value, digits := 0, 0
	for digits < 2 && ishex(l.peekChar()) {
		value = value*16 + hexval(l.peekChar())
		digits++
		l.advance()
	}

	tok := l.token(SYMBOL)
	tok.Symbol = '\''
	if digits == 0 {
		l.error("hex escape without digits")
	} else {
		tok.Param, tok.HasParam = value, true
	}
	return tok
}

// scanText accepts a run of literal text and returns a TEXT token.
// The run stops at a group delimiter, a line break, or a backslash
// that does not escape a delimiter.
func (l *Lexer) scanText() *Token {
	var sb strings.Builder
	for !l.iseof() {
		ch := l.peekChar()
		if ch == '{' || ch == '}' || iseol(ch) {
			break
		}
		if ch == '\\' {
			next := l.peekCharN(1)
			if next != '{' && next != '}' && next != '\\' {
				break
			}
			l.advance()
			ch = next
		}
		sb.WriteRune(ch)
		l.advance()
	}
	tok := l.token(TEXT)
	tok.Text = sb.String()
	return tok
}

// token returns a token of the given kind that covers the input
// from the anchor up to (but not including) the current rune.
func (l *Lexer) token(kind Kind) *Token {
	return &Token{
		Position: Position{
			Line:   l.anchorLine,
			Column: l.anchorColumn,
			Start:  l.anchorPos,
		},
		End:  l.posCurrRune,
		Kind: kind,
	}
}

// peekChar returns the current character without advancing the input.
func (l *Lexer) peekChar() rune {
	return l.r
}

// peekCharN returns the nth character without advancing the input.
// peekCharN(0) is the same as peekChar().
func (l *Lexer) peekCharN(numberOfChars int) rune {
	if numberOfChars < 0 {
		panic("assert(numberOfChars >= 0)")
	}
	ch := l.r

	posPeekRune := l.posNextRune
	for numberOfChars > 0 && posPeekRune < l.length {
		r, w := rune(l.input[posPeekRune]), 1
		if r == LF {
			ch, w = LF, 1
		} else if r == CR && posPeekRune+1 < l.length && rune(l.input[posPeekRune+1]) == LF {
			ch, w = LF, 2
		} else if r >= utf8.RuneSelf {
			// The current rune is not actually ASCII, so we have to decode it properly.
			ch, w = utf8.DecodeRune(l.input[posPeekRune:])
		} else {
			ch = r
		}
		posPeekRune += w
		numberOfChars--
	}

	if numberOfChars > 0 {
		// we reached end of input before peeking the requested number of characters
		ch = EOF
	}

	return ch
}

// setAnchor marks the start of the current token.
func (l *Lexer) setAnchor() {
	l.anchorPos = l.posCurrRune
	l.anchorLine = l.line
	l.anchorColumn = l.column
}

// advance moves to the next rune and updates line/col.
// It normalizes "\r\n" into a single LF rune.
// On end of input, it sets r == EOF and both positions to length and returns.
func (l *Lexer) advance() {
	// update line/col wrt the *current* rune before stepping
	if iseol(l.r) {
		l.line++
		l.column = 1
	} else if l.r != EOF {
		l.column++
	}

	// already at or past the end?
	if l.posNextRune >= l.length {
		l.posCurrRune, l.posNextRune = l.length, l.length
		l.r = EOF
		return
	}

	l.posCurrRune = l.posNextRune

	// read the next rune, optimizing for ASCII grammars.
	r, w := rune(l.input[l.posCurrRune]), 1
	if r == CR && l.posCurrRune+1 < l.length && rune(l.input[l.posCurrRune+1]) == LF {
		// merge CR+LF into a single LF rune, but consume both bytes
		r, w = LF, 2
	} else if r >= utf8.RuneSelf {
		// the current rune must be decoded
		r, w = utf8.DecodeRune(l.input[l.posCurrRune:])
	}
	l.posNextRune = l.posCurrRune + w
	l.r = r
}

func (l *Lexer) iseof() bool {
	return l.r == EOF
}

func (l *Lexer) debug(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.DebugContext(l.ctx, fmt.Sprintf("%s:%d:%d %s", l.name, l.line, l.column, fmt.Sprintf(format, args...)))
}

// error records a warning diagnostic that covers the current token.
func (l *Lexer) error(format string, args ...any) {
	l.errorCount++
	msg := fmt.Sprintf(format, args...)
	l.diagnostics = append(l.diagnostics, Diagnostic{
		Severity: slog.LevelWarn,
		Message:  msg,
		Span: Span{
			Start:  l.anchorPos,
			End:    l.posCurrRune,
			Line:   l.anchorLine,
			Column: l.anchorColumn,
		},
	})
	if l.logger == nil {
		return
	}
	l.logger.ErrorContext(l.ctx, fmt.Sprintf("%s:%d:%d %s", l.name, l.line, l.column, msg))
}

// seteof updates the Lexer state to enforce the end of input invariants:
// * r is EOF
// * posCurrRune = posNextRune = length
// * endToken is set to the canonical EOF token
func (l *Lexer) seteof() {
	l.r = EOF
	l.posCurrRune = l.length
	l.posNextRune = l.length
	if l.endToken == nil {
		l.debug("end of input after %d tokens", l.tokenCount)
		l.endToken = &Token{
			Position: Position{
				Line:   l.line,
				Column: l.column,
				Start:  l.length,
			},
			End:  l.length,
			Kind: EndOfInput,
		}
	}
}

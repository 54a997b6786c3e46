// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

// Token represents a single lexical token from the input.
type Token struct {
	Position

	// End is the byte offset in the original input slice.
	// It is exclusive: input[Start:End] is the token's lexeme,
	// including the delimiting space of a control word.
	End int

	Kind Kind // e.g. WORD, TEXT, LBRACE, etc.

	// Word and Param are set for WORD tokens.
	// HasParam is false when the control word had no numeric parameter.
	Word     string
	Param    int
	HasParam bool

	// Symbol is set for SYMBOL tokens. For the hex escape \'hh,
	// Param holds the decoded byte and HasParam is true.
	Symbol rune

	// Text is the unescaped value of a TEXT token.
	Text string
}

// Is reports whether tok.Kind matches the provided kind.
//
// It returns false if tok is nil.
func (tok *Token) Is(kind Kind) bool {
	if tok == nil {
		return false
	}
	return tok.Kind == kind
}

// IsOneOf reports whether tok.Kind matches any of the provided kinds.
//
// It returns false if tok is nil.
func (tok *Token) IsOneOf(kinds ...Kind) bool {
	if tok == nil {
		return false
	}
	for _, kind := range kinds {
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

// Length is the length of the lexeme, in bytes.
func (tok *Token) Length() int {
	return tok.End - tok.Position.Start
}

// Lexeme is a helper to return the original text of the token.
func (tok *Token) Lexeme(input []byte) []byte {
	return input[tok.Position.Start:tok.End]
}

// Position represents a position in the original source code.
// All fields are 1-based where applicable.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, character column
	Start  int // byte index into input (0-based); always required
}

// Span represents a range in the source: [Start, End).
type Span struct {
	// Byte offsets into the original input slice.
	// End is exclusive: input[Start:End] is the source text.
	Start int
	End   int

	// 1-based line and column of the *start* of the span.
	Line   int
	Column int
}

// Text is a helper to return the original text of the span.
func (s Span) Text(input []byte) []byte {
	return input[s.Start:s.End]
}

// spanFromToken creates a Span that covers a single token.
func spanFromToken(tok *Token) Span {
	return Span{
		Start:  tok.Position.Start,
		End:    tok.End,
		Line:   tok.Position.Line,
		Column: tok.Position.Column,
	}
}

// spanFromTokens creates a Span from the first token through the last.
func spanFromTokens(first, last *Token) Span {
	return Span{
		Start:  first.Position.Start,
		End:    last.End,
		Line:   first.Position.Line,
		Column: first.Position.Column,
	}
}

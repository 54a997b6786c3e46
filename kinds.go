// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

//go:generate stringer --type Kind

// Kind implements enums for tokens
type Kind int

const (
	UNKNOWN Kind = iota

	LBRACE // begins a group
	RBRACE // ends a group
	WORD   // control word, e.g. \b0 or \fs22
	SYMBOL // control symbol, e.g. \~ or \'f6
	TEXT   // run of literal text, escapes resolved

	EndOfLine  // end of line (LF, CR+LF, or a bare CR)
	EndOfInput // end of input
)

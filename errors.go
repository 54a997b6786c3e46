// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNotRTF is returned when the input does not start with {\rtfN.
	ErrNotRTF = errors.New("missing rtf signature")
	// ErrUnterminatedGroup is returned when input ends inside a group.
	ErrUnterminatedGroup = errors.New("unterminated group")
	// ErrUnbalancedGroup is returned for a '}' with no matching '{'.
	ErrUnbalancedGroup = errors.New("unbalanced group delimiter")
	// ErrTrailingGroup is returned for a group that starts after the document ends.
	ErrTrailingGroup = errors.New("group after end of document")
)

// ParseError is returned when the input is not a well-formed document.
// Err is one of the sentinel errors above.
type ParseError struct {
	Err  error
	Msg  string
	Span Span
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%d:%d: %v", e.Span.Line, e.Span.Column, e.Err)
	}
	return fmt.Sprintf("%d:%d: %v: %s", e.Span.Line, e.Span.Column, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Diagnostic converts the error for PrintDiagnostic.
func (e *ParseError) Diagnostic() Diagnostic {
	diag := Diagnostic{
		Severity: slog.LevelError,
		Message:  e.Err.Error(),
		Span:     e.Span,
	}
	if e.Msg != "" {
		diag.Notes = append(diag.Notes, e.Msg)
	}
	return diag
}

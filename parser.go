// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package rtfhtml

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"
)

/*
Invariants:
 * Initialization
   * NewParser stores the lexer and primes currToken with the first token.
   * After initialization, currToken is never nil. Once EndOfInput is
     reached, it stays there.

 * Only scan() talks to the lexer. Everything else uses peek() and advance().

 * EndOfLine tokens are real tokens but carry no meaning in a document.
   The group loop drops them; they never end a text run.

 * Unicode fallback
   * uc is a stack with one entry per open group. Each entry starts as a
     copy of the parent's value (1 at the root) and \ucN replaces it.
   * After \uN, skip is set from the top of uc. While skip is positive,
     each text character, control word, or control symbol decrements it
     and is dropped.
   * A group delimiter clears skip.
*/

// Parser builds the element tree from a token stream.
// A Parser is single use.
type Parser struct {
	ctx       context.Context
	logger    *slog.Logger
	name      string
	input     []byte
	lexer     *Lexer
	currToken *Token // current lookahead
	eofToken  *Token // canonical EOF token

	uc   []int
	skip int

	diagnostics []Diagnostic
}

// Parse parses an entire document and returns the root group.
// Errors are always of type *ParseError.
func Parse(input []byte) (*Group, error) {
	return NewParser(context.Background(), "", input, nil).Parse()
}

// NewParser returns an initialized parser. The name is only used in log
// messages. The logger may be nil.
func NewParser(ctx context.Context, name string, input []byte, logger *slog.Logger) *Parser {
	p := &Parser{
		ctx:    ctx,
		logger: logger,
		name:   name,
		input:  input,
		lexer:  NewLexer(ctx, name, input, logger),
	}
	// prime the cursor with the first token
	p.currToken = p.scan()
	return p
}

// Parse returns the root group of the document.
//
// The first significant token must open the root group, and the group
// must start with the \rtfN signature.
func (p *Parser) Parse() (*Group, error) {
	p.skipEndOfLines()
	open := p.accept(LBRACE)
	if open == nil {
		return nil, &ParseError{Err: ErrNotRTF, Msg: "document must start with '{'", Span: spanFromToken(p.peek())}
	}
	p.skipEndOfLines()
	if sig := p.peek(); !sig.Is(WORD) || sig.Word != "rtf" || !sig.HasParam {
		return nil, &ParseError{Err: ErrNotRTF, Msg: "expected \\rtf with a version", Span: spanFromToken(sig)}
	}

	p.uc = append(p.uc[:0], 1)
	root, err := p.parseGroup(open)
	if err != nil {
		return nil, err
	}

	// anything after the root group
	warned := false
	for !p.match(EndOfInput) {
		tok := p.advance()
		switch tok.Kind {
		case EndOfLine:
		case RBRACE:
			return nil, &ParseError{Err: ErrUnbalancedGroup, Msg: "'}' after end of document", Span: spanFromToken(tok)}
		case LBRACE:
			return nil, &ParseError{Err: ErrTrailingGroup, Span: spanFromToken(tok)}
		default:
			if !warned {
				p.warn(tok, "ignoring content after end of document")
				warned = true
			}
		}
	}

	p.debug("parsed %d top-level elements", len(root.Children))
	return root, nil
}

// Diagnostics returns the warnings from the lexer and the parser,
// ordered by position.
func (p *Parser) Diagnostics() []Diagnostic {
	var list []Diagnostic
	list = append(list, p.lexer.Diagnostics()...)
	list = append(list, p.diagnostics...)
	slices.SortStableFunc(list, func(a, b Diagnostic) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})
	return list
}

// parseGroup consumes elements up to and including the '}' that matches
// the open token. The open token has already been consumed.
func (p *Parser) parseGroup(open *Token) (*Group, error) {
	g := &Group{}

	// the group starts with its parent's \uc value
	p.uc = append(p.uc, p.uc[len(p.uc)-1])
	defer func() { p.uc = p.uc[:len(p.uc)-1] }()

	for {
		tok := p.advance()
		switch tok.Kind {
		case EndOfInput:
			return nil, &ParseError{Err: ErrUnterminatedGroup, Msg: "missing '}' for group", Span: spanFromToken(open)}
		case EndOfLine:
			// line breaks are not part of the document
		case LBRACE:
			p.skip = 0
			child, err := p.parseGroup(tok)
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, child)
		case RBRACE:
			p.skip = 0
			g.span = spanFromTokens(open, tok)
			g.classify()
			return g, nil
		case WORD:
			if p.skip > 0 {
				p.skip--
				continue
			}
			g.Children = append(g.Children, &ControlWord{
				baseElement: baseElement{span: spanFromToken(tok)},
				Word:        tok.Word,
				Param:       tok.Param,
				HasParam:    tok.HasParam,
			})
			switch tok.Word {
			case "uc":
				p.uc[len(p.uc)-1] = max(tok.Param, 0)
				if !tok.HasParam {
					p.uc[len(p.uc)-1] = 1
				}
			case "u":
				p.skip = p.uc[len(p.uc)-1]
			}
		case SYMBOL:
			if p.skip > 0 {
				p.skip--
				continue
			}
			g.Children = append(g.Children, &ControlSymbol{
				baseElement: baseElement{span: spanFromToken(tok)},
				Symbol:      tok.Symbol,
				Param:       tok.Param,
				HasParam:    tok.HasParam,
			})
		case TEXT:
			text := tok.Text
			for p.skip > 0 && text != "" {
				_, w := utf8.DecodeRuneInString(text)
				text = text[w:]
				p.skip--
			}
			if text != "" {
				p.appendText(g, tok, text)
			}
		case UNKNOWN:
			// the lexer has already reported it
		default:
			panic(fmt.Sprintf("assert(kind != %q)", tok.Kind))
		}
	}
}

// appendText adds a text run to the group, merging it with a text run
// that ends the group's children.
func (p *Parser) appendText(g *Group, tok *Token, text string) {
	if n := len(g.Children); n != 0 {
		if prev, ok := g.Children[n-1].(*Text); ok {
			prev.Text += text
			prev.span.End = tok.End
			return
		}
	}
	g.Children = append(g.Children, &Text{
		baseElement: baseElement{span: spanFromToken(tok)},
		Text:        text,
	})
}

func (p *Parser) skipEndOfLines() {
	for p.consume(EndOfLine) {
	}
}

// scan is the only parser function that communicates with the lexer.
func (p *Parser) scan() *Token {
	if p.eofToken != nil {
		return p.eofToken
	}
	tok := p.lexer.Scan()
	if tok == nil {
		panic("assert(scan.token != nil)")
	}
	if tok.Kind == EndOfInput {
		p.eofToken = tok
	}
	return tok
}

// peek returns the current lookahead token without consuming it.
func (p *Parser) peek() *Token {
	return p.currToken
}

// advance consumes and returns the current token, then updates the lookahead.
// EndOfInput is returned repeatedly; the cursor never moves past it.
func (p *Parser) advance() *Token {
	if p.currToken == nil {
		panic("assert(parser.currToken != nil)")
	}
	tok := p.currToken
	if tok.Kind == EndOfInput {
		return tok
	}
	p.currToken = p.scan()
	return tok
}

// match reports whether the current lookahead token matches the given kind.
func (p *Parser) match(kind Kind) bool {
	return p.peek().Is(kind)
}

// consume advances over the current token if its Kind equals kind.
func (p *Parser) consume(kind Kind) bool {
	if p.match(kind) {
		p.advance()
		return true
	}
	return false
}

// accept consumes and returns the current token if its Kind equals kind.
// It returns nil if the current token does not match.
func (p *Parser) accept(kind Kind) *Token {
	if p.match(kind) {
		return p.advance()
	}
	return nil
}

func (p *Parser) debug(format string, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.DebugContext(p.ctx, fmt.Sprintf("%s: %s", p.name, fmt.Sprintf(format, args...)))
}

// warn records a warning diagnostic for the token.
func (p *Parser) warn(tok *Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Severity: slog.LevelWarn,
		Message:  msg,
		Span:     spanFromToken(tok),
	})
	if p.logger == nil {
		return
	}
	p.logger.WarnContext(p.ctx, fmt.Sprintf("%s:%d:%d %s", p.name, tok.Line, tok.Column, msg))
}

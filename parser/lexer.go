package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer splits a type signature into tokens on demand. It holds at most
// one token of lookahead.
type Lexer struct {
	input string
	pos   int

	peeked bool
	tok    Token
	tokErr error
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token until Next is called.
func (l *Lexer) Peek() (Token, error) {
	if !l.peeked {
		l.tok, l.tokErr = l.scan()
		l.peeked = true
	}
	return l.tok, l.tokErr
}

// Next returns the next token and advances past it.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.Peek()
	if err == nil {
		l.peeked = false
	}
	return tok, err
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

func (l *Lexer) skipWhitespace() {
	for {
		r, size := l.peekRune()
		if size == 0 || !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Offset: start}, nil
	}

	if kind, ok := symbols[l.input[l.pos]]; ok {
		l.pos++
		return Token{Kind: kind, Literal: l.input[start:l.pos], Offset: start}, nil
	}

	r, _ := l.peekRune()
	if isIdentStart(r) {
		return l.scanName(start)
	}
	return Token{}, l.unexpected(r)
}

// scanName reads a dotted name. A dot is only part of the name when an
// identifier segment follows it.
func (l *Lexer) scanName(start int) (Token, error) {
	for {
		l.scanSegment()

		if l.pos >= len(l.input) || l.input[l.pos] != '.' {
			break
		}
		l.pos++

		r, size := l.peekRune()
		if size == 0 {
			return Token{}, &SyntaxError{Input: l.input, Offset: l.pos, Expected: "identifier after '.'"}
		}
		if !isIdentStart(r) {
			return Token{}, l.unexpected(r)
		}
	}
	return Token{Kind: TokenIdent, Literal: l.input[start:l.pos], Offset: start}, nil
}

func (l *Lexer) scanSegment() {
	r, size := l.peekRune()
	if size == 0 || !isIdentStart(r) {
		return
	}
	l.pos += size
	for {
		r, size = l.peekRune()
		if size == 0 || !isIdentPart(r) {
			return
		}
		l.pos += size
	}
}

func (l *Lexer) unexpected(r rune) error {
	return &SyntaxError{
		Input:   l.input,
		Offset:  l.pos,
		Found:   string(r),
		lexical: true,
	}
}

// isIdentStart follows Java: letters, letter numbers, currency symbols and
// connector punctuation.
func isIdentStart(r rune) bool {
	return r == '$' || unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Sc, unicode.Pc)
}

// isIdentPart adds digits, combining marks and ignorable format characters.
func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Cf)
}

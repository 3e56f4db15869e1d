package parser

import "fmt"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenComma
	TokenQuestion
	TokenLAngle
	TokenRAngle
	TokenLBracket
	TokenRBracket
)

var symbols = map[byte]TokenKind{
	',': TokenComma,
	'?': TokenQuestion,
	'<': TokenLAngle,
	'>': TokenRAngle,
	'[': TokenLBracket,
	']': TokenRBracket,
}

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenComma:
		return "','"
	case TokenQuestion:
		return "'?'"
	case TokenLAngle:
		return "'<'"
	case TokenRAngle:
		return "'>'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a lexical token. Offset is the byte offset of its first
// character in the input.
type Token struct {
	Kind    TokenKind
	Literal string
	Offset  int
}

func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// IsKeyword reports whether t is the identifier kw exactly.
func (t Token) IsKeyword(kw string) bool {
	return t.Kind == TokenIdent && t.Literal == kw
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return t.Literal
}

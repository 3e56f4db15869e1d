// Package parser turns Java type signatures into typeexpr trees.
//
// The accepted grammar is:
//
//	Type           -> VoidType | PrimitiveType | ReferenceType
//	VoidType       -> 'void'
//	PrimitiveType  -> 'boolean' | 'byte' | 'short' | 'int'
//	                | 'long' | 'float' | 'double' | 'char'
//	ReferenceType  -> PrimitiveType ('[' ']')+
//	                | ClassType ('<' TypeArgument (',' TypeArgument)* '>')? ('[' ']')*
//	ClassType      -> FULLY_QUALIFIED_NAME
//	TypeArgument   -> ReferenceType | WildcardType
//	WildcardType   -> '?' | '?' ('extends' | 'super') ReferenceType
//
// Nested class syntax such as Outer.Inner<T> gets no special treatment: a
// dotted name is a single token and is handed to the resolver as written.
package parser

import (
	"fmt"

	"github.com/dhamidi/jtype/typeexpr"
)

type parser struct {
	input    string
	lex      *Lexer
	resolver typeexpr.Resolver
}

// Parse parses input as a single Java type, resolving each class name and
// each primitive or plain class array through r. It returns a
// *SyntaxError or an *UnresolvedTypeError on failure, never a partial tree.
//
// Parse keeps no state between calls; concurrent calls are safe as long as
// r is.
func Parse(input string, r typeexpr.Resolver) (typeexpr.Type, error) {
	p := &parser{
		input:    input,
		lex:      NewLexer(input),
		resolver: r,
	}
	return p.parseType()
}

// MustParse is like Parse but panics on error.
func MustParse(input string, r typeexpr.Resolver) typeexpr.Type {
	t, err := Parse(input, r)
	if err != nil {
		panic(fmt.Sprintf("parser: MustParse(%q): %v", input, err))
	}
	return t
}

func (p *parser) parseType() (typeexpr.Type, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	if tok.Is(TokenEOF) {
		return nil, p.unexpected(tok, "a type")
	}

	if tok.Kind == TokenIdent {
		if prim, ok := typeexpr.ParsePrimitive(tok.Literal); ok {
			next, err := p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if next.Is(TokenEOF) {
				return prim, nil
			}
			if prim == typeexpr.Void {
				return nil, p.unexpected(next, "end of input")
			}
		}
	}

	t, err := p.parseReferenceType(tok)
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return t, nil
}

// parseReferenceType parses a ReferenceType whose first token has already
// been consumed.
func (p *parser) parseReferenceType(tok Token) (typeexpr.Type, error) {
	if tok.Kind != TokenIdent || isReserved(tok.Literal) {
		return nil, p.unexpected(tok, "a type name")
	}

	if prim, ok := typeexpr.ParsePrimitive(tok.Literal); ok {
		return p.parseArraySuffix(prim)
	}

	class, err := p.resolveClass(tok.Literal)
	if err != nil {
		return nil, err
	}

	var t typeexpr.Type = class
	next, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if next.Is(TokenLAngle) {
		p.lex.Next()
		args, err := p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
		t = typeexpr.NewParameterized(class, args...)

		if next, err = p.lex.Peek(); err != nil {
			return nil, err
		}
	}

	if next.Is(TokenLBracket) {
		return p.parseArraySuffix(t)
	}
	return t, nil
}

// parseTypeArguments parses the list after '<' up to and including '>'.
func (p *parser) parseTypeArguments() ([]typeexpr.Type, error) {
	var args []typeexpr.Type
	for {
		arg, err := p.parseTypeArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenComma:
			continue
		case TokenRAngle:
			return args, nil
		}
		return nil, p.unexpected(tok, "',' or '>'")
	}
}

func (p *parser) parseTypeArgument() (typeexpr.Type, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	if !tok.Is(TokenQuestion) {
		return p.parseReferenceType(tok)
	}

	next, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	switch {
	case next.IsKeyword("extends"):
		bound, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		return typeexpr.Extends(bound), nil
	case next.IsKeyword("super"):
		bound, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		return typeexpr.Super(bound), nil
	}
	return typeexpr.Unbounded(), nil
}

// parseBound consumes the extends/super keyword and the bound after it.
func (p *parser) parseBound() (typeexpr.Type, error) {
	p.lex.Next()
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	return p.parseReferenceType(tok)
}

// parseArraySuffix parses one or more '[' ']' pairs following elem.
// Primitive and plain class components become a single resolved Array;
// anything generic is wrapped in one GenericArray per dimension.
func (p *parser) parseArraySuffix(elem typeexpr.Type) (typeexpr.Type, error) {
	dims := 0
	for {
		if err := p.expect(TokenLBracket); err != nil {
			return nil, err
		}
		if err := p.expect(TokenRBracket); err != nil {
			return nil, err
		}
		dims++

		next, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if !next.Is(TokenLBracket) {
			break
		}
	}

	switch elem.(type) {
	case typeexpr.Primitive, *typeexpr.Class:
		name, err := typeexpr.ArrayName(elem, dims)
		if err != nil {
			return nil, err
		}
		h, err := p.resolver.Resolve(name)
		if err != nil {
			return nil, &UnresolvedTypeError{Name: name, Err: err}
		}
		return typeexpr.NewArray(elem, dims, h), nil
	}

	t := elem
	for i := 0; i < dims; i++ {
		t = typeexpr.NewGenericArray(t)
	}
	return t, nil
}

func (p *parser) resolveClass(name string) (*typeexpr.Class, error) {
	h, err := p.resolver.Resolve(name)
	if err != nil {
		return nil, &UnresolvedTypeError{Name: name, Err: err}
	}
	return typeexpr.NewClass(h), nil
}

func (p *parser) expect(kind TokenKind) error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	if !tok.Is(kind) {
		return p.unexpected(tok, kind.String())
	}
	return nil
}

func (p *parser) unexpected(tok Token, expected string) *SyntaxError {
	return &SyntaxError{
		Input:    p.input,
		Offset:   tok.Offset,
		Found:    tok.Literal,
		Expected: expected,
	}
}

// isReserved reports whether name is a keyword that can never name a
// class in this grammar.
func isReserved(name string) bool {
	switch name {
	case "void", "extends", "super":
		return true
	}
	return false
}

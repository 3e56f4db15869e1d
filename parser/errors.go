package parser

import "fmt"

// SyntaxError reports malformed input: an unexpected character or token,
// a premature end of input, or trailing input after a complete type.
type SyntaxError struct {
	Input  string
	Offset int
	// Found is the offending token or character; empty at end of input.
	Found string
	// Expected describes what would have been accepted, when known.
	Expected string

	lexical bool
}

func (e *SyntaxError) Error() string {
	var what string
	switch {
	case e.Found == "":
		what = "unexpected end of input"
	case e.lexical:
		what = fmt.Sprintf("unexpected character '%s'", e.Found)
	default:
		what = fmt.Sprintf("unexpected token '%s'", e.Found)
	}
	if e.Expected != "" {
		what += ", expected " + e.Expected
	}
	return fmt.Sprintf("%s at position %d: %s", what, e.Offset, e.Input)
}

// AtEOF reports whether the input ended before the type was complete.
func (e *SyntaxError) AtEOF() bool {
	return e.Found == ""
}

// UnresolvedTypeError reports a well-formed class or array name that the
// resolver could not turn into a handle.
type UnresolvedTypeError struct {
	Name string
	Err  error
}

func (e *UnresolvedTypeError) Error() string {
	return "unknown class: " + e.Name
}

func (e *UnresolvedTypeError) Unwrap() error {
	return e.Err
}

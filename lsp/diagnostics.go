package lsp

import (
	"errors"
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/jtype/check"
	"github.com/dhamidi/jtype/parser"
	"github.com/dhamidi/jtype/typeexpr"
)

const source = "jtype"

// Diagnostics checks every signature line of text and reports the
// failures. The result is never nil, so clients always receive a list.
func Diagnostics(text string, r typeexpr.Resolver) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, l := range check.SplitLines(text) {
		res := check.CheckLine(l, r)
		if res.OK() {
			continue
		}

		end := res.End
		if end <= res.Start {
			end = res.Start + 1
		}
		line := protocol.UInteger(l.Number - 1)
		severity := severityOf(res.Err)
		src := source
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: utf16Column(l.Text, res.Start)},
				End:   protocol.Position{Line: line, Character: utf16Column(l.Text, end)},
			},
			Severity: &severity,
			Source:   &src,
			Message:  message(res.Err),
		})
	}
	return diagnostics
}

func severityOf(err error) protocol.DiagnosticSeverity {
	var unresolved *parser.UnresolvedTypeError
	if errors.As(err, &unresolved) {
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityError
}

// message drops the "at position N: <input>" tail of syntax errors; the
// diagnostic range already carries it.
func message(err error) string {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		msg := syntaxErr.Error()
		if i := strings.LastIndex(msg, fmt.Sprintf(" at position %d:", syntaxErr.Offset)); i >= 0 {
			return msg[:i]
		}
		return msg
	}
	return err.Error()
}

// Hover describes the signature on the hovered line.
func Hover(text string, pos protocol.Position, r typeexpr.Resolver) *protocol.Hover {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}
	l := check.Line{Number: int(pos.Line) + 1, Text: strings.TrimSuffix(lines[pos.Line], "\r")}
	sig, start := l.Signature()
	if sig == "" || strings.HasPrefix(sig, "#") {
		return nil
	}

	res := check.CheckLine(l, r)
	var sb strings.Builder
	if !res.OK() {
		fmt.Fprintf(&sb, "**error**: %s", message(res.Err))
	} else {
		fmt.Fprintf(&sb, "```java\n%s\n```\n\n", res.Type)
		fmt.Fprintf(&sb, "- kind: %s\n", res.Type.Kind())
		fmt.Fprintf(&sb, "- descriptor: `%s`\n", typeexpr.Descriptor(res.Type))
		fmt.Fprintf(&sb, "- signature: `%s`\n", typeexpr.Signature(res.Type))
	}

	rng := protocol.Range{
		Start: protocol.Position{Line: pos.Line, Character: utf16Column(l.Text, start)},
		End:   protocol.Position{Line: pos.Line, Character: utf16Column(l.Text, start+len(sig))},
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sb.String(),
		},
		Range: &rng,
	}
}

// utf16Column converts a byte column of line into the UTF-16 offset LSP
// positions use.
func utf16Column(line string, col int) protocol.UInteger {
	if col > len(line) {
		col = len(line)
	}
	n := 0
	for _, r := range line[:col] {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return protocol.UInteger(n)
}

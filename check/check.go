// Package check validates files holding one type signature per line.
//
// Blank lines and lines starting with '#' are ignored.
package check

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/jtype/parser"
	"github.com/dhamidi/jtype/typeexpr"
)

type Line struct {
	// Number is 1-based.
	Number int
	Text   string
}

// Signature returns the line without surrounding whitespace, and the byte
// column where it starts.
func (l Line) Signature() (string, int) {
	trimmed := strings.TrimLeft(l.Text, " \t")
	start := len(l.Text) - len(trimmed)
	return strings.TrimRight(trimmed, " \t\r"), start
}

// Result is the outcome of checking one line. Start and End delimit the
// offending text as 0-based byte columns when Err is set.
type Result struct {
	Line  Line
	Type  typeexpr.Type
	Err   error
	Start int
	End   int
}

func (r Result) OK() bool { return r.Err == nil }

func ReadLines(rd io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(rd)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if skip(text) {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read signatures: %w", err)
	}
	return lines, nil
}

// SplitLines is ReadLines for text already in memory.
func SplitLines(text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if skip(raw) {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: raw})
	}
	return lines
}

func skip(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// CheckLine parses a single line.
func CheckLine(l Line, r typeexpr.Resolver) Result {
	sig, start := l.Signature()
	t, err := parser.Parse(sig, r)
	res := Result{Line: l, Type: t, Err: err}
	if err != nil {
		res.Start, res.End = span(sig, err)
		res.Start += start
		res.End += start
	}
	return res
}

// span locates the text an error refers to within sig.
func span(sig string, err error) (int, int) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		end := syntaxErr.Offset + len(syntaxErr.Found)
		if syntaxErr.AtEOF() {
			end = syntaxErr.Offset
		}
		return syntaxErr.Offset, end
	}

	var unresolved *parser.UnresolvedTypeError
	if errors.As(err, &unresolved) {
		name := unresolved.Name
		if ac, aerr := typeexpr.ParseArrayName(name); aerr == nil && ac.ClassName != "" {
			name = ac.ClassName
		}
		if i := indexName(sig, name); i >= 0 {
			return i, i + len(name)
		}
	}
	return 0, len(sig)
}

// indexName finds name in sig as a whole dotted name, not as the prefix or
// suffix of a longer one.
func indexName(sig, name string) int {
	from := 0
	for {
		i := strings.Index(sig[from:], name)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(name)
		if (i == 0 || !isNameByte(sig[i-1])) && (end == len(sig) || !isNameByte(sig[end])) {
			return i
		}
		from = i + 1
	}
}

func isNameByte(b byte) bool {
	return b == '.' || b == '_' || b == '$' ||
		b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b >= 0x80
}

// Run checks lines with up to workers goroutines. Results are returned in
// input order. Run only fails when ctx is cancelled.
func Run(ctx context.Context, lines []Line, r typeexpr.Resolver, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, l := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = CheckLine(l, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

package check

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/dhamidi/jtype/parser"
	"github.com/dhamidi/jtype/resolver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReadLines(t *testing.T) {
	input := "# header\njava.lang.String\n\n  int[]  \r\n\t# indented comment\njava.util.List<?>"
	lines, err := ReadLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	want := []Line{
		{Number: 2, Text: "java.lang.String"},
		{Number: 4, Text: "  int[]  "},
		{Number: 6, Text: "java.util.List<?>"},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
	}

	split := SplitLines(input)
	if diff := cmp.Diff(want, split); diff != "" {
		t.Errorf("SplitLines mismatch (-want +got):\n%s", diff)
	}
}

func TestLineSignature(t *testing.T) {
	tests := []struct {
		text  string
		sig   string
		start int
	}{
		{"int", "int", 0},
		{"  int[]  ", "int[]", 2},
		{"\tjava.lang.String\r", "java.lang.String", 1},
		{"", "", 0},
	}
	for _, tt := range tests {
		sig, start := Line{Text: tt.text}.Signature()
		if sig != tt.sig || start != tt.start {
			t.Errorf("Signature() of %q = %q, %d; want %q, %d", tt.text, sig, start, tt.sig, tt.start)
		}
	}
}

func TestCheckLine(t *testing.T) {
	r := resolver.Builtin()

	tests := []struct {
		text       string
		wantErr    bool
		start, end int
	}{
		{text: "java.util.List<java.lang.String>"},
		{text: "  int[][]"},
		// unexpected token 'x' after a complete type
		{text: "  java.lang.String x", wantErr: true, start: 19, end: 20},
		// end of input reported as an empty span at the end
		{text: "java.util.List<java.lang.String", wantErr: true, start: 31, end: 31},
		// unresolved class located in the line
		{text: "java.util.Map<java.lang.String, com.acme.Widget>", wantErr: true, start: 32, end: 47},
		// unresolved array component located by its class name
		{text: " com.acme.Widget[]", wantErr: true, start: 1, end: 16},
		// only the first unresolved name is reported
		{text: "java.util.Map<com.acme.WidgetFactory, com.acme.Widget>", wantErr: true, start: 14, end: 36},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := CheckLine(Line{Number: 1, Text: tt.text}, r)
			if res.OK() == tt.wantErr {
				t.Fatalf("CheckLine(%q) err = %v, wantErr %v", tt.text, res.Err, tt.wantErr)
			}
			if !tt.wantErr {
				if res.Type == nil {
					t.Errorf("CheckLine(%q).Type = nil", tt.text)
				}
				return
			}
			if res.Start != tt.start || res.End != tt.end {
				t.Errorf("span = [%d, %d), want [%d, %d) in %q", res.Start, res.End, tt.start, tt.end, tt.text)
			}
		})
	}
}

func TestIndexName(t *testing.T) {
	tests := []struct {
		sig, name string
		want      int
	}{
		{"a.B", "a.B", 0},
		{"x.a.B", "a.B", -1},
		{"a.BC<a.B>", "a.B", 5},
		{"java.util.List<a.B[]>", "a.B", 15},
		{"", "a.B", -1},
	}
	for _, tt := range tests {
		if got := indexName(tt.sig, tt.name); got != tt.want {
			t.Errorf("indexName(%q, %q) = %d, want %d", tt.sig, tt.name, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	input := `java.lang.String
java.util.List<>
int
com.acme.Missing
java.util.Map<java.lang.String, java.lang.Integer>[]
`
	lines := SplitLines(input)

	for _, workers := range []int{0, 1, 3, 16} {
		results, err := Run(context.Background(), lines, resolver.Builtin(), workers)
		if err != nil {
			t.Fatalf("Run with %d workers error: %v", workers, err)
		}
		if len(results) != len(lines) {
			t.Fatalf("len(results) = %d, want %d", len(results), len(lines))
		}
		for i, res := range results {
			if res.Line != lines[i] {
				t.Errorf("results[%d].Line = %+v, want %+v", i, res.Line, lines[i])
			}
		}

		failed := Failed(results)
		var numbers []int
		for _, res := range failed {
			numbers = append(numbers, res.Line.Number)
		}
		if diff := cmp.Diff([]int{2, 4}, numbers); diff != "" {
			t.Errorf("failed lines mismatch (-want +got):\n%s", diff)
		}

		var syntaxErr *parser.SyntaxError
		if !errors.As(failed[0].Err, &syntaxErr) {
			t.Errorf("line 2 error = %v, want *parser.SyntaxError", failed[0].Err)
		}
		var unresolved *parser.UnresolvedTypeError
		if !errors.As(failed[1].Err, &unresolved) {
			t.Errorf("line 4 error = %v, want *parser.UnresolvedTypeError", failed[1].Err)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines := SplitLines("int\nlong\nchar\n")
	results, err := Run(ctx, lines, resolver.Builtin(), 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("Run results = %v, want nil", results)
	}
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), nil, resolver.Builtin(), 4)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Run results = %v, want none", results)
	}
}

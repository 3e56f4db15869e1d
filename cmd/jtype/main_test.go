package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/jtype/config"
)

// run executes the jtype command line in an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvClasspath, "")
	t.Setenv(config.EnvBuiltin, "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{
			[]string{"parse", "java.util.Map<java.lang.String,int[]>"},
			"java.util.Map<java.lang.String, int[]>\n",
		},
		{
			[]string{"parse", "int", "java.lang.String[]"},
			"int\njava.lang.String[]\n",
		},
		{
			[]string{"parse", "-f", "descriptor", "java.util.List<java.lang.String>[]"},
			"[Ljava/util/List;\n",
		},
		{
			[]string{"parse", "-f", "signature", "java.util.List<? super java.lang.Integer>"},
			"Ljava/util/List<-Ljava/lang/Integer;>;\n",
		},
		{
			[]string{"parse", "--format", "tree", "java.util.List<?>"},
			"parameterized java.util.List\n  wildcard\n",
		},
		{
			[]string{"parse", "--class", "com.acme.Widget", "com.acme.Widget"},
			"com.acme.Widget\n",
		},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	got, err := run(t, "", "parse", "-f", "json", "int[]")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	for _, want := range []string{`"kind": "array"`, `"name": "[I"`, `"dimensions": 1`} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "com.acme.Widget"}, "unknown class: com.acme.Widget"},
		{[]string{"parse", "--no-builtin", "java.lang.String"}, "unknown class: java.lang.String"},
		{[]string{"parse", "java.util.List<>"}, "unexpected token '>'"},
		{[]string{"parse", "-f", "yaml", "int"}, "unknown format: yaml"},
		{[]string{"parse"}, "requires at least 1 arg"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestClassesCommand(t *testing.T) {
	got, err := run(t, "", "classes", "java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	want := "java.util.Map\tinterface\njava.lang.String\t-\njava.util.List\tinterface\njava.lang.Integer\t-\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	got, err = run(t, "", "classes", "java.util.Map<java.lang.String, java.util.Map<java.lang.String, java.lang.String>>")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if want := "java.util.Map\tinterface\njava.lang.String\t-\n"; got != want {
		t.Errorf("output = %q, want each class once: %q", got, want)
	}

	got, err = run(t, "", "classes", "-s", "java.lang.Comparable")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got != "java.lang.Comparable\tinterface\tbuiltin\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCheckCommand(t *testing.T) {
	input := "# signatures\njava.lang.String\n  java.util.List<>\ncom.acme.Widget\n"

	got, err := run(t, input, "check")
	if err == nil || err.Error() != "2 of 3 signatures failed" {
		t.Errorf("error = %v, want 2 of 3 signatures failed", err)
	}
	want := "<stdin>:3:18: unexpected token '>', expected a type name at position 15: java.util.List<>\n" +
		"<stdin>:4:1: unknown class: com.acme.Widget\n"
	if got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}

	got, err = run(t, "int\nlong[]\n", "check", "-j", "1", "-")
	if err != nil || got != "" {
		t.Errorf("check clean input = %q, %v; want no output", got, err)
	}
}

func TestCheckCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.jtypes")
	if err := os.WriteFile(path, []byte("java.util.Optional<java.lang.String>\ncom.acme.Widget[]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "", "check", path)
	if err == nil {
		t.Fatal("check succeeded, want a failure")
	}
	if want := path + ":2:1: unknown class: com.acme.Widget\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	got, err = run(t, "", "--class", "com.acme.Widget", "check", path)
	if err != nil || got != "" {
		t.Errorf("check with --class = %q, %v; want success", got, err)
	}
}

func TestTypesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	if err := os.WriteFile(path, []byte("classes:\n  com.acme.Widget: interface\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "classes", "-t", path, "com.acme.Widget")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got != "com.acme.Widget\tinterface\n" {
		t.Errorf("output = %q", got)
	}
}

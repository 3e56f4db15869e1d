package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jtype/parser"
	"github.com/dhamidi/jtype/typeexpr"
)

func newParseCmd(opts *options) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <signature>...",
		Short: "Parse type signatures and print the result",
		Long: `Parse each argument as a Java type signature.

Output formats:
  text        canonical source form
  json        tagged JSON, readable by typeexpr.Unmarshal
  tree        indented outline of the type expression
  descriptor  erased JVM field descriptor
  signature   JVM generic signature

Examples:
  jtype parse 'java.util.Map<java.lang.String, java.lang.Integer>'
  jtype parse -f tree 'java.util.List<? extends java.lang.Number>[]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.Resolver(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				t, err := parser.Parse(arg, r)
				if err != nil {
					return err
				}
				if err := writeType(out, t, outputFormat); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, tree, descriptor, signature)")

	return cmd
}

func writeType(w io.Writer, t typeexpr.Type, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, t)
		return err
	case "json":
		data, err := typeexpr.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "tree":
		return typeexpr.Fprint(w, t)
	case "descriptor":
		_, err := fmt.Fprintln(w, typeexpr.Descriptor(t))
		return err
	case "signature":
		_, err := fmt.Fprintln(w, typeexpr.Signature(t))
		return err
	}
	return fmt.Errorf("unknown format: %s (expected text, json, tree, descriptor or signature)", format)
}

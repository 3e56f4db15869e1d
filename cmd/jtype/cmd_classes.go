package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jtype/parser"
	"github.com/dhamidi/jtype/resolver"
	"github.com/dhamidi/jtype/typeexpr"
)

func newClassesCmd(opts *options) *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "classes <signature>",
		Short: "List the distinct classes a type signature refers to, in order of appearance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.Resolver(cmd.Context())
			if err != nil {
				return err
			}
			t, err := parser.Parse(args[0], r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			seen := make(map[string]bool)
			typeexpr.Walk(t, func(n typeexpr.Type) bool {
				c, ok := n.(*typeexpr.Class)
				if !ok || seen[c.Name()] {
					return true
				}
				seen[c.Name()] = true
				h, ok := c.Handle.(*resolver.ClassHandle)
				switch {
				case showSource && ok:
					fmt.Fprintf(out, "%s\t%s\t%s\n", c.Name(), kindOrUnknown(h.Kind), h.Source)
				case ok:
					fmt.Fprintf(out, "%s\t%s\n", c.Name(), kindOrUnknown(h.Kind))
				default:
					fmt.Fprintln(out, c.Name())
				}
				return true
			})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showSource, "source", "s", false, "show where each class was found")

	return cmd
}

func kindOrUnknown(kind string) string {
	if kind == "" {
		return "-"
	}
	return kind
}

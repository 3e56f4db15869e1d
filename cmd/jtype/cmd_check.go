package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jtype/check"
)

func newCheckCmd(opts *options) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a file of type signatures, one per line",
		Long: `Parse every line of a file as a Java type signature and report
failures as file:line:column: message.

Blank lines and lines starting with # are ignored. Without a file, or
with "-", signatures are read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.Resolver(cmd.Context())
			if err != nil {
				return err
			}

			filename := "-"
			if len(args) == 1 {
				filename = args[0]
			}
			lines, err := readSignatures(cmd, filename)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = opts.cfg.Check.Workers
			}
			results, err := check.Run(cmd.Context(), lines, r, workers)
			if err != nil {
				return err
			}

			name := filename
			if name == "-" {
				name = "<stdin>"
			}
			failed := check.Failed(results)
			out := cmd.OutOrStdout()
			for _, res := range failed {
				fmt.Fprintf(out, "%s:%d:%d: %v\n", name, res.Line.Number, res.Start+1, res.Err)
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d signatures failed", len(failed), len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of signatures to check concurrently")

	return cmd
}

func readSignatures(cmd *cobra.Command, filename string) ([]check.Line, error) {
	var rd io.Reader = cmd.InOrStdin()
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("open signatures: %w", err)
		}
		defer f.Close()
		rd = f
	}
	return check.ReadLines(rd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/jtype/lsp"
)

func newLSPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for .jtypes files",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.Resolver(cmd.Context())
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, r)
			return server.RunStdio()
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print every axiom of the ontology in English",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			lines, err := s.explorer.RenderAxioms(cmd.Context())
			if err != nil {
				return err
			}
			s.out.Lines(lines)
			return nil
		},
	}
}

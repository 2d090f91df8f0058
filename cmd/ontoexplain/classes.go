package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/owl"
)

func newClassesCmd(opts *globalOptions) *cobra.Command {
	var of string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the classes of the ontology, or the direct superclasses of one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			if of == "" {
				list, err := s.explorer.Classes(ctx)
				if err != nil {
					return err
				}
				s.out.Classes(list)
				return nil
			}

			var c owl.Class
			if c, err = s.explorer.FindClass(ctx, of); err != nil {
				return err
			}
			list, err := s.explorer.DirectSuperclasses(ctx, c)
			if err != nil {
				return err
			}
			s.out.Classes(list)
			return nil
		},
	}

	cmd.Flags().StringVar(&of, "superclasses-of", "", "List the direct superclasses of this class instead")
	return cmd
}

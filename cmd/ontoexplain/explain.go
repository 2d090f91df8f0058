package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain"
)

func newExplainCmd(opts *globalOptions) *cobra.Command {
	var (
		sub   string
		super string
		full  bool
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain why one class is a subclass of another",
		Example: `  ontoexplain explain -o pizza.yaml --sub Margherita --super Pizza
  ontoexplain explain -o pizza.yaml --sub Margherita --super Pizza --full`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sub == "" || super == "" {
				return errors.New("--sub and --super are required")
			}
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			subClass, err := s.explorer.FindClass(ctx, sub)
			if err != nil {
				return err
			}
			superClass, err := s.explorer.FindClass(ctx, super)
			if err != nil {
				return err
			}

			res, err := s.explorer.Explain(ctx, ontoexplain.ExplainRequest{
				Sub:   subClass,
				Super: superClass,
				Full:  full,
			})
			if err != nil {
				return err
			}
			s.out.ChosenExplanation(full)
			s.out.Explanation(res.Subsumption, res.Lines, full)
			return nil
		},
	}

	cmd.Flags().StringVar(&sub, "sub", "", "Subclass (short name or IRI)")
	cmd.Flags().StringVar(&super, "super", "", "Superclass (short name or IRI)")
	cmd.Flags().BoolVar(&full, "full", false, "Show the full set of explanations")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newExploreCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Choose a class and a superclass interactively and see why it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, opts)
		},
	}
}

func runExplore(cmd *cobra.Command, opts *globalOptions) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	nav, err := s.explorer.Navigator(s.out)
	if err != nil {
		return err
	}
	return nav.Run(cmd.Context(), cmd.InOrStdin())
}

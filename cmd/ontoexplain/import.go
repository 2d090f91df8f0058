package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/ontoexplain/pkg/ontoexplain/document"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/store/sqlite"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <document>...",
		Short: "Load ontology documents into the SQLite catalogue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Database == "" {
				return errors.New("--db is required")
			}
			logger, err := opts.logger(cmd, cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			cat, err := sqlite.Open(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer cat.Close()

			out := cmd.OutOrStdout()
			for _, path := range args {
				o, err := document.LoadFile(path)
				if err != nil {
					return err
				}
				id, err := cat.Import(ctx, o, path)
				if err != nil {
					return fmt.Errorf("import %s: %w", path, err)
				}
				logger.Info("ontology imported", zap.String("id", id), zap.String("path", path))
				_, _ = fmt.Fprintf(out, "%s  %s  (%d classes, %d axioms)\n", id, o.IRI(), len(o.Classes()), len(o.Axioms()))
			}
			return nil
		},
	}
}

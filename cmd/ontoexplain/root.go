package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/ontoexplain/internal/logging"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/config"
	"github.com/cognicore/ontoexplain/pkg/ontoexplain/present"
)

// globalOptions are the flags shared by every subcommand
type globalOptions struct {
	configPath  string
	ontology    string
	database    string
	ontologyIRI string
	reasoner    string
	maxJust     int
	logLevel    string
	logFormat   string
	noColor     bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "ontoexplain",
		Short: "Explore an ontology and explain its subsumptions in English",
		Long: `ontoexplain lists the classes of an ontology, lets you pick a class and
one of its direct superclasses, and explains in plain English which axioms
make the subsumption hold.

Run without a subcommand to start the interactive explorer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVarP(&opts.ontology, "ontology", "o", "", "Ontology document (YAML)")
	flags.StringVar(&opts.database, "db", "", "SQLite ontology catalogue")
	flags.StringVar(&opts.ontologyIRI, "ontology-iri", "", "Stored ontology to use (default: latest import)")
	flags.StringVar(&opts.reasoner, "reasoner", "", "Reasoner: structural or datalog")
	flags.IntVar(&opts.maxJust, "max-justifications", 0, "Upper bound on justifications searched for a full explanation")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (console, json)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newExploreCmd(opts),
		newExplainCmd(opts),
		newRenderCmd(opts),
		newClassesCmd(opts),
		newImportCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// resolveConfig reads the config file, if any, and applies flag overrides
func (o *globalOptions) resolveConfig(cmd *cobra.Command) (config.File, error) {
	f := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.File{}, err
		}
		f = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ontology") {
		f.Ontology = o.ontology
	}
	if flags.Changed("db") {
		f.Database = o.database
	}
	if flags.Changed("ontology-iri") {
		f.OntologyIRI = o.ontologyIRI
	}
	if flags.Changed("reasoner") {
		f.Reasoner = o.reasoner
	}
	if flags.Changed("max-justifications") {
		f.Explain.MaxJustifications = o.maxJust
	}
	if flags.Changed("log-level") {
		f.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		f.Log.Format = o.logFormat
	}
	if o.noColor {
		f.Color = false
	}
	return f, nil
}

// session is what a subcommand works with
type session struct {
	cfg      config.File
	logger   *zap.Logger
	explorer *ontoexplain.Explorer
	out      *present.Presenter
}

func (s *session) Close() {
	if s.explorer != nil {
		_ = s.explorer.Close()
	}
	_ = s.logger.Sync()
}

func (o *globalOptions) logger(cmd *cobra.Command, cfg config.File) (*zap.Logger, error) {
	return logging.NewWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
}

func (o *globalOptions) presenter(cmd *cobra.Command, cfg config.File) *present.Presenter {
	return present.New(cmd.OutOrStdout(), present.Options{Color: cfg.Color && !color.NoColor})
}

// open builds the explorer the configuration describes
func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := o.logger(cmd, cfg)
	if err != nil {
		return nil, err
	}

	explorer, err := ontoexplain.Open(cmd.Context(), cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &session{
		cfg:      cfg,
		logger:   logger,
		explorer: explorer,
		out:      o.presenter(cmd, cfg),
	}, nil
}

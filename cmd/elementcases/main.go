// Command elementcases lists the finite element test cases generated by the
// rule table in package cases.
package main

import (
	"fmt"
	"os"

	"github.com/notargets/elementcases/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	configPath string
	verbose    bool
	maxDegree  int
	cell       string
	format     string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "elementcases",
		Short: "Enumerate (cell, family, degree, variant) test cases",
		Long: `elementcases expands the element rule table into the list of test cases
exercised by the basis function conformance suite.

An empty case list is an error: it means a typo in the cell name or a
maximum degree too low for any rule to apply.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.IntVarP(&opts.maxDegree, "max-degree", "n", 0, "Highest polynomial degree to enumerate")

	root.AddCommand(newListCmd(opts), newCoverageCmd(opts))
	return root
}

// setup loads the config, applies flag overrides and builds the logger
func (o *options) setup(cmd *cobra.Command) (err error) {
	if o.configPath != "" {
		if o.cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	} else {
		o.cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("max-degree") {
		o.cfg.MaxDegree = o.maxDegree
	}
	if flags.Changed("cell") {
		if err = o.applyCell(); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		o.cfg.Format = config.Format(o.format)
	}
	if err = o.cfg.Validate(); err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(o.cfg.Log.Level)
	if o.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if o.logger, err = zcfg.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger.Debug("Configuration loaded",
		zap.String("path", o.configPath),
		zap.Int("max_degree", o.cfg.MaxDegree),
		zap.String("format", string(o.cfg.Format)))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

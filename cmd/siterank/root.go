package main

import (
	"github.com/spf13/cobra"

	"github.com/Calder-Energy/Siterank/internal/config"
	"github.com/Calder-Energy/Siterank/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootOptions carries the persistent flags and the loaded configuration
// shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// config returns the loaded configuration, loading it on first use so
// subcommands built standalone in tests still work.
func (o *rootOptions) config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	o.cfg = cfg
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "siterank",
		Short: "Rank renewable energy site alternatives under weighted criteria",
		Long: `Siterank ranks candidate renewable energy sites under multiple weighted
criteria using TOPSIS. Weights are supplied directly or derived from
pairwise comparisons via AHP, and rankings can be stress-tested with a
weight sensitivity sweep.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			logging.Init(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to config file (YAML)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newCriteriaCommand(opts))
	cmd.AddCommand(newPairsCommand(opts))
	cmd.AddCommand(newAnalyzeCommand(opts))
	cmd.AddCommand(newSensitivityCommand(opts))
	cmd.AddCommand(newFrontierCommand(opts))

	return cmd
}

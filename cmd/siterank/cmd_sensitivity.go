package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Calder-Energy/Siterank/internal/logging"
	"github.com/Calder-Energy/Siterank/mcda"
	"github.com/Calder-Energy/Siterank/sensitivity"
)

func newSensitivityCommand(opts *rootOptions) *cobra.Command {
	var (
		delta      float64
		format     string
		sequential bool
	)

	cmd := &cobra.Command{
		Use:   "sensitivity <request-file>",
		Short: "Measure how stable a ranking is under weight perturbation",
		Long: `Perturb each criterion weight of a request up and down by a fraction
delta (renormalizing the rest) and re-rank. Criteria are listed by
impact, most disruptive first; an impact of 0 means the ranking never
moved, 2 means it fully reversed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}

			req, err := loadRequest(args[0], reg)
			if err != nil {
				return err
			}

			d := delta
			if d == 0 {
				d = cfg.Sensitivity.Delta
			}

			analyzer := sensitivity.NewAnalyzer(req).WithDelta(d)
			var res *sensitivity.Result
			if sequential || !cfg.Sensitivity.Parallel {
				res, err = analyzer.Analyze()
			} else {
				res, err = analyzer.AnalyzeParallel()
			}
			if err != nil {
				var vErrs mcda.ValidationErrors
				if errors.As(err, &vErrs) {
					for _, verr := range vErrs {
						fmt.Fprintln(cmd.ErrOrStderr(), verr.Error())
					}
					return &InvalidRequestError{Path: args[0]}
				}
				return err
			}

			logging.New("sensitivity").Info("sweep finished",
				"request", args[0],
				"delta", res.Delta,
				"criteria", len(res.Impacts))

			if format == "json" {
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal sensitivity result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			precision := cfg.Output.Precision
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "CRITERION\tIMPACT\tTAU+\tTAU-\tTOP CHANGED\tWINNER SHIFT\n")
			fmt.Fprintf(tw, "---------\t------\t----\t----\t-----------\t------------\n")
			for _, rc := range res.Ranking {
				imp := res.Impacts[rc.Name]
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
					imp.Criterion,
					formatScore(imp.Impact, precision),
					formatScore(imp.TauUp, precision),
					formatScore(imp.TauDown, precision),
					imp.TopChanged,
					formatScore(imp.WinnerShift, precision))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&delta, "delta", 0, "Perturbation fraction in (0,1) (default from config)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table | json")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "Perturb criteria one at a time instead of in parallel")
	return cmd
}

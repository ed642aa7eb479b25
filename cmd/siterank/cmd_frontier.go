package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Calder-Energy/Siterank/mcda"
)

func newFrontierCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "frontier <request-file>",
		Short: "List the Pareto non-dominated alternatives of a request",
		Long: `List the alternatives of a request that no other alternative beats on
every chosen criterion. The frontier needs no weights or judgments, so
it works on a request before the weighting question is settled.`,
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

			front, err := mcda.Frontier(req.Alternatives, req.Criteria, req.Registry)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
				return &InvalidRequestError{Path: args[0]}
			}

			if format == "json" {
				data, err := json.MarshalIndent(front, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal frontier: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tNAME\n")
			fmt.Fprintf(tw, "--\t----\n")
			for _, alt := range front {
				fmt.Fprintf(tw, "%s\t%s\n", alt.ID, alt.Name)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d alternatives are non-dominated\n", len(front), len(req.Alternatives))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table | json")
	return cmd
}

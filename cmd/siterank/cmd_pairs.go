package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Calder-Energy/Siterank/mcda"
)

func newPairsCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pairs <criterion>...",
		Short: "Show the pairwise comparison schedule for the chosen criteria",
		Long: `Show the comparison schedule an AHP request must answer for the chosen
criteria. A judgment vector submitted with the request answers these
pairs in exactly this order: judgment k states how much more important
the left criterion of pair k is than the right one (a value below 1
favors the right one).

Example:
  siterank pairs investment_cost technical_quality financial_return`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			for _, name := range args {
				if _, ok := reg.Lookup(name); !ok {
					return fmt.Errorf("criterion %q is not in the catalogue; run 'siterank criteria' to list it", name)
				}
			}

			pairs, err := mcda.ComparisonPairs(args)
			if err != nil {
				return err
			}

			if format == "json" {
				data, err := json.MarshalIndent(pairs, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal pairs: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "#\tLEFT\tRIGHT\n")
			fmt.Fprintf(tw, "-\t----\t-----\n")
			for k, p := range pairs {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", k+1, p.Left, p.Right)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d judgments required\n", len(pairs))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table | json")
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCriteriaCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "List the selectable criteria catalogue",
		Long: `List every criterion an analysis request may select, with its
optimization direction and unit. The built-in catalogue can be extended
through the criteria key of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			list := reg.List()

			if format == "json" {
				data, err := json.MarshalIndent(list, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal criteria: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tDIRECTION\tUNIT\n")
			fmt.Fprintf(tw, "----\t---------\t----\n")
			for _, c := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Direction, c.Unit)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table | json")
	return cmd
}

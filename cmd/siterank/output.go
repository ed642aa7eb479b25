package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Calder-Energy/Siterank/mcda"
)

func formatScore(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// printRankings writes the ranked alternatives as an aligned table, followed
// by any warnings and the AHP consistency ratio when one was computed.
func printRankings(w io.Writer, res *mcda.Result, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tID\tNAME\tSCORE\n")
	fmt.Fprintf(tw, "----\t--\t----\t-----\n")
	for _, r := range res.Rankings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Rank, r.AlternativeID, r.Name, formatScore(r.Score, precision))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if res.Consistency != nil {
		fmt.Fprintf(w, "\nconsistency ratio: %s\n", formatScore(res.Consistency.CR, precision))
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Message)
	}
	return nil
}

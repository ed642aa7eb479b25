package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Calder-Energy/Siterank/internal/logging"
	"github.com/Calder-Energy/Siterank/mcda"
	"github.com/Calder-Energy/Siterank/report"
)

// analyzeParallelism caps how many request files are processed at once.
const analyzeParallelism = 4

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "analyze <request-file>...",
		Short: "Rank site alternatives from one or more request files",
		Long: `Analyze one or more request files (YAML or JSON) and rank their site
alternatives by TOPSIS closeness. Every request produces a report
envelope; a request that fails validation produces an envelope carrying
the collected messages and the command exits with code 1.

With --output and a single request, the report is written to that path.
With multiple requests, --output names a directory and each report is
written as <request-stem>.report.json (or .csv).`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			outFormat := format
			if outFormat == "" {
				outFormat = cfg.Output.Format
			}
			switch outFormat {
			case "table", "json", "csv":
			default:
				return fmt.Errorf("unknown output format %q", outFormat)
			}

			log := logging.New("analyze")

			envelopes := make([]*report.Envelope, len(args))
			g, _ := errgroup.WithContext(cmd.Context())
			g.SetLimit(analyzeParallelism)
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					req, err := loadRequest(path, reg)
					if err != nil {
						return err
					}

					start := time.Now()
					res, runErr := mcda.Analyze(req)
					if runErr != nil {
						var vErrs mcda.ValidationErrors
						if !errors.As(runErr, &vErrs) {
							return fmt.Errorf("analyze %s: %w", path, runErr)
						}
					}
					envelopes[i] = report.New(req, res, runErr, time.Since(start))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, path := range args {
				env := envelopes[i]
				if err := writeEnvelope(cmd.OutOrStdout(), env, path, output, outFormat, cfg.Output.Precision, len(args) > 1); err != nil {
					return err
				}
				log.Info("request analyzed",
					"request", path,
					"run_id", env.Metadata.ID,
					"status", env.Metadata.Status,
					"alternatives", env.Request.Alternatives)
			}

			for i, path := range args {
				if envelopes[i].Metadata.Status == report.StatusInvalid {
					for _, msg := range envelopes[i].Errors {
						fmt.Fprintln(cmd.ErrOrStderr(), msg)
					}
					return &InvalidRequestError{Path: path}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Report file, or directory with multiple requests (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: table | json | csv (default from config)")
	return cmd
}

// writeEnvelope routes one report to stdout or to a file. Table format only
// applies to stdout; file artifacts are always JSON or CSV.
func writeEnvelope(stdout io.Writer, env *report.Envelope, reqPath, output, format string, precision int, multi bool) error {
	if output == "" {
		return renderEnvelope(stdout, env, format, precision)
	}

	path := output
	info, err := os.Stat(output)
	if (err == nil && info.IsDir()) || multi {
		if err := os.MkdirAll(output, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		path = filepath.Join(output, reportName(reqPath, format))
	}

	if format == "csv" {
		if env.Result == nil {
			return nil
		}
		return report.WriteCSV(env, path)
	}
	return report.WriteJSON(env, path)
}

func renderEnvelope(w io.Writer, env *report.Envelope, format string, precision int) error {
	switch format {
	case "json":
		s, err := report.ToJSON(env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case "csv":
		if env.Result == nil {
			return nil
		}
		return report.WriteCSVTo(w, env)
	default:
		if env.Result == nil {
			return nil
		}
		return printRankings(w, env.Result, precision)
	}
}

func reportName(reqPath, format string) string {
	stem := strings.TrimSuffix(filepath.Base(reqPath), filepath.Ext(reqPath))
	if format == "csv" {
		return stem + ".report.csv"
	}
	return stem + ".report.json"
}

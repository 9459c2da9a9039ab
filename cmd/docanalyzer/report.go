package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirillkom/document-analyzer/internal/bootstrap"
	"github.com/kirillkom/document-analyzer/internal/config"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/report"
	"github.com/kirillkom/document-analyzer/internal/observability/logging"
)

func newReportCmd() *cobra.Command {
	var (
		out         string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze every document and write an XLSX report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			logger := logging.NewJSONLogger(cfg.ServiceName, cfg.LogLevel, cmd.ErrOrStderr())

			corpus, err := bootstrap.NewCorpus(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			n, err := report.NewGenerator(corpus.Catalog, corpus.Analyzer, concurrency).Write(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d documents to %s\n", n, out)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "report.xlsx", "output workbook path")
	cmd.Flags().IntVar(&concurrency, "concurrency", report.DefaultConcurrency, "documents analyzed in parallel")
	return cmd
}

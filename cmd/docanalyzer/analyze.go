package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kirillkom/document-analyzer/internal/core/analysis"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file string
		text string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the full text analysis of a file, a string or stdin as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readInput(cmd, file, text)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(analysis.Analyze(input))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path of a UTF-8 text file to analyze")
	cmd.Flags().StringVar(&text, "text", "", "text to analyze")
	cmd.MarkFlagsMutuallyExclusive("file", "text")
	return cmd
}

func readInput(cmd *cobra.Command, file, text string) (string, error) {
	switch {
	case cmd.Flags().Changed("text"):
		return text, nil
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(raw), nil
	default:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
}

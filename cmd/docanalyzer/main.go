package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "docanalyzer",
		Short:        "Document analysis MCP server",
		Long:         "Serves document sentiment, keyword, readability and statistics tools over MCP and a REST facade.",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newReportCmd())
	return root
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/quickstart/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the document keys held by a shared store",
	Long: `Prints one stored document key per line. Only stores that keep an index
of their documents support listing, e.g. --store redis://localhost:6379/0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListDocuments(cmd.Context(), optionsFrom(cmd))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

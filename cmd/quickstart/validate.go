package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/quickstart/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the question catalog for consistency",
	Long: `Loads the catalog and reports unknown question types, dangling list
references and malformed option configurations.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ValidateCatalog(optionsFrom(cmd))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

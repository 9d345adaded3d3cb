package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quickstart"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quickstart",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quickstart version %s\n", strings.TrimSpace(quickstart.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

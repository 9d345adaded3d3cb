package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/quickstart/internal/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file and run the wizard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
		return cli.RunSession(cmd.Context(), cli.ModeInit, opts)
	},
}

var reconfigureCmd = &cobra.Command{
	Use:   "reconfigure",
	Short: "Run the wizard again on the existing configuration",
	Long: `Asks every question again, offering the recorded answers as defaults.
With --only a single question is asked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		opts.Only, _ = cmd.Flags().GetString("only")
		opts.Yes, _ = cmd.Flags().GetBool("yes")
		opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
		return cli.RunSession(cmd.Context(), cli.ModeReconfigure, opts)
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fill the configuration from the project files without asking",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunSession(cmd.Context(), cli.ModeIngest, optionsFrom(cmd))
	},
}

func init() {
	rootCmd.AddCommand(initCmd, reconfigureCmd, ingestCmd)

	for _, c := range []*cobra.Command{initCmd, reconfigureCmd} {
		c.Flags().String("metrics-file", "", "Write wizard counters to this file in Prometheus text format")
	}
	reconfigureCmd.Flags().String("only", "", "Ask only the question at this path")
	reconfigureCmd.Flags().BoolP("yes", "y", false, "Save without confirmation")
}

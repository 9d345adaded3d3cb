package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quickstart/internal/cli"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/runner"
)

var rootCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Quickstart is an interactive project configuration wizard",
	Long: `Quickstart asks a catalog of questions and records the answers in a
configuration file. Answers already recorded become the defaults the next time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("dir", ".", "Project directory")
	flags.StringP("file", "f", domain.DefaultConfigFile, "Configuration file name")
	flags.String("catalog", "", "Question catalog (defaults to "+cli.CatalogFile+" or the built-in one)")
	flags.String("store", "file", `Where the configuration lives: "file" or a redis:// URL`)
	flags.Duration("lock-ttl", runner.DefaultLockTTL, "Lock expiry on shared stores")
	flags.Bool("debug", false, "Log engine activity to stderr")
	flags.BoolP("no-interaction", "n", false, "Accept every default without asking")
}

// optionsFrom reads the persistent flags.
func optionsFrom(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	file, _ := flags.GetString("file")
	catalog, _ := flags.GetString("catalog")
	store, _ := flags.GetString("store")
	ttl, _ := flags.GetDuration("lock-ttl")
	debug, _ := flags.GetBool("debug")
	noInteraction, _ := flags.GetBool("no-interaction")

	return cli.Options{
		Dir:           dir,
		File:          file,
		Catalog:       catalog,
		Store:         store,
		LockTTL:       ttl,
		Debug:         debug,
		NoInteraction: noInteraction,
		Out:           cmd.OutOrStdout(),
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quickstart/internal/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or edit single configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the value at a dotted path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ConfigGet(cmd.Context(), optionsFrom(cmd), args[0])
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Store a value at a dotted path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		return cli.ConfigSet(cmd.Context(), optionsFrom(cmd), args[0], args[1], asYAML)
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <path>",
	Short: "Remove the value at a dotted path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ConfigUnset(cmd.Context(), optionsFrom(cmd), args[0])
	},
}

var configHasCmd = &cobra.Command{
	Use:   "has <path>",
	Short: "Exit with status 0 when a value is set, 1 otherwise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		has, err := cli.ConfigHas(cmd.Context(), optionsFrom(cmd), args[0])
		if err != nil {
			return err
		}
		if !has {
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "yes")
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a condition against the configuration",
	Long: `Evaluates an "if" condition such as "#project.type# === 'node'" and prints
true or false. With --default the expression is evaluated as a default
expression instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asDefault, _ := cmd.Flags().GetBool("default")
		return cli.Eval(cmd.Context(), optionsFrom(cmd), args[0], asDefault)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configHasCmd)
	rootCmd.AddCommand(configCmd, evalCmd)

	configSetCmd.Flags().Bool("yaml", false, "Decode the value as YAML (lists, maps, numbers, booleans)")
	evalCmd.Flags().Bool("default", false, "Evaluate as a default expression")
}

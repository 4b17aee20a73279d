package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MyNameIs-13/aockit/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the puzzle-service session token",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Store the session token at the canonical location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteToken(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Token written to %s\n", config.TokenPath())
		return nil
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := config.Token()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var tokenPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the canonical token file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.TokenPath())
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd, tokenShowCmd, tokenPathCmd)
	rootCmd.AddCommand(tokenCmd)
}

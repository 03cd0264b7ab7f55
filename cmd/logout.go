package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/app"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Logout(credsPath); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/app"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "List the API resources the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(credsPath)
		if err != nil {
			return err
		}
		resources, err := a.Client.Endpoints(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, r := range resources {
			fmt.Fprintf(out, "%-30s %s\n", r.Caption, r.Href)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

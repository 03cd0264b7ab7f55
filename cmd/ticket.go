package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/app"
)

var ticketCmd = &cobra.Command{
	Use:   "ticket <id>",
	Short: "Print the raw description of a ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ticket id %q", args[0])
		}
		a, err := app.New(credsPath)
		if err != nil {
			return err
		}
		description, err := a.Client.TicketDescription(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ticketCmd)
}

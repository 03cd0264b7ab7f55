package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/app"
	"github.com/andre0707/pfterm/internal/creds"
	"github.com/andre0707/pfterm/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := creds.Load(credsPath)
		if err != nil {
			return err
		}

		// A missing session is fine here; the UI starts on the sign-in form.
		a, err := app.New(credsPath)
		if err != nil && !errors.Is(err, app.ErrNoSession) {
			return err
		}

		return ui.Run(ui.Options{
			Context:   cmd.Context(),
			App:       a,
			Creds:     stored,
			CredsPath: credsPath,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

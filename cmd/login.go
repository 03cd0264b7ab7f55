package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andre0707/pfterm/internal/app"
	"github.com/andre0707/pfterm/internal/creds"
)

var (
	loginBaseURL string
	loginEmail   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create and store an access token",
	Long:  "Exchanges your email and password for a long-lived access token and stores it.\nThe password is read interactively and never persisted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := creds.Load(credsPath)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		baseURL := loginBaseURL
		if baseURL == "" {
			baseURL = prompt(reader, out, "Base URL", stored.BaseURL)
		}
		email := loginEmail
		if email == "" {
			email = prompt(reader, out, "Email", stored.Email)
		}
		password := prompt(reader, out, "Password", "")

		c, err := app.Login(cmd.Context(), credsPath, baseURL, email, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Logged in as %s (user %d)\n", c.Email, c.UserID)
		return nil
	},
}

// prompt reads one line, returning def when the input is empty.
func prompt(reader *bufio.Reader, out io.Writer, label, def string) string {
	if def != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func init() {
	loginCmd.Flags().StringVar(&loginBaseURL, "base-url", "", "ProjectFacts base URL")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email address")
	rootCmd.AddCommand(loginCmd)
}
